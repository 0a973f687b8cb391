// Package roster reads a TOML file listing the people whose charts are
// computed together, and watches it for edits.
package roster

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/meishiki/internal/chart"
)

// Defaults apply to every person that leaves the field unset.
type Defaults struct {
	Longitude *float64 `toml:"longitude"`
	Gender    string   `toml:"gender"`
	Time      string   `toml:"time"`
}

// Person is one [[person]] entry.
type Person struct {
	Name      string   `toml:"name"`
	Date      string   `toml:"date"`
	Time      string   `toml:"time"`
	Gender    string   `toml:"gender"`
	Longitude *float64 `toml:"longitude"`
}

// Roster is a parsed roster file.
type Roster struct {
	Path     string   `toml:"-"`
	Defaults Defaults `toml:"defaults"`
	People   []Person `toml:"person"`
}

// Entry is a person resolved into a chart input.
type Entry struct {
	Name  string
	Input chart.Input
}

// Load reads and parses the roster at path.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Parse decodes roster TOML.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	return &r, nil
}

// Validate checks required fields and name uniqueness.
func Validate(r *Roster) []ValidationError {
	if len(r.People) == 0 {
		return []ValidationError{{Err: ErrNoPeople}}
	}

	var errs []ValidationError
	seen := make(map[string]bool)
	for i, p := range r.People {
		if p.Name == "" {
			errs = append(errs, ValidationError{
				Person: fmt.Sprintf("#%d", i+1),
				Field:  "name",
				Err:    fmt.Errorf("%w: name", ErrMissingField),
			})
			continue
		}
		if p.Date == "" {
			errs = append(errs, ValidationError{
				Person: p.Name,
				Field:  "date",
				Err:    fmt.Errorf("%w: date", ErrMissingField),
			})
		}
		if seen[p.Name] {
			errs = append(errs, ValidationError{
				Person: p.Name,
				Field:  "name",
				Err:    fmt.Errorf("%w: %q", ErrDuplicateName, p.Name),
			})
		}
		seen[p.Name] = true
	}
	return errs
}

// Entries validates the roster and resolves every person into a chart
// input, filling unset fields from the defaults and then from the
// fallbacks given by the caller.
func (r *Roster) Entries(fallbackLongitude float64, fallbackGender string) ([]Entry, error) {
	if verrs := Validate(r); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i := range verrs {
			errs[i] = &verrs[i]
		}
		return nil, errors.Join(errs...)
	}

	out := make([]Entry, 0, len(r.People))
	for _, p := range r.People {
		lon := fallbackLongitude
		switch {
		case p.Longitude != nil:
			lon = *p.Longitude
		case r.Defaults.Longitude != nil:
			lon = *r.Defaults.Longitude
		}
		gender := firstNonEmpty(p.Gender, r.Defaults.Gender, fallbackGender)
		clock := firstNonEmpty(p.Time, r.Defaults.Time)

		in, err := chart.ParseInput(p.Date, clock, gender, lon)
		if err != nil {
			return nil, &ValidationError{Person: p.Name, Err: err}
		}
		out = append(out, Entry{Name: p.Name, Input: in})
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
