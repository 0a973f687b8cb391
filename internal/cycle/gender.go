package cycle

import (
	"fmt"
	"strings"
)

// Gender selects the direction of the major cycles together with the
// polarity of the year stem.
type Gender int

const (
	// Male is the default gender.
	Male Gender = iota
	// Female reverses the cycle direction relative to Male.
	Female
)

// ParseGender accepts "male" or "female" in any case, plus the one-letter
// forms "m" and "f".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

// String returns "male" or "female".
func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

// MarshalText encodes the gender as "male" or "female".
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText decodes the forms ParseGender accepts.
func (g *Gender) UnmarshalText(b []byte) error {
	v, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
