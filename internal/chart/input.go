package chart

import (
	"fmt"
	"time"

	"github.com/papapumpkin/meishiki/internal/calendar"
	"github.com/papapumpkin/meishiki/internal/cycle"
)

// Accepted text layouts.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DefaultTime is used when no birth time is given.
const DefaultTime = "12:00"

// Input is everything Compute needs.
type Input struct {
	Birth         calendar.Moment `json:"birth"`
	Gender        cycle.Gender    `json:"gender"`
	Longitude     float64         `json:"longitude"`
	TrueSolarTime bool            `json:"trueSolarTime"`
	Cycles        int             `json:"-"`
}

// ParseInput builds an Input from its textual form. An empty clock means
// DefaultTime. The result has already passed Validate.
func ParseInput(date, clock, gender string, longitude float64) (Input, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if clock == "" {
		clock = DefaultTime
	}
	c, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidHour, clock)
	}
	g, err := cycle.ParseGender(gender)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidGender, gender)
	}
	in := Input{
		Birth: calendar.Moment{
			Year:   d.Year(),
			Month:  int(d.Month()),
			Day:    d.Day(),
			Hour:   c.Hour(),
			Minute: c.Minute(),
		},
		Gender:    g,
		Longitude: longitude,
	}
	return in, in.Validate()
}

// Validate checks the fields a caller may have filled by hand.
func (in Input) Validate() error {
	b := in.Birth
	if !calendar.ValidDate(b.Year, b.Month, b.Day) {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, b.Year, b.Month, b.Day)
	}
	if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", ErrInvalidHour, b.Hour, b.Minute)
	}
	if in.Gender != cycle.Male && in.Gender != cycle.Female {
		return fmt.Errorf("%w: %d", ErrInvalidGender, int(in.Gender))
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return fmt.Errorf("%w: %g", ErrInvalidLongitude, in.Longitude)
	}
	return nil
}
