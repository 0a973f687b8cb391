package chart

import "errors"

// Sentinel errors for chart input validation.
var (
	// ErrInvalidDate indicates a malformed or non-existent calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidHour indicates a clock time outside 00:00-23:59.
	ErrInvalidHour = errors.New("invalid time")

	// ErrInvalidGender indicates an unrecognized gender value.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidLongitude indicates a longitude outside [-180, 180].
	ErrInvalidLongitude = errors.New("invalid longitude")
)
