package roster

import "errors"

// Sentinel errors for roster validation.
var (
	// ErrNoPeople indicates a roster without any [[person]] entries.
	ErrNoPeople = errors.New("roster has no people")
	// ErrDuplicateName indicates two people share the same name.
	ErrDuplicateName = errors.New("duplicate person name")
	// ErrMissingField indicates a required field (e.g. name, date) is empty.
	ErrMissingField = errors.New("required field missing")
)

// ValidationError ties a validation problem to the person it concerns.
type ValidationError struct {
	Person string // Empty for roster-level problems
	Field  string
	Err    error
}

// Error returns a human-readable string including the person's name.
func (e *ValidationError) Error() string {
	if e.Person != "" {
		return "person " + e.Person + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
