package search

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when the fetch succeeded but yielded no rows at all.
var ErrEmptyDataset = errors.New("dataset contains no records")

// ValidationReason tells why a key was rejected.
type ValidationReason int

const (
	KeyEmpty ValidationReason = iota
	KeyTooShort
)

// ValidationError is returned for keys that can't be searched for.
type ValidationError struct {
	Reason    ValidationReason
	MinLength int
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case KeyTooShort:
		return fmt.Sprintf("key must be at least %d characters long", e.MinLength)
	default:
		return "key is empty"
	}
}

// NotFoundError is returned when no row in any table matched the key.
type NotFoundError struct {
	Key     string
	Tables  int
	Records int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record for key %q in %d tables (%d records)", e.Key, e.Tables, e.Records)
}

// IsNotFound checks if the error means that the key wasn't matched.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation checks if the error is a key validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
