package emission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched (errors.Is) by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a value outside the accepted set of a field.
type InvalidInputError struct {
	Field    string
	Value    string
	Accepted []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: accepted values are %s", e.Field, e.Value, strings.Join(e.Accepted, ", "))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, value string, accepted []string) error {
	return &InvalidInputError{Field: field, Value: value, Accepted: append([]string(nil), accepted...)}
}
