package glyph

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned, wrapped in a *ParameterError, when a
// generator is called with a non-positive or non-finite size, ratio, width or
// viewport dimension, or with an unknown icon kind.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError records which argument of which operation was rejected.
type ParameterError struct {
	Op    string
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("glyph: %s: %s: %s = %g", e.Op, ErrInvalidParameter, e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// positive returns a *ParameterError unless v is positive and finite.
func positive(op, name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &ParameterError{Op: op, Name: name, Value: v}
	}
	return nil
}

// finite returns a *ParameterError if v is NaN or infinite.
func finite(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Op: op, Name: name, Value: v}
	}
	return nil
}
