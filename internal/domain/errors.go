package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrInvalidLevel     = errors.New("invalid level")
	ErrInvalidCriterion = errors.New("invalid sort criterion")
	ErrDecoding         = errors.New("decoding error")
)

// InvalidLevelError reports level text that matches none of the four levels.
type InvalidLevelError struct {
	Text string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level: %s", e.Text)
}

func (e *InvalidLevelError) Unwrap() []error { return []error{ErrInvalidLevel, ErrValidation} }

// InvalidCriterionError reports an unknown sort criterion.
type InvalidCriterionError struct {
	Text string
}

func (e *InvalidCriterionError) Error() string {
	return fmt.Sprintf("invalid sort criterion: %q", e.Text)
}

func (e *InvalidCriterionError) Unwrap() []error {
	return []error{ErrInvalidCriterion, ErrValidation}
}

// DecodingError reports input that is not a well-formed record or list of
// records. Op names the boundary operation that rejected it.
type DecodingError struct {
	Op  string
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Op, e.Err)
}

func (e *DecodingError) Unwrap() []error { return []error{ErrDecoding, e.Err} }
