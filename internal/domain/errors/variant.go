package errors

import "fmt"

// UnknownVariantError reports the first size or color identifier in a
// reconciliation request that does not exist.
type UnknownVariantError struct {
	Kind string // "size" or "color"
	ID   uint
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func (e *UnknownVariantError) Unwrap() error {
	return ErrInvalidInput
}
