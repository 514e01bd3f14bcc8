package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrSheetNotFound  = fmt.Errorf("%w: sheet", ErrNotFound)
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)
	ErrFileNotFound   = fmt.Errorf("%w: file", ErrNotFound)

	// Data errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrConstantSample   = errors.New("sample has zero range")
	ErrShapeMismatch    = errors.New("column lengths differ")
	ErrKindMismatch     = errors.New("column kinds differ")
	ErrEmptySheet       = errors.New("sheet has no data rows")
)

// Error constructors with context
func NewSheetNotFoundError(file, sheet string) error {
	return fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, file)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewInsufficientDataError(test string, n, min int) error {
	return fmt.Errorf("%w: %s needs at least %d observations, got %d", ErrInsufficientData, test, min, n)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrConstantSample) ||
		errors.Is(err, ErrShapeMismatch) ||
		errors.Is(err, ErrKindMismatch) ||
		errors.Is(err, ErrEmptySheet)
}
