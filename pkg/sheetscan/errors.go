package sheetscan

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/materialize"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnknownMode indicates an unsupported detection mode.
var ErrUnknownMode = errors.New("unknown mode")

// Re-exported from the packages that raise them.
var (
	// ErrOutOfRange indicates a region reaching past the sheet's extent.
	ErrOutOfRange = materialize.ErrOutOfRange
	// ErrInvalidRegion indicates a region with inconsistent bounds.
	ErrInvalidRegion = models.ErrInvalidRegion
	// ErrUnknownStyle indicates an unknown style preset name.
	ErrUnknownStyle = models.ErrUnknownStyle
	// ErrUnknownEncoding indicates an unsupported CSV encoding name.
	ErrUnknownEncoding = parser.ErrUnknownEncoding
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "load", "detect", "materialize"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
