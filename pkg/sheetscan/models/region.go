package models

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidRegion indicates a region whose bounds are inconsistent.
var ErrInvalidRegion = errors.New("invalid region")

// Region is a detected rectangular span of a sheet holding one logical table.
// All indices are 1-based and inclusive.
type Region struct {
	// StartRow is the first data row.
	StartRow int `json:"start_row"`
	// EndRow is the last data row.
	EndRow int `json:"end_row"`
	// StartCol is the first column.
	StartCol int `json:"start_col"`
	// EndCol is the last column.
	EndCol int `json:"end_col"`
	// Name is the section title, top-left text or a positional placeholder.
	Name string `json:"name"`
	// TitleRow is the row that supplied Name, excluded from the data (optional).
	TitleRow *int `json:"title_row,omitempty"`
}

// DefaultRegionName returns the positional placeholder for the n-th region
// (1-based) found in one detection pass.
func DefaultRegionName(n int) string {
	return fmt.Sprintf("Table_%d", n)
}

// Rows returns the number of rows spanned.
func (r Region) Rows() int {
	return r.EndRow - r.StartRow + 1
}

// Cols returns the number of columns spanned.
func (r Region) Cols() int {
	return r.EndCol - r.StartCol + 1
}

// Validate checks the structural invariants of the region.
func (r Region) Validate() error {
	if r.StartRow < 1 || r.StartCol < 1 {
		return fmt.Errorf("%w: start (%d,%d) must be >= 1", ErrInvalidRegion, r.StartRow, r.StartCol)
	}
	if r.StartRow > r.EndRow {
		return fmt.Errorf("%w: start row %d after end row %d", ErrInvalidRegion, r.StartRow, r.EndRow)
	}
	if r.StartCol > r.EndCol {
		return fmt.Errorf("%w: start col %d after end col %d", ErrInvalidRegion, r.StartCol, r.EndCol)
	}
	if r.TitleRow != nil && *r.TitleRow >= r.StartRow {
		return fmt.Errorf("%w: title row %d not above start row %d", ErrInvalidRegion, *r.TitleRow, r.StartRow)
	}
	return nil
}

// Range returns the region in A1 notation (e.g. "A2:C3").
func (r Region) Range() string {
	start, err := excelize.CoordinatesToCellName(r.StartCol, r.StartRow)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(r.EndCol, r.EndRow)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// String implements fmt.Stringer.
func (r Region) String() string {
	return fmt.Sprintf("Region(name=%q, rows=%d-%d, cols=%d-%d)", r.Name, r.StartRow, r.EndRow, r.StartCol, r.EndCol)
}
