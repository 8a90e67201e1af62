// Package grid provides read-only access to a sheet's cell values.
//
// All coordinates are 1-based. A Grid reports an absent cell for every
// position without a stored value, including positions past its extent.
package grid

import (
	"iter"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// Grid is a read-only view over one sheet.
type Grid interface {
	// ValueAt returns the cell at (row, col).
	ValueAt(row, col int) models.Cell
	// MaxRow returns the last row that may hold a value.
	MaxRow() int
	// MaxCol returns the last column that may hold a value.
	MaxCol() int
	// Rows yields (row, cells) for rows 1..MaxRow, each with MaxCol cells.
	Rows() iter.Seq2[int, []models.Cell]
}

// RowValues returns the cells of row across columns from..to (inclusive).
func RowValues(g Grid, row, from, to int) []models.Cell {
	if to < from {
		return nil
	}
	out := make([]models.Cell, 0, to-from+1)
	for c := from; c <= to; c++ {
		out = append(out, g.ValueAt(row, c))
	}
	return out
}

// Block returns the cells of the rectangle (r1,c1)-(r2,c2) in row-major order.
func Block(g Grid, r1, c1, r2, c2 int) [][]models.Cell {
	if r2 < r1 {
		return nil
	}
	out := make([][]models.Cell, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		out = append(out, RowValues(g, r, c1, c2))
	}
	return out
}

// IsEmpty reports whether g holds no present cell.
func IsEmpty(g Grid) bool {
	for _, row := range g.Rows() {
		for _, c := range row {
			if !c.IsAbsent() {
				return false
			}
		}
	}
	return true
}
