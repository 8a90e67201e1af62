package grid

import (
	"iter"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// Masked restricts a Grid to one rectangular area. Cells outside the area
// read as absent; coordinates are those of the underlying grid.
type Masked struct {
	g    Grid
	area models.PrintArea
}

// NewMasked returns g limited to area.
func NewMasked(g Grid, area models.PrintArea) *Masked {
	return &Masked{g: g, area: area}
}

// ValueAt implements Grid.
func (m *Masked) ValueAt(row, col int) models.Cell {
	if !m.area.Contains(row, col) {
		return models.Absent()
	}
	return m.g.ValueAt(row, col)
}

// MaxRow implements Grid.
func (m *Masked) MaxRow() int {
	return min(m.g.MaxRow(), m.area.R2)
}

// MaxCol implements Grid.
func (m *Masked) MaxCol() int {
	return min(m.g.MaxCol(), m.area.C2)
}

// Rows implements Grid.
func (m *Masked) Rows() iter.Seq2[int, []models.Cell] {
	return func(yield func(int, []models.Cell) bool) {
		maxCol := m.MaxCol()
		for r := 1; r <= m.MaxRow(); r++ {
			if !yield(r, RowValues(m, r, 1, maxCol)) {
				return
			}
		}
	}
}
