package grid

import (
	"iter"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// Matrix is an immutable in-memory Grid.
type Matrix struct {
	name   string
	cells  [][]models.Cell
	maxCol int
}

// NewMatrix builds a Matrix from rows of cells. rows[0] is sheet row 1 and
// rows[i][0] is column A. Rows may be ragged; the input is copied.
func NewMatrix(name string, rows [][]models.Cell) *Matrix {
	m := &Matrix{name: name}

	last := len(rows)
	for last > 0 && allAbsent(rows[last-1]) {
		last--
	}

	m.cells = make([][]models.Cell, last)
	for i := 0; i < last; i++ {
		row := rows[i]
		n := len(row)
		for n > 0 && row[n-1].IsAbsent() {
			n--
		}
		m.cells[i] = append([]models.Cell(nil), row[:n]...)
		if n > m.maxCol {
			m.maxCol = n
		}
	}
	return m
}

// FromValues builds a Matrix from plain Go values: nil is absent, string is
// text, and any integer or float type is a number.
func FromValues(name string, rows [][]any) *Matrix {
	cells := make([][]models.Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]models.Cell, len(row))
		for j, v := range row {
			cells[i][j] = cellOf(v)
		}
	}
	return NewMatrix(name, cells)
}

func cellOf(v any) models.Cell {
	switch x := v.(type) {
	case nil:
		return models.Absent()
	case models.Cell:
		return x
	case string:
		return models.TextCell(x)
	case int:
		return models.NumberCell(float64(x))
	case int64:
		return models.NumberCell(float64(x))
	case int32:
		return models.NumberCell(float64(x))
	case float32:
		return models.NumberCell(float64(x))
	case float64:
		return models.NumberCell(x)
	default:
		return models.Absent()
	}
}

func allAbsent(row []models.Cell) bool {
	for _, c := range row {
		if !c.IsAbsent() {
			return false
		}
	}
	return true
}

// Name returns the sheet name the matrix was built for.
func (m *Matrix) Name() string {
	return m.name
}

// ValueAt implements Grid.
func (m *Matrix) ValueAt(row, col int) models.Cell {
	if row < 1 || col < 1 || row > len(m.cells) {
		return models.Absent()
	}
	r := m.cells[row-1]
	if col > len(r) {
		return models.Absent()
	}
	return r[col-1]
}

// MaxRow implements Grid.
func (m *Matrix) MaxRow() int {
	return len(m.cells)
}

// MaxCol implements Grid.
func (m *Matrix) MaxCol() int {
	return m.maxCol
}

// Rows implements Grid.
func (m *Matrix) Rows() iter.Seq2[int, []models.Cell] {
	return func(yield func(int, []models.Cell) bool) {
		for i := range m.cells {
			if !yield(i+1, RowValues(m, i+1, 1, m.maxCol)) {
				return
			}
		}
	}
}
