// Package models defines data structures for sheet table extraction.
package models

import (
	"encoding/json"
	"strconv"
)

// CellKind classifies a cell value.
type CellKind int

const (
	// KindAbsent marks a cell with no stored value.
	KindAbsent CellKind = iota
	// KindText marks a text value.
	KindText
	// KindNumber marks a numeric value.
	KindNumber
)

// String returns the string representation of the cell kind.
func (k CellKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Cell is a single grid value. The zero value is an absent cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Absent returns a cell with no value.
func Absent() Cell {
	return Cell{}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f}
}

// IsAbsent reports whether the cell has no value.
func (c Cell) IsAbsent() bool { return c.Kind == KindAbsent }

// IsText reports whether the cell holds text.
func (c Cell) IsText() bool { return c.Kind == KindText }

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.Kind == KindNumber }

// String returns the display form of the cell. Absent cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes absent cells as null, numbers as JSON numbers and text
// as JSON strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindText:
		return json.Marshal(c.Text)
	case KindNumber:
		return json.Marshal(c.Number)
	default:
		return []byte("null"), nil
	}
}
