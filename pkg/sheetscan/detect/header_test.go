package detect

import (
	"testing"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

func TestHeaderOffset(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]any
		wantOff int
		wantOK  bool
	}{
		{"text then numbers", [][]any{{"Strike", "Spot", "Vol"}, {50, 48, 0.4}, {52, 48, 0.42}}, 0, true},
		{"numbers only", [][]any{{48, 0.4}, {52, 0.42}}, 0, false},
		{"single all-text row", [][]any{{"a", "b"}}, 0, true},
		{"half text is enough", [][]any{{"Strike", 2024}, {50, 48}}, 0, true},
		{"below half text", [][]any{{"Strike", 1, 2}, {50, 48, 1}}, 0, false},
		{"incomplete first row skipped", [][]any{{"Options", nil}, {"Strike", "Price"}, {50, 5.2}}, 1, true},
		{"header at third row", [][]any{{"x", nil}, {nil, "y"}, {"K", "P"}, {1, 2}}, 2, true},
		{"fourth row never considered", [][]any{{nil, 1}, {nil, 2}, {nil, 3}, {"K", "P"}, {1, 2}}, 0, false},
		{"all text rows", [][]any{{"a", "b"}, {"c", "d"}}, 0, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.FromValues("Sheet1", tt.rows)
			width := 0
			for _, r := range tt.rows {
				width = max(width, len(r))
			}
			rows := grid.Block(g, 1, 1, len(tt.rows), width)
			off, ok := HeaderOffset(rows)
			if ok != tt.wantOK || (ok && off != tt.wantOff) {
				t.Errorf("HeaderOffset() = (%d, %v), expected (%d, %v)", off, ok, tt.wantOff, tt.wantOK)
			}
		})
	}
}

func TestLocateHeader(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]any
		region  models.Region
		wantRow int
		wantOK  bool
	}{
		{
			name:    "header at region start",
			rows:    [][]any{{nil}, {nil}, {nil, "Strike", "Spot", "Vol"}, {nil, 50, 48, 0.4}, {nil, 52, 48, 0.42}},
			region:  models.Region{StartRow: 3, EndRow: 5, StartCol: 2, EndCol: 4},
			wantRow: 3,
			wantOK:  true,
		},
		{
			name:   "numeric only region has no header",
			rows:   [][]any{{48, 0.4}, {52, 0.42}},
			region: models.Region{StartRow: 1, EndRow: 2, StartCol: 1, EndCol: 2},
		},
		{
			name:    "default to first row when it holds text",
			rows:    [][]any{{"Name", nil}, {"BASF", "DE"}, {"Bayer", "DE"}},
			region:  models.Region{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 2},
			wantRow: 1,
			wantOK:  true,
		},
		{
			name:    "mixed text first row falls back to start row",
			rows:    [][]any{{"Total", 5, nil}, {7, nil, 1}},
			region:  models.Region{StartRow: 1, EndRow: 2, StartCol: 1, EndCol: 3},
			wantRow: 1,
			wantOK:  true,
		},
		{
			name:   "single row mixed",
			rows:   [][]any{{"Total", 5}},
			region: models.Region{StartRow: 1, EndRow: 1, StartCol: 1, EndCol: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := LocateHeader(grid.FromValues("Sheet1", tt.rows), tt.region)
			if ok != tt.wantOK || (ok && row != tt.wantRow) {
				t.Errorf("LocateHeader() = (%d, %v), expected (%d, %v)", row, ok, tt.wantRow, tt.wantOK)
			}
		})
	}
}

func TestHeaderPasses(t *testing.T) {
	text := models.TextCell
	num := models.NumberCell
	tests := []struct {
		name      string
		candidate []models.Cell
		next      []models.Cell
		expected  bool
	}{
		{"text over numbers", []models.Cell{text("Strike"), text("Vol")}, []models.Cell{num(50), num(0.4)}, true},
		{"absent header cell", []models.Cell{text("Strike"), models.Absent()}, []models.Cell{num(50), num(48)}, true},
		{"text over text", []models.Cell{text("Name"), text("Country")}, []models.Cell{text("BASF"), text("DE")}, false},
		{"minority text", []models.Cell{text("Total"), num(1), num(2)}, []models.Cell{num(3), num(4), num(5)}, false},
		{"empty candidate", nil, []models.Cell{num(1)}, false},
	}

	for _, tt := range tests {
		if got := HeaderPasses(tt.candidate, tt.next); got != tt.expected {
			t.Errorf("%s: HeaderPasses() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
