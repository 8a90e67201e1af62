package detect

import (
	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// maxHeaderCandidates is how many leading rows may hold the header.
const maxHeaderCandidates = 3

// HeaderOffset returns the 0-based offset of the header row within rows, the
// cells of a region restricted to its column span. Only the first three rows
// are candidates, and a candidate must have every cell present. It is the
// header if at least half its cells are text and the row below holds a
// number; the first row is also accepted on its own when it is all text.
func HeaderOffset(rows [][]models.Cell) (int, bool) {
	n := min(maxHeaderCandidates, len(rows))
	for off := 0; off < n; off++ {
		row := rows[off]
		if len(row) == 0 || countKind(row, models.KindAbsent) > 0 {
			continue
		}

		if off < len(rows)-1 && HeaderPasses(row, rows[off+1]) {
			return off, true
		}

		if off == 0 && countKind(row, models.KindText) == len(row) {
			return off, true
		}
	}
	return 0, false
}

// HeaderPasses reports whether candidate reads as the header of next: at
// least half of candidate's cells are text and next holds a number.
func HeaderPasses(candidate, next []models.Cell) bool {
	if len(candidate) == 0 {
		return false
	}
	return 2*countKind(candidate, models.KindText) >= len(candidate) &&
		countKind(next, models.KindNumber) > 0
}

// LocateHeader returns the sheet row holding region's column headers.
//
// When HeaderOffset finds nothing, a region taller than one row whose first
// row contains text defaults to its first row. Regions without any text in
// their first row report no header.
func LocateHeader(g grid.Grid, region models.Region) (int, bool) {
	rows := grid.Block(g, region.StartRow, region.StartCol, region.EndRow, region.EndCol)
	if len(rows) == 0 {
		return 0, false
	}
	if off, ok := HeaderOffset(rows); ok {
		return region.StartRow + off, true
	}
	if region.Rows() > 1 && countKind(rows[0], models.KindText) > 0 {
		return region.StartRow, true
	}
	return 0, false
}

func countKind(cells []models.Cell, kind models.CellKind) int {
	n := 0
	for _, c := range cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
