package detect

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/logging"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// DefaultMinRows is the minimum region height accepted by Generic.
const DefaultMinRows = 2

// run is a band of populated rows with no fully blank row inside.
type run struct {
	startRow, endRow int
	startCol, endCol int
}

// Generic detects tables as bands of populated rows separated by at least one
// fully blank row. Each band's column span is the union of the populated
// columns inside it. Bands shorter than minRows are dropped; minRows below 1
// is treated as 1.
func Generic(g grid.Grid, minRows int) []models.Region {
	if minRows < 1 {
		minRows = 1
	}

	var (
		regions []models.Region
		cur     *run
	)

	emit := func(r *run) {
		if r.endRow-r.startRow+1 < minRows {
			logging.Logger().Debug("generic scan: dropping short band",
				slog.Int("start_row", r.startRow),
				slog.Int("end_row", r.endRow),
				slog.Int("min_rows", minRows))
			return
		}
		regions = append(regions, regionFromRun(g, r, len(regions)+1))
	}

	for row, cells := range g.Rows() {
		first, last := populatedSpan(cells)
		if first == 0 {
			continue
		}
		switch {
		case cur == nil:
			cur = &run{startRow: row, endRow: row, startCol: first, endCol: last}
		case row-cur.endRow > 1:
			emit(cur)
			cur = &run{startRow: row, endRow: row, startCol: first, endCol: last}
		default:
			cur.endRow = row
			cur.startCol = min(cur.startCol, first)
			cur.endCol = max(cur.endCol, last)
		}
	}
	if cur != nil {
		emit(cur)
	}

	return regions
}

// populatedSpan returns the first and last 1-based populated columns of a
// row, or (0, 0) if the row is blank.
func populatedSpan(cells []models.Cell) (first, last int) {
	for i, c := range cells {
		if c.IsAbsent() {
			continue
		}
		if first == 0 {
			first = i + 1
		}
		last = i + 1
	}
	return first, last
}

func regionFromRun(g grid.Grid, r *run, n int) models.Region {
	region := models.Region{
		StartRow: r.startRow,
		EndRow:   r.endRow,
		StartCol: r.startCol,
		EndCol:   r.endCol,
	}
	if corner := g.ValueAt(r.startRow, r.startCol); !corner.IsAbsent() {
		region.Name = strings.TrimSpace(corner.String())
	}
	if region.Name == "" {
		region.Name = models.DefaultRegionName(n)
	}
	return region
}
