// Package materialize reads detected regions into tables.
package materialize

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/detect"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/logging"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// ErrOutOfRange indicates a region that reaches past the sheet's extent.
var ErrOutOfRange = errors.New("region out of range")

// Column names used for key-value tables.
const (
	KeyColumn   = "Parameter"
	ValueColumn = "Value"
	UnitColumn  = "Unit"
)

// Options controls header handling for generic tables.
type Options struct {
	// AutoDetectHeader enables the header heuristic. When set, HasHeader is
	// ignored.
	AutoDetectHeader bool
	// HasHeader forces the first region row to be read as header.
	HasHeader bool
}

// DefaultOptions returns header auto-detection enabled.
func DefaultOptions() Options {
	return Options{
		AutoDetectHeader: true,
		HasHeader:        true,
	}
}

// PositionalColumn returns the name of the i-th (0-based) positional column.
func PositionalColumn(i int) string {
	return fmt.Sprintf("Col_%d", i+1)
}

// checkBounds validates region and its rows against g. Columns are only
// checked when strictCols is set; key-value regions have a fixed width that
// may reach past the populated columns.
func checkBounds(g grid.Grid, region models.Region, strictCols bool) error {
	if err := region.Validate(); err != nil {
		return err
	}
	if region.EndRow > g.MaxRow() || region.StartCol > g.MaxCol() || (strictCols && region.EndCol > g.MaxCol()) {
		return fmt.Errorf("%w: %s exceeds sheet extent of %d rows x %d cols",
			ErrOutOfRange, region, g.MaxRow(), g.MaxCol())
	}
	return nil
}

// KeyValue reads a key-value region. Column A becomes each row's Key and the
// remaining columns are named Value and Unit. Rows without a label are
// dropped; repeated labels are kept as separate rows.
func KeyValue(g grid.Grid, region models.Region) (*models.Table, error) {
	if err := checkBounds(g, region, false); err != nil {
		return nil, err
	}

	t := &models.Table{
		Name:      region.Name,
		Kind:      models.TableKeyValue,
		Region:    region,
		KeyColumn: KeyColumn,
		Columns:   keyValueColumns(region.Cols() - 1),
		Rows:      []models.Row{},
	}

	for _, cells := range grid.Block(g, region.StartRow, region.StartCol, region.EndRow, region.EndCol) {
		if cells[0].IsAbsent() {
			continue
		}
		t.Rows = append(t.Rows, models.Row{
			Key:   strings.TrimSpace(cells[0].String()),
			Cells: cells[1:],
		})
	}
	return t, nil
}

func keyValueColumns(n int) []string {
	cols := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			cols = append(cols, ValueColumn)
		case 1:
			cols = append(cols, UnitColumn)
		default:
			cols = append(cols, PositionalColumn(i))
		}
	}
	return cols
}

// Generic reads a tabular region. With AutoDetectHeader the first row is the
// header when detect.HeaderPasses accepts it against the second row; absent
// header cells do not disqualify it. Otherwise every row is data and columns
// are positional.
func Generic(g grid.Grid, region models.Region, opts Options) (*models.Table, error) {
	if err := checkBounds(g, region, true); err != nil {
		return nil, err
	}

	t := &models.Table{
		Name:   region.Name,
		Kind:   models.TableGeneric,
		Region: region,
		Rows:   []models.Row{},
	}

	rows := grid.Block(g, region.StartRow, region.StartCol, region.EndRow, region.EndCol)
	if blank(rows) {
		t.Columns = []string{}
		return t, nil
	}

	var useHeader bool
	if len(rows) > 1 {
		if opts.AutoDetectHeader {
			useHeader = detect.HeaderPasses(rows[0], rows[1])
		} else {
			useHeader = opts.HasHeader
		}
	}

	data := rows
	if useHeader {
		headerRow := region.StartRow
		t.HeaderRow = &headerRow
		t.Columns = headerNames(rows[0])
		data = rows[1:]
	} else {
		t.Columns = make([]string, region.Cols())
		for i := range t.Columns {
			t.Columns[i] = PositionalColumn(i)
		}
	}

	for _, cells := range data {
		t.Rows = append(t.Rows, models.Row{Cells: cells})
	}

	logging.Logger().Debug("materialized region",
		slog.String("name", region.Name),
		slog.Bool("header", t.HasHeader()),
		slog.Int("rows", len(t.Rows)))

	return t, nil
}

// headerNames turns header cells into column names. Absent or blank cells get
// positional names.
func headerNames(cells []models.Cell) []string {
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = strings.TrimSpace(c.String())
		if names[i] == "" {
			names[i] = PositionalColumn(i)
		}
	}
	return names
}

func blank(rows [][]models.Cell) bool {
	for _, row := range rows {
		for _, c := range row {
			if !c.IsAbsent() {
				return false
			}
		}
	}
	return true
}

// KeyValueRows reads rows startRow..endRow across every column of g as a
// key-value table keyed by column A. A startRow below 1 means the first row
// and an endRow below 1 means the last. Fully blank rows and rows without a
// label are skipped.
func KeyValueRows(g grid.Grid, name string, startRow, endRow int) (*models.Table, error) {
	if startRow < 1 {
		startRow = 1
	}
	if endRow < 1 {
		endRow = g.MaxRow()
	}

	t := &models.Table{
		Name:      name,
		Kind:      models.TableKeyValue,
		KeyColumn: KeyColumn,
		Columns:   []string{},
		Rows:      []models.Row{},
	}
	if g.MaxRow() == 0 {
		return t, nil
	}

	region := models.Region{StartRow: startRow, EndRow: endRow, StartCol: 1, EndCol: g.MaxCol(), Name: name}
	if err := checkBounds(g, region, true); err != nil {
		return nil, err
	}
	t.Region = region
	for i := 1; i < region.Cols(); i++ {
		t.Columns = append(t.Columns, PositionalColumn(i-1))
	}

	for _, cells := range grid.Block(g, region.StartRow, region.StartCol, region.EndRow, region.EndCol) {
		if cells[0].IsAbsent() {
			continue
		}
		t.Rows = append(t.Rows, models.Row{
			Key:   strings.TrimSpace(cells[0].String()),
			Cells: cells[1:],
		})
	}
	return t, nil
}
