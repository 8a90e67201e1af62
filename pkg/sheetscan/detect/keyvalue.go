package detect

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/logging"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// Key-value regions always span label, value and unit columns.
const (
	keyValueStartCol = 1
	keyValueEndCol   = 3
)

type rowClass int

const (
	rowBlank rowClass = iota
	rowTitle
	rowData
	rowAsymmetric // column A absent, column B present
)

func (c rowClass) String() string {
	switch c {
	case rowBlank:
		return "blank"
	case rowTitle:
		return "title"
	case rowData:
		return "data"
	default:
		return "asymmetric"
	}
}

func classifyRow(a, b models.Cell) rowClass {
	switch {
	case !a.IsAbsent() && b.IsAbsent():
		return rowTitle
	case !a.IsAbsent() && !b.IsAbsent():
		return rowData
	case a.IsAbsent() && b.IsAbsent():
		return rowBlank
	default:
		return rowAsymmetric
	}
}

type kvState int

const (
	stateIdle kvState = iota
	stateTitleOpen
	stateDataOpen
)

// kvScan is the transient state of one key-value pass. The title survives
// blank rows and is only replaced by the next title row.
type kvScan struct {
	state    kvState
	hasTitle bool
	title    string
	titleRow int
	start    int
	end      int
	regions  []models.Region
}

// KeyValue detects key-value tables: column A holds labels, column B values
// and column C an optional unit. A row with A present and B absent is a title
// that names the following block; a row with both absent closes the open
// block. Rows with only column B present are ignored in every state.
func KeyValue(g grid.Grid) []models.Region {
	s := &kvScan{}
	log := logging.Logger()

	for row := 1; row <= g.MaxRow(); row++ {
		a := g.ValueAt(row, 1)
		b := g.ValueAt(row, 2)

		switch cls := classifyRow(a, b); cls {
		case rowTitle:
			s.closeData()
			s.hasTitle = true
			s.title = strings.TrimSpace(a.String())
			s.titleRow = row
			s.state = stateTitleOpen
		case rowData:
			if s.state != stateDataOpen {
				s.start = row
				s.state = stateDataOpen
			}
			s.end = row
		case rowBlank:
			s.closeData()
		case rowAsymmetric:
			log.Debug("key-value scan: skipping asymmetric row", slog.Int("row", row))
		}
	}
	s.closeData()

	return s.regions
}

// closeData emits the open data span, if any, and falls back to the title
// state when a title is still current.
func (s *kvScan) closeData() {
	if s.state != stateDataOpen {
		return
	}

	region := models.Region{
		StartRow: s.start,
		EndRow:   s.end,
		StartCol: keyValueStartCol,
		EndCol:   keyValueEndCol,
		Name:     s.title,
	}
	if region.Name == "" {
		region.Name = models.DefaultRegionName(len(s.regions) + 1)
	}
	if s.hasTitle {
		titleRow := s.titleRow
		region.TitleRow = &titleRow
	}
	s.regions = append(s.regions, region)

	logging.Logger().Debug("key-value scan: region",
		slog.String("name", region.Name),
		slog.Int("start_row", region.StartRow),
		slog.Int("end_row", region.EndRow))

	if s.hasTitle {
		s.state = stateTitleOpen
	} else {
		s.state = stateIdle
	}
}
