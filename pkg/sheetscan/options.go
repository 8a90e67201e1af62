// Package sheetscan extracts logical tables from loosely structured sheets.
package sheetscan

import (
	"fmt"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/detect"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/materialize"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/parser"
)

// Mode selects the region detector.
type Mode string

const (
	// ModeKeyValue detects label/value(/unit) blocks in columns A-C.
	ModeKeyValue Mode = "key_value"
	// ModeGeneric detects blank-row separated bands of any width.
	ModeGeneric Mode = "generic"
	// ModeAuto tries key-value detection and falls back to generic detection
	// when it finds nothing.
	ModeAuto Mode = "auto"
)

// ParseMode resolves a mode name. "kv" and "key-value" are accepted for
// ModeKeyValue.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "key_value", "key-value", "kv":
		return ModeKeyValue, nil
	case "generic":
		return ModeGeneric, nil
	case "auto", "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("%w: %q (must be key_value, generic, or auto)", ErrUnknownMode, s)
	}
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the detector (key_value, generic, auto).
	Mode Mode
	// MinRows is the minimum height of a generic region. Zero means the
	// default of 2.
	MinRows int
	// MinDensity drops generic regions whose fraction of present cells is
	// below it. Zero disables the filter.
	MinDensity float64
	// HasHeader forces header interpretation of generic regions when header
	// auto-detection is off. If nil, defaults to true.
	HasHeader *bool
	// AutoDetectHeader enables the header heuristic for generic regions.
	// If nil, defaults to true.
	AutoDetectHeader *bool
	// Style is the presentation preset attached to every table.
	Style models.StylePreset
	// Sheets restricts extraction to the named sheets. Empty means all.
	Sheets []string
	// UsePrintArea limits each sheet to its first print area, if it has one.
	UsePrintArea bool
	// RegionsOnly skips materialization and returns regions only.
	RegionsOnly bool
	// CSV configures loading of .csv and .tsv inputs.
	CSV parser.CSVOptions
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode:    ModeAuto,
		MinRows: detect.DefaultMinRows,
		Style:   models.StyleAssumptions,
	}
}

// EffectiveMinRows returns MinRows, or the default when it is not positive.
func (o Options) EffectiveMinRows() int {
	if o.MinRows > 0 {
		return o.MinRows
	}
	return detect.DefaultMinRows
}

// ShouldAutoDetectHeader returns whether to run the header heuristic.
func (o Options) ShouldAutoDetectHeader() bool {
	if o.AutoDetectHeader != nil {
		return *o.AutoDetectHeader
	}
	return true
}

// ShouldUseHeader returns whether the first row is a header when
// auto-detection is off.
func (o Options) ShouldUseHeader() bool {
	if o.HasHeader != nil {
		return *o.HasHeader
	}
	return true
}

// MaterializeOptions returns the header options for generic tables.
func (o Options) MaterializeOptions() materialize.Options {
	return materialize.Options{
		AutoDetectHeader: o.ShouldAutoDetectHeader(),
		HasHeader:        o.ShouldUseHeader(),
	}
}

// wantsSheet reports whether name passes the Sheets filter.
func (o Options) wantsSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == name {
			return true
		}
	}
	return false
}
