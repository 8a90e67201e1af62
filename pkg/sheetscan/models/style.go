package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle indicates a style preset name that does not map to a preset.
var ErrUnknownStyle = errors.New("unknown style preset")

// StylePreset selects how a presentation layer should style a table.
type StylePreset int

const (
	// StyleStandard is the neutral preset; also selected by "calculations".
	StyleStandard StylePreset = iota
	// StyleAssumptions styles parameter blocks.
	StyleAssumptions
	// StyleInputData styles raw input tables.
	StyleInputData
	// StyleCalcAndOutput styles mixed calculation and output blocks.
	StyleCalcAndOutput
	// StyleFormulasOrRefs styles formula or reference tables.
	StyleFormulasOrRefs
	// StylePlausibility styles check tables.
	StylePlausibility
	// StyleResults styles final results; also selected by "outputs".
	StyleResults
)

var styleNames = [...]string{
	StyleStandard:       "standard",
	StyleAssumptions:    "assumptions",
	StyleInputData:      "input_data",
	StyleCalcAndOutput:  "calc_and_output",
	StyleFormulasOrRefs: "formulas_or_refs",
	StylePlausibility:   "plausibility",
	StyleResults:        "results",
}

var styleAliases = map[string]StylePreset{
	"calculations": StyleStandard,
	"outputs":      StyleResults,
}

// StylePresets returns every preset in declaration order.
func StylePresets() []StylePreset {
	out := make([]StylePreset, len(styleNames))
	for i := range styleNames {
		out[i] = StylePreset(i)
	}
	return out
}

// String returns the canonical preset name.
func (s StylePreset) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("StylePreset(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStylePreset resolves a preset name or alias, case-insensitively.
func ParseStylePreset(name string) (StylePreset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == key {
			return StylePreset(i), nil
		}
	}
	if s, ok := styleAliases[key]; ok {
		return s, nil
	}
	return StyleStandard, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStyle, name, strings.Join(styleNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (s StylePreset) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StylePreset) UnmarshalText(b []byte) error {
	p, err := ParseStylePreset(string(b))
	if err != nil {
		return err
	}
	*s = p
	return nil
}
