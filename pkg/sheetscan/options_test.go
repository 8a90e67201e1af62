package sheetscan

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"key_value", ModeKeyValue, false},
		{"kv", ModeKeyValue, false},
		{"key-value", ModeKeyValue, false},
		{"generic", ModeGeneric, false},
		{"auto", ModeAuto, false},
		{"", ModeAuto, false},
		{"pivot", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, expected ErrUnknownMode", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseMode(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if o.EffectiveMinRows() != 2 {
		t.Errorf("EffectiveMinRows = %d, expected 2", o.EffectiveMinRows())
	}
	if !o.ShouldAutoDetectHeader() || !o.ShouldUseHeader() {
		t.Error("header options should default to true")
	}

	no := false
	o.AutoDetectHeader = &no
	o.HasHeader = &no
	o.MinRows = 4
	m := o.MaterializeOptions()
	if m.AutoDetectHeader || m.HasHeader {
		t.Errorf("MaterializeOptions = %+v, expected overrides", m)
	}
	if o.EffectiveMinRows() != 4 {
		t.Errorf("EffectiveMinRows = %d, expected 4", o.EffectiveMinRows())
	}
}
