package tftspi

import "testing"

func TestParseModel(t *testing.T) {
	for m := ILI9325; m < lastModel; m++ {
		got, err := ParseModel(m.String())
		if err != nil {
			t.Errorf("ParseModel(%q): %v", m, err)
			continue
		}
		if got != m {
			t.Errorf("ParseModel(%q) = %s", m, got)
		}
	}
	for _, s := range []string{"", "auto", "Auto"} {
		if got, err := ParseModel(s); err != nil || got != Auto {
			t.Errorf("ParseModel(%q) = %s, %v, want Auto", s, got, err)
		}
	}
	if _, err := ParseModel("nope"); err == nil {
		t.Error("ParseModel(\"nope\") should fail")
	}
}

func TestModelString(t *testing.T) {
	tests := []struct {
		m    Model
		want string
	}{
		{Auto, "Auto"},
		{ILI9341, "ILI9341"},
		{ILI9488RGB666, "ILI9488RGB666"},
		{Model(99), "Model(99)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Model(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
}

func TestLookupChip(t *testing.T) {
	tests := []struct {
		chip ChipID
		want Model
		ok   bool
	}{
		{0x9341, ILI9341, true},
		{0x7735, ST7735S, true},
		{0x9488, ILI9488, true},
		{0x9090, HX8357D, true},
		{0x1234, Auto, false},
	}
	for _, tt := range tests {
		m, _, ok := lookupChip(tt.chip)
		if m != tt.want || ok != tt.ok {
			t.Errorf("lookupChip(%s) = %s, %v, want %s, %v", tt.chip, m, ok, tt.want, tt.ok)
		}
	}
}

func TestModelSizes(t *testing.T) {
	for m := ILI9325; m < lastModel; m++ {
		i, ok := lookup(m)
		if !ok || i.w <= 0 || i.h <= 0 {
			t.Errorf("%s has no size", m)
		}
	}
	if _, ok := lookup(Auto); ok {
		t.Error("Auto has a registry entry")
	}
}

func TestChipIDString(t *testing.T) {
	if got := ChipID(0x9341).String(); got != "0x9341" {
		t.Errorf("String() = %q, want 0x9341", got)
	}
}
