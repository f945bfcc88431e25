package tftspi

import "fmt"

// Model identifies a display module.
//
// Modules built around the same controller may differ in glass size, so
// the model, not the chip, determines the native dimensions.
type Model uint8

// Supported modules.
const (
	// Auto identifies the controller during Init. Opts.W and Opts.H must be set
	// unless the identified chip has a single known size.
	Auto Model = iota
	ILI9325
	ILI9328
	ILI9341
	HX8357D
	HX8347G
	HX8347I
	ILI9486
	ST7735S
	SSD1283A
	SH1106
	ST7735S128
	ILI9488
	// ILI9488RGB666 drives the ILI9488 with 18-bit pixels, for modules
	// whose SPI interface does not accept RGB565.
	ILI9488RGB666
	ILI9225
	ST7796S
	lastModel
)

// ChipID is the signature a controller reports in its ID registers.
type ChipID uint16

func (c ChipID) String() string {
	return fmt.Sprintf("%#04x", uint16(c))
}

type info struct {
	name string
	chip ChipID
	w, h int
}

var models = [lastModel]info{
	ILI9325:       {"ILI9325", 0x9325, 240, 320},
	ILI9328:       {"ILI9328", 0x9328, 240, 320},
	ILI9341:       {"ILI9341", 0x9341, 240, 320},
	HX8357D:       {"HX8357D", 0x9090, 320, 480},
	HX8347G:       {"HX8347G", 0x7575, 240, 320},
	HX8347I:       {"HX8347I", 0x9595, 240, 320},
	ILI9486:       {"ILI9486", 0x9486, 320, 480},
	ST7735S:       {"ST7735S", 0x7735, 128, 160},
	SSD1283A:      {"SSD1283A", 0x1283, 130, 130},
	SH1106:        {"SH1106", 0x1106, 128, 64},
	ST7735S128:    {"ST7735S128", 0x7735, 128, 128},
	ILI9488:       {"ILI9488", 0x9488, 320, 480},
	ILI9488RGB666: {"ILI9488RGB666", 0x9488, 320, 480},
	ILI9225:       {"ILI9225", 0x9225, 176, 220},
	ST7796S:       {"ST7796S", 0x7796, 320, 480},
}

func (m Model) String() string {
	if i, ok := lookup(m); ok {
		return i.name
	}
	if m == Auto {
		return "Auto"
	}
	return fmt.Sprintf("Model(%d)", uint8(m))
}

// lookup returns the registry entry for m.
func lookup(m Model) (info, bool) {
	if m == Auto || m >= lastModel {
		return info{}, false
	}
	return models[m], true
}

// lookupChip returns the first module built around chip.
func lookupChip(chip ChipID) (Model, info, bool) {
	for m := ILI9325; m < lastModel; m++ {
		if models[m].chip == chip {
			return m, models[m], true
		}
	}
	return Auto, info{}, false
}

// ParseModel returns the model with the given name, as printed by
// Model.String.
func ParseModel(s string) (Model, error) {
	if s == "" || s == "Auto" || s == "auto" {
		return Auto, nil
	}
	for m := ILI9325; m < lastModel; m++ {
		if models[m].name == s {
			return m, nil
		}
	}
	return Auto, fmt.Errorf("tftspi: unknown model %q", s)
}
