package tftspi

import (
	"image"
)

// MADCTL bits shared by the DCS controllers.
const (
	madMY  = 0x80
	madMX  = 0x40
	madMV  = 0x20
	madML  = 0x10
	madBGR = 0x08
)

// descriptor holds the opcodes and flags of one controller family.
type descriptor struct {
	xc, yc   uint16 // column and row address set
	cc, rc   uint16 // memory write and read
	sc1, sc2 uint16 // scroll definition and start
	md       uint16 // orientation
	// vl is the inversion polarity: the glass shows normal colors when the
	// inversion bit equals vl.
	vl bool
	// read24 makes memory reads return 3 bytes per pixel.
	read24 bool

	table8  []byte
	table16 []uint16
}

// variant encodes the wire protocol of one controller family.
//
// Methods are called with chip select asserted and never select or
// deselect themselves.
type variant interface {
	desc() *descriptor
	// burst sends an opcode followed by its parameters.
	burst(w *wire, cmd byte, data []byte)
	encodeWindow(w *wire, g *geometry, r window)
	encodeOrientation(w *wire, g *geometry)
	encodeScroll(w *wire, g *geometry, s scroll)
	encodeInvert(w *wire, g *geometry, on bool)
	encodeDisplay(w *wire, on bool)
	// memoryWrite arms the controller for a pixel stream.
	memoryWrite(w *wire)
	// writePixel sends a single pixel after the window was set.
	writePixel(w *wire, c uint16)
	// afterFill restores the window state other operations rely on.
	afterFill(w *wire, g *geometry)
	// readPixels fills out from the memory read stream.
	readPixels(w *wire, g *geometry, out []uint16)
	nativeColorWidth() int
	supportsWindowing() bool
}

// geometry is the native size and current orientation.
type geometry struct {
	w, h int
	rot  Rotation
	// Panel offset inside the controller's RAM, for glass smaller than the
	// controller grid.
	xoff, yoff int
}

// size returns the logical dimensions.
func (g *geometry) size() (w, h int) {
	if g.rot&1 != 0 {
		return g.h, g.w
	}
	return g.w, g.h
}

// full is the window covering the logical surface.
func (g *geometry) full() window {
	w, h := g.size()
	return window{0, 0, w - 1, h - 1}
}

// window is an inclusive rectangle.
type window struct {
	x1, y1, x2, y2 int
}

// transformRect maps a logical window to native coordinates for the
// controllers that ignore the orientation register when addressing, and
// returns where the write cursor must start so that pixels land in
// raster order.
func transformRect(r window, rot Rotation, w, h int) (window, image.Point) {
	switch rot & 3 {
	case 1:
		n := window{x1: w - 1 - r.y2, y1: r.x1, x2: w - 1 - r.y1, y2: r.x2}
		return n, image.Pt(n.x2, n.y1)
	case 2:
		n := window{x1: w - 1 - r.x2, y1: h - 1 - r.y2, x2: w - 1 - r.x1, y2: h - 1 - r.y1}
		return n, image.Pt(n.x2, n.y2)
	case 3:
		n := window{x1: r.y1, y1: h - 1 - r.x2, x2: r.y2, y2: h - 1 - r.x1}
		return n, image.Pt(n.x1, n.y2)
	default:
		return r, image.Pt(r.x1, r.y1)
	}
}

// scroll holds the vertical scroll registers.
type scroll struct {
	top, lines int
	offset     int
	bfa        int // bottom fixed area
	vsp        int // start position
}

// newScroll derives the scroll registers for a panel h lines tall. Offsets
// outside (-lines, lines) are treated as 0.
func newScroll(h, top, lines, offset int) scroll {
	if offset <= -lines || offset >= lines {
		offset = 0
	}
	vsp := top + offset
	if offset < 0 {
		vsp += lines
	}
	return scroll{
		top:    top,
		lines:  lines,
		offset: offset,
		bfa:    h - top - lines,
		vsp:    vsp,
	}
}

func be16(v ...int) []byte {
	b := make([]byte, 0, 2*len(v))
	for _, x := range v {
		b = append(b, byte(x>>8), byte(x))
	}
	return b
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// Orientation register values for rotations 0 to 3.
var (
	dcsGeneric = [4]byte{madMX | madBGR, madMV | madBGR, madMY | madML | madBGR, madMX | madMY | madML | madMV | madBGR}
	dcsILI9486 = [4]byte{madBGR, madMX | madMV | madML | madBGR, madMY | madMX | madBGR, madMY | madMV | madBGR}
	dcsILI9488 = [4]byte{madMX | madMY | madBGR, madMV | madMY | madBGR, madML | madBGR, madMX | madML | madMV | madBGR}
	dcsST7735  = [4]byte{0xD0, 0xA0, 0x00, 0x60}
)

func dcsDescriptor(vl, read24 bool, table []byte) descriptor {
	return descriptor{
		xc:     0x2A,
		yc:     0x2B,
		cc:     0x2C,
		rc:     0x2E,
		sc1:    0x33,
		sc2:    0x37,
		md:     0x36,
		vl:     vl,
		read24: read24,
		table8: table,
	}
}

// newVariant selects the family for an identified or configured chip. h is the
// native height, which tells the two ST7735S glass sizes apart.
func newVariant(chip ChipID, m Model, h int) variant {
	switch chip {
	case 0x9325, 0x9328:
		return &ili932x{descriptor{
			cc:      0x22,
			rc:      0x22,
			sc1:     0x61,
			sc2:     0x6A,
			md:      0x03,
			vl:      true,
			table16: ili932xInit,
		}}
	case 0x9341:
		return &dcs{descriptor: dcsDescriptor(false, true, ili9341Init), orient: dcsGeneric}
	case 0x9090:
		return &dcs{descriptor: dcsDescriptor(true, true, hx8357dInit), orient: dcsGeneric}
	case 0x7575, 0x9595:
		return &hx8347{descriptor{
			cc:     0x22,
			rc:     0x22,
			sc1:    0x0E,
			sc2:    0x14,
			md:     0x16,
			vl:     true,
			read24: true,
			table8: hx8347gInit,
		}}
	case 0x9486:
		return &dcs{descriptor: dcsDescriptor(false, false, ili9486Init), orient: dcsILI9486}
	case 0x9488:
		wide := m == ILI9488RGB666
		format := byte(0x55)
		if wide {
			format = 0x66
		}
		table := append([]byte{0x3A, 1, format}, ili9488Init...)
		return &dcs{descriptor: dcsDescriptor(false, true, table), orient: dcsILI9488, wide: wide}
	case 0x9225:
		return &ili9225{descriptor{
			xc:      0x20,
			yc:      0x21,
			cc:      0x22,
			rc:      0x22,
			sc1:     0x31,
			sc2:     0x33,
			md:      0x03,
			vl:      true,
			table16: ili9225Init,
		}}
	case 0x7735:
		d := dcs{descriptor: dcsDescriptor(false, false, st7735sInit), orient: dcsST7735}
		if h == 128 {
			return &st7735r128{d}
		}
		return &d
	case 0x1283:
		return &ssd1283a{descriptor{
			xc:      0x45,
			yc:      0x44,
			cc:      0x22,
			rc:      0x2E,
			sc1:     0x41,
			sc2:     0x42,
			md:      0x03,
			vl:      true,
			table16: ssd1283aInit,
		}}
	case 0x7796:
		return &dcs{descriptor: dcsDescriptor(false, true, st7796sInit), orient: dcsGeneric}
	case 0x1106:
		return &sh1106{descriptor{xc: 0x10, yc: 0xB0, vl: true, table8: sh1106Init}}
	default:
		return &inert{}
	}
}

// inert stands in for controllers the registry does not know. Addressing,
// orientation and scrolling are no-ops; pixels are written as raw data.
type inert struct {
	descriptor
}

func (v *inert) desc() *descriptor { return &v.descriptor }

func (v *inert) burst(w *wire, cmd byte, data []byte) {
	w.cmd16(uint16(cmd))
	w.data(data)
}

func (v *inert) encodeWindow(*wire, *geometry, window) {}
func (v *inert) encodeOrientation(*wire, *geometry)    {}
func (v *inert) encodeScroll(*wire, *geometry, scroll) {}
func (v *inert) encodeInvert(*wire, *geometry, bool)   {}
func (v *inert) encodeDisplay(*wire, bool)             {}
func (v *inert) memoryWrite(*wire)                     {}
func (v *inert) afterFill(*wire, *geometry)            {}
func (v *inert) readPixels(*wire, *geometry, []uint16) {}
func (v *inert) writePixel(w *wire, c uint16)          { w.data16(c) }
func (v *inert) nativeColorWidth() int                 { return 16 }
func (v *inert) supportsWindowing() bool               { return false }
