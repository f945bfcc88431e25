package tftspi

// dcs drives the MIPI DCS controllers: ILI9341, HX8357D, ILI9486, ILI9488,
// ST7735S and ST7796S. Windows are two 4-byte bursts and orientation is a
// single MADCTL byte.
type dcs struct {
	descriptor
	orient [4]byte
	// wide selects 18-bit pixels on the wire.
	wide bool
}

func (v *dcs) desc() *descriptor { return &v.descriptor }

func (v *dcs) burst(w *wire, cmd byte, data []byte) {
	w.cmd16(uint16(cmd))
	w.data(data)
}

func (v *dcs) encodeWindow(w *wire, g *geometry, r window) {
	v.burst(w, byte(v.xc), be16(r.x1, r.x2))
	v.burst(w, byte(v.yc), be16(r.y1, r.y2))
}

func (v *dcs) encodeOrientation(w *wire, g *geometry) {
	w.reg8(byte(v.md), v.orient[g.rot&3])
}

func (v *dcs) encodeScroll(w *wire, g *geometry, s scroll) {
	v.burst(w, byte(v.sc1), be16(s.top, s.lines, s.bfa))
	v.burst(w, byte(v.sc2), be16(s.vsp))
	if s.offset == 0 {
		// Normal display mode on: leave partial and scroll modes.
		v.burst(w, 0x13, nil)
	}
}

func (v *dcs) encodeInvert(w *wire, g *geometry, on bool) {
	w.cmd8(0x20 | byte(b2u(v.vl != on)))
}

func (v *dcs) encodeDisplay(w *wire, on bool) {
	if on {
		w.cmd8(0x29)
	} else {
		w.cmd8(0x28)
	}
}

func (v *dcs) memoryWrite(w *wire) {
	w.cmd8(byte(v.cc))
}

func (v *dcs) writePixel(w *wire, c uint16) {
	if v.wide {
		w.cmd8(byte(v.cc))
		w.data(appendPixel(nil, c, true))
		return
	}
	w.reg16(v.cc, c)
}

func (v *dcs) afterFill(*wire, *geometry) {}

func (v *dcs) readPixels(w *wire, g *geometry, out []uint16) {
	readAfterDummy(w, v.read24, out)
}

func (v *dcs) nativeColorWidth() int {
	if v.wide {
		return 18
	}
	return 16
}

func (v *dcs) supportsWindowing() bool { return true }

// st7735r128 is the ST7735S on 128x128 glass, which sits at an offset
// inside the controller's 132x162 RAM that depends on the orientation.
type st7735r128 struct {
	dcs
}

var st7735r128Orient = [4]struct {
	madctl     byte
	xoff, yoff int
}{
	{0xD8, 2, 3},
	{0xA8, 3, 2},
	{0x08, 2, 1},
	{0x68, 1, 2},
}

func (v *st7735r128) encodeWindow(w *wire, g *geometry, r window) {
	v.burst(w, byte(v.xc), be16(r.x1+g.xoff, r.x2+g.xoff))
	v.burst(w, byte(v.yc), be16(r.y1+g.yoff, r.y2+g.yoff))
}

func (v *st7735r128) encodeOrientation(w *wire, g *geometry) {
	o := st7735r128Orient[g.rot&3]
	g.xoff, g.yoff = o.xoff, o.yoff
	w.reg8(byte(v.md), o.madctl)
}

func (v *st7735r128) encodeScroll(w *wire, g *geometry, s scroll) {
	s.bfa += 4
	v.dcs.encodeScroll(w, g, s)
}

// hx8347 drives the HX8347G and HX8347I. Every register is 8 bits wide and
// multi-byte parameters go to consecutive registers, so a burst re-issues
// the incremented register index before each byte.
type hx8347 struct {
	descriptor
}

func (v *hx8347) desc() *descriptor { return &v.descriptor }

func (v *hx8347) burst(w *wire, cmd byte, data []byte) {
	w.cmd16(uint16(cmd))
	for i, b := range data {
		if i > 0 {
			w.cmd16(uint16(cmd) + uint16(i))
		}
		w.data8(b)
	}
}

func (v *hx8347) encodeWindow(w *wire, g *geometry, r window) {
	w.reg8(0x02, byte(r.x1>>8))
	w.reg8(0x03, byte(r.x1))
	w.reg8(0x06, byte(r.y1>>8))
	w.reg8(0x07, byte(r.y1))
	w.reg8(0x04, byte(r.x2>>8))
	w.reg8(0x05, byte(r.x2))
	w.reg8(0x08, byte(r.y2>>8))
	w.reg8(0x09, byte(r.y2))
}

func (v *hx8347) encodeOrientation(w *wire, g *geometry) {
	w.reg8(byte(v.md), dcsGeneric[g.rot&3])
}

func (v *hx8347) encodeScroll(w *wire, g *geometry, s scroll) {
	v.burst(w, byte(v.sc1), be16(s.top, s.lines, s.bfa))
	v.burst(w, byte(v.sc2), be16(s.vsp))
	var mode byte
	if s.offset != 0 {
		mode = 0x08
	}
	v.burst(w, 0x01, []byte{mode})
}

func (v *hx8347) encodeInvert(w *wire, g *geometry, on bool) {
	if v.vl != on {
		w.reg8(0x01, 0x08)
	} else {
		w.reg8(0x01, 0x0A)
	}
}

func (v *hx8347) encodeDisplay(w *wire, on bool) {
	if on {
		w.reg8(0x28, 0x3C)
	} else {
		w.reg8(0x28, 0x38)
	}
}

func (v *hx8347) memoryWrite(w *wire) {
	w.cmd8(byte(v.cc))
}

func (v *hx8347) writePixel(w *wire, c uint16) {
	w.reg16(v.cc, c)
}

// afterFill resets the lower-right corner of the window to the logical
// extent, so single pixels only need the upper-left corner.
func (v *hx8347) afterFill(w *wire, g *geometry) {
	r := g.full()
	w.reg8(0x04, byte(r.x2>>8))
	w.reg8(0x05, byte(r.x2))
	w.reg8(0x08, byte(r.y2>>8))
	w.reg8(0x09, byte(r.y2))
}

func (v *hx8347) readPixels(w *wire, g *geometry, out []uint16) {
	readAfterDummy(w, v.read24, out)
}

func (v *hx8347) nativeColorWidth() int   { return 16 }
func (v *hx8347) supportsWindowing() bool { return true }

// readAfterDummy discards the dummy byte that starts a memory read, then
// reads one pixel per element of out.
func readAfterDummy(w *wire, read24 bool, out []uint16) {
	w.read8()
	for i := range out {
		if read24 {
			r := w.read8()
			g := w.read8()
			b := w.read8()
			out[i] = ColorTo565(r, g, b)
		} else {
			out[i] = w.read16()
		}
	}
}
