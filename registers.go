package tftspi

// Controllers below use 16-bit register indexes and 16-bit values. Their
// address counters ignore the orientation register, so windows are mapped
// to native coordinates before they are written.

// Entry mode values for rotations 0 to 3.
var entryMode = [4]uint16{0x1030, 0x1028, 0x1000, 0x1018}

// ili932x drives the ILI9325 and ILI9328.
type ili932x struct {
	descriptor
}

func (v *ili932x) desc() *descriptor { return &v.descriptor }

func (v *ili932x) burst(w *wire, cmd byte, data []byte) {
	w.cmd16(uint16(cmd))
	w.data(data)
}

func (v *ili932x) encodeWindow(w *wire, g *geometry, r window) {
	n, cur := transformRect(r, g.rot, g.w, g.h)
	w.reg16(0x50, uint16(n.x1))
	w.reg16(0x51, uint16(n.x2))
	w.reg16(0x52, uint16(n.y1))
	w.reg16(0x53, uint16(n.y2))
	w.reg16(0x20, uint16(cur.X))
	w.reg16(0x21, uint16(cur.Y))
}

func (v *ili932x) encodeOrientation(w *wire, g *geometry) {
	w.reg16(v.md, entryMode[g.rot&3])
}

func (v *ili932x) encodeScroll(w *wire, g *geometry, s scroll) {
	w.reg16(v.sc1, 0x0003)
	w.reg16(v.sc2, uint16(s.vsp))
}

func (v *ili932x) encodeInvert(w *wire, g *geometry, on bool) {
	w.reg8(0x61, byte(b2u(v.vl != on)))
}

// encodeDisplay writes display control 1; 0x0133 enables the gates and
// the base image.
func (v *ili932x) encodeDisplay(w *wire, on bool) {
	var val uint16
	if on {
		val = 0x0133
	}
	w.reg16(0x07, val)
}

// memoryWrite restarts the oscillator before selecting the GRAM register.
func (v *ili932x) memoryWrite(w *wire) {
	w.cmd8(0x00)
	w.cmd8(byte(v.cc))
}

func (v *ili932x) writePixel(w *wire, c uint16) {
	w.reg16(v.cc, c)
}

// afterFill latches the full window again; single pixels rely on the
// address counter alone.
func (v *ili932x) afterFill(w *wire, g *geometry) {
	v.encodeWindow(w, g, g.full())
}

// readPixels keeps the last two of every eight bytes the controller sends
// per pixel, then latches the full window.
func (v *ili932x) readPixels(w *wire, g *geometry, out []uint16) {
	for i := range out {
		var r, gr byte
		for j := 0; j < 2; j++ {
			w.read8()
			w.read8()
			r = w.read8()
			gr = w.read8()
		}
		out[i] = uint16(r)<<8 | uint16(gr)
	}
	v.encodeWindow(w, g, g.full())
}

func (v *ili932x) nativeColorWidth() int   { return 16 }
func (v *ili932x) supportsWindowing() bool { return true }

// ili9225 drives the ILI9225.
type ili9225 struct {
	descriptor
}

func (v *ili9225) desc() *descriptor { return &v.descriptor }

func (v *ili9225) burst(w *wire, cmd byte, data []byte) {
	w.cmd16(uint16(cmd))
	w.data(data)
}

func (v *ili9225) encodeWindow(w *wire, g *geometry, r window) {
	n, cur := transformRect(r, g.rot, g.w, g.h)
	w.reg16(0x36, uint16(n.x2))
	w.reg16(0x37, uint16(n.x1))
	w.reg16(0x38, uint16(n.y2))
	w.reg16(0x39, uint16(n.y1))
	w.reg16(v.xc, uint16(cur.X))
	w.reg16(v.yc, uint16(cur.Y))
	w.cmd8(byte(v.cc))
}

func (v *ili9225) encodeOrientation(w *wire, g *geometry) {
	w.reg16(v.md, entryMode[g.rot&3])
}

func (v *ili9225) encodeScroll(w *wire, g *geometry, s scroll) {
	w.reg16(0x32, uint16(s.top))
	w.reg16(v.sc1, uint16(s.top+s.lines-1))
	w.reg16(v.sc2, uint16(s.vsp-s.top))
}

func (v *ili9225) encodeInvert(w *wire, g *geometry, on bool) {
	w.reg16(0x07, 0x13|b2u(v.vl != on)<<2)
}

func (v *ili9225) encodeDisplay(w *wire, on bool) {
	var val uint16
	if on {
		val = 0x1017
	}
	w.reg16(0x07, val)
}

func (v *ili9225) memoryWrite(w *wire) {
	w.cmd8(byte(v.cc))
}

func (v *ili9225) writePixel(w *wire, c uint16) {
	w.reg16(v.cc, c)
}

func (v *ili9225) afterFill(*wire, *geometry) {}

func (v *ili9225) readPixels(w *wire, g *geometry, out []uint16) {
	readAfterDummy(w, v.read24, out)
}

func (v *ili9225) nativeColorWidth() int   { return 16 }
func (v *ili9225) supportsWindowing() bool { return true }

// ssd1283a drives the SSD1283A. Its 132x132 RAM is addressed with 8-bit
// coordinates two pixels in from the edge, and columns and rows trade
// places in portrait orientations.
type ssd1283a struct {
	descriptor
}

func (v *ssd1283a) desc() *descriptor { return &v.descriptor }

func (v *ssd1283a) burst(w *wire, cmd byte, data []byte) {
	w.cmd16(uint16(cmd))
	w.data(data)
}

func (v *ssd1283a) encodeWindow(w *wire, g *geometry, r window) {
	if g.rot&1 == 0 {
		r = window{x1: r.y1 + 2, y1: r.x1 + 2, x2: r.y2 + 2, y2: r.x2 + 2}
	} else {
		r.y1 += 2
		r.y2 += 2
	}
	w.cmd8(byte(v.xc))
	w.data([]byte{byte(r.x2), byte(r.x1)})
	w.cmd8(byte(v.yc))
	w.data([]byte{byte(r.y2), byte(r.y1)})
	w.cmd8(0x21)
	w.data([]byte{byte(r.x1), byte(r.y1)})
	w.cmd8(byte(v.cc))
}

func (v *ssd1283a) encodeOrientation(w *wire, g *geometry) {
	if g.rot&1 == 0 {
		w.reg16(0x01, 0x2183)
		w.reg16(0x03, 0x6830)
	} else {
		w.reg16(0x01, 0x2283)
		w.reg16(0x03, 0x6838)
	}
}

func (v *ssd1283a) encodeScroll(w *wire, g *geometry, s scroll) {
	w.reg16(v.sc1, uint16(s.vsp))
}

func (v *ssd1283a) encodeInvert(w *wire, g *geometry, on bool) {
	reg := uint16(0x0183)
	if g.rot&1 != 0 {
		reg = 0x0283
	}
	if v.vl != on {
		reg |= 0x2000
	}
	w.reg16(0x01, reg)
}

func (v *ssd1283a) encodeDisplay(w *wire, on bool) {
	var val uint16
	if on {
		val = 0x0233
	}
	w.reg16(0x07, val)
}

func (v *ssd1283a) memoryWrite(w *wire) {
	w.cmd8(byte(v.cc))
}

// writePixel sends data only: the window already selected GRAM.
func (v *ssd1283a) writePixel(w *wire, c uint16) {
	w.data16(c)
}

func (v *ssd1283a) afterFill(*wire, *geometry) {}

func (v *ssd1283a) readPixels(w *wire, g *geometry, out []uint16) {
	readAfterDummy(w, v.read24, out)
}

func (v *ssd1283a) nativeColorWidth() int   { return 16 }
func (v *ssd1283a) supportsWindowing() bool { return true }
