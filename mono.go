package tftspi

import (
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// sh1106 drives the SH1106 monochrome OLED. It has no addressing window:
// the driver keeps a shadow buffer and sends whole pages on Flush.
type sh1106 struct {
	descriptor
}

func (v *sh1106) desc() *descriptor { return &v.descriptor }

func (v *sh1106) burst(w *wire, cmd byte, data []byte) {
	w.cmd8(cmd)
	w.data(data)
}

func (v *sh1106) encodeInvert(w *wire, g *geometry, on bool) {
	if v.vl != on {
		w.cmd8(0xA6)
	} else {
		w.cmd8(0xA7)
	}
}

func (v *sh1106) encodeDisplay(w *wire, on bool) {
	if on {
		w.cmd8(0xAF)
	} else {
		w.cmd8(0xAE)
	}
}

func (v *sh1106) encodeWindow(*wire, *geometry, window) {}
func (v *sh1106) encodeOrientation(*wire, *geometry)    {}
func (v *sh1106) encodeScroll(*wire, *geometry, scroll) {}
func (v *sh1106) memoryWrite(*wire)                     {}
func (v *sh1106) writePixel(*wire, uint16)              {}
func (v *sh1106) afterFill(*wire, *geometry)            {}
func (v *sh1106) readPixels(*wire, *geometry, []uint16) {}
func (v *sh1106) nativeColorWidth() int                 { return 1 }
func (v *sh1106) supportsWindowing() bool               { return false }

// The SH1106 RAM is 132 columns wide; 128-pixel glass starts at column 2.
const sh1106Column = 0x02

// flushPages sends every 8-row page of img.
func flushPages(w *wire, img *image1bit.VerticalLSB) {
	width := img.Rect.Dx()
	for page := 0; page*8 < img.Rect.Dy() && w.err == nil; page++ {
		w.cmd8(0xB0 + byte(page))
		w.cmd8(sh1106Column)
		w.cmd8(0x10)
		w.data(img.Pix[page*width : (page+1)*width])
	}
}

// SetPixel sets or clears a pixel of the shadow buffer, in native
// coordinates. Flush sends the buffer to the panel.
func (d *Dev) SetPixel(x, y int, on bool) error {
	if d.mono == nil {
		return ErrNotMonochrome
	}
	d.setBit(x, y, on)
	return nil
}

func (d *Dev) setBit(x, y int, on bool) {
	r := d.mono.Rect
	if x < r.Min.X || y < r.Min.Y || x >= r.Max.X || y >= r.Max.Y {
		return
	}
	d.mono.SetBit(x, y, image1bit.Bit(on))
}

// Flush sends the shadow buffer to the panel.
func (d *Dev) Flush() error {
	if d.mono == nil {
		return ErrNotMonochrome
	}
	return d.tx(func(w *wire) {
		flushPages(w, d.mono)
	})
}

// DrawBitmap copies a w by h bitmap into the shadow buffer at (x, y). bits
// holds bands of 8 rows, w bytes each, with the top row of a band in the
// least significant bit. invert flips every bit.
//
// Each pixel goes through SetPixel; large images are better drawn with
// Draw.
func (d *Dev) DrawBitmap(x, y, w, h int, bits []byte, invert bool) error {
	if d.mono == nil {
		return ErrNotMonochrome
	}
	for band := 0; band*8 < h; band++ {
		for col := 0; col < w; col++ {
			i := band*w + col
			if i >= len(bits) {
				return nil
			}
			b := bits[i]
			if invert {
				b = ^b
			}
			for k := 0; k < 8 && band*8+k < h; k++ {
				d.setBit(x+col, y+band*8+k, b&(1<<k) != 0)
			}
		}
	}
	return nil
}

// MonoBuffer returns the shadow buffer, or nil on controllers that do not
// have one. Changes show after Flush.
func (d *Dev) MonoBuffer() *image1bit.VerticalLSB {
	return d.mono
}
