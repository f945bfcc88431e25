package tftspi

import (
	"errors"
	"image"
)

var errShortHeader = errors.New("tftspi: truncated image header")

// pushChunk bounds the bytes buffered before they are handed to the
// transport.
const pushChunk = 1024

// pixelWriter batches pixels into data writes.
type pixelWriter struct {
	w    *wire
	wide bool
	buf  []byte
}

func newPixelWriter(w *wire, v variant) *pixelWriter {
	return &pixelWriter{
		w:    w,
		wide: v.nativeColorWidth() == 18,
		buf:  make([]byte, 0, pushChunk),
	}
}

// put queues n copies of c.
func (p *pixelWriter) put(c uint16, n int) {
	for ; n > 0 && p.w.err == nil; n-- {
		p.buf = appendPixel(p.buf, c, p.wide)
		if len(p.buf) > pushChunk-3 {
			p.flush()
		}
	}
}

func (p *pixelWriter) flush() {
	p.w.data(p.buf)
	p.buf = p.buf[:0]
}

// PushRaw streams up to n pixels from src into the current window. When
// first is set the memory write command is sent before the pixels,
// otherwise the stream continues the previous one.
func (d *Dev) PushRaw(src Source, n int, first bool) error {
	d.stale = true
	return d.tx(func(w *wire) {
		if first {
			d.v.memoryWrite(w)
		}
		p := newPixelWriter(w, d.v)
		for ; n > 0; n-- {
			c, ok := src.NextWord()
			if !ok {
				break
			}
			p.put(c, 1)
		}
		p.flush()
	})
}

// PushConstantColor streams n copies of c into the current window.
func (d *Dev) PushConstantColor(c uint16, n int, first bool) error {
	d.stale = true
	return d.tx(func(w *wire) {
		if first {
			d.v.memoryWrite(w)
		}
		p := newPixelWriter(w, d.v)
		p.put(c, n)
		p.flush()
	})
}

// PushRunLength draws a run-length image with its top-left corner at (x, y).
// src starts with the width and height words.
func (d *Dev) PushRunLength(x, y int, src Source) error {
	iw, ok1 := src.NextWord()
	ih, ok2 := src.NextWord()
	if !ok1 || !ok2 {
		return errShortHeader
	}
	w, h := int(iw), int(ih)
	d.stale = true
	return d.tx(func(wr *wire) {
		d.v.encodeWindow(wr, &d.g, window{x, y, x + w - 1, y + h - 1})
		d.v.memoryWrite(wr)
		p := newPixelWriter(wr, d.v)
		decodeRunLength(src, w*h, p.put)
		p.flush()
	})
}

// PushIndexed draws a palette image with its top-left corner at (x, y).
func (d *Dev) PushIndexed(x, y int, src Source) error {
	hdr, ok := readIndexedHeader(src)
	if !ok {
		return errShortHeader
	}
	d.stale = true
	return d.tx(func(wr *wire) {
		d.v.encodeWindow(wr, &d.g, window{x, y, x + hdr.w - 1, y + hdr.h - 1})
		d.v.memoryWrite(wr)
		p := newPixelWriter(wr, d.v)
		decodeIndexed(src, &hdr, hdr.w*hdr.h, p.put)
		p.flush()
	})
}

// DrawPixel sets the pixel at (x, y). Coordinates outside the logical
// surface are ignored.
func (d *Dev) DrawPixel(x, y int, c uint16) error {
	if d.halted {
		return ErrHalted
	}
	w, h := d.size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return nil
	}
	if d.mono != nil {
		return d.SetPixel(x, y, c != 0)
	}
	d.stale = true
	return d.tx(func(wr *wire) {
		d.v.encodeWindow(wr, &d.g, window{x, y, x, y})
		d.v.writePixel(wr, c)
	})
}

// FillRect fills the w by h rectangle at (x, y), clipped to the logical
// surface. Negative sizes extend the rectangle left or up from (x, y).
func (d *Dev) FillRect(x, y, w, h int, c uint16) error {
	if d.halted {
		return ErrHalted
	}
	lw, lh := d.size()
	r := clipFill(x, y, w, h, lw, lh)
	if r.Empty() {
		return nil
	}
	if d.mono != nil {
		on := c != 0
		for py := r.Min.Y; py < r.Max.Y; py++ {
			for px := r.Min.X; px < r.Max.X; px++ {
				d.setBit(px, py, on)
			}
		}
		return nil
	}
	d.stale = true
	return d.tx(func(wr *wire) {
		d.v.encodeWindow(wr, &d.g, window{r.Min.X, r.Min.Y, r.Max.X - 1, r.Max.Y - 1})
		d.v.memoryWrite(wr)
		p := newPixelWriter(wr, d.v)
		p.put(c, r.Dx()*r.Dy())
		p.flush()
		d.v.afterFill(wr, &d.g)
	})
}

// FillScreen fills the whole logical surface.
func (d *Dev) FillScreen(c uint16) error {
	w, h := d.size()
	return d.FillRect(0, 0, w, h, c)
}

// clipFill normalizes a rectangle given by origin and signed size, and
// clips it to a w by h surface.
func clipFill(x, y, w, h, lw, lh int) image.Rectangle {
	if w < 0 {
		w = -w
		x -= w
	}
	if h < 0 {
		h = -h
		y -= h
	}
	return image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, lw, lh))
}
