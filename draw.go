package tftspi

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/tftspi/image565"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// ColorModel implements display.Drawer. It is image565.Model, or
// image1bit.BitModel on the SH1106.
func (d *Dev) ColorModel() color.Model {
	if d.mono != nil {
		return image1bit.BitModel
	}
	return image565.Model
}

// Bounds returns the logical bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.size()
	return image.Rect(0, 0, w, h)
}

// Write writes a whole frame of raw pixels: big-endian RGB565, or the
// image1bit.VerticalLSB layout on the SH1106.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if d.mono != nil {
		if len(pixels) != len(d.mono.Pix) {
			return 0, errors.New("tftspi: invalid buffer size")
		}
		copy(d.mono.Pix, pixels)
		if err := d.Flush(); err != nil {
			return 0, err
		}
		return len(pixels), nil
	}
	b := d.Bounds()
	if len(pixels) != 2*b.Dx()*b.Dy() {
		return 0, errors.New("tftspi: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws src onto the display with differential updates: only the
// bounding box of the pixels that changed since the previous Draw is sent.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	b := d.Bounds()
	dst = dst.Intersect(b)
	if dst.Empty() {
		return nil
	}

	if d.mono != nil {
		draw.Src.Draw(d.mono, dst, src, sp)
		return d.Flush()
	}

	// Fast path: a full frame already in the wire format.
	if img, ok := src.(*image565.Image); ok {
		if dst == b && sp == (image.Point{}) && img.Rect == b && img.Stride == 2*b.Dx() {
			return d.writeFullFrame(img.Pix)
		}
	}

	if d.next == nil {
		d.next = image565.New(b)
		d.last = image565.New(b)
		d.stale = true
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)

	r := d.calculateDiff()
	if d.stale {
		// The panel may differ from last anywhere inside dst.
		r = r.Union(dst)
	}
	if r.Empty() {
		return nil
	}
	if err := d.writeRect(r, d.extractRegion(r)); err != nil {
		return err
	}
	copy(d.last.Pix, d.next.Pix)
	if dst == b {
		d.stale = false
	}
	return nil
}

// calculateDiff returns the bounding box of the pixels that differ between
// last and next, or an empty rectangle.
func (d *Dev) calculateDiff() image.Rectangle {
	b := d.next.Rect
	stride := d.next.Stride
	minX, minY := b.Dx(), b.Dy()
	maxX, maxY := -1, -1

	for y := 0; y < b.Dy(); y++ {
		row := y * stride
		last := d.last.Pix[row : row+stride]
		next := d.next.Pix[row : row+stride]
		if bytes.Equal(last, next) {
			continue
		}
		if y < minY {
			minY = y
		}
		maxY = y
		for x := 0; x < b.Dx(); x++ {
			if last[2*x] != next[2*x] || last[2*x+1] != next[2*x+1] {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxY < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// extractRegion copies the rows of r out of next.
func (d *Dev) extractRegion(r image.Rectangle) []byte {
	rowBytes := 2 * r.Dx()
	out := make([]byte, 0, rowBytes*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := d.next.PixOffset(r.Min.X, y)
		out = append(out, d.next.Pix[i:i+rowBytes]...)
	}
	return out
}

// writeFullFrame sends a whole frame and records it as the panel content.
func (d *Dev) writeFullFrame(pixels []byte) error {
	b := d.Bounds()
	if err := d.writeRect(b, pixels); err != nil {
		return err
	}
	if d.next != nil {
		copy(d.next.Pix, pixels)
		copy(d.last.Pix, pixels)
	}
	d.stale = false
	return nil
}

// writeRect streams big-endian RGB565 pixels into r.
func (d *Dev) writeRect(r image.Rectangle, pixels []byte) error {
	return d.tx(func(w *wire) {
		d.v.encodeWindow(w, &d.g, window{r.Min.X, r.Min.Y, r.Max.X - 1, r.Max.Y - 1})
		d.v.memoryWrite(w)
		p := newPixelWriter(w, d.v)
		for i := 0; i+1 < len(pixels); i += 2 {
			p.put(uint16(pixels[i])<<8|uint16(pixels[i+1]), 1)
		}
		p.flush()
	})
}

// Displayer returns a tinygo drivers.Displayer backed by a frame buffer.
// SetPixel draws into the buffer and Display sends the whole buffer.
func (d *Dev) Displayer() drivers.Displayer {
	return &displayer{d: d, img: image565.New(d.Bounds())}
}

type displayer struct {
	d   *Dev
	img *image565.Image
}

func (a *displayer) Size() (x, y int16) {
	return int16(a.img.Rect.Dx()), int16(a.img.Rect.Dy())
}

func (a *displayer) SetPixel(x, y int16, c color.RGBA) {
	a.img.Set(int(x), int(y), c)
}

func (a *displayer) Display() error {
	return a.d.Draw(a.img.Rect, a.img, image.Point{})
}
