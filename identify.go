package tftspi

import (
	"time"

	"github.com/flavioheleno/tftspi/bus"
)

// ReadRegister reads 16-bit words from register reg and returns the one at
// index, counting from 0.
func (d *Dev) ReadRegister(reg uint16, index int) (uint16, error) {
	var v uint16
	err := d.tx(func(w *wire) {
		w.cmd16(reg)
		w.direction(bus.Read)
		if w.err == nil {
			d.sleep(time.Millisecond)
		}
		for i := 0; i <= index; i++ {
			v = w.read16()
		}
		w.direction(bus.Write)
	})
	return v, err
}

// Identify queries the controller and returns its signature.
//
// The HX8357D answers 0x0000, 0x8000 on register 4 and is confirmed on its
// extended register set. The ILI9341, ILI9486 and ILI9488 report their
// number in the second word of register 0xD3. Other controllers are
// identified by register 0.
func (d *Dev) Identify() (ChipID, error) {
	r0, err := d.ReadRegister(0x04, 0)
	if err != nil {
		return 0, err
	}
	if r0 == 0 {
		r1, err := d.ReadRegister(0x04, 1)
		if err != nil {
			return 0, err
		}
		if r1 == 0x8000 {
			if id, err := d.confirmHX8357D(); err != nil || id != 0 {
				return id, err
			}
		}
	}
	id, err := d.ReadRegister(0xD3, 1)
	if err != nil {
		return 0, err
	}
	switch id {
	case 0x9341, 0x9486, 0x9488:
		return ChipID(id), nil
	}
	id, err = d.ReadRegister(0x00, 0)
	return ChipID(id), err
}

// confirmHX8357D enables the extended commands and checks the device code. It
// returns 0 when the controller is not an HX8357D.
func (d *Dev) confirmHX8357D() (ChipID, error) {
	if err := d.tx(func(w *wire) {
		d.v.burst(w, 0xB9, []byte{0xFF, 0x83, 0x57})
	}); err != nil {
		return 0, err
	}
	hi, err := d.ReadRegister(0xD0, 0)
	if err != nil {
		return 0, err
	}
	lo, err := d.ReadRegister(0xD0, 1)
	if err != nil {
		return 0, err
	}
	switch uint32(hi)<<16 | uint32(lo) {
	case 0x990000, 0x900000:
		return 0x9090, nil
	}
	return 0, nil
}

// ReadFramebufferRegion reads back the w by h rectangle at (x, y) as RGB565
// pixels in raster order.
//
// The SH1106 answers from the shadow buffer with 0xFFFF for lit pixels.
// Controllers without a known memory read return black.
func (d *Dev) ReadFramebufferRegion(x, y, w, h int) ([]uint16, error) {
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	if d.halted {
		return nil, ErrHalted
	}
	out := make([]uint16, w*h)
	if d.mono != nil {
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				if d.mono.BitAt(x+i, y+j) {
					out[j*w+i] = 0xFFFF
				}
			}
		}
		return out, nil
	}
	if !d.v.supportsWindowing() {
		return out, nil
	}
	err := d.tx(func(wr *wire) {
		desc := d.v.desc()
		d.v.encodeWindow(wr, &d.g, window{x, y, x + w - 1, y + h - 1})
		wr.cmd16(desc.rc)
		wr.direction(bus.Read)
		d.v.readPixels(wr, &d.g, out)
		wr.direction(bus.Write)
		wr.cmd16(desc.cc)
	})
	return out, err
}
