package tftspi

// SetRotation orients the logical surface, taking r modulo 4. Odd rotations
// swap the logical width and height. The window is reset to the whole
// surface and scrolling is turned off.
func (d *Dev) SetRotation(r Rotation) error {
	d.stale = true
	if err := d.tx(func(w *wire) {
		d.rotate(w, r)
	}); err != nil {
		return err
	}
	d.next, d.last = nil, nil
	return nil
}

func (d *Dev) rotate(w *wire, r Rotation) {
	d.g.rot = r & 3
	d.v.encodeOrientation(w, &d.g)
	if !d.v.supportsWindowing() {
		return
	}
	d.v.encodeWindow(w, &d.g, d.g.full())
	d.v.encodeScroll(w, &d.g, newScroll(d.g.h, 0, d.g.h, 0))
}

// VerticalScroll scrolls lines rows starting at top by offset rows. Rows
// above top and below top+lines stay fixed. An offset of 0, or one outside
// (-lines, lines), ends scrolling.
func (d *Dev) VerticalScroll(top, lines, offset int) error {
	return d.tx(func(w *wire) {
		d.v.encodeScroll(w, &d.g, newScroll(d.g.h, top, lines, offset))
	})
}

// InvertDisplay turns color inversion on or off.
func (d *Dev) InvertDisplay(on bool) error {
	return d.tx(func(w *wire) {
		d.v.encodeInvert(w, &d.g, on)
	})
}
