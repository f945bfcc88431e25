package tftspi

import (
	"time"

	"github.com/flavioheleno/tftspi/bus"
)

// wire frames opcodes and parameters on a selected transport.
//
// The first error sticks: every later call becomes a no-op and the error
// is reported once the transaction ends.
type wire struct {
	t     bus.Transport
	sleep func(time.Duration)
	err   error
}

func (w *wire) send(command bool, b ...byte) {
	if w.err != nil {
		return
	}
	if command {
		w.err = w.t.Command()
	} else {
		w.err = w.t.Data()
	}
	if w.err == nil {
		_, w.err = w.t.Write(b)
	}
}

func (w *wire) cmd8(c byte) {
	w.send(true, c)
}

// cmd16 sends a 16-bit register index, high byte first. DCS controllers see
// a NOP followed by the opcode.
func (w *wire) cmd16(c uint16) {
	w.send(true, byte(c>>8), byte(c))
}

func (w *wire) data(b []byte) {
	if len(b) > 0 {
		w.send(false, b...)
	}
}

func (w *wire) data8(b byte) {
	w.send(false, b)
}

func (w *wire) data16(v uint16) {
	w.send(false, byte(v>>8), byte(v))
}

func (w *wire) reg8(r, v byte) {
	w.cmd8(r)
	w.data8(v)
}

func (w *wire) reg16(r, v uint16) {
	w.cmd16(r)
	w.data16(v)
}

func (w *wire) direction(d bus.Dir) {
	if w.err == nil {
		w.err = w.t.SetDirection(d)
	}
}

func (w *wire) read8() byte {
	if w.err != nil {
		return 0
	}
	var b byte
	b, w.err = w.t.ReadByte()
	return b
}

func (w *wire) read16() uint16 {
	hi := w.read8()
	lo := w.read8()
	return uint16(hi)<<8 | uint16(lo)
}

// pause releases chip select so buffered bytes reach the controller, waits,
// then selects it again.
func (w *wire) pause(d time.Duration) {
	if w.err != nil {
		return
	}
	if w.err = w.t.Deselect(); w.err != nil {
		return
	}
	w.sleep(d)
	w.err = w.t.Select()
}
