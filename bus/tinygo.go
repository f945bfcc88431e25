package bus

import (
	"fmt"

	"tinygo.org/x/drivers"
)

// OutputPin is a digital output as exposed by TinyGo's machine.Pin.
type OutputPin interface {
	Set(high bool)
}

// TinyGo is a Transport over a TinyGo SPI bus.
//
// The bus must already be configured; TinyGo boards set the clock and mode
// when the machine.SPI is configured rather than per transfer.
type TinyGo struct {
	bus drivers.SPI
	dc  OutputPin
	cs  OutputPin
	one [1]byte
}

// NewTinyGo returns a transport using b. cs may be nil when chip select is
// driven by the peripheral or tied low.
func NewTinyGo(b drivers.SPI, dc, cs OutputPin) *TinyGo {
	if cs != nil {
		cs.Set(true)
	}
	dc.Set(true)
	return &TinyGo{bus: b, dc: dc, cs: cs}
}

// Select implements Transport.
func (t *TinyGo) Select() error {
	if t.cs != nil {
		t.cs.Set(false)
	}
	return nil
}

// Deselect implements Transport.
func (t *TinyGo) Deselect() error {
	if t.cs != nil {
		t.cs.Set(true)
	}
	return nil
}

// Command implements Transport.
func (t *TinyGo) Command() error {
	t.dc.Set(false)
	return nil
}

// Data implements Transport.
func (t *TinyGo) Data() error {
	t.dc.Set(true)
	return nil
}

// SetDirection implements Transport.
func (t *TinyGo) SetDirection(d Dir) error {
	return nil
}

// WriteByte implements Transport.
func (t *TinyGo) WriteByte(b byte) error {
	t.one[0] = b
	if err := t.bus.Tx(t.one[:], nil); err != nil {
		return fmt.Errorf("bus: write: %w", err)
	}
	return nil
}

// Write implements Transport.
func (t *TinyGo) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := t.bus.Tx(p, nil); err != nil {
		return 0, fmt.Errorf("bus: write: %w", err)
	}
	return len(p), nil
}

// ReadByte implements Transport.
func (t *TinyGo) ReadByte() (byte, error) {
	b, err := t.bus.Transfer(0xFF)
	if err != nil {
		return 0, fmt.Errorf("bus: read: %w", err)
	}
	return b, nil
}
