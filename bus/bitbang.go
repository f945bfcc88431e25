package bus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// BitBang is a Transport that toggles GPIO pins in software.
//
// Bits go out most significant first: MOSI is driven, then CLK is pulsed
// low then high. Reads pulse CLK and sample MISO after the rising edge.
type BitBang struct {
	cs   gpio.PinOut
	dc   gpio.PinOut
	clk  gpio.PinOut
	mosi gpio.PinOut
	miso gpio.PinIn
}

// NewBitBang returns a software SPI transport.
//
// clk, mosi and dc are required. cs may be nil when the panel has chip select
// tied low, miso may be nil for write-only wiring; reads then return 0.
func NewBitBang(cs, dc, clk, mosi gpio.PinOut, miso gpio.PinIn) (*BitBang, error) {
	if dc == nil || clk == nil || mosi == nil {
		return nil, errors.New("bus: dc, clk and mosi pins are required")
	}
	b := &BitBang{cs: cs, dc: dc, clk: clk, mosi: mosi, miso: miso}
	// Every control line idles high.
	for _, p := range []gpio.PinOut{cs, dc, clk, mosi} {
		if p == nil {
			continue
		}
		if err := p.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("bus: %s: %w", p, err)
		}
	}
	if miso != nil {
		if err := miso.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("bus: %s: %w", miso, err)
		}
	}
	return b, nil
}

// String implements conn.Resource.
func (b *BitBang) String() string {
	return fmt.Sprintf("bus.BitBang{clk=%s, mosi=%s}", b.clk, b.mosi)
}

// Select implements Transport.
func (b *BitBang) Select() error {
	if b.cs == nil {
		return nil
	}
	return b.cs.Out(gpio.Low)
}

// Deselect implements Transport.
func (b *BitBang) Deselect() error {
	if b.cs == nil {
		return nil
	}
	return b.cs.Out(gpio.High)
}

// Command implements Transport.
func (b *BitBang) Command() error {
	return b.dc.Out(gpio.Low)
}

// Data implements Transport.
func (b *BitBang) Data() error {
	return b.dc.Out(gpio.High)
}

// SetDirection implements Transport.
//
// MOSI and MISO are separate lines so nothing needs to be turned around.
func (b *BitBang) SetDirection(d Dir) error {
	return nil
}

// WriteByte implements Transport.
func (b *BitBang) WriteByte(v byte) error {
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		if err := b.mosi.Out(gpio.Level(v&mask != 0)); err != nil {
			return err
		}
		if err := b.clk.Out(gpio.Low); err != nil {
			return err
		}
		if err := b.clk.Out(gpio.High); err != nil {
			return err
		}
	}
	return nil
}

// Write implements Transport.
func (b *BitBang) Write(p []byte) (int, error) {
	for i, v := range p {
		if err := b.WriteByte(v); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// ReadByte implements Transport.
func (b *BitBang) ReadByte() (byte, error) {
	var v byte
	for i := 0; i < 8; i++ {
		if err := b.clk.Out(gpio.Low); err != nil {
			return 0, err
		}
		if err := b.clk.Out(gpio.High); err != nil {
			return 0, err
		}
		v <<= 1
		if b.miso != nil && b.miso.Read() == gpio.High {
			v |= 1
		}
	}
	return v, nil
}
