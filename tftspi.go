package tftspi

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/flavioheleno/tftspi/bus"
	"github.com/flavioheleno/tftspi/image565"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

var (
	// ErrHalted is returned by operations on a device after Halt.
	ErrHalted = errors.New("tftspi: halted")
	// ErrNotMonochrome is returned by the shadow buffer operations on
	// controllers that address pixels directly.
	ErrNotMonochrome = errors.New("tftspi: not a monochrome controller")
)

var _ display.Drawer = &Dev{}

// Rotation is the clockwise orientation of the logical surface.
type Rotation = drivers.Rotation

const (
	Rotation0   Rotation = drivers.Rotation0
	Rotation90  Rotation = drivers.Rotation90
	Rotation180 Rotation = drivers.Rotation180
	Rotation270 Rotation = drivers.Rotation270
)

// Opts is the configuration for a display.
type Opts struct {
	// Model selects the module. Auto identifies the controller during Init.
	Model Model
	// Native dimensions in pixels. They override the model's size when both
	// are set, and are required with Auto unless the identified chip has a
	// known size.
	W, H int
	// Rotation applied by Init.
	Rotation Rotation

	// Optional pins; nil when not wired.
	RST gpio.PinOut // reset, active low
	LED gpio.PinOut // backlight

	// InitTable replaces the built-in 8-bit power-on table: records of
	// {opcode, n, n bytes}, with opcode 0x7F meaning "sleep n ms".
	InitTable []byte
	// InitTable16 replaces the built-in 16-bit power-on table: {register,
	// value} pairs, with register 0xFFFF meaning "sleep value ms".
	InitTable16 []uint16
}

// Dev is a handle to a display controller.
//
// It is not safe for concurrent use.
type Dev struct {
	t   bus.Transport
	rst gpio.PinOut
	led gpio.PinOut

	model Model
	chip  ChipID
	v     variant
	g     geometry

	table8  []byte
	table16 []uint16

	// Shadow buffer of the page-addressed SH1106.
	mono *image1bit.VerticalLSB

	// Draw state: next is the canvas, last what the panel was sent. stale
	// is set when other operations changed the panel behind their back.
	next, last *image565.Image
	stale      bool

	sleep  func(time.Duration)
	halted bool
}

// New returns a device talking over t. It does not touch the bus; call
// Init to bring the controller up.
func New(t bus.Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("tftspi: transport is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.W < 0 || opts.H < 0 {
		return nil, errors.New("tftspi: width and height must not be negative")
	}
	d := &Dev{
		t:       t,
		rst:     opts.RST,
		led:     opts.LED,
		model:   opts.Model,
		v:       &inert{},
		g:       geometry{rot: opts.Rotation & 3},
		table8:  opts.InitTable,
		table16: opts.InitTable16,
		sleep:   time.Sleep,
	}
	i, known := lookup(opts.Model)
	if known {
		d.chip = i.chip
		d.g.w, d.g.h = i.w, i.h
	}
	if opts.W > 0 && opts.H > 0 {
		d.g.w, d.g.h = opts.W, opts.H
	}
	// An unknown model drives the inert variant, which needs a size.
	if !known && opts.Model != Auto && (d.g.w == 0 || d.g.h == 0) {
		return nil, fmt.Errorf("tftspi: unknown model %s and no size configured", opts.Model)
	}
	if opts.Model == SH1106 {
		d.mono = image1bit.NewVerticalLSB(image.Rect(0, 0, d.g.w, d.g.h))
	}
	return d, nil
}

// NewSPI returns a device connected to a hardware SPI port, with dc as the
// data/command pin, and initializes it.
//
// The port drives chip select. The SPI port is configured for 4MHz, Mode0,
// 8-bit transfers.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	t, err := bus.NewSPI(p, dc, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("tftspi: %w", err)
	}
	d, err := New(t, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init resets the controller, turns the backlight on, identifies the chip when
// the model is Auto and sends the power-on sequence.
//
// Init also revives a halted device.
func (d *Dev) Init() error {
	d.halted = false
	if err := d.Reset(); err != nil {
		return err
	}
	if err := d.Backlight(true); err != nil {
		return err
	}
	if d.model == Auto {
		id, err := d.Identify()
		if err != nil {
			return err
		}
		d.chip = id
		if d.g.w == 0 || d.g.h == 0 {
			_, i, ok := lookupChip(id)
			if !ok {
				return fmt.Errorf("tftspi: unknown chip %s and no size configured", id)
			}
			d.g.w, d.g.h = i.w, i.h
		}
	}
	if d.g.w == 0 || d.g.h == 0 {
		return errors.New("tftspi: width and height are required")
	}
	return d.start()
}

// start selects the controller family and replays its power-on table.
func (d *Dev) start() error {
	if err := d.Reset(); err != nil {
		return err
	}
	d.sleep(200 * time.Millisecond)
	d.v = newVariant(d.chip, d.model, d.g.h)
	if _, ok := d.v.(*sh1106); ok && d.mono == nil {
		d.mono = image1bit.NewVerticalLSB(image.Rect(0, 0, d.g.w, d.g.h))
	}
	t8, t16 := d.v.desc().table8, d.v.desc().table16
	if d.table8 != nil || d.table16 != nil {
		t8, t16 = d.table8, d.table16
	}
	d.stale = true
	return d.tx(func(w *wire) {
		runTable8(w, d.v, t8)
		runTable16(w, t16)
		d.rotate(w, d.g.rot)
		d.v.encodeInvert(w, &d.g, false)
	})
}

// Reset pulses the reset pin, when wired, and clocks four NOPs into the
// controller to resynchronize its serial interface.
func (d *Dev) Reset() error {
	if err := d.t.Deselect(); err != nil {
		return fmt.Errorf("tftspi: reset: %w", err)
	}
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("tftspi: failed to pull RST low: %w", err)
		}
		d.sleep(2 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("tftspi: failed to pull RST high: %w", err)
		}
	}
	return d.frame(func(w *wire) {
		w.send(true, 0x00, 0x00, 0x00, 0x00)
	})
}

// Backlight drives the LED pin, when wired.
func (d *Dev) Backlight(on bool) error {
	if d.led == nil {
		return nil
	}
	if err := d.led.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("tftspi: backlight: %w", err)
	}
	return nil
}

// Halt turns the display and backlight off. The device refuses further
// operations until Init is called again.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.frame(func(w *wire) {
		d.v.encodeDisplay(w, false)
	})
	d.halted = true
	if err != nil {
		return err
	}
	return d.Backlight(false)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.size()
	return fmt.Sprintf("tftspi.Dev{%s %dx%d}", d.name(), w, h)
}

func (d *Dev) name() string {
	if d.model != Auto {
		return d.model.String()
	}
	if m, _, ok := lookupChip(d.chip); ok {
		return m.String()
	}
	return "chip " + d.chip.String()
}

// Model returns the configured model, Auto when the chip was identified.
func (d *Dev) Model() Model {
	return d.model
}

// Chip returns the controller signature in use.
func (d *Dev) Chip() ChipID {
	return d.chip
}

// size is the logical surface. The SH1106 shadow buffer keeps its native
// orientation whatever the rotation.
func (d *Dev) size() (w, h int) {
	if d.mono != nil {
		return d.mono.Rect.Dx(), d.mono.Rect.Dy()
	}
	return d.g.size()
}

// Width returns the logical width, which depends on the rotation except on
// the SH1106.
func (d *Dev) Width() int {
	w, _ := d.size()
	return w
}

// Height returns the logical height, which depends on the rotation except
// on the SH1106.
func (d *Dev) Height() int {
	_, h := d.size()
	return h
}

// Rotation returns the current rotation.
func (d *Dev) Rotation() Rotation {
	return d.g.rot
}

// SetWindow latches the inclusive rectangle (x1, y1)-(x2, y2) for the next
// pixel stream.
func (d *Dev) SetWindow(x1, y1, x2, y2 int) error {
	return d.tx(func(w *wire) {
		d.v.encodeWindow(w, &d.g, window{x1, y1, x2, y2})
	})
}

// tx runs f with chip select asserted.
func (d *Dev) tx(f func(w *wire)) error {
	if d.halted {
		return ErrHalted
	}
	return d.frame(f)
}

func (d *Dev) frame(f func(w *wire)) error {
	if err := d.t.Select(); err != nil {
		return fmt.Errorf("tftspi: %w", err)
	}
	w := wire{t: d.t, sleep: d.sleep}
	f(&w)
	err := w.err
	if e := d.t.Deselect(); err == nil {
		err = e
	}
	if err != nil {
		return fmt.Errorf("tftspi: %w", err)
	}
	return nil
}
