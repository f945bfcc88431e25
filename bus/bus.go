// Package bus carries command and data bytes between a display driver and
// a controller over a 4-wire serial link.
//
// Three transports are provided: SPI drives a periph.io hardware SPI port,
// BitBang toggles periph.io GPIO pins in software and TinyGo wraps a
// tinygo.org/x/drivers SPI bus for microcontroller builds.
//
// A Transport tracks the data/command line and the chip select line. Bytes
// written while in command mode are opcodes; bytes written while in data mode
// are parameters or pixels.
package bus

import "errors"

// Dir is the direction of the data line.
type Dir uint8

const (
	// Write is the default direction: host to controller.
	Write Dir = iota
	// Read turns the link around so the controller drives MISO.
	Read
)

func (d Dir) String() string {
	if d == Read {
		return "read"
	}
	return "write"
}

// Transport is the byte-level link to a display controller.
//
// Implementations are not safe for concurrent use.
type Transport interface {
	// Select asserts chip select.
	Select() error
	// Deselect flushes pending bytes and releases chip select.
	Deselect() error
	// Command switches the D/C line to command.
	Command() error
	// Data switches the D/C line to data.
	Data() error
	// SetDirection turns the link around for reads.
	SetDirection(d Dir) error
	// WriteByte sends one byte in the current mode.
	WriteByte(b byte) error
	// Write sends p in the current mode.
	Write(p []byte) (int, error)
	// ReadByte clocks one byte in from the controller.
	ReadByte() (byte, error)
}

var errNoConn = errors.New("bus: no connection")
