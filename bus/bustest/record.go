// Package bustest provides fake transports for testing display drivers.
//
// Record captures every byte sent, grouped into command and data segments,
// and plays back scripted reads. Panel emulates a MIPI DCS controller well
// enough to check that pixels written through a window land where expected
// and can be read back.
package bustest

import (
	"fmt"
	"strings"

	"github.com/flavioheleno/tftspi/bus"
)

// Segment is a run of bytes sent with the D/C line in one state.
type Segment struct {
	Command bool
	Bytes   []byte
}

func (s Segment) String() string {
	var b strings.Builder
	if s.Command {
		b.WriteString("C:")
	} else {
		b.WriteString("D:")
	}
	for i, v := range s.Bytes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// Record implements bus.Transport and records everything written to it.
//
// Consecutive bytes sent in the same mode are merged into one Segment.
type Record struct {
	Segments []Segment
	// Reads is consumed by ReadByte. Once empty, ReadByte returns 0.
	Reads []byte
	// Selected reports whether chip select is asserted.
	Selected bool
	// Selects counts Select calls.
	Selects int
	// Dir is the current direction.
	Dir bus.Dir

	command bool
}

// Select implements bus.Transport.
func (r *Record) Select() error {
	r.Selected = true
	r.Selects++
	return nil
}

// Deselect implements bus.Transport.
func (r *Record) Deselect() error {
	r.Selected = false
	return nil
}

// Command implements bus.Transport.
func (r *Record) Command() error {
	r.command = true
	return nil
}

// Data implements bus.Transport.
func (r *Record) Data() error {
	r.command = false
	return nil
}

// SetDirection implements bus.Transport.
func (r *Record) SetDirection(d bus.Dir) error {
	r.Dir = d
	return nil
}

// WriteByte implements bus.Transport.
func (r *Record) WriteByte(b byte) error {
	_, err := r.Write([]byte{b})
	return err
}

// Write implements bus.Transport.
func (r *Record) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if n := len(r.Segments); n > 0 && r.Segments[n-1].Command == r.command {
		r.Segments[n-1].Bytes = append(r.Segments[n-1].Bytes, p...)
	} else {
		r.Segments = append(r.Segments, Segment{Command: r.command, Bytes: append([]byte(nil), p...)})
	}
	return len(p), nil
}

// ReadByte implements bus.Transport.
func (r *Record) ReadByte() (byte, error) {
	if len(r.Reads) == 0 {
		return 0, nil
	}
	b := r.Reads[0]
	r.Reads = r.Reads[1:]
	return b, nil
}

// Reset forgets the recorded segments.
func (r *Record) Reset() {
	r.Segments = nil
}

// DataBytes returns the number of bytes sent in data mode.
func (r *Record) DataBytes() int {
	n := 0
	for _, s := range r.Segments {
		if !s.Command {
			n += len(s.Bytes)
		}
	}
	return n
}

// String renders the segments one per line.
func (r *Record) String() string {
	lines := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

var _ bus.Transport = (*Record)(nil)
