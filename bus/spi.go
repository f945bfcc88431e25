package bus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultFrequency is the clock used when NewSPI is given 0.
//
// 4MHz is within the write limit of every supported controller and low enough
// for reads on most of them.
const DefaultFrequency = 4 * physic.MegaHertz

// defaultChunk bounds a single Tx when the port reports no limit.
const defaultChunk = 4096

// nop is the MIPI DCS no-operation command.
const nop = 0x00

// SPI is a Transport over a hardware SPI port.
//
// Writes are buffered and flushed when the D/C line changes, before reads and
// on Deselect, so that a run of pixel data goes out in as few Tx calls as the
// port allows.
//
// When the port drives chip select, a port only asserts it for the length of
// one call. Reads are therefore issued as spi.Packet with KeepCS set, from
// the command that precedes them until the next write or Deselect.
type SPI struct {
	c   spi.Conn
	dc  gpio.PinOut
	cs  gpio.PinOut
	max int

	buf     []byte
	level   gpio.Level
	leveled bool
	reading bool
	held    bool
}

// NewSPI connects to p in mode 0 with 8 bit words.
//
// dc is required. cs is optional: pass nil when the port drives chip select
// itself. f may be 0 to use DefaultFrequency.
func NewSPI(p spi.Port, dc, cs gpio.PinOut, f physic.Frequency) (*SPI, error) {
	if dc == nil {
		return nil, errors.New("bus: dc pin is required")
	}
	if f == 0 {
		f = DefaultFrequency
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("bus: connect: %w", err)
	}
	return newSPI(c, dc, cs)
}

func newSPI(c spi.Conn, dc, cs gpio.PinOut) (*SPI, error) {
	s := &SPI{c: c, dc: dc, cs: cs, max: defaultChunk}
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 {
			s.max = m
		}
	}
	if cs != nil {
		if err := cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("bus: cs: %w", err)
		}
	}
	return s, nil
}

// String implements conn.Resource.
func (s *SPI) String() string {
	if s.c == nil {
		return "bus.SPI{}"
	}
	return fmt.Sprintf("bus.SPI{%s}", s.c)
}

// Select implements Transport.
func (s *SPI) Select() error {
	if s.cs == nil {
		return nil
	}
	if err := s.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("bus: cs: %w", err)
	}
	return nil
}

// Deselect implements Transport.
func (s *SPI) Deselect() error {
	s.reading = false
	if err := s.flush(); err != nil {
		return err
	}
	if s.held {
		// Ports reject empty packets, so a NOP byte ends the transaction
		// left open by a read.
		if err := s.txPackets([]byte{nop}, false); err != nil {
			return err
		}
	}
	if s.cs == nil {
		return nil
	}
	if err := s.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("bus: cs: %w", err)
	}
	return nil
}

// Command implements Transport.
func (s *SPI) Command() error {
	return s.setDC(gpio.Low)
}

// Data implements Transport.
func (s *SPI) Data() error {
	return s.setDC(gpio.High)
}

func (s *SPI) setDC(l gpio.Level) error {
	if s.leveled && s.level == l {
		return nil
	}
	if err := s.flush(); err != nil {
		return err
	}
	if err := s.dc.Out(l); err != nil {
		return fmt.Errorf("bus: dc: %w", err)
	}
	s.level = l
	s.leveled = true
	return nil
}

// SetDirection implements Transport.
//
// The hardware port is full duplex, so only pending writes are flushed. With
// port driven chip select, switching to Read sends the pending command with
// chip select kept asserted for the reads that follow.
func (s *SPI) SetDirection(d Dir) error {
	s.reading = d == Read && s.cs == nil
	return s.flush()
}

// WriteByte implements Transport.
func (s *SPI) WriteByte(b byte) error {
	s.buf = append(s.buf, b)
	if len(s.buf) >= s.max {
		return s.flush()
	}
	return nil
}

// Write implements Transport.
func (s *SPI) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	if len(s.buf) >= s.max {
		if err := s.flush(); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// ReadByte implements Transport.
func (s *SPI) ReadByte() (byte, error) {
	if err := s.flush(); err != nil {
		return 0, err
	}
	if s.c == nil {
		return 0, errNoConn
	}
	r := [1]byte{}
	var err error
	if s.reading {
		err = s.c.TxPackets([]spi.Packet{{W: []byte{0xFF}, R: r[:], KeepCS: true}})
		s.held = err == nil
	} else {
		err = s.c.Tx([]byte{0xFF}, r[:])
	}
	if err != nil {
		return 0, fmt.Errorf("bus: read: %w", err)
	}
	return r[0], nil
}

// flush sends the buffered bytes in chunks no larger than the port limit.
func (s *SPI) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	if s.c == nil {
		return errNoConn
	}
	defer func() { s.buf = s.buf[:0] }()
	if s.reading || s.held {
		return s.txPackets(s.buf, s.reading)
	}
	for p := s.buf; len(p) > 0; {
		n := min(len(p), s.max)
		if err := s.c.Tx(p[:n], nil); err != nil {
			return fmt.Errorf("bus: write: %w", err)
		}
		p = p[n:]
	}
	return nil
}

// txPackets sends w in one call, split at the port limit, keeping chip
// select asserted between packets. keep leaves it asserted after the last
// one.
func (s *SPI) txPackets(w []byte, keep bool) error {
	var pkts []spi.Packet
	for len(w) > s.max {
		pkts = append(pkts, spi.Packet{W: w[:s.max], KeepCS: true})
		w = w[s.max:]
	}
	pkts = append(pkts, spi.Packet{W: w, KeepCS: keep})
	if err := s.c.TxPackets(pkts); err != nil {
		s.held = false
		return fmt.Errorf("bus: write: %w", err)
	}
	s.held = keep
	return nil
}
