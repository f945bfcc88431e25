package tftspi

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Source supplies image data to the push operations.
//
// The boolean result is false once the source is exhausted; decoding stops
// there.
type Source interface {
	NextByte() (byte, bool)
	NextWord() (uint16, bool)
}

// Words returns a Source reading RGB565 pixels or run-length words from w.
// NextByte splits words high byte first.
func Words(w []uint16) Source {
	return &wordSource{w: w}
}

type wordSource struct {
	w    []uint16
	lo   byte
	half bool
}

func (s *wordSource) NextByte() (byte, bool) {
	if s.half {
		s.half = false
		return s.lo, true
	}
	v, ok := s.NextWord()
	if !ok {
		return 0, false
	}
	s.lo, s.half = byte(v), true
	return byte(v >> 8), true
}

func (s *wordSource) NextWord() (uint16, bool) {
	if len(s.w) == 0 {
		return 0, false
	}
	v := s.w[0]
	s.w = s.w[1:]
	return v, true
}

// Bytes returns a Source reading b. Words are decoded with order.
func Bytes(b []byte, order binary.ByteOrder) Source {
	return &byteSource{b: b, order: order}
}

type byteSource struct {
	b     []byte
	order binary.ByteOrder
}

func (s *byteSource) NextByte() (byte, bool) {
	if len(s.b) == 0 {
		return 0, false
	}
	v := s.b[0]
	s.b = s.b[1:]
	return v, true
}

func (s *byteSource) NextWord() (uint16, bool) {
	if len(s.b) < 2 {
		s.b = nil
		return 0, false
	}
	v := s.order.Uint16(s.b)
	s.b = s.b[2:]
	return v, true
}

// Reader returns a Source streaming from r, for images too large to hold in
// memory. Words are decoded with order. A read error ends the source.
func Reader(r io.Reader, order binary.ByteOrder) Source {
	return &readerSource{r: bufio.NewReader(r), order: order}
}

type readerSource struct {
	r     *bufio.Reader
	order binary.ByteOrder
	buf   [2]byte
}

func (s *readerSource) NextByte() (byte, bool) {
	b, err := s.r.ReadByte()
	return b, err == nil
}

func (s *readerSource) NextWord() (uint16, bool) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, false
	}
	return s.order.Uint16(s.buf[:]), true
}
