package tftspi

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWordsNextByte(t *testing.T) {
	s := Words([]uint16{0x1234, 0xABCD})
	want := []byte{0x12, 0x34, 0xAB, 0xCD}
	for i, w := range want {
		b, ok := s.NextByte()
		if !ok || b != w {
			t.Fatalf("byte %d = %#02x, %v, want %#02x", i, b, ok, w)
		}
	}
	if _, ok := s.NextByte(); ok {
		t.Error("source not exhausted")
	}
}

func TestSources(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56}
	tests := []struct {
		name string
		src  Source
		want uint16
	}{
		{"bytes big endian", Bytes(data, binary.BigEndian), 0x1234},
		{"bytes little endian", Bytes(data, binary.LittleEndian), 0x3412},
		{"reader big endian", Reader(bytes.NewReader(data), binary.BigEndian), 0x1234},
		{"reader little endian", Reader(bytes.NewReader(data), binary.LittleEndian), 0x3412},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := tt.src.NextWord()
			if !ok || w != tt.want {
				t.Fatalf("NextWord = %#04x, %v, want %#04x", w, ok, tt.want)
			}
			// A lone trailing byte does not make a word.
			if _, ok := tt.src.NextWord(); ok {
				t.Error("NextWord returned a word from a single byte")
			}
			if _, ok := tt.src.NextByte(); ok {
				t.Error("source not exhausted")
			}
		})
	}
}

func TestMixedReads(t *testing.T) {
	s := Bytes([]byte{0x01, 0x02, 0x03, 0x04}, binary.BigEndian)
	if b, _ := s.NextByte(); b != 0x01 {
		t.Errorf("NextByte = %#02x, want 0x01", b)
	}
	if w, _ := s.NextWord(); w != 0x0203 {
		t.Errorf("NextWord = %#04x, want 0x0203", w)
	}
	if b, _ := s.NextByte(); b != 0x04 {
		t.Errorf("NextByte = %#02x, want 0x04", b)
	}
}
