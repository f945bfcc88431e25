package bustest

import (
	"testing"

	"github.com/flavioheleno/tftspi/bus"
)

func TestRecordSegments(t *testing.T) {
	r := &Record{}
	_ = r.Select()
	_ = r.Command()
	_ = r.WriteByte(0x00)
	_ = r.WriteByte(0x2A)
	_ = r.Data()
	_, _ = r.Write([]byte{0x00, 0x10})
	_, _ = r.Write(nil)
	_ = r.Command()
	_ = r.WriteByte(0x2C)
	_ = r.Deselect()

	want := "C:00 2A\nD:00 10\nC:2C"
	if got := r.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if r.Selected || r.Selects != 1 {
		t.Errorf("Selected = %t, Selects = %d", r.Selected, r.Selects)
	}
	if got := r.DataBytes(); got != 2 {
		t.Errorf("DataBytes() = %d, want 2", got)
	}
	r.Reset()
	if len(r.Segments) != 0 {
		t.Error("Reset() kept segments")
	}
}

func TestRecordReads(t *testing.T) {
	r := &Record{Reads: []byte{0x93, 0x41}}
	_ = r.SetDirection(bus.Read)
	if r.Dir != bus.Read {
		t.Errorf("Dir = %s, want read", r.Dir)
	}
	for _, want := range []byte{0x93, 0x41, 0x00} {
		got, err := r.ReadByte()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ReadByte() = %#x, want %#x", got, want)
		}
	}
}
