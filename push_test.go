package tftspi

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/flavioheleno/tftspi/bus/bustest"
)

// newPanelDev returns an ILI9486 sized to a fresh emulated panel. The
// ILI9486 needs no mount correction and reads back 16-bit pixels.
func newPanelDev(t *testing.T, w, h int) (*Dev, *bustest.Panel) {
	t.Helper()
	p := bustest.NewPanel(w, h)
	d := newTestDev(t, p, &Opts{Model: ILI9486, W: w, H: h})
	p.Written = 0
	return d, p
}

func TestAppendPixel(t *testing.T) {
	tests := []struct {
		c    uint16
		wide bool
		want []byte
	}{
		{0xABCD, false, []byte{0xAB, 0xCD}},
		{0xFFFF, true, []byte{0xF8, 0xFC, 0xF8}},
		{0xF800, true, []byte{0xF8, 0x00, 0x00}},
		{0x07E0, true, []byte{0x00, 0xFC, 0x00}},
		{0x001F, true, []byte{0x00, 0x00, 0xF8}},
	}
	for _, tt := range tests {
		got := appendPixel(nil, tt.c, tt.wide)
		if string(got) != string(tt.want) {
			t.Errorf("appendPixel(%#04x, %v) = % X, want % X", tt.c, tt.wide, got, tt.want)
		}
	}
}

func TestColorTo565(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{0x07, 0x03, 0x07, 0x0000},
	}
	for _, tt := range tests {
		if got := ColorTo565(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("ColorTo565(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestClipFill(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       image.Rectangle
	}{
		{"inside", 1, 2, 3, 4, image.Rect(1, 2, 4, 6)},
		{"left edge", -5, 0, 10, 10, image.Rect(0, 0, 5, 10)},
		{"negative width", 10, 10, -4, 2, image.Rect(6, 10, 10, 12)},
		{"negative height", 10, 10, 2, -4, image.Rect(10, 6, 12, 10)},
		{"past far edge", 95, 95, 10, 10, image.Rect(95, 95, 100, 100)},
		{"outside", 200, 0, 10, 10, image.Rectangle{}},
		{"zero width", 5, 5, 0, 10, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipFill(tt.x, tt.y, tt.w, tt.h, 100, 100)
			if got.Empty() && tt.want.Empty() {
				return
			}
			if got != tt.want {
				t.Errorf("clipFill = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFillRectClipped(t *testing.T) {
	d, p := newPanelDev(t, 100, 100)
	if err := d.FillRect(-5, 0, 10, 10, 0xF800); err != nil {
		t.Fatal(err)
	}
	if p.Written != 50 {
		t.Errorf("pushed %d pixels, want 50", p.Written)
	}
	if p.Pixel(4, 9) != 0xF800 || p.Pixel(5, 0) != 0 {
		t.Error("fill landed outside x in [0, 5), y in [0, 10)")
	}
}

func TestFillRectEmptySendsNothing(t *testing.T) {
	d, rec := newRecorded(t, &Opts{Model: ILI9341})
	if err := d.FillRect(300, 0, 10, 10, 0xFFFF); err != nil {
		t.Fatal(err)
	}
	if len(rec.Segments) != 0 {
		t.Errorf("sent\n%s", rec)
	}
}

func TestFillScreenChunks(t *testing.T) {
	d, p := newPanelDev(t, 40, 30)
	if err := d.FillScreen(0x1234); err != nil {
		t.Fatal(err)
	}
	if p.Written != 40*30 {
		t.Errorf("pushed %d pixels, want %d", p.Written, 40*30)
	}
	for _, pt := range []image.Point{{0, 0}, {39, 0}, {0, 29}, {39, 29}} {
		if got := p.Pixel(pt.X, pt.Y); got != 0x1234 {
			t.Errorf("Pixel(%v) = %#04x, want 0x1234", pt, got)
		}
	}
}

func TestDrawPixelBounds(t *testing.T) {
	d, rec := newRecorded(t, &Opts{Model: ILI9341})
	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {240, 0}, {0, 320}} {
		if err := d.DrawPixel(pt.X, pt.Y, 0xFFFF); err != nil {
			t.Fatal(err)
		}
	}
	if len(rec.Segments) != 0 {
		t.Errorf("out of bounds pixels sent\n%s", rec)
	}
	if err := d.DrawPixel(239, 319, 0xFFFF); err != nil {
		t.Fatal(err)
	}
	if len(rec.Segments) == 0 {
		t.Error("last pixel was not sent")
	}
}

func TestPushRaw(t *testing.T) {
	d, p := newPanelDev(t, 4, 4)
	if err := d.SetWindow(1, 1, 2, 2); err != nil {
		t.Fatal(err)
	}
	src := Words([]uint16{1, 2, 3, 4, 5})
	if err := d.PushRaw(src, 2, true); err != nil {
		t.Fatal(err)
	}
	if err := d.PushRaw(src, 10, false); err != nil {
		t.Fatal(err)
	}
	// The fifth word wraps to the start of the window.
	want := map[image.Point]uint16{{1, 1}: 5, {2, 1}: 2, {1, 2}: 3, {2, 2}: 4}
	for pt, c := range want {
		if got := p.Pixel(pt.X, pt.Y); got != c {
			t.Errorf("Pixel(%v) = %d, want %d", pt, got, c)
		}
	}
	if p.Written != 5 {
		t.Errorf("pushed %d pixels, want 5", p.Written)
	}
}

func TestPushConstantColor(t *testing.T) {
	d, rec := newRecorded(t, &Opts{Model: ILI9341})
	if err := d.PushConstantColor(0xABCD, 3, true); err != nil {
		t.Fatal(err)
	}
	if got, want := rec.String(), "C:2C\nD:AB CD AB CD AB CD"; got != want {
		t.Errorf("sent\n%s\nwant\n%s", got, want)
	}
	rec.Reset()
	if err := d.PushConstantColor(0x0001, 1, false); err != nil {
		t.Fatal(err)
	}
	if got, want := rec.String(), "D:00 01"; got != want {
		t.Errorf("continued stream sent %q, want %q", got, want)
	}
}

func TestPushRunLength(t *testing.T) {
	d, p := newPanelDev(t, 8, 8)
	src := Words([]uint16{4, 1, 0x8003, 0x00FF, 0x0001, 0x0002})
	if err := d.PushRunLength(2, 3, src); err != nil {
		t.Fatal(err)
	}
	want := []uint16{0x00FF, 0x00FF, 0x00FF, 0x0002}
	for i, c := range want {
		if got := p.Pixel(2+i, 3); got != c {
			t.Errorf("Pixel(%d, 3) = %#04x, want %#04x", 2+i, got, c)
		}
	}
	if p.Written != 4 {
		t.Errorf("pushed %d pixels, want 4", p.Written)
	}
}

func TestPushRunLengthShortHeader(t *testing.T) {
	d, _ := newPanelDev(t, 8, 8)
	if err := d.PushRunLength(0, 0, Words([]uint16{4})); err == nil {
		t.Error("PushRunLength with a truncated header should fail")
	}
}

func TestPushIndexed(t *testing.T) {
	d, p := newPanelDev(t, 8, 8)
	img := []byte{
		1, 2, 2, // depth, 2x2
		2, 0x00, 0x00, 0xFF, 0xFF, // palette
		0x82, 0x01, // two white
		0x02, 0x00, 0x01, // black, white
	}
	if err := d.PushIndexed(1, 1, Bytes(img, binary.BigEndian)); err != nil {
		t.Fatal(err)
	}
	want := map[image.Point]uint16{{1, 1}: 0xFFFF, {2, 1}: 0xFFFF, {1, 2}: 0x0000, {2, 2}: 0xFFFF}
	for pt, c := range want {
		if got := p.Pixel(pt.X, pt.Y); got != c {
			t.Errorf("Pixel(%v) = %#04x, want %#04x", pt, got, c)
		}
	}
	if p.Written != 4 {
		t.Errorf("pushed %d pixels, want 4", p.Written)
	}
}

func TestPushRGB666(t *testing.T) {
	tests := []struct {
		name string
		push func(d *Dev) error
		want string
	}{
		{"raw", func(d *Dev) error {
			return d.PushRaw(Words([]uint16{0xF800, 0x001F}), 2, true)
		}, "D:F8 00 00 00 00 F8"},
		{"constant", func(d *Dev) error {
			return d.PushConstantColor(0x07E0, 2, true)
		}, "D:00 FC 00 00 FC 00"},
		{"run length", func(d *Dev) error {
			return d.PushRunLength(0, 0, Words([]uint16{2, 1, 0x8002, 0xFFFF}))
		}, "D:F8 FC F8 F8 FC F8"},
		{"indexed", func(d *Dev) error {
			img := []byte{1, 2, 1, 2, 0x00, 0x00, 0xF8, 0x00, 0x82, 0x01}
			return d.PushIndexed(0, 0, Bytes(img, binary.BigEndian))
		}, "D:F8 00 00 F8 00 00"},
		{"fill", func(d *Dev) error {
			return d.FillRect(0, 0, 1, 2, 0x001F)
		}, "D:00 00 F8 00 00 F8"},
		{"pixel", func(d *Dev) error {
			return d.DrawPixel(0, 0, 0xFFFF)
		}, "D:F8 FC F8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newRecorded(t, &Opts{Model: ILI9488RGB666})
			if err := tt.push(d); err != nil {
				t.Fatal(err)
			}
			n := len(rec.Segments)
			if n < 2 {
				t.Fatalf("sent %q, want a memory write and pixels", rec.String())
			}
			if got := rec.Segments[n-2].String(); got != "C:2C" {
				t.Errorf("command = %s, want C:2C", got)
			}
			if got := rec.Segments[n-1].String(); got != tt.want {
				t.Errorf("pixels = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRotationOnPanel(t *testing.T) {
	d, p := newPanelDev(t, 32, 48)
	tests := []struct {
		rot    Rotation
		w, h   int
		origin image.Point // where logical (0, 0) lands in RAM
	}{
		{Rotation0, 32, 48, image.Pt(0, 0)},
		{Rotation90, 48, 32, image.Pt(31, 0)},
		{Rotation180, 32, 48, image.Pt(31, 47)},
		{Rotation270, 48, 32, image.Pt(0, 47)},
		{Rotation(5), 48, 32, image.Pt(31, 0)},
	}
	for _, tt := range tests {
		if err := d.SetRotation(tt.rot); err != nil {
			t.Fatal(err)
		}
		if d.Width() != tt.w || d.Height() != tt.h {
			t.Errorf("rotation %d: size = %dx%d, want %dx%d", tt.rot, d.Width(), d.Height(), tt.w, tt.h)
		}
		if err := d.FillScreen(0); err != nil {
			t.Fatal(err)
		}
		if err := d.DrawPixel(0, 0, 0xFFFF); err != nil {
			t.Fatal(err)
		}
		if got := p.Pixel(tt.origin.X, tt.origin.Y); got != 0xFFFF {
			t.Errorf("rotation %d: origin not at %v", tt.rot, tt.origin)
		}
	}
	if d.Rotation() != Rotation90 {
		t.Errorf("Rotation() = %d, want %d", d.Rotation(), Rotation90)
	}
}

func TestVerticalScrollOnPanel(t *testing.T) {
	d, p := newPanelDev(t, 16, 48)
	if err := d.VerticalScroll(0, 48, 5); err != nil {
		t.Fatal(err)
	}
	if vsp, on := p.ScrollStart(); !on || vsp != 5 {
		t.Errorf("ScrollStart = %d, %v, want 5, true", vsp, on)
	}
	if err := d.VerticalScroll(0, 48, 150); err != nil {
		t.Fatal(err)
	}
	if _, on := p.ScrollStart(); on {
		t.Error("out of range offset did not end scrolling")
	}
}

func TestInvertOnPanel(t *testing.T) {
	d, p := newPanelDev(t, 4, 4)
	if err := d.InvertDisplay(true); err != nil {
		t.Fatal(err)
	}
	if !p.Inverted() {
		t.Error("InvertDisplay(true) did not invert")
	}
	if err := d.InvertDisplay(false); err != nil {
		t.Fatal(err)
	}
	if p.Inverted() {
		t.Error("InvertDisplay(false) did not restore")
	}
}
