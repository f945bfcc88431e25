package image565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB565
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 0xFF, 0xFF, 0xFF, 0xFFFF},
		{"red", 0xFF, 0, 0, 0xF800},
		{"green", 0, 0xFF, 0, 0x07E0},
		{"blue", 0, 0, 0xFF, 0x001F},
		{"low bits dropped", 0x07, 0x03, 0x07, 0x0000},
		{"gray", 0x88, 0x88, 0x88, 0x8C51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Pack(%#x, %#x, %#x) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestChannels(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint8
	}{
		{"black", 0x0000, 0, 0, 0},
		{"white", 0xFFFF, 0xFF, 0xFF, 0xFF},
		{"red", 0xF800, 0xFF, 0, 0},
		{"green", 0x07E0, 0, 0xFF, 0},
		{"blue", 0x001F, 0, 0, 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.Channels()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Channels() = (%#x, %#x, %#x), want (%#x, %#x, %#x)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestPackChannelsRoundTrip(t *testing.T) {
	for _, c := range []RGB565{0x0000, 0x1234, 0x8C51, 0xA5A5, 0xFFFF} {
		if got := Pack(c.Channels()); got != c {
			t.Errorf("Pack(%#04x.Channels()) = %#04x", c, got)
		}
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB565
	}{
		{"passthrough", RGB565(0x1234), 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"gray", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 0x8C51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model.Convert(tt.input).(RGB565); got != tt.want {
				t.Errorf("Model.Convert(%v) = %#04x, want %#04x", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x320", image.Rect(0, 0, 240, 320), 480, 153600},
		{"odd width", image.Rect(0, 0, 5, 2), 10, 20},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
		{"empty", image.Rect(0, 0, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(tt.rect)
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
			if img.Bounds() != tt.rect {
				t.Errorf("Bounds() = %v, want %v", img.Bounds(), tt.rect)
			}
		})
	}
}

func TestSetAndAt(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 2))

	img.SetRGB565(1, 0, 0xF800)
	img.Set(3, 1, color.RGBA{0, 0, 0xFF, 0xFF})

	if got := img.RGB565At(1, 0); got != 0xF800 {
		t.Errorf("RGB565At(1, 0) = %#04x, want 0xf800", got)
	}
	if got := img.RGB565At(3, 1); got != 0x001F {
		t.Errorf("RGB565At(3, 1) = %#04x, want 0x001f", got)
	}
	// Big-endian storage.
	if img.Pix[2] != 0xF8 || img.Pix[3] != 0x00 {
		t.Errorf("Pix[2:4] = %#v, want F8 00", img.Pix[2:4])
	}
	if got := img.At(0, 0).(RGB565); got != 0 {
		t.Errorf("At(0, 0) = %#04x, want 0", got)
	}
}

func TestOutOfBounds(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 2))
	img.SetRGB565(-1, 0, 0xFFFF)
	img.SetRGB565(2, 0, 0xFFFF)
	img.SetRGB565(0, 2, 0xFFFF)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = %#x, want 0", i, b)
		}
	}
	if got := img.RGB565At(5, 5); got != 0 {
		t.Errorf("RGB565At(5, 5) = %#04x, want 0", got)
	}
}

func TestDrawCompatibility(t *testing.T) {
	img := New(image.Rect(0, 0, 8, 4))
	draw.Draw(img, image.Rect(2, 1, 6, 3), image.NewUniform(color.White), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := RGB565(0)
			if x >= 2 && x < 6 && y >= 1 && y < 3 {
				want = 0xFFFF
			}
			if got := img.RGB565At(x, y); got != want {
				t.Errorf("(%d, %d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestSubImage(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 4))
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*Image)
	sub.SetRGB565(2, 2, 0x1234)
	if got := img.RGB565At(2, 2); got != 0x1234 {
		t.Errorf("parent pixel = %#04x, want 0x1234", got)
	}
	if got := sub.Bounds(); got != image.Rect(1, 1, 3, 3) {
		t.Errorf("sub bounds = %v", got)
	}
}

func TestRGBA(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 1))
	img.SetRGB565(1, 0, 0xF800)
	out := img.RGBA()
	if got := out.RGBAAt(1, 0); got != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Errorf("RGBAAt(1, 0) = %v", got)
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Errorf("RGBAAt(0, 0) = %v", got)
	}
}
