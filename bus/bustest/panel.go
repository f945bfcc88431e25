package bustest

import (
	"image"

	"github.com/flavioheleno/tftspi/bus"
	"github.com/flavioheleno/tftspi/image565"
)

// MADCTL bits understood by Panel.
const (
	MY byte = 0x80
	MX byte = 0x40
	MV byte = 0x20
)

// DCS opcodes handled by Panel.
const (
	cmdNOP     = 0x00
	cmdSWRESET = 0x01
	cmdNORON   = 0x13
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdRAMRD   = 0x2E
	cmdVSCRDEF = 0x33
	cmdMADCTL  = 0x36
	cmdVSCRSAD = 0x37
	cmdCOLMOD  = 0x3A
	cmdRAMWRC  = 0x3C
)

// Panel emulates a MIPI DCS display controller (ILI9341, ILI9486, ST7735
// and friends) attached to a bus.Transport.
//
// Only the commands needed to address, write, read back, rotate, scroll and
// invert are modelled; everything else is accepted and ignored.
type Panel struct {
	// Mount is XORed into MADCTL to model how the glass is mounted relative
	// to the controller's RAM. Use the MX|MY bits the driver sends for
	// rotation 0 so that rotation 0 maps logical (0,0) to RAM (0,0).
	Mount byte
	// Read24 makes RAMRD return 3 bytes (RGB888) per pixel instead of 2.
	Read24 bool
	// InvertedGlass models panels whose glass shows inverted colors unless
	// INVON is set.
	InvertedGlass bool
	// Regs holds the bytes returned when a register is read, after the
	// command byte.
	Regs map[byte][]byte
	// Written counts pixels stored by RAMWR.
	Written int

	w, h int
	ram  []uint16

	madctl    byte
	colmod    byte
	inverted  bool
	on        bool
	scrolling bool
	tfa, vsa  int
	vsp       int

	command    bool
	cmd        byte
	params     []byte
	pix        []byte
	reads      []byte
	readPixels bool
	selected   bool
	dir        bus.Dir

	xs, xe, ys, ye int
	cx, cy         int
}

// NewPanel returns a blank panel with the given native size.
func NewPanel(w, h int) *Panel {
	return &Panel{
		Regs:   map[byte][]byte{},
		w:      w,
		h:      h,
		ram:    make([]uint16, w*h),
		colmod: 0x55,
		xe:     w - 1,
		ye:     h - 1,
	}
}

// Size returns the native dimensions.
func (p *Panel) Size() (w, h int) {
	return p.w, p.h
}

// Pixel returns the RAM content at native coordinates.
func (p *Panel) Pixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return 0
	}
	return p.ram[y*p.w+x]
}

// MADCTL returns the last memory access control value written.
func (p *Panel) MADCTL() byte {
	return p.madctl
}

// Inverted reports whether the glass currently shows inverted colors.
func (p *Panel) Inverted() bool {
	return p.inverted != p.InvertedGlass
}

// On reports whether DISPON was received more recently than DISPOFF.
func (p *Panel) On() bool {
	return p.on
}

// ScrollStart returns the vertical scroll start address and whether scroll
// mode is active.
func (p *Panel) ScrollStart() (int, bool) {
	return p.vsp, p.scrolling
}

// Selected reports whether chip select is asserted.
func (p *Panel) Selected() bool {
	return p.selected
}

// Frame renders what the glass shows: RAM with vertical scrolling and
// inversion applied.
func (p *Panel) Frame() *image565.Image {
	img := image565.New(image.Rect(0, 0, p.w, p.h))
	inv := p.Inverted()
	for y := 0; y < p.h; y++ {
		src := y
		if p.scrolling && p.vsa > 0 && y >= p.tfa && y < p.tfa+p.vsa {
			src = p.tfa + ((y-p.tfa)+(p.vsp-p.tfa))%p.vsa
			if src < p.tfa {
				src += p.vsa
			}
		}
		for x := 0; x < p.w; x++ {
			c := p.Pixel(x, src)
			if inv {
				c = ^c
			}
			img.SetRGB565(x, y, image565.RGB565(c))
		}
	}
	return img
}

// Select implements bus.Transport.
func (p *Panel) Select() error {
	p.selected = true
	return nil
}

// Deselect implements bus.Transport.
func (p *Panel) Deselect() error {
	p.selected = false
	p.pix = p.pix[:0]
	return nil
}

// Command implements bus.Transport.
func (p *Panel) Command() error {
	p.command = true
	return nil
}

// Data implements bus.Transport.
func (p *Panel) Data() error {
	p.command = false
	return nil
}

// SetDirection implements bus.Transport.
func (p *Panel) SetDirection(d bus.Dir) error {
	p.dir = d
	return nil
}

// Write implements bus.Transport.
func (p *Panel) Write(b []byte) (int, error) {
	for _, v := range b {
		_ = p.WriteByte(v)
	}
	return len(b), nil
}

// WriteByte implements bus.Transport.
func (p *Panel) WriteByte(b byte) error {
	if p.command {
		p.exec(b)
	} else {
		p.param(b)
	}
	return nil
}

// ReadByte implements bus.Transport.
func (p *Panel) ReadByte() (byte, error) {
	if len(p.reads) == 0 && p.readPixels {
		var c uint16
		if i := p.addr(); i >= 0 {
			c = p.ram[i]
		}
		if p.Read24 {
			p.reads = append(p.reads, byte(c>>8)&0xF8, byte(c>>3)&0xFC, byte(c<<3)&0xF8)
		} else {
			p.reads = append(p.reads, byte(c>>8), byte(c))
		}
		p.advance()
	}
	if len(p.reads) == 0 {
		return 0, nil
	}
	b := p.reads[0]
	p.reads = p.reads[1:]
	return b, nil
}

func (p *Panel) exec(c byte) {
	p.cmd = c
	p.params = p.params[:0]
	p.pix = p.pix[:0]
	p.reads = nil
	p.readPixels = false
	switch c {
	case cmdNOP:
	case cmdSWRESET:
		p.madctl = 0
		p.colmod = 0x55
		p.inverted = false
		p.scrolling = false
		p.on = false
	case cmdNORON:
		p.scrolling = false
	case cmdINVOFF:
		p.inverted = false
	case cmdINVON:
		p.inverted = true
	case cmdDISPOFF:
		p.on = false
	case cmdDISPON:
		p.on = true
	case cmdRAMWR:
		p.cx, p.cy = p.xs, p.ys
	case cmdRAMRD:
		p.cx, p.cy = p.xs, p.ys
		p.reads = []byte{0} // dummy
		p.readPixels = true
		return
	}
	if r, ok := p.Regs[c]; ok {
		p.reads = append([]byte(nil), r...)
	}
}

func (p *Panel) param(b byte) {
	switch p.cmd {
	case cmdCASET, cmdRASET:
		p.params = append(p.params, b)
		if len(p.params) == 4 {
			s := int(p.params[0])<<8 | int(p.params[1])
			e := int(p.params[2])<<8 | int(p.params[3])
			if p.cmd == cmdCASET {
				p.xs, p.xe = s, e
			} else {
				p.ys, p.ye = s, e
			}
		}
	case cmdMADCTL:
		p.madctl = b
	case cmdCOLMOD:
		p.colmod = b
	case cmdVSCRDEF:
		p.params = append(p.params, b)
		if len(p.params) == 6 {
			p.tfa = int(p.params[0])<<8 | int(p.params[1])
			p.vsa = int(p.params[2])<<8 | int(p.params[3])
		}
	case cmdVSCRSAD:
		p.params = append(p.params, b)
		if len(p.params) == 2 {
			p.vsp = int(p.params[0])<<8 | int(p.params[1])
			p.scrolling = true
		}
	case cmdRAMWR, cmdRAMWRC:
		p.pix = append(p.pix, b)
		n := 2
		if p.colmod&0x07 == 0x06 {
			n = 3
		}
		if len(p.pix) < n {
			return
		}
		var c uint16
		if n == 3 {
			c = uint16(p.pix[0]&0xF8)<<8 | uint16(p.pix[1]&0xFC)<<3 | uint16(p.pix[2])>>3
		} else {
			c = uint16(p.pix[0])<<8 | uint16(p.pix[1])
		}
		p.pix = p.pix[:0]
		if i := p.addr(); i >= 0 {
			p.ram[i] = c
		}
		p.Written++
		p.advance()
	}
}

// addr maps the current column/page address to a RAM index, or -1 when it
// falls outside the panel.
func (p *Panel) addr() int {
	x, y := p.cx, p.cy
	m := p.madctl ^ p.Mount
	if m&MV != 0 {
		x, y = y, x
	}
	if m&MX != 0 {
		x = p.w - 1 - x
	}
	if m&MY != 0 {
		y = p.h - 1 - y
	}
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return -1
	}
	return y*p.w + x
}

func (p *Panel) advance() {
	p.cx++
	if p.cx > p.xe {
		p.cx = p.xs
		p.cy++
		if p.cy > p.ye {
			p.cy = p.ys
		}
	}
}

var _ bus.Transport = (*Panel)(nil)
