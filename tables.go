package tftspi

// Power-on register tables.
//
// 8-bit tables are records of {opcode, n, n parameter bytes}; an opcode of
// delay8 sleeps n milliseconds instead. 16-bit tables are {register, value}
// pairs; a register of delay16 sleeps value milliseconds.

const (
	delay8  = 0x7F
	delay16 = 0xFFFF
)

// ILI932x registers.
const (
	ili932xStartOsc       = 0x00
	ili932xDrivOutCtrl    = 0x01
	ili932xDrivWavCtrl    = 0x02
	ili932xEntryMod       = 0x03
	ili932xResizeCtrl     = 0x04
	ili932xDispCtrl1      = 0x07
	ili932xDispCtrl2      = 0x08
	ili932xDispCtrl3      = 0x09
	ili932xDispCtrl4      = 0x0A
	ili932xRGBDispIfCtrl1 = 0x0C
	ili932xFrmMarkerPos   = 0x0D
	ili932xRGBDispIfCtrl2 = 0x0F
	ili932xPowCtrl1       = 0x10
	ili932xPowCtrl2       = 0x11
	ili932xPowCtrl3       = 0x12
	ili932xPowCtrl4       = 0x13
	ili932xGRAMHorAd      = 0x20
	ili932xGRAMVerAd      = 0x21
	ili932xPowCtrl7       = 0x29
	ili932xGammaCtrl1     = 0x30
	ili932xGammaCtrl2     = 0x31
	ili932xGammaCtrl3     = 0x32
	ili932xGammaCtrl4     = 0x35
	ili932xGammaCtrl5     = 0x36
	ili932xGammaCtrl6     = 0x37
	ili932xGammaCtrl7     = 0x38
	ili932xGammaCtrl8     = 0x39
	ili932xGammaCtrl9     = 0x3C
	ili932xGammaCtrl10    = 0x3D
	ili932xHorStartAd     = 0x50
	ili932xHorEndAd       = 0x51
	ili932xVerStartAd     = 0x52
	ili932xVerEndAd       = 0x53
	ili932xGateScanCtrl1  = 0x60
	ili932xGateScanCtrl2  = 0x61
	ili932xGateScanCtrl3  = 0x6A
	ili932xPanelIfCtrl1   = 0x90
	ili932xPanelIfCtrl2   = 0x92
	ili932xPanelIfCtrl3   = 0x93
	ili932xPanelIfCtrl4   = 0x95
	ili932xPanelIfCtrl5   = 0x97
	ili932xPanelIfCtrl6   = 0x98
)

var ili932xInit = []uint16{
	ili932xStartOsc, 0x0001,
	delay16, 50,
	ili932xDrivOutCtrl, 0x0100,
	ili932xDrivWavCtrl, 0x0700,
	ili932xEntryMod, 0x1030,
	ili932xResizeCtrl, 0x0000,
	ili932xDispCtrl2, 0x0202,
	ili932xDispCtrl3, 0x0000,
	ili932xDispCtrl4, 0x0000,
	ili932xRGBDispIfCtrl1, 0x0000,
	ili932xFrmMarkerPos, 0x0000,
	ili932xRGBDispIfCtrl2, 0x0000,
	ili932xPowCtrl1, 0x0000,
	ili932xPowCtrl2, 0x0007,
	ili932xPowCtrl3, 0x0000,
	ili932xPowCtrl4, 0x0000,
	delay16, 200,
	ili932xPowCtrl1, 0x1690,
	ili932xPowCtrl2, 0x0227,
	delay16, 50,
	ili932xPowCtrl3, 0x001A,
	delay16, 50,
	ili932xPowCtrl4, 0x1800,
	ili932xPowCtrl7, 0x002A,
	delay16, 50,
	ili932xGammaCtrl1, 0x0000,
	ili932xGammaCtrl2, 0x0000,
	ili932xGammaCtrl3, 0x0000,
	ili932xGammaCtrl4, 0x0206,
	ili932xGammaCtrl5, 0x0808,
	ili932xGammaCtrl6, 0x0007,
	ili932xGammaCtrl7, 0x0201,
	ili932xGammaCtrl8, 0x0000,
	ili932xGammaCtrl9, 0x0000,
	ili932xGammaCtrl10, 0x0000,
	ili932xGRAMHorAd, 0x0000,
	ili932xGRAMVerAd, 0x0000,
	ili932xHorStartAd, 0x0000,
	ili932xHorEndAd, 0x00EF,
	ili932xVerStartAd, 0x0000,
	ili932xVerEndAd, 0x013F,
	ili932xGateScanCtrl1, 0xA700,
	ili932xGateScanCtrl2, 0x0003,
	ili932xGateScanCtrl3, 0x0000,
	ili932xPanelIfCtrl1, 0x0010,
	ili932xPanelIfCtrl2, 0x0000,
	ili932xPanelIfCtrl3, 0x0003,
	ili932xPanelIfCtrl4, 0x1100,
	ili932xPanelIfCtrl5, 0x0000,
	ili932xPanelIfCtrl6, 0x0000,
	ili932xDispCtrl1, 0x0133, // main screen on
}

var ili9341Init = []byte{
	0x01, 0, // soft reset
	delay8, 50,
	0x28, 0, // display off
	0xF6, 3, 0x01, 0x01, 0x00,
	0xCF, 3, 0x00, 0x81, 0x30,
	0xED, 4, 0x64, 0x03, 0x12, 0x81,
	0xE8, 3, 0x85, 0x10, 0x78,
	0xCB, 5, 0x39, 0x2C, 0x00, 0x34, 0x02,
	0xF7, 1, 0x20,
	0xEA, 2, 0x00, 0x00,
	0xB0, 1, 0x00,
	0xB4, 1, 0x00,
	0xC0, 1, 0x21,
	0xC1, 1, 0x11,
	0xC5, 2, 0x3F, 0x3C,
	0xC7, 1, 0xB5,
	0x36, 1, madMY | madBGR,
	0x3A, 1, 0x55, // 16 bits per pixel
	0xB1, 2, 0x00, 0x1B,
	0x36, 1, 0x48,
	0xF2, 1, 0x00,
	0x26, 1, 0x01,
	0xE0, 15, 0x0F, 0x26, 0x24, 0x0B, 0x0E, 0x09, 0x54, 0xA8, 0x46, 0x0C, 0x17, 0x09, 0x0F, 0x07, 0x00,
	0xE1, 15, 0x00, 0x19, 0x1B, 0x04, 0x10, 0x07, 0x2A, 0x47, 0x39, 0x03, 0x06, 0x06, 0x30, 0x38, 0x0F,
	0xB7, 1, 0x07,
	0x11, 0, // sleep out
	delay8, 150,
	0x29, 0, // display on
}

var hx8357dInit = []byte{
	0x01, 0,
	0xB9, 3, 0xFF, 0x83, 0x57, // enable extended commands
	delay8, 250,
	0xB3, 4, 0x00, 0x00, 0x06, 0x06,
	0xB6, 1, 0x25, // -1.52V
	0xB0, 1, 0x68, // 70Hz normal, 55Hz idle
	0xCC, 1, 0x05, // BGR, gate direction swapped
	0xB1, 6, 0x00, 0x15, 0x1C, 0x1C, 0x83, 0xAA,
	0xC0, 6, 0x50, 0x50, 0x01, 0x3C, 0x1E, 0x08,
	0xB4, 7, 0x02, 0x40, 0x00, 0x2A, 0x2A, 0x0D, 0x78,
	0x3A, 1, 0x55,
	0x36, 1, 0xC0,
	0x35, 1, 0x00,
	0x44, 2, 0x00, 0x02,
	0x11, 0,
	delay8, 150,
	0x29, 0,
	delay8, 50,
}

var hx8347gInit = []byte{
	0x2E, 1, 0x89,
	0x29, 1, 0x8F,
	0x2B, 1, 0x02,
	0xE2, 1, 0x00,
	0xE4, 1, 0x01,
	0xE5, 1, 0x10,
	0xE6, 1, 0x01,
	0xE7, 1, 0x10,
	0xE8, 1, 0x70,
	0xF2, 1, 0x00,
	0xEA, 1, 0x00,
	0xEB, 1, 0x20,
	0xEC, 1, 0x3C,
	0xED, 1, 0xC8,
	0xE9, 1, 0x38,
	0xF1, 1, 0x01,
	0x1B, 1, 0x1A,
	0x1A, 1, 0x01,
	0x24, 1, 0x61,
	0x25, 1, 0x5C,
	0x23, 1, 0x88,
	0x18, 1, 0x36,
	0x19, 1, 0x01,
	0x1F, 1, 0x88,
	delay8, 5,
	0x1F, 1, 0x80,
	delay8, 5,
	0x1F, 1, 0x90,
	delay8, 5,
	0x1F, 1, 0xD4,
	delay8, 5,
	0x17, 1, 0x05,
	0x36, 1, 0x00,
	0x28, 1, 0x38,
	delay8, 40,
	0x28, 1, 0x3C,
	0x02, 1, 0x00,
	0x03, 1, 0x00,
	0x04, 1, 0x00,
	0x05, 1, 0xEF,
	0x06, 1, 0x00,
	0x07, 1, 0x00,
	0x08, 1, 0x01,
	0x09, 1, 0x3F,
}

var ili9486Init = []byte{
	0xF1, 6, 0x36, 0x04, 0x00, 0x3C, 0x0F, 0x8F,
	0xF2, 9, 0x18, 0xA3, 0x12, 0x02, 0xB2, 0x12, 0xFF, 0x10, 0x00,
	0xF8, 2, 0x21, 0x04,
	0xF9, 2, 0x00, 0x08,
	0x36, 1, 0x08,
	0xB4, 1, 0x00,
	0xC1, 1, 0x41,
	0xC5, 4, 0x00, 0x91, 0x80, 0x00,
	0xE0, 15, 0x0F, 0x1F, 0x1C, 0x0C, 0x0F, 0x08, 0x48, 0x98, 0x37, 0x0A, 0x13, 0x04, 0x11, 0x0D, 0x00,
	0xE1, 15, 0x0F, 0x32, 0x2E, 0x0B, 0x0D, 0x05, 0x47, 0x75, 0x37, 0x06, 0x10, 0x03, 0x24, 0x20, 0x00,
	0x3A, 1, 0x55,
	0x11, 0,
	0x36, 1, 0x28,
	delay8, 120,
	0x29, 0,
}

// ili9488Init follows the pixel format record prepended by newVariant.
var ili9488Init = []byte{
	0xF7, 4, 0xA9, 0x51, 0x2C, 0x82,
	0xC0, 2, 0x11, 0x09,
	0xC1, 1, 0x41,
	0xC5, 3, 0x00, 0x0A, 0x80,
	0xB1, 2, 0xB0, 0x11,
	0xB4, 1, 0x02,
	0xB6, 2, 0x02, 0x22,
	0xB7, 1, 0xC6,
	0xBE, 2, 0x00, 0x04,
	0xE9, 1, 0x00,
	0x36, 1, 0x08,
	0xE0, 15, 0x00, 0x07, 0x10, 0x09, 0x17, 0x0B, 0x41, 0x89, 0x4B, 0x0A, 0x0C, 0x0E, 0x18, 0x1B, 0x0F,
	0xE1, 15, 0x00, 0x17, 0x1A, 0x04, 0x0E, 0x06, 0x2F, 0x45, 0x43, 0x02, 0x0A, 0x09, 0x32, 0x36, 0x0F,
	0x11, 0,
	delay8, 120,
	0x29, 0,
}

var ili9225Init = []uint16{
	0x01, 0x011C,
	0x02, 0x0100,
	0x03, 0x1030,
	0x08, 0x0808, // back and front porch
	0x0B, 0x1100, // frame cycle
	0x0C, 0x0000, // RGB interface
	0x0F, 0x1401, // frame rate
	0x15, 0x0000, // system interface
	0x20, 0x0000,
	0x21, 0x0000,
	delay16, 50,
	0x10, 0x0800,
	0x11, 0x1F3F,
	delay16, 50,
	0x12, 0x0121,
	0x13, 0x006F,
	0x14, 0x4349,
	0x30, 0x0000,
	0x31, 0x00DB,
	0x32, 0x0000,
	0x33, 0x0000,
	0x34, 0x00DB,
	0x35, 0x0000,
	0x36, 0x00AF,
	0x37, 0x0000,
	0x38, 0x00DB,
	0x39, 0x0000,
	0x50, 0x0001, // gamma
	0x51, 0x200B,
	0x52, 0x0000,
	0x53, 0x0404,
	0x54, 0x0C0C,
	0x55, 0x000C,
	0x56, 0x0101,
	0x57, 0x0400,
	0x58, 0x1108,
	0x59, 0x050C,
	delay16, 50,
	0x07, 0x1017,
}

var st7735sInit = []byte{
	0x11, 0,
	delay8, 120,
	0xB1, 3, 0x05, 0x3C, 0x3C,
	0xB2, 3, 0x05, 0x3C, 0x3C,
	0xB3, 6, 0x05, 0x3C, 0x3C, 0x05, 0x3C, 0x3C,
	0xB4, 1, 0x03,
	0xC0, 3, 0x28, 0x08, 0x04,
	0xC1, 1, 0xC0,
	0xC2, 2, 0x0D, 0x00,
	0xC3, 2, 0x8D, 0x2A,
	0xC4, 2, 0x8D, 0xEE,
	0xC5, 1, 0x1A,
	0x17, 1, 0x05,
	0x36, 1, 0x08,
	0xE0, 16, 0x03, 0x22, 0x07, 0x0A, 0x2E, 0x30, 0x25, 0x2A, 0x28, 0x26, 0x2E, 0x3A, 0x00, 0x01, 0x03, 0x13,
	0xE1, 16, 0x04, 0x16, 0x06, 0x0D, 0x2D, 0x26, 0x23, 0x27, 0x27, 0x25, 0x2D, 0x3B, 0x00, 0x01, 0x04, 0x13,
	0x3A, 1, 0x05,
	0x29, 0,
}

var ssd1283aInit = []uint16{
	0x10, 0x2F8E,
	0x11, 0x000C,
	0x07, 0x0021,
	0x28, 0x0006,
	0x28, 0x0005,
	0x27, 0x057F,
	0x29, 0x89A1,
	0x00, 0x0001,
	delay16, 100,
	0x29, 0x80B0,
	delay16, 30,
	0x29, 0xFFFE,
	0x07, 0x0223,
	delay16, 30,
	0x07, 0x0233,
	0x01, 0x2183,
	0x03, 0x6830,
	0x2F, 0xFFFF,
	0x2C, 0x8000,
	0x27, 0x0570,
	0x02, 0x0300,
	0x0B, 0x580C,
	0x12, 0x0609,
	0x13, 0x3100,
}

var st7796sInit = []byte{
	0xF0, 1, 0xC3, // unlock command set 2
	0xF0, 1, 0x96,
	0x36, 1, 0x68,
	0x3A, 1, 0x05,
	0xB0, 1, 0x80,
	0xB6, 2, 0x00, 0x02,
	0xB5, 4, 0x02, 0x03, 0x00, 0x04,
	0xB1, 2, 0x80, 0x10,
	0xB4, 1, 0x00,
	0xB7, 1, 0xC6,
	0xC5, 1, 0x24,
	0xE4, 1, 0x31,
	0xE8, 8, 0x40, 0x8A, 0x00, 0x00, 0x29, 0x19, 0xA5, 0x33,
	0xC2, 0,
	0xA7, 0,
	0xE0, 14, 0xF0, 0x09, 0x13, 0x12, 0x12, 0x2B, 0x3C, 0x44, 0x4B, 0x1B, 0x18, 0x17, 0x1D, 0x21,
	0xE1, 14, 0xF0, 0x09, 0x13, 0x0C, 0x0D, 0x27, 0x3B, 0x44, 0x4D, 0x0B, 0x17, 0x17, 0x1D, 0x21,
	0x36, 1, 0x48,
	0xF0, 1, 0xC3, // lock
	0xF0, 1, 0x69,
	0x13, 0,
	0x11, 0,
	0x29, 0,
}

// sh1106Init is a run of bare opcodes; parameters are sent as opcodes too.
var sh1106Init = []byte{
	0x8D, 0,
	0x10, 0,
	0xAE, 0,
	0x02, 0,
	0x10, 0,
	0x40, 0,
	0x81, 0,
	0xCF, 0,
	0xA1, 0,
	0xC8, 0,
	0xA6, 0,
	0xA8, 0,
	0x3F, 0,
	0xD3, 0,
	0x00, 0,
	0xD5, 0,
	0x80, 0,
	0xD9, 0,
	0xF1, 0,
	0xDA, 0,
	0x12, 0,
	0xDB, 0,
	0x40, 0,
	0x20, 0,
	0x02, 0,
	0x8D, 0,
	0x14, 0,
	0xA4, 0,
	0xA6, 0,
	0xAF, 0,
}
