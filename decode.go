package tftspi

// Run-length images are a sequence of 16-bit words:
//
//	width, height, then records of
//	{1 | count:15} color        count copies of color
//	{0 | count:15} c1 ... cN    count literal colors
//
// Indexed images are a byte stream:
//
//	depth, width, height        width and height are bytes when depth is
//	                            non-zero, big-endian words otherwise
//	n, n big-endian colors      the palette
//	records of
//	{1 | count:7} index         count copies of palette[index]
//	{0 | count:7} i1 ... iN     count literal indexes

// decodeRunLength decodes the records of a run-length image until total
// pixels were produced or src ends, calling emit for each run.
func decodeRunLength(src Source, total int, emit func(c uint16, n int)) {
	for total > 0 {
		hdr, ok := src.NextWord()
		if !ok {
			return
		}
		n := int(hdr & 0x7FFF)
		if n > total {
			n = total
		}
		if hdr&0x8000 != 0 {
			c, ok := src.NextWord()
			if !ok {
				return
			}
			emit(c, n)
		} else {
			for i := 0; i < n; i++ {
				c, ok := src.NextWord()
				if !ok {
					return
				}
				emit(c, 1)
			}
		}
		total -= n
	}
}

type indexedHeader struct {
	w, h    int
	palette []uint16
}

// color resolves a palette index. Indexes past the palette are black.
func (h *indexedHeader) color(i byte) uint16 {
	if int(i) < len(h.palette) {
		return h.palette[i]
	}
	return 0
}

func readIndexedHeader(src Source) (indexedHeader, bool) {
	var h indexedHeader
	depth, ok := src.NextByte()
	if !ok {
		return h, false
	}
	if depth != 0 {
		w, ok1 := src.NextByte()
		ht, ok2 := src.NextByte()
		if !ok1 || !ok2 {
			return h, false
		}
		h.w, h.h = int(w), int(ht)
	} else {
		w, ok1 := nextBE16(src)
		ht, ok2 := nextBE16(src)
		if !ok1 || !ok2 {
			return h, false
		}
		h.w, h.h = int(w), int(ht)
	}
	n, ok := src.NextByte()
	if !ok {
		return h, false
	}
	h.palette = make([]uint16, 0, n)
	for i := 0; i < int(n); i++ {
		c, ok := nextBE16(src)
		if !ok {
			return h, false
		}
		h.palette = append(h.palette, c)
	}
	return h, true
}

func nextBE16(src Source) (uint16, bool) {
	hi, ok1 := src.NextByte()
	lo, ok2 := src.NextByte()
	return uint16(hi)<<8 | uint16(lo), ok1 && ok2
}

// decodeIndexed decodes the records of an indexed image until total pixels
// were produced or src ends.
func decodeIndexed(src Source, h *indexedHeader, total int, emit func(c uint16, n int)) {
	for total > 0 {
		b, ok := src.NextByte()
		if !ok {
			return
		}
		n := int(b & 0x7F)
		if n > total {
			n = total
		}
		if b&0x80 != 0 {
			i, ok := src.NextByte()
			if !ok {
				return
			}
			emit(h.color(i), n)
		} else {
			for j := 0; j < n; j++ {
				i, ok := src.NextByte()
				if !ok {
					return
				}
				emit(h.color(i), 1)
			}
		}
		total -= n
	}
}
