package sharecode

import (
	"github.com/cs2cfg/crosshairctl/lib/util"
)

// bitReader consumes a byte slice as a bit stream, least significant bit
// first within each byte, bytes in order. Overrunning the stream is a
// layout-table bug and panics.
type bitReader struct {
	buf []byte
	pos int
}

func (r *bitReader) read(width int) uint64 {
	if width < 0 || width > 64 {
		util.Panicf("sharecode: bit field width %d unsupported", width)
	}
	if r.pos+width > len(r.buf)*8 {
		util.Panicf("sharecode: bit read past end of payload (pos %d, width %d)", r.pos, width)
	}
	var v uint64
	for i := 0; i < width; i++ {
		bit := r.buf[r.pos>>3] >> (r.pos & 7) & 1
		v |= uint64(bit) << i
		r.pos++
	}
	return v
}

// bitWriter is the exact inverse of bitReader over a zeroed buffer.
type bitWriter struct {
	buf []byte
	pos int
}

func (w *bitWriter) write(v uint64, width int) {
	if width < 0 || width > 64 {
		util.Panicf("sharecode: bit field width %d unsupported", width)
	}
	if w.pos+width > len(w.buf)*8 {
		util.Panicf("sharecode: bit write past end of payload (pos %d, width %d)", w.pos, width)
	}
	if width < 64 && v>>uint(width) != 0 {
		util.Panicf("sharecode: value %d overflows %d-bit field", v, width)
	}
	for i := 0; i < width; i++ {
		if v>>uint(i)&1 == 1 {
			w.buf[w.pos>>3] |= 1 << (w.pos & 7)
		}
		w.pos++
	}
}
