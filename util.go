package bmfont

import (
	"bytes"
	"encoding/binary"
	"math"
)

// binaryReader reads little-endian values from a byte slice. Once a read runs past the end of the
// buffer, all subsequent reads return zero values and EOF reports true.
type binaryReader struct {
	buf []byte
	pos uint32
	eof bool
}

func newBinaryReader(buf []byte) *binaryReader {
	if math.MaxUint32 < uint64(len(buf)) {
		return &binaryReader{nil, 0, true}
	}
	return &binaryReader{buf, 0, false}
}

// EOF returns true if a read ran past the end of the buffer.
func (r *binaryReader) EOF() bool {
	return r.eof
}

func (r *binaryReader) ReadBytes(n uint32) []byte {
	if r.eof || r.Len() < n {
		r.eof = true
		return nil
	}
	buf := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return buf
}

// ReadUntil returns the bytes up to the next delimiter or the end of the buffer. The delimiter is
// consumed but not returned.
func (r *binaryReader) ReadUntil(delim byte) []byte {
	if r.eof {
		return nil
	}
	rest := r.buf[r.pos:]
	if i := bytes.IndexByte(rest, delim); i != -1 {
		r.pos += uint32(i) + 1
		return rest[:i:i]
	}
	r.pos = uint32(len(r.buf))
	return rest
}

// ReadRest returns all remaining bytes.
func (r *binaryReader) ReadRest() []byte {
	return r.ReadBytes(r.Len())
}

func (r *binaryReader) ReadByte() byte {
	b := r.ReadBytes(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *binaryReader) ReadUint16() uint16 {
	b := r.ReadBytes(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *binaryReader) ReadUint32() uint32 {
	b := r.ReadBytes(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *binaryReader) ReadInt16() int16 {
	return int16(r.ReadUint16())
}

func (r *binaryReader) Len() uint32 {
	if r.eof {
		return 0
	}
	return uint32(len(r.buf)) - r.pos
}
