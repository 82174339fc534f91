package bmfont

import (
	"encoding/binary"
)

// binaryWriter writes little-endian values, it is the counterpart of binaryReader.
type binaryWriter struct {
	buf []byte
}

func newBinaryWriter(buf []byte) *binaryWriter {
	return &binaryWriter{buf[:0]}
}

func (w *binaryWriter) Bytes() []byte {
	return w.buf
}

func (w *binaryWriter) WriteBytes(v []byte) {
	w.buf = append(w.buf, v...)
}

func (w *binaryWriter) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *binaryWriter) WriteString(v string) {
	w.buf = append(w.buf, v...)
}

func (w *binaryWriter) WriteUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *binaryWriter) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *binaryWriter) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// fontData returns a BMF version 3 file containing the given blocks.
func fontData(blocks ...[]byte) []byte {
	w := newBinaryWriter([]byte{})
	w.WriteString("BMF\x03")
	for _, block := range blocks {
		w.WriteBytes(block)
	}
	return w.Bytes()
}

func block(tag BlockTag, data []byte) []byte {
	w := newBinaryWriter([]byte{})
	w.WriteUint8(uint8(tag))
	w.WriteUint32(uint32(len(data)))
	w.WriteBytes(data)
	return w.Bytes()
}

func infoData(info Info) []byte {
	w := newBinaryWriter([]byte{})
	w.WriteInt16(info.FontSize)
	w.WriteUint8(info.BitField)
	w.WriteUint8(info.CharSet)
	w.WriteUint16(info.StretchH)
	w.WriteUint8(info.AA)
	w.WriteBytes(info.Padding[:])
	w.WriteBytes(info.Spacing[:])
	w.WriteUint8(info.Outline)
	w.WriteString(info.FontName)
	w.WriteUint8(0)
	return w.Bytes()
}

func commonData(common Common) []byte {
	w := newBinaryWriter([]byte{})
	w.WriteUint16(common.LineHeight)
	w.WriteUint16(common.Base)
	w.WriteUint16(common.ScaleW)
	w.WriteUint16(common.ScaleH)
	w.WriteUint16(common.Pages)
	w.WriteUint8(common.BitField)
	w.WriteUint8(common.AlphaChnl)
	w.WriteUint8(common.RedChnl)
	w.WriteUint8(common.GreenChnl)
	w.WriteUint8(common.BlueChnl)
	return w.Bytes()
}

func charsData(chars ...Char) []byte {
	w := newBinaryWriter([]byte{})
	for _, char := range chars {
		w.WriteUint32(char.ID)
		w.WriteUint16(char.X)
		w.WriteUint16(char.Y)
		w.WriteUint16(char.Width)
		w.WriteUint16(char.Height)
		w.WriteInt16(char.XOffset)
		w.WriteInt16(char.YOffset)
		w.WriteInt16(char.XAdvance)
		w.WriteUint8(char.Page)
		w.WriteUint8(char.Chnl)
	}
	return w.Bytes()
}

func kerningData(pairs ...KerningPair) []byte {
	w := newBinaryWriter([]byte{})
	for _, pair := range pairs {
		w.WriteUint32(pair.First)
		w.WriteUint32(pair.Second)
		w.WriteInt16(pair.Amount)
	}
	return w.Bytes()
}
