package bmfont

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	charSize    = 20
	kerningSize = 10
)

func parseInfo(b []byte) (*Info, error) {
	r := newBinaryReader(b)
	info := &Info{}
	info.FontSize = r.ReadInt16()
	info.BitField = r.ReadByte()
	info.CharSet = r.ReadByte()
	info.StretchH = r.ReadUint16()
	info.AA = r.ReadByte()
	copy(info.Padding[:], r.ReadBytes(4))
	copy(info.Spacing[:], r.ReadBytes(2))
	info.Outline = r.ReadByte()
	if r.EOF() {
		return nil, ErrTruncatedBlock
	}

	name, err := readText(r.ReadRest())
	if err != nil {
		return nil, err
	}
	info.FontName = string(bytes.TrimRight(name, "\x00"))
	return info, nil
}

func parseCommon(b []byte) (*Common, error) {
	r := newBinaryReader(b)
	common := &Common{}
	common.LineHeight = r.ReadUint16()
	common.Base = r.ReadUint16()
	common.ScaleW = r.ReadUint16()
	common.ScaleH = r.ReadUint16()
	common.Pages = r.ReadUint16()
	common.BitField = r.ReadByte()
	common.AlphaChnl = r.ReadByte()
	common.RedChnl = r.ReadByte()
	common.GreenChnl = r.ReadByte()
	common.BlueChnl = r.ReadByte()
	if r.EOF() {
		return nil, ErrTruncatedBlock
	}
	return common, nil
}

func parsePages(b []byte) ([]string, error) {
	r := newBinaryReader(b)
	pages := []string{}
	for 0 < r.Len() {
		name, err := readText(r.ReadUntil(0x00))
		if err != nil {
			return nil, err
		}
		pages = append(pages, string(name))
	}
	return pages, nil
}

func parseChars(b []byte) (map[uint32]Char, error) {
	r := newBinaryReader(b)
	chars := make(map[uint32]Char, len(b)/charSize)
	for 0 < r.Len() {
		char := Char{}
		char.ID = r.ReadUint32()
		char.X = r.ReadUint16()
		char.Y = r.ReadUint16()
		char.Width = r.ReadUint16()
		char.Height = r.ReadUint16()
		char.XOffset = r.ReadInt16()
		char.YOffset = r.ReadInt16()
		char.XAdvance = r.ReadInt16()
		char.Page = r.ReadByte()
		char.Chnl = r.ReadByte()
		if r.EOF() {
			return nil, ErrTruncatedBlock
		}
		chars[char.ID] = char
	}
	return chars, nil
}

func parseKerning(b []byte) ([]KerningPair, error) {
	r := newBinaryReader(b)
	kerning := make([]KerningPair, 0, len(b)/kerningSize)
	for 0 < r.Len() {
		pair := KerningPair{}
		pair.First = r.ReadUint32()
		pair.Second = r.ReadUint32()
		pair.Amount = r.ReadInt16()
		if r.EOF() {
			return nil, ErrTruncatedBlock
		}
		kerning = append(kerning, pair)
	}
	return kerning, nil
}

// readText validates that b is UTF-8 and returns it.
func readText(b []byte) ([]byte, error) {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
		return nil, ErrInvalidEncoding
	}
	return b, nil
}
