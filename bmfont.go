// Package bmfont decodes the binary variant of the AngelCode BMFont bitmap font descriptor.
// See https://www.angelcode.com/products/bmfont/doc/file_format.html
package bmfont

import (
	"fmt"
)

// ErrInvalidHeader is returned if the data does not start with the BMF version 3 signature.
var ErrInvalidHeader = fmt.Errorf("invalid BMFont header")

// ErrTruncatedBlock is returned if a block or one of its fields extends beyond the available data.
var ErrTruncatedBlock = fmt.Errorf("truncated block")

// ErrInvalidEncoding is returned if the font name or a page name is not valid UTF-8.
var ErrInvalidEncoding = fmt.Errorf("invalid UTF-8 encoding")

// Version is the only supported format version.
const Version = 3

var signature = [4]byte{'B', 'M', 'F', Version}

// Font is a parsed binary BMFont file. Info and Common are nil when their blocks are absent.
type Font struct {
	Info    *Info
	Common  *Common
	Pages   []string        // texture file names, indexed by Char.Page
	Chars   map[uint32]Char // by character id
	Kerning []KerningPair   // in file order, duplicates are retained
}

// Info holds how the font was generated.
type Info struct {
	FontSize int16
	BitField uint8 // see Smooth, Unicode, Italic, Bold, and FixedHeight
	CharSet  uint8
	StretchH uint16
	AA       uint8
	Padding  [4]uint8 // up, right, down, left
	Spacing  [2]uint8 // horizontal, vertical
	Outline  uint8
	FontName string
}

// Common holds information common to all characters.
type Common struct {
	LineHeight uint16
	Base       uint16
	ScaleW     uint16
	ScaleH     uint16
	Pages      uint16
	BitField   uint8 // see Packed
	AlphaChnl  uint8
	RedChnl    uint8
	GreenChnl  uint8
	BlueChnl   uint8
}

// Char describes a single glyph and its location in the texture pages.
type Char struct {
	ID       uint32
	X, Y     uint16
	Width    uint16
	Height   uint16
	XOffset  int16
	YOffset  int16
	XAdvance int16
	Page     uint8
	Chnl     uint8
}

// KerningPair adjusts the advance between two consecutive characters.
type KerningPair struct {
	First  uint32
	Second uint32
	Amount int16
}

// Parse parses a binary BMFont file. The returned font does not reference b. When a block type
// occurs more than once, the last one wins; Chars and Kerning blocks are replaced, not merged.
// Unknown block types are skipped.
func Parse(b []byte) (*Font, error) {
	br, err := newBlockReader(b)
	if err != nil {
		return nil, err
	}

	font := &Font{
		Pages:   []string{},
		Chars:   map[uint32]Char{},
		Kerning: []KerningPair{},
	}
	for {
		tag, data, ok, err := br.Next()
		if err != nil {
			return nil, err
		} else if !ok {
			break
		}

		switch tag {
		case InfoBlock:
			font.Info, err = parseInfo(data)
		case CommonBlock:
			font.Common, err = parseCommon(data)
		case PagesBlock:
			font.Pages, err = parsePages(data)
		case CharsBlock:
			font.Chars, err = parseChars(data)
		case KerningBlock:
			font.Kerning, err = parseKerning(data)
		}
		if err != nil {
			return nil, fmt.Errorf("%v block: %w", tag, err)
		}
	}
	return font, nil
}

func parseHeader(r *binaryReader) error {
	b := r.ReadBytes(4)
	if b == nil || [4]byte(b) != signature {
		return ErrInvalidHeader
	}
	return nil
}
