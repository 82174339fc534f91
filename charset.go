package bmfont

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Windows character set identifiers as used by Info.CharSet.
const (
	AnsiCharSet        = 0
	DefaultCharSet     = 1
	SymbolCharSet      = 2
	MacCharSet         = 77
	ShiftJISCharSet    = 128
	HangulCharSet      = 129
	JohabCharSet       = 130
	GB2312CharSet      = 134
	ChineseBig5CharSet = 136
	GreekCharSet       = 161
	TurkishCharSet     = 162
	VietnameseCharSet  = 163
	HebrewCharSet      = 177
	ArabicCharSet      = 178
	BalticCharSet      = 186
	RussianCharSet     = 204
	ThaiCharSet        = 222
	EastEuropeCharSet  = 238
	OEMCharSet         = 255
)

var charSetEncodings = map[uint8]encoding.Encoding{
	AnsiCharSet:        charmap.Windows1252,
	DefaultCharSet:     charmap.Windows1252,
	MacCharSet:         charmap.Macintosh,
	ShiftJISCharSet:    japanese.ShiftJIS,
	HangulCharSet:      korean.EUCKR,
	GB2312CharSet:      simplifiedchinese.GBK,
	ChineseBig5CharSet: traditionalchinese.Big5,
	GreekCharSet:       charmap.Windows1253,
	TurkishCharSet:     charmap.Windows1254,
	VietnameseCharSet:  charmap.Windows1258,
	HebrewCharSet:      charmap.Windows1255,
	ArabicCharSet:      charmap.Windows1256,
	BalticCharSet:      charmap.Windows1257,
	RussianCharSet:     charmap.Windows1251,
	ThaiCharSet:        charmap.Windows874,
	EastEuropeCharSet:  charmap.Windows1250,
	OEMCharSet:         charmap.CodePage437,
}

// Encoding returns the text encoding of the character set, or nil if it is unknown. Symbol and
// Johab character sets are not supported.
func (info *Info) Encoding() encoding.Encoding {
	return charSetEncodings[info.CharSet]
}

// Rune returns the Unicode code point for a character id. For non-Unicode fonts the id is decoded
// using the character set of the font, with ids above 255 holding a lead and a trail byte. It
// returns false if the id cannot be decoded to a single code point.
func (font *Font) Rune(id uint32) (rune, bool) {
	if font.Info == nil || font.Info.Unicode() {
		if utf8.MaxRune < id {
			return utf8.RuneError, false
		}
		return rune(id), true
	}

	enc := font.Info.Encoding()
	if enc == nil {
		return utf8.RuneError, false
	}

	var b []byte
	if id < 0x100 {
		b = []byte{byte(id)}
	} else if id < 0x10000 {
		b = []byte{byte(id >> 8), byte(id)}
	} else {
		return utf8.RuneError, false
	}

	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return utf8.RuneError, false
	}
	r, n := utf8.DecodeRune(s)
	if r == utf8.RuneError || n != len(s) {
		return utf8.RuneError, false
	}
	return r, true
}
