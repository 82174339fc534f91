package bmfont

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/text/encoding/charmap"
)

func TestInfoEncoding(t *testing.T) {
	test.T(t, (&Info{CharSet: AnsiCharSet}).Encoding(), charmap.Windows1252)
	test.T(t, (&Info{CharSet: RussianCharSet}).Encoding(), charmap.Windows1251)
	test.T(t, (&Info{CharSet: OEMCharSet}).Encoding(), charmap.CodePage437)
	test.That(t, (&Info{CharSet: SymbolCharSet}).Encoding() == nil)
	test.That(t, (&Info{CharSet: 42}).Encoding() == nil)
}

func TestFontRune(t *testing.T) {
	var tts = []struct {
		info *Info
		id   uint32
		r    rune
		ok   bool
	}{
		{nil, 65, 'A', true},
		{nil, 0x1F600, '😀', true},
		{nil, 0x110000, 0xFFFD, false},
		{&Info{BitField: 0x02}, 0x20AC, '€', true},
		{&Info{CharSet: AnsiCharSet}, 0x41, 'A', true},
		{&Info{CharSet: AnsiCharSet}, 0x80, '€', true},
		{&Info{CharSet: AnsiCharSet}, 0xE9, 'é', true},
		{&Info{CharSet: RussianCharSet}, 0xC0, 'А', true},
		{&Info{CharSet: GreekCharSet}, 0xE1, 'α', true},
		{&Info{CharSet: ShiftJISCharSet}, 0x41, 'A', true},
		{&Info{CharSet: ShiftJISCharSet}, 0x82A0, 'あ', true},
		{&Info{CharSet: AnsiCharSet}, 0x4142, 0xFFFD, false},
		{&Info{CharSet: AnsiCharSet}, 0x10000, 0xFFFD, false},
		{&Info{CharSet: SymbolCharSet}, 0x41, 0xFFFD, false},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprintf("%X", tt.id), func(t *testing.T) {
			font := &Font{Info: tt.info}
			r, ok := font.Rune(tt.id)
			test.T(t, ok, tt.ok)
			test.T(t, r, tt.r)
		})
	}
}
