package bmfont

import (
	"fmt"
)

// Smooth returns true if the font was rendered with smoothing.
func (info *Info) Smooth() bool {
	return info.BitField&0x01 != 0
}

// Unicode returns true if character ids are Unicode code points instead of bytes in CharSet.
func (info *Info) Unicode() bool {
	return info.BitField&0x02 != 0
}

// Italic returns true if the font is italic.
func (info *Info) Italic() bool {
	return info.BitField&0x04 != 0
}

// Bold returns true if the font is bold.
func (info *Info) Bold() bool {
	return info.BitField&0x08 != 0
}

// FixedHeight returns true if the font height is the line height instead of the em height.
func (info *Info) FixedHeight() bool {
	return info.BitField&0x10 != 0
}

// Packed returns true if monochrome characters are packed into each of the texture channels. In
// that case the channel contents describe what each channel holds.
func (common *Common) Packed() bool {
	return common.BitField&0x80 != 0
}

// ChannelContent describes what a texture channel holds.
type ChannelContent uint8

// see ChannelContent
const (
	GlyphContent ChannelContent = iota
	OutlineContent
	GlyphOutlineContent
	ZeroContent
	OneContent
)

func (c ChannelContent) String() string {
	switch c {
	case GlyphContent:
		return "glyph"
	case OutlineContent:
		return "outline"
	case GlyphOutlineContent:
		return "glyph+outline"
	case ZeroContent:
		return "zero"
	case OneContent:
		return "one"
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}

func (common *Common) Alpha() ChannelContent {
	return ChannelContent(common.AlphaChnl)
}

func (common *Common) Red() ChannelContent {
	return ChannelContent(common.RedChnl)
}

func (common *Common) Green() ChannelContent {
	return ChannelContent(common.GreenChnl)
}

func (common *Common) Blue() ChannelContent {
	return ChannelContent(common.BlueChnl)
}

// ChannelMask is a set of texture channels.
type ChannelMask uint8

// see ChannelMask
const (
	BlueChannel  ChannelMask = 1
	GreenChannel ChannelMask = 2
	RedChannel   ChannelMask = 4
	AlphaChannel ChannelMask = 8
	AllChannels  ChannelMask = 15
)

// Has returns true if all channels in c are set.
func (m ChannelMask) Has(c ChannelMask) bool {
	return m&c == c
}

func (m ChannelMask) String() string {
	if m == AllChannels {
		return "all"
	}
	s := ""
	for _, c := range []struct {
		mask ChannelMask
		name string
	}{{RedChannel, "r"}, {GreenChannel, "g"}, {BlueChannel, "b"}, {AlphaChannel, "a"}} {
		if m.Has(c.mask) {
			s += c.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Channels returns the texture channels in which the character is found.
func (char Char) Channels() ChannelMask {
	return ChannelMask(char.Chnl)
}

// Char returns the character with the given id.
func (font *Font) Char(id uint32) (Char, bool) {
	char, ok := font.Chars[id]
	return char, ok
}

// Kern returns the kerning amount between two consecutive characters, or zero if there is none.
// When a pair is listed more than once, the last one wins.
func (font *Font) Kern(first, second uint32) int16 {
	for i := len(font.Kerning) - 1; 0 <= i; i-- {
		if pair := font.Kerning[i]; pair.First == first && pair.Second == second {
			return pair.Amount
		}
	}
	return 0
}
