package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/bmfont"
)

type Inspect struct {
	Chars   bool   `short:"c" desc:"List characters"`
	Kerning bool   `short:"k" desc:"List kerning pairs"`
	Blocks  bool   `short:"b" desc:"List raw blocks"`
	Input   string `index:"0" desc:"Input file"`
}

func main() {
	root := argp.NewCmd(&Inspect{}, "Inspect binary BMFont files")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Inspect) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}

	if cmd.Blocks {
		blocks, err := bmfont.Blocks(b)
		if err != nil {
			return err
		}
		fmt.Printf("File: %s\n\n", filepath.Base(cmd.Input))
		fmt.Printf("Blocks:\n")
		for i, block := range blocks {
			fmt.Printf("  %2d  %-10v  length=%d\n", i, block.Tag, len(block.Data))
		}
		return nil
	}

	font, err := bmfont.Parse(b)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n", filepath.Base(cmd.Input))
	if info := font.Info; info != nil {
		fmt.Printf("\nInfo:\n")
		fmt.Printf("  face=%q size=%d stretchH=%d aa=%d outline=%d\n", info.FontName, info.FontSize, info.StretchH, info.AA, info.Outline)
		fmt.Printf("  charset=%d unicode=%v smooth=%v bold=%v italic=%v fixedHeight=%v\n", info.CharSet, info.Unicode(), info.Smooth(), info.Bold(), info.Italic(), info.FixedHeight())
		fmt.Printf("  padding=%v spacing=%v\n", info.Padding, info.Spacing)
	}
	if common := font.Common; common != nil {
		fmt.Printf("\nCommon:\n")
		fmt.Printf("  lineHeight=%d base=%d scaleW=%d scaleH=%d pages=%d packed=%v\n", common.LineHeight, common.Base, common.ScaleW, common.ScaleH, common.Pages, common.Packed())
		fmt.Printf("  alpha=%v red=%v green=%v blue=%v\n", common.Alpha(), common.Red(), common.Green(), common.Blue())
	}
	fmt.Printf("\nPages:\n")
	for i, page := range font.Pages {
		fmt.Printf("  %2d  %s\n", i, page)
	}
	fmt.Printf("\nChars: %d\nKerning pairs: %d\n", len(font.Chars), len(font.Kerning))

	if cmd.Chars {
		ids := make([]uint32, 0, len(font.Chars))
		for id := range font.Chars {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		fmt.Printf("\nChars:\n")
		for _, id := range ids {
			char := font.Chars[id]
			fmt.Printf("  %6d  %-3s  x=%d y=%d width=%d height=%d xoffset=%d yoffset=%d xadvance=%d page=%d chnl=%v\n", id, printable(font, id), char.X, char.Y, char.Width, char.Height, char.XOffset, char.YOffset, char.XAdvance, char.Page, char.Channels())
		}
	}

	if cmd.Kerning {
		fmt.Printf("\nKerning:\n")
		for _, pair := range font.Kerning {
			fmt.Printf("  %6d  %6d  %-3s  amount=%d\n", pair.First, pair.Second, printable(font, pair.First)+printable(font, pair.Second), pair.Amount)
		}
	}
	return nil
}

func printable(font *bmfont.Font, id uint32) string {
	r, ok := font.Rune(id)
	if !ok || !unicode.IsPrint(r) {
		return "?"
	}
	return string(r)
}
