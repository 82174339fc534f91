package bmfont

import (
	"fmt"
)

// BlockTag identifies the type of a block.
type BlockTag uint8

// see BlockTag
const (
	InfoBlock    BlockTag = 1
	CommonBlock  BlockTag = 2
	PagesBlock   BlockTag = 3
	CharsBlock   BlockTag = 4
	KerningBlock BlockTag = 5
)

func (tag BlockTag) String() string {
	switch tag {
	case InfoBlock:
		return "info"
	case CommonBlock:
		return "common"
	case PagesBlock:
		return "pages"
	case CharsBlock:
		return "chars"
	case KerningBlock:
		return "kerning"
	}
	return fmt.Sprintf("unknown(%d)", uint8(tag))
}

// Block is a tagged and length-prefixed segment of a BMFont file.
type Block struct {
	Tag  BlockTag
	Data []byte
}

// Blocks returns all blocks of a binary BMFont file in file order without decoding them, including
// those of unknown type. The returned data does not reference b.
func Blocks(b []byte) ([]Block, error) {
	br, err := newBlockReader(b)
	if err != nil {
		return nil, err
	}

	blocks := []Block{}
	for {
		tag, data, ok, err := br.Next()
		if err != nil {
			return nil, err
		} else if !ok {
			break
		}
		blocks = append(blocks, Block{
			Tag:  tag,
			Data: append([]byte{}, data...),
		})
	}
	return blocks, nil
}

type blockReader struct {
	r *binaryReader
}

func newBlockReader(b []byte) (*blockReader, error) {
	r := newBinaryReader(b)
	if err := parseHeader(r); err != nil {
		return nil, err
	}
	return &blockReader{r}, nil
}

// Next returns the next block. It returns false when the data is exhausted.
func (br *blockReader) Next() (BlockTag, []byte, bool, error) {
	if br.r.Len() == 0 {
		return 0, nil, false, nil
	}

	tag := BlockTag(br.r.ReadByte())
	size := br.r.ReadUint32()
	data := br.r.ReadBytes(size)
	if br.r.EOF() {
		return tag, nil, false, fmt.Errorf("%v block: %w", tag, ErrTruncatedBlock)
	}
	return tag, data, true, nil
}
