package fields

import (
	"github.com/provide-io/emfsrc/pkg/emf/cursor"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// Comment identifiers stored in the first four bytes of comment data.
const (
	CommentEMFPlus uint32 = 0x2B464D45 // "EMF+"
	CommentPublic  uint32 = 0x43494447 // "GDIC"
)

// EMF+ records embedded in a comment: type u16, flags u16, size u32,
// dataSize u32, then data.
const emfPlusRecordHeaderSize = 12

// Comment is an EMR_GDICOMMENT. Only the EMF+ record kinds are named;
// their payloads are left alone.
type Comment struct {
	DataSize   uint32 // 0
	Identifier uint32 // 4, when DataSize >= 4
	PublicType uint32 // 8, for GDIC comments
	PlusKinds  []gdi.RecordType
}

func DecodeComment(data []byte, size uint32) (Comment, error) {
	c := open(data, size, 4)
	cm := Comment{DataSize: c.Uint32(0)}
	body := c.Bytes(4, int(cm.DataSize))
	if c.Err() != nil {
		return Comment{}, c.Err()
	}
	if len(body) < 4 {
		return cm, nil
	}

	b := cursor.New(body, uint32(len(body)))
	cm.Identifier = b.Uint32(0)
	switch cm.Identifier {
	case CommentPublic:
		cm.PublicType = b.Uint32(4)
	case CommentEMFPlus:
		cm.PlusKinds = plusKinds(body[4:])
	}
	return cm, nil
}

// plusKinds walks the EMF+ record chain and stops at the first record
// whose size is not a multiple of 4 or runs past the comment.
func plusKinds(chain []byte) []gdi.RecordType {
	var kinds []gdi.RecordType
	c := cursor.New(chain, uint32(len(chain)))
	off := 0
	for c.Has(off, emfPlusRecordHeaderSize) {
		kind := c.Uint16(off)
		size := c.Uint32(off + 4)
		if size < emfPlusRecordHeaderSize || size%4 != 0 || !c.Has(off, int(size)) {
			break
		}
		kinds = append(kinds, gdi.RecordType(kind))
		off += int(size)
	}
	return kinds
}
