package emitter

import (
	"strings"

	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// extSelectClipRgn rebuilds the region as the union of its rectangles.
// An empty region resets the clip.
func (s *Session) extSelectClipRgn(b *block, data []byte, size uint32) error {
	r, err := fields.DecodeExtSelectClipRgn(data, size)
	if err != nil {
		return err
	}
	mode := gdi.ClipRgnMergeMode(r.Mode)
	if r.Empty {
		b.call("ExtSelectClipRgn", NullArg, mode)
		return nil
	}

	b.open()
	rects := b.array(rectType, rectTypeSize, "rects", rectElems(r.Rects))
	b.line("HRGN hRgn = CreateRectRgn(0, 0, 0, 0);")
	if rects != NullArg {
		b.linef("for (int i = 0; i < %d; ++i) {", len(r.Rects))
		b.depth++
		b.linef("HRGN hPart = CreateRectRgnIndirect(&%s[i]);", rects)
		b.line("CombineRgn(hRgn, hRgn, hPart, RGN_OR);")
		b.line("DeleteObject(hPart);")
		b.depth--
		b.line("}")
	}
	b.call("ExtSelectClipRgn", "hRgn", mode)
	b.line("DeleteObject(hRgn);")
	b.close()
	return nil
}

// comment describes a GdiComment; it has no replayable effect.
func (s *Session) comment(b *block, data []byte, size uint32) error {
	cm, err := fields.DecodeComment(data, size)
	if err != nil {
		return err
	}
	switch {
	case cm.Identifier == fields.CommentEMFPlus && len(cm.PlusKinds) > 0:
		names := make([]string, len(cm.PlusKinds))
		for i, k := range cm.PlusKinds {
			names[i] = k.String()
		}
		b.linef("// GdiComment: EMF+ records %s", strings.Join(names, ", "))
	case cm.Identifier == fields.CommentEMFPlus:
		b.line("// GdiComment: EMF+ without records")
	case cm.Identifier == fields.CommentPublic:
		b.linef("// GdiComment: public comment type %d", cm.PublicType)
	default:
		b.linef("// GdiComment: %d bytes of private data", cm.DataSize)
	}
	return nil
}
