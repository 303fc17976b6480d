package fields

import (
	"fmt"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

// Region is an EMR_EXTSELECTCLIPRGN. An empty region (cbRgnData = 0) is
// only valid with RGN_COPY and resets the clip to the default.
type Region struct {
	Mode   uint32 // 4
	Empty  bool
	Bounds Rect // RGNDATAHEADER.rcBound
	Rects  []Rect
}

const (
	rgnDataHeaderSize = 32
	rgnDataOffset     = 8
)

// DecodeExtSelectClipRgn reads cbRgnData at 0, iMode at 4 and the
// RGNDATA (header then rectangles) at 8.
func DecodeExtSelectClipRgn(data []byte, size uint32) (Region, error) {
	c := open(data, size, 8)
	cb := c.Uint32(0)
	r := Region{Mode: c.Uint32(4)}
	if c.Err() != nil {
		return Region{}, c.Err()
	}
	if cb == 0 {
		r.Empty = true
		return r, nil
	}
	if cb < rgnDataHeaderSize {
		return Region{}, fmt.Errorf("%w: region data of %d bytes", emferrors.ErrTruncated, cb)
	}

	const hdr = rgnDataOffset
	count := c.Count(hdr+8, hdr+rgnDataHeaderSize, RectSize)
	r.Bounds = readRect(c, hdr+16)
	if uint64(count)*RectSize > uint64(cb-rgnDataHeaderSize) {
		c.Fail(fmt.Errorf("%w: %d rectangles in %d bytes of region data", emferrors.ErrTruncated, count, cb))
	}
	if c.Err() != nil {
		return Region{}, c.Err()
	}
	r.Rects = make([]Rect, count)
	for i := range r.Rects {
		r.Rects[i] = readRect(c, hdr+rgnDataHeaderSize+i*RectSize)
	}
	return r, c.Err()
}
