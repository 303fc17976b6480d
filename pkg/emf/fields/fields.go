// Package fields decodes EMF record payloads into typed values.
//
// Every decoder takes the payload that follows the 8-byte record prefix and
// the declared payload size, reads fixed offsets through a bounds-checked
// cursor and returns either a complete value or an error wrapping
// ErrTruncated / ErrBadOffset. Payloads are never modified.
package fields

import (
	"github.com/provide-io/emfsrc/pkg/emf/cursor"
)

// Point is a POINTL.
type Point struct {
	X, Y int32
}

// Rect is a RECTL.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Size is a SIZEL.
type Size struct {
	CX, CY int32
}

// XForm is a world-space transform.
type XForm struct {
	M11, M12, M21, M22, Dx, Dy float32
}

// Structure sizes in bytes.
const (
	PointSize      = 8
	ShortPointSize = 4
	RectSize       = 16
	SizeSize       = 8
	XFormSize      = 24
)

func readPoint(c *cursor.Cursor, off int) Point {
	return Point{X: c.Int32(off), Y: c.Int32(off + 4)}
}

func readShortPoint(c *cursor.Cursor, off int) Point {
	return Point{X: int32(c.Int16(off)), Y: int32(c.Int16(off + 2))}
}

func readRect(c *cursor.Cursor, off int) Rect {
	return Rect{
		Left:   c.Int32(off),
		Top:    c.Int32(off + 4),
		Right:  c.Int32(off + 8),
		Bottom: c.Int32(off + 12),
	}
}

func readSize(c *cursor.Cursor, off int) Size {
	return Size{CX: c.Int32(off), CY: c.Int32(off + 4)}
}

func readXForm(c *cursor.Cursor, off int) XForm {
	return XForm{
		M11: c.Float32(off),
		M12: c.Float32(off + 4),
		M21: c.Float32(off + 8),
		M22: c.Float32(off + 12),
		Dx:  c.Float32(off + 16),
		Dy:  c.Float32(off + 20),
	}
}

// readPoints reads n points starting at off, widening 16-bit points.
func readPoints(c *cursor.Cursor, off, n int, short bool) []Point {
	size := PointSize
	if short {
		size = ShortPointSize
	}
	if !c.Has(off, n*size) {
		c.Bytes(off, n*size)
		return nil
	}
	points := make([]Point, n)
	for i := range points {
		if short {
			points[i] = readShortPoint(c, off+i*size)
		} else {
			points[i] = readPoint(c, off+i*size)
		}
	}
	return points
}

func readUint32s(c *cursor.Cursor, off, n int) []uint32 {
	if !c.Has(off, n*4) {
		c.Bytes(off, n*4)
		return nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = c.Uint32(off + 4*i)
	}
	return out
}

// open starts a decode that needs at least need payload bytes.
func open(data []byte, size uint32, need int) *cursor.Cursor {
	c := cursor.New(data, size)
	c.Require(need)
	return c
}
