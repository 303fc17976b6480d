// Package cursor reads little-endian fields at fixed offsets from a record
// payload without ever reading past its declared size.
package cursor

import (
	"encoding/binary"
	"fmt"
	"math"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

// RecordPrefixSize is the size of the type/size pair that precedes every
// payload. Offsets stored inside records are relative to the record start.
const RecordPrefixSize = 8

// Cursor is a bounds-checked view over one payload. The first failed read
// sticks: later reads return zero values and Err reports the first failure.
type Cursor struct {
	data []byte
	err  error
}

// New returns a cursor limited to min(len(data), size) bytes.
func New(data []byte, size uint32) *Cursor {
	if uint64(size) < uint64(len(data)) {
		data = data[:size]
	}
	return &Cursor{data: data}
}

// Len returns the number of readable bytes.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Err returns the first read error, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Has reports whether n bytes are readable at off.
func (c *Cursor) Has(off, n int) bool {
	return off >= 0 && n >= 0 && off <= len(c.data) && n <= len(c.data)-off
}

func (c *Cursor) span(off, n int) []byte {
	if c.err != nil {
		return nil
	}
	if !c.Has(off, n) {
		c.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", emferrors.ErrTruncated, n, off, len(c.data))
		return nil
	}
	return c.data[off : off+n]
}

// Require fails the cursor unless the payload holds at least n bytes.
func (c *Cursor) Require(n int) bool {
	c.span(0, n)
	return c.err == nil
}

func (c *Cursor) Uint8(off int) uint8 {
	b := c.span(off, 1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) Uint16(off int) uint16 {
	b := c.span(off, 2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (c *Cursor) Int16(off int) int16 {
	return int16(c.Uint16(off))
}

func (c *Cursor) Uint32(off int) uint32 {
	b := c.span(off, 4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *Cursor) Int32(off int) int32 {
	return int32(c.Uint32(off))
}

func (c *Cursor) Float32(off int) float32 {
	return math.Float32frombits(c.Uint32(off))
}

// Bytes returns n bytes at off. The slice aliases the payload and must not
// be modified or retained past the callback.
func (c *Cursor) Bytes(off, n int) []byte {
	return c.span(off, n)
}

// Count reads a 32-bit element count at off and checks that count elements
// of elemSize bytes fit starting at start.
func (c *Cursor) Count(off, start, elemSize int) int {
	n := c.Uint32(off)
	if c.err != nil {
		return 0
	}
	if elemSize > 0 && uint64(n)*uint64(elemSize) > uint64(len(c.data)) {
		c.err = fmt.Errorf("%w: %d elements of %d bytes at offset %d, have %d", emferrors.ErrTruncated, n, elemSize, start, len(c.data))
		return 0
	}
	if c.span(start, int(n)*elemSize) == nil {
		return 0
	}
	return int(n)
}

// Embedded translates an offset/length pair stored in the record (relative
// to the record start) into payload coordinates and returns those bytes.
func (c *Cursor) Embedded(recordOff, n uint32) []byte {
	if c.err != nil {
		return nil
	}
	if n == 0 {
		return []byte{}
	}
	if recordOff < RecordPrefixSize {
		c.err = fmt.Errorf("%w: offset %d points into the record prefix", emferrors.ErrBadOffset, recordOff)
		return nil
	}
	off := uint64(recordOff) - RecordPrefixSize
	if off+uint64(n) > uint64(len(c.data)) {
		c.err = fmt.Errorf("%w: %d bytes at record offset %d, payload is %d bytes", emferrors.ErrBadOffset, n, recordOff, len(c.data))
		return nil
	}
	return c.data[off : off+uint64(n)]
}

// Fail records err unless an earlier error is already set.
func (c *Cursor) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
