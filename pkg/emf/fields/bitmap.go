package fields

import (
	"fmt"

	"github.com/provide-io/emfsrc/pkg/emf/cursor"
	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

// BitmapInfoHeader is a BITMAPINFOHEADER. BITMAPCOREHEADER sources are
// widened into the same shape.
type BitmapInfoHeader struct {
	Size          uint32 // 0
	Width         int32  // 4
	Height        int32  // 8
	Planes        uint16 // 12
	BitCount      uint16 // 14
	Compression   uint32 // 16
	SizeImage     uint32 // 20
	XPelsPerMeter int32  // 24
	YPelsPerMeter int32  // 28
	ClrUsed       uint32 // 32
	ClrImportant  uint32 // 36
}

const (
	bitmapInfoHeaderSize = 40
	bitmapCoreHeaderSize = 12
)

// DIB is a device-independent bitmap carried by a record: the BITMAPINFO
// (header plus color table) and the pixel bytes. Both slices alias the
// payload.
type DIB struct {
	Header BitmapInfoHeader
	Info   []byte
	Bits   []byte
}

// Rows returns the number of scan lines, whatever the orientation.
func (d *DIB) Rows() int {
	if d.Header.Height < 0 {
		return int(-int64(d.Header.Height))
	}
	return int(d.Header.Height)
}

// readDIB resolves a record-relative offBmi/cbBmi/offBits/cbBits quadruple.
// A zero cbBmi means the record carries no bitmap and yields nil.
func readDIB(c *cursor.Cursor, offBmi, cbBmi, offBits, cbBits uint32) *DIB {
	if c.Err() != nil || cbBmi == 0 {
		return nil
	}
	info := c.Embedded(offBmi, cbBmi)
	bits := c.Embedded(offBits, cbBits)
	if c.Err() != nil {
		return nil
	}

	h := cursor.New(info, cbBmi)
	var hdr BitmapInfoHeader
	hdr.Size = h.Uint32(0)
	switch {
	case hdr.Size == bitmapCoreHeaderSize:
		hdr.Width = int32(h.Uint16(4))
		hdr.Height = int32(h.Int16(6))
		hdr.Planes = h.Uint16(8)
		hdr.BitCount = h.Uint16(10)
	case hdr.Size >= bitmapInfoHeaderSize:
		hdr.Width = h.Int32(4)
		hdr.Height = h.Int32(8)
		hdr.Planes = h.Uint16(12)
		hdr.BitCount = h.Uint16(14)
		hdr.Compression = h.Uint32(16)
		hdr.SizeImage = h.Uint32(20)
		hdr.XPelsPerMeter = h.Int32(24)
		hdr.YPelsPerMeter = h.Int32(28)
		hdr.ClrUsed = h.Uint32(32)
		hdr.ClrImportant = h.Uint32(36)
	default:
		c.Fail(fmt.Errorf("%w: bitmap header size %d", emferrors.ErrBadOffset, hdr.Size))
		return nil
	}
	if h.Err() != nil {
		c.Fail(h.Err())
		return nil
	}
	return &DIB{Header: hdr, Info: info, Bits: bits}
}

// Blit carries the fields of BitBlt, StretchBlt, StretchDIBits and
// SetDIBitsToDevice. Fields a record does not define stay zero.
type Blit struct {
	Bounds    Rect
	XDest     int32
	YDest     int32
	CXDest    int32
	CYDest    int32
	XSrc      int32
	YSrc      int32
	CXSrc     int32
	CYSrc     int32
	ROP       uint32
	XForm     XForm
	BkColor   uint32
	Usage     uint32
	StartScan uint32
	Scans     uint32
	Bitmap    *DIB
}

const (
	bitBltSize        = 92
	stretchBltSize    = 100
	stretchDIBitsSize = 72
	dibitsToDevSize   = 68
)

// DecodeBitBlt decodes EMR_BITBLT.
func DecodeBitBlt(data []byte, size uint32) (Blit, error) {
	c := open(data, size, bitBltSize)
	b := decodeBlt(c)
	return finishBlit(c, b)
}

// DecodeStretchBlt decodes EMR_STRETCHBLT: a BitBlt with a source extent.
func DecodeStretchBlt(data []byte, size uint32) (Blit, error) {
	c := open(data, size, stretchBltSize)
	b := decodeBlt(c)
	b.CXSrc = c.Int32(92)
	b.CYSrc = c.Int32(96)
	return finishBlit(c, b)
}

func decodeBlt(c *cursor.Cursor) Blit {
	b := Blit{
		Bounds:  readRect(c, 0),
		XDest:   c.Int32(16),
		YDest:   c.Int32(20),
		CXDest:  c.Int32(24),
		CYDest:  c.Int32(28),
		ROP:     c.Uint32(32),
		XSrc:    c.Int32(36),
		YSrc:    c.Int32(40),
		XForm:   readXForm(c, 44),
		BkColor: c.Uint32(68),
		Usage:   c.Uint32(72),
	}
	b.Bitmap = readDIB(c, c.Uint32(76), c.Uint32(80), c.Uint32(84), c.Uint32(88))
	return b
}

// DecodeStretchDIBits decodes EMR_STRETCHDIBITS.
func DecodeStretchDIBits(data []byte, size uint32) (Blit, error) {
	c := open(data, size, stretchDIBitsSize)
	b := Blit{
		Bounds: readRect(c, 0),
		XDest:  c.Int32(16),
		YDest:  c.Int32(20),
		XSrc:   c.Int32(24),
		YSrc:   c.Int32(28),
		CXSrc:  c.Int32(32),
		CYSrc:  c.Int32(36),
		Usage:  c.Uint32(56),
		ROP:    c.Uint32(60),
		CXDest: c.Int32(64),
		CYDest: c.Int32(68),
	}
	b.Bitmap = readDIB(c, c.Uint32(40), c.Uint32(44), c.Uint32(48), c.Uint32(52))
	return finishBlit(c, b)
}

// DecodeSetDIBitsToDevice decodes EMR_SETDIBITSTODEVICE.
func DecodeSetDIBitsToDevice(data []byte, size uint32) (Blit, error) {
	c := open(data, size, dibitsToDevSize)
	b := Blit{
		Bounds:    readRect(c, 0),
		XDest:     c.Int32(16),
		YDest:     c.Int32(20),
		XSrc:      c.Int32(24),
		YSrc:      c.Int32(28),
		CXSrc:     c.Int32(32),
		CYSrc:     c.Int32(36),
		Usage:     c.Uint32(56),
		StartScan: c.Uint32(60),
		Scans:     c.Uint32(64),
	}
	b.Bitmap = readDIB(c, c.Uint32(40), c.Uint32(44), c.Uint32(48), c.Uint32(52))
	return finishBlit(c, b)
}

func finishBlit(c *cursor.Cursor, b Blit) (Blit, error) {
	if c.Err() != nil {
		return Blit{}, c.Err()
	}
	return b, nil
}
