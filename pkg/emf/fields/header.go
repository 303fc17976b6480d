package fields

import (
	"fmt"
	"strings"

	"github.com/provide-io/emfsrc/pkg/emf/cursor"
	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

// Signature is the dSignature value of every EMF header (" EMF").
const Signature uint32 = 0x464D4520

// Header payload sizes for the three format revisions.
const (
	HeaderBaseSize        = 80  // up to szlMillimeters
	HeaderExtension1Size  = 92  // adds cbPixelFormat, offPixelFormat, bOpenGL
	HeaderExtension2Size  = 100 // adds szlMicrometers
	headerOpenGLOffset    = 88
	headerMicrometersOffs = 92
)

// Header is an EMR_HEADER (ENHMETAHEADER) record.
type Header struct {
	Bounds         Rect   // 0
	Frame          Rect   // 16
	Signature      uint32 // 32
	Version        uint32 // 36
	Bytes          uint32 // 40
	Records        uint32 // 44
	Handles        uint16 // 48
	Reserved       uint16 // 50
	DescriptionLen uint32 // 52, in WCHARs
	DescriptionOff uint32 // 56, record relative
	PalEntries     uint32 // 60
	Device         Size   // 64
	Millimeters    Size   // 72

	// Present only in newer revisions, inferred from the declared size.
	HasPixelFormat  bool
	PixelFormatSize uint32 // 80
	PixelFormatOff  uint32 // 84
	HasOpenGL       bool
	OpenGL          bool // 88
	HasMicrometers  bool
	Micrometers     Size // 92

	Description []string
}

// DecodeHeader decodes the header record. The description is optional: an
// unreadable description leaves Description empty rather than failing.
func DecodeHeader(data []byte, size uint32) (Header, error) {
	c := open(data, size, HeaderBaseSize)
	h := Header{
		Bounds:         readRect(c, 0),
		Frame:          readRect(c, 16),
		Signature:      c.Uint32(32),
		Version:        c.Uint32(36),
		Bytes:          c.Uint32(40),
		Records:        c.Uint32(44),
		Handles:        c.Uint16(48),
		Reserved:       c.Uint16(50),
		DescriptionLen: c.Uint32(52),
		DescriptionOff: c.Uint32(56),
		PalEntries:     c.Uint32(60),
		Device:         readSize(c, 64),
		Millimeters:    readSize(c, 72),
	}
	if c.Err() != nil {
		return Header{}, c.Err()
	}
	if h.Signature != Signature {
		return Header{}, fmt.Errorf("%w: 0x%08X", emferrors.ErrInvalidSignature, h.Signature)
	}

	// The declared size also covers the description and pixel format that
	// follow the fixed fields, so the fixed part ends at the first of them.
	end := c.Len()
	end = clampEnd(end, h.DescriptionLen, h.DescriptionOff)
	if end >= HeaderExtension1Size {
		h.HasPixelFormat = true
		h.PixelFormatSize = c.Uint32(80)
		h.PixelFormatOff = c.Uint32(84)
		end = clampEnd(end, h.PixelFormatSize, h.PixelFormatOff)
	}
	if end >= HeaderExtension1Size {
		h.HasOpenGL = true
		h.OpenGL = c.Uint32(headerOpenGLOffset) != 0
	} else {
		h.HasPixelFormat = false
		h.PixelFormatSize, h.PixelFormatOff = 0, 0
	}
	if end >= HeaderExtension2Size {
		h.HasMicrometers = true
		h.Micrometers = readSize(c, headerMicrometersOffs)
	}

	if h.DescriptionLen > 0 && uint64(h.DescriptionLen)*2 <= uint64(c.Len()) {
		raw := c.Embedded(h.DescriptionOff, 2*h.DescriptionLen)
		if c.Err() == nil {
			if s, err := DecodeUTF16(raw); err == nil {
				h.Description = splitDescription(s)
			}
		}
	}
	return h, nil
}

// clampEnd lowers end to the payload offset of an embedded block that
// starts inside it.
func clampEnd(end int, n, recordOff uint32) int {
	if n == 0 || recordOff < cursor.RecordPrefixSize+HeaderBaseSize {
		return end
	}
	if off := int64(recordOff) - cursor.RecordPrefixSize; off < int64(end) {
		return int(off)
	}
	return end
}

// splitDescription splits the NUL separated "application\0title\0\0" form.
func splitDescription(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, "\x00") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
