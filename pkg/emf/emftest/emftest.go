// Package emftest builds EMF streams and record payloads in memory for
// tests.
package emftest

import (
	"encoding/binary"
	"math"
	"unicode/utf16"

	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// Payload is a little-endian record body under construction.
type Payload []byte

func (p Payload) U32(vs ...uint32) Payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint32(p, v)
	}
	return p
}

func (p Payload) I32(vs ...int32) Payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint32(p, uint32(v))
	}
	return p
}

func (p Payload) U16(vs ...uint16) Payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint16(p, v)
	}
	return p
}

func (p Payload) F32(vs ...float32) Payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint32(p, math.Float32bits(v))
	}
	return p
}

func (p Payload) Raw(b ...byte) Payload {
	return append(p, b...)
}

// UTF16 appends s as UTF-16LE padded with NULs to chars code units.
func (p Payload) UTF16(s string, chars int) Payload {
	units := utf16.Encode([]rune(s))
	for i := 0; i < chars || i < len(units); i++ {
		var u uint16
		if i < len(units) {
			u = units[i]
		}
		p = binary.LittleEndian.AppendUint16(p, u)
	}
	return p
}

// Pad appends zero bytes up to a multiple of 4.
func (p Payload) Pad() Payload {
	for len(p)%4 != 0 {
		p = append(p, 0)
	}
	return p
}

// Size returns the payload length as a declared size.
func (p Payload) Size() uint32 { return uint32(len(p)) }

// Header offsets patched when a stream is finished.
const (
	headerSignature = 0x464D4520
	headerBytesOff  = 8 + 40
	headerCountOff  = 8 + 44
)

// HeaderPayload returns a 100 byte header body declaring handles slots.
func HeaderPayload(handles uint16) Payload {
	return Payload{}.
		I32(0, 0, 99, 99).         // rclBounds
		I32(0, 0, 2600, 2600).     // rclFrame
		U32(headerSignature).      // dSignature
		U32(0x10000).              // nVersion
		U32(0, 0).                 // nBytes, nRecords
		U16(handles, 0).           // nHandles, sReserved
		U32(0, 0, 0).              // nDescription, offDescription, nPalEntries
		I32(1920, 1080, 508, 286). // szlDevice, szlMillimeters
		U32(0, 0, 0).              // cbPixelFormat, offPixelFormat, bOpenGL
		I32(508000, 286000)        // szlMicrometers
}

// Stream assembles a metafile record by record.
type Stream struct {
	buf     []byte
	records int
	ended   bool
}

// NewStream starts a stream with a header declaring handles slots.
func NewStream(handles uint16) *Stream {
	s := &Stream{}
	return s.Record(gdi.EmfRecordTypeHeader, HeaderPayload(handles))
}

// Record appends a record; payload is padded to a multiple of 4.
func (s *Stream) Record(kind gdi.RecordType, payload Payload) *Stream {
	payload = payload.Pad()
	s.buf = binary.LittleEndian.AppendUint32(s.buf, uint32(kind))
	s.buf = binary.LittleEndian.AppendUint32(s.buf, uint32(8+len(payload)))
	s.buf = append(s.buf, payload...)
	s.records++
	if kind == gdi.EmfRecordTypeEOF {
		s.ended = true
	}
	return s
}

// EOF appends an EOF record without a palette.
func (s *Stream) EOF() *Stream {
	return s.Record(gdi.EmfRecordTypeEOF, Payload{}.U32(0, 16, 20))
}

// Bytes finishes the stream, adding an EOF record if none was written, and
// patches the header's byte and record counts.
func (s *Stream) Bytes() []byte {
	if !s.ended {
		s.EOF()
	}
	out := append([]byte(nil), s.buf...)
	binary.LittleEndian.PutUint32(out[headerBytesOff:], uint32(len(out)))
	binary.LittleEndian.PutUint32(out[headerCountOff:], uint32(s.records))
	return out
}

// Unfinished returns the stream as is, without an EOF record or patched
// counts.
func (s *Stream) Unfinished() []byte {
	return append([]byte(nil), s.buf...)
}
