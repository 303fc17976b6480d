package fields

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/provide-io/emfsrc/pkg/emf/cursor"
	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

var (
	ansi    encoding.Encoding = charmap.Windows1252
	utf16le encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// DecodeANSI converts Windows-1252 bytes to UTF-8.
func DecodeANSI(b []byte) (string, error) {
	out, err := ansi.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode ANSI text: %w", err)
	}
	return string(out), nil
}

// DecodeUTF16 converts UTF-16LE bytes to UTF-8. An odd trailing byte is
// dropped.
func DecodeUTF16(b []byte) (string, error) {
	out, err := utf16le.NewDecoder().Bytes(b[:len(b)&^1])
	if err != nil {
		return "", fmt.Errorf("decode UTF-16 text: %w", err)
	}
	return string(out), nil
}

// cString cuts s at the first NUL.
func cString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// ExtTextOut option bits that change the record layout.
const (
	textOutNoRect = 0x0100
)

// TextOut is an EMR_EXTTEXTOUTA / EMR_EXTTEXTOUTW record.
type TextOut struct {
	Bounds       Rect    // 0
	GraphicsMode uint32  // 16
	ExScale      float32 // 20
	EyScale      float32 // 24
	Reference    Point   // 28
	Chars        uint32  // 36
	Options      uint32  // 44
	HasRect      bool
	Rect         Rect // 48 unless ETO_NO_RECT
	Wide         bool
	Raw          []byte // the string bytes as stored, aliasing the payload
	Text         string
}

// Fixed part of the record: bounds, mode, scales and the EMRTEXT up to offDx.
const textOutMinSize = 68

// DecodeExtTextOut decodes ExtTextOutA (wide=false) or ExtTextOutW.
func DecodeExtTextOut(data []byte, size uint32, wide bool) (TextOut, error) {
	c := open(data, size, textOutMinSize-RectSize)
	t := TextOut{
		Bounds:       readRect(c, 0),
		GraphicsMode: c.Uint32(16),
		ExScale:      c.Float32(20),
		EyScale:      c.Float32(24),
		Reference:    readPoint(c, 28),
		Chars:        c.Uint32(36),
		Options:      c.Uint32(44),
		Wide:         wide,
	}
	offString := c.Uint32(40)
	if t.Options&textOutNoRect == 0 {
		t.HasRect = true
		t.Rect = readRect(c, 48)
	}
	if c.Err() != nil {
		return TextOut{}, c.Err()
	}

	charSize := uint32(1)
	if wide {
		charSize = 2
	}
	if uint64(t.Chars)*uint64(charSize) > uint64(c.Len()) {
		return TextOut{}, fmt.Errorf("%w: %d characters in a %d byte payload", emferrors.ErrTruncated, t.Chars, c.Len())
	}
	raw := c.Embedded(offString, t.Chars*charSize)
	if c.Err() != nil {
		return TextOut{}, c.Err()
	}

	t.Raw = raw
	var err error
	if wide {
		t.Text, err = DecodeUTF16(raw)
	} else {
		t.Text, err = DecodeANSI(raw)
	}
	if err != nil {
		return TextOut{}, err
	}
	return t, nil
}

// Function returns the GDI entry point the record replays with.
func (t TextOut) Function() string {
	if t.Wide {
		return "ExtTextOutW"
	}
	return "ExtTextOutA"
}

// OptionsString renders the ETO_* options.
func (t TextOut) OptionsString() string {
	return gdi.ExtTextOutOptions(t.Options)
}

func readUTF16Field(c *cursor.Cursor, off, chars int) (string, error) {
	b := c.Bytes(off, 2*chars)
	if c.Err() != nil {
		return "", c.Err()
	}
	s, err := DecodeUTF16(b)
	if err != nil {
		return "", err
	}
	return cString(s), nil
}
