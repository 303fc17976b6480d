package emitter

import (
	"fmt"
	"strings"

	"github.com/provide-io/emfsrc/pkg/emf/fields"
)

// quoteNarrow renders the stored bytes of an ANSI string as a C literal.
// Bytes outside printable ASCII become octal escapes so the literal keeps
// its code page bytes whatever the source encoding.
func quoteNarrow(raw []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range raw {
		switch {
		case c == '"' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&sb, `\%03o`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// quoteWide renders s as the body of an L"" literal. Printable characters
// are kept as UTF-8.
func quoteWide(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\%03o`, r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

func (s *Session) extTextOut(b *block, data []byte, size uint32, wide bool) error {
	t, err := fields.DecodeExtTextOut(data, size, wide)
	if err != nil {
		return err
	}

	b.open()
	if wide {
		b.linef("const wchar_t* text = L%s;", quoteWide(t.Text))
	} else if isASCII(t.Raw) {
		b.linef("const char* text = %s;", quoteNarrow(t.Raw))
	} else {
		b.linef("const char* text = %s; // %s", quoteNarrow(t.Raw), commentText(t.Text))
	}
	rect := NullArg
	if t.HasRect {
		b.linef("RECT rect = %s;", rectLiteral(t.Rect))
		rect = "&rect"
	}
	b.call(t.Function(), itoa(t.Reference.X), itoa(t.Reference.Y), t.OptionsString(), rect, "text", utoa(t.Chars), NullArg)
	b.close()
	return nil
}
