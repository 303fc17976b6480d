package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/provide-io/emfsrc/pkg/emf/fields"
)

// block collects the lines of one record.
type block struct {
	buf   strings.Builder
	depth int
	dc    string
}

func (s *Session) newBlock() *block {
	return &block{dc: s.names.Context}
}

func (b *block) String() string {
	return b.buf.String()
}

func (b *block) line(text string) {
	if text != "" {
		b.buf.WriteString(strings.Repeat(Indent, b.depth))
		b.buf.WriteString(text)
	}
	b.buf.WriteByte('\n')
}

func (b *block) linef(format string, args ...any) {
	b.line(fmt.Sprintf(format, args...))
}

// open starts a { } scope for local declarations.
func (b *block) open() {
	b.line("{")
	b.depth++
}

func (b *block) close() {
	b.depth--
	b.line("}")
}

// call writes fn(hdc, args...);
func (b *block) call(fn string, args ...string) {
	b.line(callExpr(fn, append([]string{b.dc}, args...)...) + ";")
}

// assign writes lhs = fn(args...); for object constructors, which take no
// device context.
func (b *block) assign(lhs, fn string, args ...string) {
	b.linef("%s = %s;", lhs, callExpr(fn, args...))
}

func callExpr(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

func itoa[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func utoa[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// float renders the shortest literal that reads back as the same float32.
func float(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func pointArgs(p fields.Point) []string {
	return []string{itoa(p.X), itoa(p.Y)}
}

func rectArgs(r fields.Rect) []string {
	return []string{itoa(r.Left), itoa(r.Top), itoa(r.Right), itoa(r.Bottom)}
}

func rectTuple(r fields.Rect) string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

func sizeTuple(s fields.Size) string {
	return fmt.Sprintf("(%d, %d)", s.CX, s.CY)
}

func rectLiteral(r fields.Rect) string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.Left, r.Top, r.Right, r.Bottom)
}

func xformLiteral(x fields.XForm) string {
	return "{" + strings.Join([]string{
		float(x.M11), float(x.M12), float(x.M21), float(x.M22), float(x.Dx), float(x.Dy),
	}, ", ") + "}"
}

// commentText makes s safe to place after // on a single line.
func commentText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}
