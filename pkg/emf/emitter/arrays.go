package emitter

import (
	"fmt"
	"strings"

	"github.com/provide-io/emfsrc/pkg/emf/fields"
)

// array declares "typ name[]" holding elems, one line of elements, and
// returns the expression that passes it. An empty array is only the marker
// comment and passes nullptr.
func (b *block) array(typ string, size int, name string, elems []string) string {
	if len(elems) == 0 {
		b.line(EmptyArrayMarker)
		return NullArg
	}
	b.linef("%s %s[] = { // sizeof(%s) = %d", typ, name, typ, size)
	b.depth++
	b.line(strings.Join(elems, ","))
	b.depth--
	b.line("};")
	return name
}

// byteArray declares a const unsigned char array, rowWidth bytes per line.
func (b *block) byteArray(name string, data []byte, rowWidth int) string {
	if len(data) == 0 {
		b.line(EmptyArrayMarker)
		return NullArg
	}
	if rowWidth <= 0 || rowWidth > len(data) {
		rowWidth = len(data)
	}

	b.linef("const unsigned char %s[] = {", name)
	b.depth++
	parts := make([]string, 0, rowWidth)
	for off := 0; off < len(data); off += rowWidth {
		end := min(off+rowWidth, len(data))
		parts = parts[:0]
		for _, v := range data[off:end] {
			parts = append(parts, fmt.Sprintf("0x%02x", v))
		}
		row := strings.Join(parts, ",")
		if end < len(data) {
			row += ","
		}
		b.line(row)
	}
	b.depth--
	b.line("};")
	return name
}

func pointElems(points []fields.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = fmt.Sprintf("{%d,%d}", p.X, p.Y)
	}
	return out
}

func rectElems(rects []fields.Rect) []string {
	out := make([]string, len(rects))
	for i, r := range rects {
		out[i] = rectLiteral(r)
	}
	return out
}

func uintElems(vs []uint32) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = utoa(v)
	}
	return out
}

func symbolElems[T ~uint8 | ~uint32](vs []T, decode func(uint32) string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = decode(uint32(v))
	}
	return out
}
