package gdi

import "strings"

type flag struct {
	bit  uint32
	name string
}

// joinFlags appends the name of every set flag in table order, then any
// bits outside known as a trailing decimal.
func joinFlags(parts []string, v uint32, table []flag, known uint32) []string {
	for _, f := range table {
		if v&f.bit == f.bit {
			parts = append(parts, f.name)
		}
	}
	if rest := v &^ known; rest != 0 {
		parts = append(parts, decimal(rest))
	}
	return parts
}

func joined(parts []string, v uint32) string {
	if len(parts) == 0 {
		return decimal(v)
	}
	return strings.Join(parts, Or)
}

// Pen style sub-field masks.
const (
	PenStyleMask  = 0x0000000F
	PenEndCapMask = 0x00000F00
	PenJoinMask   = 0x0000F000
	PenTypeMask   = 0x000F0000
)

var penStyles = map[uint32]string{
	0: "PS_SOLID",
	1: "PS_DASH",
	2: "PS_DOT",
	3: "PS_DASHDOT",
	4: "PS_DASHDOTDOT",
	5: "PS_NULL",
	6: "PS_INSIDEFRAME",
	7: "PS_USERSTYLE",
	8: "PS_ALTERNATE",
}

var penEndCaps = map[uint32]string{
	0x000: "PS_ENDCAP_ROUND",
	0x100: "PS_ENDCAP_SQUARE",
	0x200: "PS_ENDCAP_FLAT",
}

var penJoins = map[uint32]string{
	0x0000: "PS_JOIN_ROUND",
	0x1000: "PS_JOIN_BEVEL",
	0x2000: "PS_JOIN_MITER",
}

var penTypes = map[uint32]string{
	0x00000: "PS_COSMETIC",
	0x10000: "PS_GEOMETRIC",
}

// PenStyle always renders style | endcap | join | type.
func PenStyle(v uint32) string {
	parts := []string{
		lookup(penStyles, v&PenStyleMask),
		lookup(penEndCaps, v&PenEndCapMask),
		lookup(penJoins, v&PenJoinMask),
		lookup(penTypes, v&PenTypeMask),
	}
	if rest := v &^ (PenStyleMask | PenEndCapMask | PenJoinMask | PenTypeMask); rest != 0 {
		parts = append(parts, decimal(rest))
	}
	return strings.Join(parts, Or)
}

var pitches = map[uint32]string{
	0: "DEFAULT_PITCH",
	1: "FIXED_PITCH",
	2: "VARIABLE_PITCH",
}

var families = map[uint32]string{
	0x00: "FF_DONTCARE",
	0x10: "FF_ROMAN",
	0x20: "FF_SWISS",
	0x30: "FF_MODERN",
	0x40: "FF_SCRIPT",
	0x50: "FF_DECORATIVE",
}

var pitchFlags = []flag{{0x08, "MONO_FONT"}}

func PitchAndFamily(v uint32) string {
	parts := []string{lookup(pitches, v&0x3), lookup(families, v&0xF0)}
	return strings.Join(joinFlags(parts, v, pitchFlags, 0xFB), Or)
}

var clipPrecisions = map[uint32]string{
	0: "CLIP_DEFAULT_PRECIS",
	1: "CLIP_CHARACTER_PRECIS",
	2: "CLIP_STROKE_PRECIS",
}

var clipFlags = []flag{
	{0x10, "CLIP_LH_ANGLES"},
	{0x20, "CLIP_TT_ALWAYS"},
	{0x40, "CLIP_DFA_DISABLE"},
	{0x80, "CLIP_EMBEDDED"},
}

func ClipPrecision(v uint32) string {
	parts := []string{lookup(clipPrecisions, v&0xF)}
	return strings.Join(joinFlags(parts, v, clipFlags, 0xFF), Or)
}

var rop3s = map[uint32]string{
	0x00CC0020: "SRCCOPY",
	0x00EE0086: "SRCPAINT",
	0x008800C6: "SRCAND",
	0x00660046: "SRCINVERT",
	0x00440328: "SRCERASE",
	0x00330008: "NOTSRCCOPY",
	0x001100A6: "NOTSRCERASE",
	0x00C000CA: "MERGECOPY",
	0x00BB0226: "MERGEPAINT",
	0x00F00021: "PATCOPY",
	0x00FB0A09: "PATPAINT",
	0x005A0049: "PATINVERT",
	0x00550009: "DSTINVERT",
	0x00000042: "BLACKNESS",
	0x00FF0062: "WHITENESS",
}

var ropFlags = []flag{
	{0x80000000, "NOMIRRORBITMAP"},
	{0x40000000, "CAPTUREBLT"},
}

// ROP3 decodes the raster code and then the mirror/capture flags.
func ROP3(v uint32) string {
	const flagBits = 0xC0000000
	parts := []string{lookup(rop3s, v&^flagBits)}
	for _, f := range ropFlags {
		if v&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, Or)
}

// PolyDraw point types.
const (
	PointCloseFigure = 0x01
	PointLineTo      = 0x02
	PointBezierTo    = 0x04
	PointMoveTo      = 0x06
)

var pointKinds = map[uint32]string{
	PointLineTo:   "PT_LINETO",
	PointBezierTo: "PT_BEZIERTO",
	PointMoveTo:   "PT_MOVETO",
}

// PointType decodes one PolyDraw type byte. A byte without a valid kind, or
// with bits above PT_MOVETO|PT_CLOSEFIGURE, falls back to decimal.
func PointType(v uint32) string {
	kind, ok := pointKinds[v&PointMoveTo]
	if !ok || v&^0x7 != 0 {
		return decimal(v)
	}
	if v&PointCloseFigure != 0 {
		return kind + Or + "PT_CLOSEFIGURE"
	}
	return kind
}

var layoutFlags = []flag{
	{0x1, "LAYOUT_RTL"},
	{0x2, "LAYOUT_BTT"},
	{0x4, "LAYOUT_VBH"},
	{0x8, "LAYOUT_BITMAPORIENTATIONPRESERVED"},
}

func Layout(v uint32) string {
	return joined(joinFlags(nil, v, layoutFlags, 0xF), v)
}

var textOutFlags = []flag{
	{0x0001, "ETO_GRAYED"},
	{0x0002, "ETO_OPAQUE"},
	{0x0004, "ETO_CLIPPED"},
	{0x0010, "ETO_GLYPH_INDEX"},
	{0x0080, "ETO_RTLREADING"},
	{0x0100, "ETO_NO_RECT"},
	{0x0200, "ETO_SMALL_CHARS"},
	{0x0400, "ETO_NUMERICSLOCAL"},
	{0x0800, "ETO_NUMERICSLATIN"},
	{0x1000, "ETO_IGNORELANGUAGE"},
	{0x2000, "ETO_PDY"},
	{0x10000, "ETO_REVERSE_INDEX_MAP"},
}

func ExtTextOutOptions(v uint32) string {
	return joined(joinFlags(nil, v, textOutFlags, 0x13F97), v)
}

// Text alignment bits.
const (
	TAUpdateCP   = 1
	TARight      = 2
	TACenter     = 6
	TABottom     = 8
	TABaseline   = 24
	TARTLReading = 256
	TAMask       = TABaseline + TACenter + TAUpdateCP + TARTLReading
)

// TextAlign renders the update mode, the horizontal and the vertical
// alignment, in that order. Values with bits outside TA_MASK, or with the
// half-set combinations 4 (center) and 16 (baseline), are not valid
// alignments and render as decimal.
func TextAlign(v uint32) string {
	if v&^TAMask != 0 || v&TACenter == 4 || v&TABaseline == 16 {
		return decimal(v)
	}
	var parts []string
	if v&TAUpdateCP != 0 {
		parts = append(parts, "TA_UPDATECP")
	}
	switch {
	case v&TACenter == TACenter:
		parts = append(parts, "TA_CENTER")
	case v&TARight != 0:
		parts = append(parts, "TA_RIGHT")
	default:
		parts = append(parts, "TA_LEFT")
	}
	switch {
	case v&TABaseline == TABaseline:
		parts = append(parts, "TA_BASELINE")
	case v&TABottom != 0:
		parts = append(parts, "TA_BOTTOM")
	default:
		parts = append(parts, "TA_TOP")
	}
	if v&TARTLReading != 0 {
		parts = append(parts, "TA_RTLREADING")
	}
	return strings.Join(parts, Or)
}
