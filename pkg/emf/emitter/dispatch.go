package emitter

import (
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// Calls without arguments beyond the device context. Path fills carry a
// bounds rectangle the call does not take.
var noArgCalls = map[gdi.RecordType]string{
	gdi.EmfRecordTypeSetMetaRgn:        "SetMetaRgn",
	gdi.EmfRecordTypeSaveDC:            "SaveDC",
	gdi.EmfRecordTypeRealizePalette:    "RealizePalette",
	gdi.EmfRecordTypeBeginPath:         "BeginPath",
	gdi.EmfRecordTypeEndPath:           "EndPath",
	gdi.EmfRecordTypeCloseFigure:       "CloseFigure",
	gdi.EmfRecordTypeFlattenPath:       "FlattenPath",
	gdi.EmfRecordTypeWidenPath:         "WidenPath",
	gdi.EmfRecordTypeAbortPath:         "AbortPath",
	gdi.EmfRecordTypeFillPath:          "FillPath",
	gdi.EmfRecordTypeStrokePath:        "StrokePath",
	gdi.EmfRecordTypeStrokeAndFillPath: "StrokeAndFillPath",
}

// intCall is a call taking one integer, rendered through decode or as a
// signed decimal when decode is nil.
type intCall struct {
	fn     string
	decode func(uint32) string
}

var intCalls = map[gdi.RecordType]intCall{
	gdi.EmfRecordTypeSetMapMode:        {"SetMapMode", gdi.MapMode},
	gdi.EmfRecordTypeSetBkMode:         {"SetBkMode", gdi.BkMode},
	gdi.EmfRecordTypeSetPolyFillMode:   {"SetPolyFillMode", gdi.PolyFillMode},
	gdi.EmfRecordTypeSetROP2:           {"SetROP2", gdi.ROP2},
	gdi.EmfRecordTypeSetStretchBltMode: {"SetStretchBltMode", gdi.StretchBltMode},
	gdi.EmfRecordTypeSetTextAlign:      {"SetTextAlign", gdi.TextAlign},
	gdi.EmfRecordTypeSetTextColor:      {"SetTextColor", gdi.RGBColor},
	gdi.EmfRecordTypeSetBkColor:        {"SetBkColor", gdi.RGBColor},
	gdi.EmfRecordTypeRestoreDC:         {"RestoreDC", nil},
	gdi.EmfRecordTypeSelectClipPath:    {"SelectClipPath", gdi.ClipRgnMergeMode},
	gdi.EmfRecordTypeSetICMMode:        {"SetICMMode", gdi.ICMMode},
	gdi.EmfRecordTypeSetLayout:         {"SetLayout", gdi.Layout},
	gdi.EmfRecordTypeSetArcDirection:   {"SetArcDirection", gdi.ArcDirection},
	gdi.EmfRecordTypeSetMapperFlags:    {"SetMapperFlags", nil},
}

// pointCall is a call taking one point; out appends the nullptr of calls
// that can return the previous value.
type pointCall struct {
	fn  string
	out bool
}

var pointCalls = map[gdi.RecordType]pointCall{
	gdi.EmfRecordTypeSetWindowExtEx:   {"SetWindowExtEx", true},
	gdi.EmfRecordTypeSetWindowOrgEx:   {"SetWindowOrgEx", true},
	gdi.EmfRecordTypeSetViewportExtEx: {"SetViewportExtEx", true},
	gdi.EmfRecordTypeSetViewportOrgEx: {"SetViewportOrgEx", true},
	gdi.EmfRecordTypeSetBrushOrgEx:    {"SetBrushOrgEx", true},
	gdi.EmfRecordTypeMoveToEx:         {"MoveToEx", true},
	gdi.EmfRecordTypeLineTo:           {"LineTo", false},
	gdi.EmfRecordTypeOffsetClipRgn:    {"OffsetClipRgn", false},
}

var rectCalls = map[gdi.RecordType]string{
	gdi.EmfRecordTypeEllipse:           "Ellipse",
	gdi.EmfRecordTypeRectangle:         "Rectangle",
	gdi.EmfRecordTypeExcludeClipRect:   "ExcludeClipRect",
	gdi.EmfRecordTypeIntersectClipRect: "IntersectClipRect",
}

var arcCalls = map[gdi.RecordType]string{
	gdi.EmfRecordTypeArc:   "Arc",
	gdi.EmfRecordTypeArcTo: "ArcTo",
	gdi.EmfRecordTypeChord: "Chord",
	gdi.EmfRecordTypePie:   "Pie",
}

var scaleCalls = map[gdi.RecordType]string{
	gdi.EmfRecordTypeScaleViewportExtEx: "ScaleViewportExtEx",
	gdi.EmfRecordTypeScaleWindowExtEx:   "ScaleWindowExtEx",
}

// polyCall is a point list call. The 16-bit records replay through the
// same functions with widened points.
type polyCall struct {
	fn    string
	short bool
}

var polyCalls = map[gdi.RecordType]polyCall{
	gdi.EmfRecordTypePolyBezier:     {"PolyBezier", false},
	gdi.EmfRecordTypePolygon:        {"Polygon", false},
	gdi.EmfRecordTypePolyline:       {"Polyline", false},
	gdi.EmfRecordTypePolyBezierTo:   {"PolyBezierTo", false},
	gdi.EmfRecordTypePolylineTo:     {"PolylineTo", false},
	gdi.EmfRecordTypePolyBezier16:   {"PolyBezier", true},
	gdi.EmfRecordTypePolygon16:      {"Polygon", true},
	gdi.EmfRecordTypePolyline16:     {"Polyline", true},
	gdi.EmfRecordTypePolyBezierTo16: {"PolyBezierTo", true},
	gdi.EmfRecordTypePolylineTo16:   {"PolylineTo", true},
}

// polyPolyCall also names the element type of the per-figure counts.
type polyPolyCall struct {
	fn        string
	countType string
	short     bool
}

var polyPolyCalls = map[gdi.RecordType]polyPolyCall{
	gdi.EmfRecordTypePolyPolyline:   {"PolyPolyline", dwordType, false},
	gdi.EmfRecordTypePolyPolygon:    {"PolyPolygon", intType, false},
	gdi.EmfRecordTypePolyPolyline16: {"PolyPolyline", dwordType, true},
	gdi.EmfRecordTypePolyPolygon16:  {"PolyPolygon", intType, true},
}

// dispatch writes the statements for one record. Table driven shapes are
// resolved first; records with their own layout have one arm each; every
// other kind is inert.
func (s *Session) dispatch(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	if fn, ok := noArgCalls[kind]; ok {
		b.call(fn)
		return nil
	}
	if c, ok := intCalls[kind]; ok {
		return s.intCall(b, c, data, size)
	}
	if c, ok := pointCalls[kind]; ok {
		return s.pointCall(b, c, data, size)
	}
	if fn, ok := rectCalls[kind]; ok {
		return s.rectCall(b, fn, data, size)
	}
	if fn, ok := arcCalls[kind]; ok {
		return s.arcCall(b, fn, data, size)
	}
	if fn, ok := scaleCalls[kind]; ok {
		return s.scaleCall(b, fn, data, size)
	}
	if c, ok := polyCalls[kind]; ok {
		return s.poly(b, c, data, size)
	}
	if c, ok := polyPolyCalls[kind]; ok {
		return s.polyPoly(b, c, data, size)
	}

	switch kind {
	case gdi.EmfRecordTypeHeader:
		return s.header(b, data, size)
	case gdi.EmfRecordTypeEOF:
		return s.eof(b)

	case gdi.EmfRecordTypeRoundRect:
		return s.roundRect(b, data, size)
	case gdi.EmfRecordTypeAngleArc:
		return s.angleArc(b, data, size)
	case gdi.EmfRecordTypePolyDraw:
		return s.polyDraw(b, data, size, false)
	case gdi.EmfRecordTypePolyDraw16:
		return s.polyDraw(b, data, size, true)
	case gdi.EmfRecordTypeSetPixelV:
		return s.setPixel(b, data, size)
	case gdi.EmfRecordTypeExtFloodFill:
		return s.floodFill(b, data, size)
	case gdi.EmfRecordTypeSetMiterLimit:
		return s.miterLimit(b, data, size)
	case gdi.EmfRecordTypeSetTextJustification:
		return s.textJustification(b, data, size)
	case gdi.EmfRecordTypeSetWorldTransform:
		return s.setWorldTransform(b, data, size)
	case gdi.EmfRecordTypeModifyWorldTransform:
		return s.modifyWorldTransform(b, data, size)

	case gdi.EmfRecordTypeCreatePen:
		return s.createPen(b, data, size)
	case gdi.EmfRecordTypeExtCreatePen:
		return s.extCreatePen(b, data, size)
	case gdi.EmfRecordTypeCreateBrushIndirect:
		return s.createBrush(b, data, size)
	case gdi.EmfRecordTypeCreateDIBPatternBrushPt:
		return s.createDIBPatternBrush(b, kind, data, size)
	case gdi.EmfRecordTypeCreateMonoBrush:
		return s.createMonoBrush(b, kind, data, size)
	case gdi.EmfRecordTypeExtCreateFontIndirect:
		return s.createFont(b, data, size)
	case gdi.EmfRecordTypeCreatePalette:
		return s.createPalette(b, data, size)
	case gdi.EmfRecordTypeSelectObject:
		return s.selectObject(b, data, size)
	case gdi.EmfRecordTypeDeleteObject:
		return s.deleteObject(b, data, size)
	case gdi.EmfRecordTypeSelectPalette:
		return s.selectPalette(b, data, size)

	case gdi.EmfRecordTypeBitBlt:
		return s.bitBlt(b, kind, data, size)
	case gdi.EmfRecordTypeStretchBlt:
		return s.stretchBlt(b, kind, data, size)
	case gdi.EmfRecordTypeStretchDIBits:
		return s.stretchDIBits(b, kind, data, size)
	case gdi.EmfRecordTypeSetDIBitsToDevice:
		return s.setDIBitsToDevice(b, kind, data, size)

	case gdi.EmfRecordTypeExtTextOutA:
		return s.extTextOut(b, data, size, false)
	case gdi.EmfRecordTypeExtTextOutW:
		return s.extTextOut(b, data, size, true)
	case gdi.EmfRecordTypeExtSelectClipRgn:
		return s.extSelectClipRgn(b, data, size)
	case gdi.EmfRecordTypeGdiComment:
		return s.comment(b, data, size)

	default:
		s.inertKind(kind)
		return nil
	}
}

func (s *Session) intCall(b *block, c intCall, data []byte, size uint32) error {
	v, err := fields.DecodeInt(data, size)
	if err != nil {
		return err
	}
	if c.decode == nil {
		b.call(c.fn, itoa(v))
	} else {
		b.call(c.fn, c.decode(uint32(v)))
	}
	return nil
}

func (s *Session) pointCall(b *block, c pointCall, data []byte, size uint32) error {
	p, err := fields.DecodePoint(data, size)
	if err != nil {
		return err
	}
	args := pointArgs(p)
	if c.out {
		args = append(args, NullArg)
	}
	b.call(c.fn, args...)
	return nil
}

func (s *Session) rectCall(b *block, fn string, data []byte, size uint32) error {
	r, err := fields.DecodeRect(data, size)
	if err != nil {
		return err
	}
	b.call(fn, rectArgs(r)...)
	return nil
}

func (s *Session) arcCall(b *block, fn string, data []byte, size uint32) error {
	a, err := fields.DecodeRectPoints(data, size)
	if err != nil {
		return err
	}
	args := append(rectArgs(a.Box), pointArgs(a.Start)...)
	b.call(fn, append(args, pointArgs(a.End)...)...)
	return nil
}

func (s *Session) scaleCall(b *block, fn string, data []byte, size uint32) error {
	sc, err := fields.DecodeScale(data, size)
	if err != nil {
		return err
	}
	b.call(fn, itoa(sc.XNum), itoa(sc.XDenom), itoa(sc.YNum), itoa(sc.YDenom), NullArg)
	return nil
}

func (s *Session) roundRect(b *block, data []byte, size uint32) error {
	r, err := fields.DecodeRoundRect(data, size)
	if err != nil {
		return err
	}
	b.call("RoundRect", append(rectArgs(r.Box), itoa(r.Corner.CX), itoa(r.Corner.CY))...)
	return nil
}

func (s *Session) angleArc(b *block, data []byte, size uint32) error {
	a, err := fields.DecodeAngleArc(data, size)
	if err != nil {
		return err
	}
	b.call("AngleArc", itoa(a.Center.X), itoa(a.Center.Y), utoa(a.Radius), float(a.StartAngle), float(a.SweepAngle))
	return nil
}

func (s *Session) setPixel(b *block, data []byte, size uint32) error {
	p, err := fields.DecodePixel(data, size)
	if err != nil {
		return err
	}
	b.call("SetPixelV", itoa(p.Point.X), itoa(p.Point.Y), gdi.RGBColor(p.Color))
	return nil
}

func (s *Session) floodFill(b *block, data []byte, size uint32) error {
	f, err := fields.DecodeExtFloodFill(data, size)
	if err != nil {
		return err
	}
	b.call("ExtFloodFill", itoa(f.Start.X), itoa(f.Start.Y), gdi.RGBColor(f.Color), gdi.FloodFill(f.Mode))
	return nil
}

func (s *Session) miterLimit(b *block, data []byte, size uint32) error {
	v, err := fields.DecodeMiterLimit(data, size)
	if err != nil {
		return err
	}
	b.call("SetMiterLimit", float(v), NullArg)
	return nil
}

func (s *Session) textJustification(b *block, data []byte, size uint32) error {
	j, err := fields.DecodeTextJustification(data, size)
	if err != nil {
		return err
	}
	b.call("SetTextJustification", itoa(j.BreakExtra), itoa(j.BreakCount))
	return nil
}

func (s *Session) setWorldTransform(b *block, data []byte, size uint32) error {
	x, err := fields.DecodeXForm(data, size)
	if err != nil {
		return err
	}
	b.open()
	b.linef("XFORM xf = %s;", xformLiteral(x))
	b.call("SetWorldTransform", "&xf")
	b.close()
	return nil
}

func (s *Session) modifyWorldTransform(b *block, data []byte, size uint32) error {
	m, err := fields.DecodeModifyXForm(data, size)
	if err != nil {
		return err
	}
	b.open()
	b.linef("XFORM xf = %s;", xformLiteral(m.XForm))
	b.call("ModifyWorldTransform", "&xf", gdi.WorldTransform(m.Mode))
	b.close()
	return nil
}
