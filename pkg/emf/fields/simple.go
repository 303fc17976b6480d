package fields

// DecodeInt reads the single 32-bit value of mode and color records
// (SetBkMode, SetTextColor, RestoreDC, SelectClipPath, ...).
func DecodeInt(data []byte, size uint32) (int32, error) {
	c := open(data, size, 4)
	v := c.Int32(0)
	return v, c.Err()
}

// DecodeObjectIndex reads the ihObject of SelectObject, DeleteObject and
// SelectPalette.
func DecodeObjectIndex(data []byte, size uint32) (uint32, error) {
	c := open(data, size, 4)
	v := c.Uint32(0)
	return v, c.Err()
}

// DecodePoint reads a POINTL or SIZEL at offset 0 (MoveToEx, LineTo,
// Set*ExtEx, Set*OrgEx, SetBrushOrgEx, OffsetClipRgn).
func DecodePoint(data []byte, size uint32) (Point, error) {
	c := open(data, size, PointSize)
	p := readPoint(c, 0)
	return p, c.Err()
}

// DecodeRect reads a RECTL at offset 0 (Ellipse, Rectangle,
// ExcludeClipRect, IntersectClipRect).
func DecodeRect(data []byte, size uint32) (Rect, error) {
	c := open(data, size, RectSize)
	r := readRect(c, 0)
	return r, c.Err()
}

// ArcRecord is the box and radial endpoints shared by Arc, ArcTo, Chord
// and Pie.
type ArcRecord struct {
	Box   Rect  // 0
	Start Point // 16
	End   Point // 24
}

func DecodeRectPoints(data []byte, size uint32) (ArcRecord, error) {
	c := open(data, size, RectSize+2*PointSize)
	a := ArcRecord{
		Box:   readRect(c, 0),
		Start: readPoint(c, 16),
		End:   readPoint(c, 24),
	}
	return a, c.Err()
}

// RoundRectRecord is an EMR_ROUNDRECT.
type RoundRectRecord struct {
	Box    Rect // 0
	Corner Size // 16
}

func DecodeRoundRect(data []byte, size uint32) (RoundRectRecord, error) {
	c := open(data, size, RectSize+SizeSize)
	r := RoundRectRecord{Box: readRect(c, 0), Corner: readSize(c, 16)}
	return r, c.Err()
}

// Scale is an EMR_SCALEVIEWPORTEXTEX / EMR_SCALEWINDOWEXTEX.
type Scale struct {
	XNum, XDenom, YNum, YDenom int32
}

func DecodeScale(data []byte, size uint32) (Scale, error) {
	c := open(data, size, 16)
	s := Scale{
		XNum:   c.Int32(0),
		XDenom: c.Int32(4),
		YNum:   c.Int32(8),
		YDenom: c.Int32(12),
	}
	return s, c.Err()
}

// AngleArcRecord is an EMR_ANGLEARC.
type AngleArcRecord struct {
	Center     Point   // 0
	Radius     uint32  // 8
	StartAngle float32 // 12
	SweepAngle float32 // 16
}

func DecodeAngleArc(data []byte, size uint32) (AngleArcRecord, error) {
	c := open(data, size, 20)
	a := AngleArcRecord{
		Center:     readPoint(c, 0),
		Radius:     c.Uint32(8),
		StartAngle: c.Float32(12),
		SweepAngle: c.Float32(16),
	}
	return a, c.Err()
}

func DecodeXForm(data []byte, size uint32) (XForm, error) {
	c := open(data, size, XFormSize)
	x := readXForm(c, 0)
	return x, c.Err()
}

// ModifyXForm is an EMR_MODIFYWORLDTRANSFORM.
type ModifyXForm struct {
	XForm XForm  // 0
	Mode  uint32 // 24
}

func DecodeModifyXForm(data []byte, size uint32) (ModifyXForm, error) {
	c := open(data, size, XFormSize+4)
	m := ModifyXForm{XForm: readXForm(c, 0), Mode: c.Uint32(XFormSize)}
	return m, c.Err()
}

// Pixel is an EMR_SETPIXELV.
type Pixel struct {
	Point Point  // 0
	Color uint32 // 8
}

func DecodePixel(data []byte, size uint32) (Pixel, error) {
	c := open(data, size, PointSize+4)
	p := Pixel{Point: readPoint(c, 0), Color: c.Uint32(8)}
	return p, c.Err()
}

// FloodFill is an EMR_EXTFLOODFILL.
type FloodFill struct {
	Start Point  // 0
	Color uint32 // 8
	Mode  uint32 // 12
}

func DecodeExtFloodFill(data []byte, size uint32) (FloodFill, error) {
	c := open(data, size, PointSize+8)
	f := FloodFill{Start: readPoint(c, 0), Color: c.Uint32(8), Mode: c.Uint32(12)}
	return f, c.Err()
}

// DecodeMiterLimit reads the FLOAT eMiterLimit of EMR_SETMITERLIMIT.
func DecodeMiterLimit(data []byte, size uint32) (float32, error) {
	c := open(data, size, 4)
	v := c.Float32(0)
	return v, c.Err()
}

// Justification is an EMR_SETTEXTJUSTIFICATION.
type Justification struct {
	BreakExtra int32 // 0
	BreakCount int32 // 4
}

func DecodeTextJustification(data []byte, size uint32) (Justification, error) {
	c := open(data, size, 8)
	j := Justification{BreakExtra: c.Int32(0), BreakCount: c.Int32(4)}
	return j, c.Err()
}
