package fields

// Poly is a PolyBezier / Polygon / Polyline / PolyBezierTo / PolylineTo
// record, 32-bit or 16-bit.
type Poly struct {
	Bounds Rect // 0
	Points []Point
}

// DecodePoly reads bounds, a point count at 16 and the points at 20.
// short selects the 16-bit POINTS layout.
func DecodePoly(data []byte, size uint32, short bool) (Poly, error) {
	c := open(data, size, RectSize+4)
	p := Poly{Bounds: readRect(c, 0)}
	n := c.Count(16, 20, pointSize(short))
	p.Points = readPoints(c, 20, n, short)
	if c.Err() != nil {
		return Poly{}, c.Err()
	}
	return p, nil
}

// PolyPoly is a PolyPolyline / PolyPolygon record. Counts holds one vertex
// count per figure; Points holds every vertex, figure after figure.
type PolyPoly struct {
	Bounds Rect // 0
	Counts []uint32
	Points []Point
}

// DecodePolyPoly reads bounds, nPolys at 16, the total point count at 20,
// nPolys counts at 24 and then the points.
func DecodePolyPoly(data []byte, size uint32, short bool) (PolyPoly, error) {
	c := open(data, size, RectSize+8)
	p := PolyPoly{Bounds: readRect(c, 0)}
	polys := c.Count(16, 24, 4)
	p.Counts = readUint32s(c, 24, polys)
	start := 24 + 4*polys
	n := c.Count(20, start, pointSize(short))
	p.Points = readPoints(c, start, n, short)
	if c.Err() != nil {
		return PolyPoly{}, c.Err()
	}
	return p, nil
}

// PolyDraw is an EMR_POLYDRAW / EMR_POLYDRAW16 record: points followed by
// one PT_* byte per point.
type PolyDraw struct {
	Bounds Rect // 0
	Points []Point
	Types  []uint8
}

func DecodePolyDraw(data []byte, size uint32, short bool) (PolyDraw, error) {
	c := open(data, size, RectSize+4)
	p := PolyDraw{Bounds: readRect(c, 0)}
	n := c.Count(16, 20, pointSize(short)+1)
	p.Points = readPoints(c, 20, n, short)
	types := c.Bytes(20+n*pointSize(short), n)
	if c.Err() != nil {
		return PolyDraw{}, c.Err()
	}
	p.Types = append([]uint8(nil), types...)
	return p, nil
}

func pointSize(short bool) int {
	if short {
		return ShortPointSize
	}
	return PointSize
}
