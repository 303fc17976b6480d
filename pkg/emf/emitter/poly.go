package emitter

import (
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

func (s *Session) poly(b *block, c polyCall, data []byte, size uint32) error {
	p, err := fields.DecodePoly(data, size, c.short)
	if err != nil {
		return err
	}
	b.open()
	points := b.array(pointType, pointTypeSize, "points", pointElems(p.Points))
	b.call(c.fn, points, itoa(len(p.Points)))
	b.close()
	return nil
}

func (s *Session) polyPoly(b *block, c polyPolyCall, data []byte, size uint32) error {
	p, err := fields.DecodePolyPoly(data, size, c.short)
	if err != nil {
		return err
	}
	b.open()
	polys := b.array(c.countType, uint32Size, "polys", uintElems(p.Counts))
	points := b.array(pointType, pointTypeSize, "points", pointElems(p.Points))
	b.call(c.fn, points, polys, itoa(len(p.Counts)))
	b.close()
	return nil
}

func (s *Session) polyDraw(b *block, data []byte, size uint32, short bool) error {
	p, err := fields.DecodePolyDraw(data, size, short)
	if err != nil {
		return err
	}
	b.open()
	points := b.array(pointType, pointTypeSize, "points", pointElems(p.Points))
	types := b.array(byteType, 1, "types", symbolElems(p.Types, gdi.PointType))
	b.call("PolyDraw", points, types, itoa(len(p.Points)))
	b.close()
	return nil
}
