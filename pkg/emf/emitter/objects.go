package emitter

import (
	"fmt"
	"strings"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
	"github.com/provide-io/emfsrc/pkg/emf/handles"
)

func (s *Session) createPen(b *block, data []byte, size uint32) error {
	p, err := fields.DecodeCreatePen(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindPen, p.Index)
	if err != nil {
		return err
	}
	b.assign(ref, "CreatePen", gdi.PenStyle(p.Style), itoa(p.Width.X), gdi.RGBColor(p.Color))
	return nil
}

// logBrushLiteral renders a LOGBRUSH. The hatch member is only a hatch
// style for BS_HATCHED brushes.
func logBrushLiteral(lb fields.LogBrush) string {
	hatch := "0"
	if lb.Style == gdi.BrushHatched {
		hatch = gdi.HatchStyle(lb.Hatch)
	}
	return fmt.Sprintf("{%s, %s, %s}", gdi.BrushStyle(lb.Style), gdi.RGBColor(lb.Color), hatch)
}

func (s *Session) extCreatePen(b *block, data []byte, size uint32) error {
	p, err := fields.DecodeExtCreatePen(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindExtPen, p.Index)
	if err != nil {
		return err
	}
	b.open()
	b.linef("LOGBRUSH logBrush = %s;", logBrushLiteral(p.Brush))
	style := b.array(dwordType, uint32Size, "style", uintElems(p.Entries))
	b.assign(ref, "ExtCreatePen", gdi.PenStyle(p.Style), utoa(p.Width), "&logBrush", itoa(len(p.Entries)), style)
	b.close()
	return nil
}

func (s *Session) createBrush(b *block, data []byte, size uint32) error {
	br, err := fields.DecodeCreateBrush(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindBrush, br.Index)
	if err != nil {
		return err
	}
	b.open()
	b.linef("LOGBRUSH logBrush = %s;", logBrushLiteral(br.Brush))
	b.assign(ref, "CreateBrushIndirect", "&logBrush")
	b.close()
	return nil
}

func decodePatternBrush(data []byte, size uint32) (fields.PatternBrush, error) {
	pb, err := fields.DecodePatternBrush(data, size)
	if err != nil {
		return pb, err
	}
	if pb.Bitmap == nil {
		return pb, fmt.Errorf("%w: pattern brush without a bitmap", emferrors.ErrBadOffset)
	}
	return pb, nil
}

// createDIBPatternBrush passes the packed DIB (BITMAPINFO then bits) the
// call expects.
func (s *Session) createDIBPatternBrush(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	pb, err := decodePatternBrush(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindBrush, pb.Index)
	if err != nil {
		return err
	}
	packed := make([]byte, 0, len(pb.Bitmap.Info)+len(pb.Bitmap.Bits))
	packed = append(append(packed, pb.Bitmap.Info...), pb.Bitmap.Bits...)

	b.open()
	s.extractBitmap(b, kind, pb.Bitmap)
	dib := b.byteArray("packedDIB", packed, packedRowSize)
	b.assign(ref, "CreateDIBPatternBrushPt", dib, gdi.ColorTableUsage(pb.Usage))
	b.close()
	return nil
}

// createMonoBrush builds the monochrome pattern bitmap and a brush from it.
func (s *Session) createMonoBrush(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	pb, err := decodePatternBrush(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindBrush, pb.Index)
	if err != nil {
		return err
	}
	hdr := pb.Bitmap.Header

	b.open()
	s.extractBitmap(b, kind, pb.Bitmap)
	bits := b.byteArray("bits", pb.Bitmap.Bits, scanLineWidth(pb.Bitmap))
	b.linef("HBITMAP hPattern = %s;", callExpr("CreateBitmap", itoa(hdr.Width), itoa(pb.Bitmap.Rows()), "1", "1", bits))
	b.assign(ref, "CreatePatternBrush", "hPattern")
	b.line("DeleteObject(hPattern);")
	b.close()
	return nil
}

func (s *Session) createFont(b *block, data []byte, size uint32) error {
	f, err := fields.DecodeCreateFont(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindFont, f.Index)
	if err != nil {
		return err
	}
	lf := f.Font
	members := []string{
		itoa(lf.Height),
		itoa(lf.Width),
		itoa(lf.Escapement),
		itoa(lf.Orientation),
		gdi.FontWeight(uint32(lf.Weight)),
		gdi.BigBool(uint32(lf.Italic)),
		gdi.BigBool(uint32(lf.Underline)),
		gdi.BigBool(uint32(lf.StrikeOut)),
		gdi.CharSet(uint32(lf.CharSet)),
		gdi.OutPrecision(uint32(lf.OutPrecision)),
		gdi.ClipPrecision(uint32(lf.ClipPrecision)),
		gdi.Quality(uint32(lf.Quality)),
		gdi.PitchAndFamily(uint32(lf.PitchAndFamily)),
		"L" + quoteWide(lf.FaceName),
	}
	b.open()
	b.linef("LOGFONTW logFont = {%s};", strings.Join(members, ", "))
	b.assign(ref, "CreateFontIndirectW", "&logFont")
	b.close()
	return nil
}

func (s *Session) createPalette(b *block, data []byte, size uint32) error {
	p, err := fields.DecodeCreatePalette(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Create(handles.KindPalette, p.Index)
	if err != nil {
		return err
	}

	b.open()
	if len(p.Entries) == 0 {
		b.line(EmptyArrayMarker)
		b.linef("LOGPALETTE logPalette = {0x%x, 0};", p.Version)
		b.assign(ref, "CreatePalette", "&logPalette")
		b.close()
		return nil
	}
	entries := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		entries[i] = fmt.Sprintf("{%d,%d,%d,%d}", e.Red, e.Green, e.Blue, e.Flags)
	}
	b.linef("struct { WORD palVersion; WORD palNumEntries; PALETTEENTRY palPalEntry[%d]; } logPalette = {0x%x, %d, {",
		len(p.Entries), p.Version, len(p.Entries))
	b.depth++
	b.line(strings.Join(entries, ","))
	b.depth--
	b.line("}};")
	b.assign(ref, "CreatePalette", "(LOGPALETTE*)&logPalette")
	b.close()
	return nil
}

func (s *Session) selectObject(b *block, data []byte, size uint32) error {
	index, err := fields.DecodeObjectIndex(data, size)
	if err != nil {
		return err
	}
	stmts, err := s.table.Select(index)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		b.line(stmt)
	}
	return nil
}

func (s *Session) deleteObject(b *block, data []byte, size uint32) error {
	index, err := fields.DecodeObjectIndex(data, size)
	if err != nil {
		return err
	}
	stmt, err := s.table.Delete(index)
	if err != nil {
		return err
	}
	b.line(stmt)
	return nil
}

// selectPalette always selects for the foreground; the record does not
// carry the bForceBackground argument.
func (s *Session) selectPalette(b *block, data []byte, size uint32) error {
	index, err := fields.DecodeObjectIndex(data, size)
	if err != nil {
		return err
	}
	ref, err := s.table.Ref(index)
	if err != nil {
		return err
	}
	b.call("SelectPalette", "(HPALETTE)"+ref, "FALSE")
	return nil
}
