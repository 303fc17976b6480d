package emitter

import (
	"fmt"
	"strings"

	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// extractBitmap hands dib to the configured sink and notes the result.
func (s *Session) extractBitmap(b *block, kind gdi.RecordType, dib *fields.DIB) {
	if s.sink == nil || dib == nil {
		return
	}
	name, err := s.sink.WriteBitmap(s.seq, kind, dib)
	if err != nil {
		s.logger.Warn("⚠️ Bitmap not extracted", "kind", kind, "seq", s.seq, "error", err)
		b.linef("// bitmap not extracted: %s", commentText(err.Error()))
		return
	}
	s.logger.Debug("🖼️ Bitmap extracted", "kind", kind, "seq", s.seq, "file", name)
	b.linef("// bitmap extracted to %s", commentText(name))
}

// scanLineWidth is the byte width of one row of dib's pixel data.
func scanLineWidth(dib *fields.DIB) int {
	rows := dib.Rows()
	if rows == 0 {
		return 0
	}
	return len(dib.Bits) / rows
}

// bitmapInfo declares bmi and returns the BITMAPINFO* to pass. Headers of
// any revision are written as a BITMAPINFOHEADER; a color table switches to
// a struct sized for it.
func (b *block) bitmapInfo(dib *fields.DIB) string {
	h := dib.Header
	members := []struct{ value, name string }{
		{utoa(uint32(bitmapHeader)), "biSize"},
		{itoa(h.Width), "biWidth"},
		{itoa(h.Height), "biHeight"},
		{utoa(h.Planes), "biPlanes"},
		{utoa(h.BitCount), "biBitCount"},
		{gdi.Compression(h.Compression), "biCompression"},
		{utoa(h.SizeImage), "biSizeImage"},
		{itoa(h.XPelsPerMeter), "biXPelsPerMeter"},
		{itoa(h.YPelsPerMeter), "biYPelsPerMeter"},
		{utoa(h.ClrUsed), "biClrUsed"},
		{utoa(h.ClrImportant), "biClrImportant"},
	}
	colors := colorTable(dib)

	arg := "&bmi"
	if len(colors) == 0 {
		b.line("BITMAPINFO bmi = {")
	} else {
		b.linef("struct { BITMAPINFOHEADER bmiHeader; RGBQUAD bmiColors[%d]; } bmi = {", len(colors))
		arg = "(BITMAPINFO*)&bmi"
	}
	b.depth++
	b.line("{")
	b.depth++
	for i, m := range members {
		sep := ","
		if i == len(members)-1 {
			sep = ""
		}
		b.linef("%s%s // %s", m.value, sep, m.name)
	}
	b.depth--
	if len(colors) == 0 {
		b.line("}")
	} else {
		b.line("},")
		b.line("{")
		b.depth++
		b.line(strings.Join(colors, ","))
		b.depth--
		b.line("}")
	}
	b.depth--
	b.line("};")
	return arg
}

// colorTable renders the RGBQUADs after the header. Core headers store
// RGBTRIPLEs, which are widened.
func colorTable(dib *fields.DIB) []string {
	size := int(dib.Header.Size)
	if size > len(dib.Info) {
		return nil
	}
	table := dib.Info[size:]
	step := 4
	if size == 12 {
		step = 3
	}
	var out []string
	for i := 0; i+step <= len(table); i += step {
		reserved := byte(0)
		if step == 4 {
			reserved = table[i+3]
		}
		out = append(out, fmt.Sprintf("{0x%02x,0x%02x,0x%02x,0x%02x}", table[i], table[i+1], table[i+2], reserved))
	}
	return out
}

func (s *Session) bitBlt(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	blt, err := fields.DecodeBitBlt(data, size)
	if err != nil {
		return err
	}
	dest := []string{itoa(blt.XDest), itoa(blt.YDest), itoa(blt.CXDest), itoa(blt.CYDest)}
	src := []string{itoa(blt.XSrc), itoa(blt.YSrc)}
	return s.memoryBlit(b, kind, blt, "BitBlt", dest, src)
}

func (s *Session) stretchBlt(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	blt, err := fields.DecodeStretchBlt(data, size)
	if err != nil {
		return err
	}
	dest := []string{itoa(blt.XDest), itoa(blt.YDest), itoa(blt.CXDest), itoa(blt.CYDest)}
	src := []string{itoa(blt.XSrc), itoa(blt.YSrc), itoa(blt.CXSrc), itoa(blt.CYSrc)}
	return s.memoryBlit(b, kind, blt, "StretchBlt", dest, src)
}

// memoryBlit replays BitBlt / StretchBlt. With a source bitmap the bits are
// loaded into a compatible bitmap selected into a memory DC; without one the
// blit is a pattern or destination only operation and has no source DC.
func (s *Session) memoryBlit(b *block, kind gdi.RecordType, blt fields.Blit, fn string, dest, src []string) error {
	rop := gdi.ROP3(blt.ROP)
	if blt.Bitmap == nil {
		args := append(append(dest, NullArg), src...)
		b.call(fn, append(args, rop)...)
		return nil
	}
	dib := blt.Bitmap
	rows := itoa(dib.Rows())

	b.open()
	s.extractBitmap(b, kind, dib)
	bits := b.byteArray("bits", dib.Bits, scanLineWidth(dib))
	bmi := b.bitmapInfo(dib)
	b.linef("HBITMAP hBitmap = %s;", callExpr("CreateCompatibleBitmap", b.dc, itoa(dib.Header.Width), rows))
	b.linef("HDC hMemDC = %s;", callExpr("CreateCompatibleDC", b.dc))
	b.call("SetDIBits", "hBitmap", "0", rows, bits, bmi, gdi.ColorTableUsage(blt.Usage))
	b.line("HGDIOBJ hOldBitmap = SelectObject(hMemDC, hBitmap);")
	args := append(append(dest, "hMemDC"), src...)
	b.call(fn, append(args, rop)...)
	b.line("DeleteObject(SelectObject(hMemDC, hOldBitmap));")
	b.line("DeleteDC(hMemDC);")
	b.close()
	return nil
}

// dibCall writes a call that takes the bits and BITMAPINFO directly.
func (s *Session) dibCall(b *block, kind gdi.RecordType, dib *fields.DIB, call func(bits, bmi string)) {
	if dib == nil {
		call(NullArg, NullArg)
		return
	}
	b.open()
	s.extractBitmap(b, kind, dib)
	bits := b.byteArray("bits", dib.Bits, scanLineWidth(dib))
	bmi := b.bitmapInfo(dib)
	call(bits, bmi)
	b.close()
}

func (s *Session) stretchDIBits(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	blt, err := fields.DecodeStretchDIBits(data, size)
	if err != nil {
		return err
	}
	s.dibCall(b, kind, blt.Bitmap, func(bits, bmi string) {
		b.call("StretchDIBits",
			itoa(blt.XDest), itoa(blt.YDest), itoa(blt.CXDest), itoa(blt.CYDest),
			itoa(blt.XSrc), itoa(blt.YSrc), itoa(blt.CXSrc), itoa(blt.CYSrc),
			bits, bmi, gdi.ColorTableUsage(blt.Usage), gdi.ROP3(blt.ROP))
	})
	return nil
}

func (s *Session) setDIBitsToDevice(b *block, kind gdi.RecordType, data []byte, size uint32) error {
	blt, err := fields.DecodeSetDIBitsToDevice(data, size)
	if err != nil {
		return err
	}
	s.dibCall(b, kind, blt.Bitmap, func(bits, bmi string) {
		b.call("SetDIBitsToDevice",
			itoa(blt.XDest), itoa(blt.YDest), itoa(blt.CXSrc), itoa(blt.CYSrc),
			itoa(blt.XSrc), itoa(blt.YSrc), utoa(blt.StartScan), utoa(blt.Scans),
			bits, bmi, gdi.ColorTableUsage(blt.Usage))
	})
	return nil
}
