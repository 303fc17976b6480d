package fields

// LogBrush is a LOGBRUSH32.
type LogBrush struct {
	Style uint32 // 0
	Color uint32 // 4
	Hatch uint32 // 8
}

// Pen is an EMR_CREATEPEN.
type Pen struct {
	Index uint32 // 0
	Style uint32 // 4
	Width Point  // 8, only X is used
	Color uint32 // 16
}

func DecodeCreatePen(data []byte, size uint32) (Pen, error) {
	c := open(data, size, 20)
	p := Pen{
		Index: c.Uint32(0),
		Style: c.Uint32(4),
		Width: readPoint(c, 8),
		Color: c.Uint32(16),
	}
	return p, c.Err()
}

// ExtPen is an EMR_EXTCREATEPEN. The optional pattern bitmap is not
// decoded; its offsets are kept for the bitmap extractor.
type ExtPen struct {
	Index   uint32   // 0
	OffBmi  uint32   // 4
	CbBmi   uint32   // 8
	OffBits uint32   // 12
	CbBits  uint32   // 16
	Style   uint32   // 20
	Width   uint32   // 24
	Brush   LogBrush // 28
	Entries []uint32 // 44, count at 40
}

func DecodeExtCreatePen(data []byte, size uint32) (ExtPen, error) {
	c := open(data, size, 44)
	p := ExtPen{
		Index:   c.Uint32(0),
		OffBmi:  c.Uint32(4),
		CbBmi:   c.Uint32(8),
		OffBits: c.Uint32(12),
		CbBits:  c.Uint32(16),
		Style:   c.Uint32(20),
		Width:   c.Uint32(24),
		Brush:   LogBrush{Style: c.Uint32(28), Color: c.Uint32(32), Hatch: c.Uint32(36)},
	}
	n := c.Count(40, 44, 4)
	p.Entries = readUint32s(c, 44, n)
	if c.Err() != nil {
		return ExtPen{}, c.Err()
	}
	return p, nil
}

// Brush is an EMR_CREATEBRUSHINDIRECT.
type Brush struct {
	Index uint32   // 0
	Brush LogBrush // 4
}

func DecodeCreateBrush(data []byte, size uint32) (Brush, error) {
	c := open(data, size, 16)
	b := Brush{
		Index: c.Uint32(0),
		Brush: LogBrush{Style: c.Uint32(4), Color: c.Uint32(8), Hatch: c.Uint32(12)},
	}
	return b, c.Err()
}

// LogFont is a LOGFONTW.
type LogFont struct {
	Height         int32 // 0
	Width          int32 // 4
	Escapement     int32 // 8
	Orientation    int32 // 12
	Weight         int32 // 16
	Italic         uint8 // 20
	Underline      uint8 // 21
	StrikeOut      uint8 // 22
	CharSet        uint8 // 23
	OutPrecision   uint8 // 24
	ClipPrecision  uint8 // 25
	Quality        uint8 // 26
	PitchAndFamily uint8 // 27
	FaceName       string
}

const (
	logFontSize     = 92
	logFontFaceSize = 32 // WCHARs
)

// Font is an EMR_EXTCREATEFONTINDIRECTW. Only the LOGFONTW part of the
// trailing ENUMLOGFONTEXDV is decoded.
type Font struct {
	Index uint32  // 0
	Font  LogFont // 4
}

func DecodeCreateFont(data []byte, size uint32) (Font, error) {
	c := open(data, size, 4+logFontSize)
	const base = 4
	f := Font{
		Index: c.Uint32(0),
		Font: LogFont{
			Height:         c.Int32(base),
			Width:          c.Int32(base + 4),
			Escapement:     c.Int32(base + 8),
			Orientation:    c.Int32(base + 12),
			Weight:         c.Int32(base + 16),
			Italic:         c.Uint8(base + 20),
			Underline:      c.Uint8(base + 21),
			StrikeOut:      c.Uint8(base + 22),
			CharSet:        c.Uint8(base + 23),
			OutPrecision:   c.Uint8(base + 24),
			ClipPrecision:  c.Uint8(base + 25),
			Quality:        c.Uint8(base + 26),
			PitchAndFamily: c.Uint8(base + 27),
		},
	}
	face, err := readUTF16Field(c, base+28, logFontFaceSize)
	if err != nil {
		return Font{}, err
	}
	f.Font.FaceName = face
	return f, nil
}

// PaletteEntry is a PALETTEENTRY.
type PaletteEntry struct {
	Red, Green, Blue, Flags uint8
}

// Palette is an EMR_CREATEPALETTE.
type Palette struct {
	Index   uint32 // 0
	Version uint16 // 4
	Entries []PaletteEntry
}

func DecodeCreatePalette(data []byte, size uint32) (Palette, error) {
	c := open(data, size, 8)
	p := Palette{Index: c.Uint32(0), Version: c.Uint16(4)}
	n := int(c.Uint16(6))
	raw := c.Bytes(8, 4*n)
	if c.Err() != nil {
		return Palette{}, c.Err()
	}
	p.Entries = make([]PaletteEntry, n)
	for i := range p.Entries {
		e := raw[4*i : 4*i+4]
		p.Entries[i] = PaletteEntry{Red: e[0], Green: e[1], Blue: e[2], Flags: e[3]}
	}
	return p, nil
}

// PatternBrush is an EMR_CREATEDIBPATTERNBRUSHPT or EMR_CREATEMONOBRUSH.
type PatternBrush struct {
	Index  uint32 // 0
	Usage  uint32 // 4
	Bitmap *DIB   // offBmi 8, cbBmi 12, offBits 16, cbBits 20
}

func DecodePatternBrush(data []byte, size uint32) (PatternBrush, error) {
	c := open(data, size, 24)
	b := PatternBrush{Index: c.Uint32(0), Usage: c.Uint32(4)}
	b.Bitmap = readDIB(c, c.Uint32(8), c.Uint32(12), c.Uint32(16), c.Uint32(20))
	if c.Err() != nil {
		return PatternBrush{}, c.Err()
	}
	return b, nil
}
