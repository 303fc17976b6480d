package emitter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/emftest"
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
	"github.com/provide-io/emfsrc/pkg/emf/metafile"
)

func newTestLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "emitter_test",
		Level: hclog.Trace,
	})
}

// emit feeds one record to a fresh session and returns what it wrote.
func emit(t *testing.T, kind gdi.RecordType, p emftest.Payload, opts ...Option) string {
	t.Helper()
	var out strings.Builder
	s := NewSession(&out, append([]Option{WithLogger(newTestLogger())}, opts...)...)
	more, err := s.Record(kind, 0, p.Size(), p)
	require.NoError(t, err)
	require.True(t, more)
	return out.String()
}

func TestSetBkMode(t *testing.T) {
	got := emit(t, gdi.EmfRecordTypeSetBkMode, emftest.Payload{}.U32(2))
	require.Equal(t, "SetBkMode(hdc, OPAQUE);\n// record kind = SetBkMode\n", got)
}

func TestCreatePen(t *testing.T) {
	p := emftest.Payload{}.U32(1, 0).I32(2, 0).U32(0x0000FF)
	got := emit(t, gdi.EmfRecordTypeCreatePen, p)
	require.Equal(t,
		"gdiHandles[1] = CreatePen(PS_SOLID | PS_ENDCAP_ROUND | PS_JOIN_ROUND | PS_COSMETIC, 2, RGB(255, 0, 0));\n"+
			"// record kind = CreatePen\n", got)
}

func TestPolylineArrays(t *testing.T) {
	testCases := []struct {
		name   string
		kind   gdi.RecordType
		points emftest.Payload
		count  uint32
		want   string
	}{
		{
			name: "empty",
			kind: gdi.EmfRecordTypePolyline,
			want: "{\n" +
				"\t// Array count = 0\n" +
				"\tPolyline(hdc, nullptr, 0);\n" +
				"}\n" +
				"// record kind = Polyline\n",
		},
		{
			name:   "two points",
			kind:   gdi.EmfRecordTypePolyline,
			points: emftest.Payload{}.I32(1, 2, 3, 4),
			count:  2,
			want: "{\n" +
				"\tPOINT points[] = { // sizeof(POINT) = 8\n" +
				"\t\t{1,2},{3,4}\n" +
				"\t};\n" +
				"\tPolyline(hdc, points, 2);\n" +
				"}\n" +
				"// record kind = Polyline\n",
		},
		{
			name:   "16-bit points widen",
			kind:   gdi.EmfRecordTypePolygon16,
			points: emftest.Payload{}.U16(1, 0xFFFF, 7, 8, 9, 10),
			count:  3,
			want: "{\n" +
				"\tPOINT points[] = { // sizeof(POINT) = 8\n" +
				"\t\t{1,-1},{7,8},{9,10}\n" +
				"\t};\n" +
				"\tPolygon(hdc, points, 3);\n" +
				"}\n" +
				"// record kind = Polygon16\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := emftest.Payload{}.I32(0, 0, 10, 10).U32(tc.count).Raw(tc.points...)
			require.Equal(t, tc.want, emit(t, tc.kind, p))
		})
	}
}

func TestPolyPolyline(t *testing.T) {
	p := emftest.Payload{}.I32(0, 0, 9, 9).U32(2, 3).U32(2, 1).I32(0, 0, 5, 5, 9, 9)
	got := emit(t, gdi.EmfRecordTypePolyPolyline, p)
	require.Equal(t, "{\n"+
		"\tDWORD polys[] = { // sizeof(DWORD) = 4\n"+
		"\t\t2,1\n"+
		"\t};\n"+
		"\tPOINT points[] = { // sizeof(POINT) = 8\n"+
		"\t\t{0,0},{5,5},{9,9}\n"+
		"\t};\n"+
		"\tPolyPolyline(hdc, points, polys, 2);\n"+
		"}\n"+
		"// record kind = PolyPolyline\n", got)
}

func TestPolyDraw(t *testing.T) {
	p := emftest.Payload{}.I32(0, 0, 9, 9).U32(2).I32(0, 0, 9, 9).Raw(gdi.PointMoveTo, gdi.PointLineTo|gdi.PointCloseFigure)
	got := emit(t, gdi.EmfRecordTypePolyDraw, p)
	require.Contains(t, got, "\t\tPT_MOVETO,PT_LINETO | PT_CLOSEFIGURE\n")
	require.Contains(t, got, "\tPolyDraw(hdc, points, types, 2);\n")
}

func TestSimpleCalls(t *testing.T) {
	testCases := []struct {
		name string
		kind gdi.RecordType
		p    emftest.Payload
		want string
	}{
		{"no args", gdi.EmfRecordTypeSaveDC, nil, "SaveDC(hdc);"},
		{"path fill ignores bounds", gdi.EmfRecordTypeFillPath, emftest.Payload{}.I32(0, 0, 1, 1), "FillPath(hdc);"},
		{"restore is signed", gdi.EmfRecordTypeRestoreDC, emftest.Payload{}.I32(-1), "RestoreDC(hdc, -1);"},
		{"text color", gdi.EmfRecordTypeSetTextColor, emftest.Payload{}.U32(0x00FF8000), "SetTextColor(hdc, RGB(0, 128, 255));"},
		{"clip path", gdi.EmfRecordTypeSelectClipPath, emftest.Payload{}.U32(5), "SelectClipPath(hdc, RGN_COPY);"},
		{"map mode unknown", gdi.EmfRecordTypeSetMapMode, emftest.Payload{}.U32(99), "SetMapMode(hdc, 99);"},
		{"move to", gdi.EmfRecordTypeMoveToEx, emftest.Payload{}.I32(3, -4), "MoveToEx(hdc, 3, -4, nullptr);"},
		{"line to", gdi.EmfRecordTypeLineTo, emftest.Payload{}.I32(3, 4), "LineTo(hdc, 3, 4);"},
		{"window ext", gdi.EmfRecordTypeSetWindowExtEx, emftest.Payload{}.I32(640, 480), "SetWindowExtEx(hdc, 640, 480, nullptr);"},
		{"rectangle", gdi.EmfRecordTypeRectangle, emftest.Payload{}.I32(1, 2, 3, 4), "Rectangle(hdc, 1, 2, 3, 4);"},
		{"round rect", gdi.EmfRecordTypeRoundRect, emftest.Payload{}.I32(1, 2, 3, 4, 5, 6), "RoundRect(hdc, 1, 2, 3, 4, 5, 6);"},
		{"pie", gdi.EmfRecordTypePie, emftest.Payload{}.I32(0, 0, 8, 8, 1, 2, 3, 4), "Pie(hdc, 0, 0, 8, 8, 1, 2, 3, 4);"},
		{"angle arc", gdi.EmfRecordTypeAngleArc, emftest.Payload{}.I32(5, 5).U32(3).F32(45, 1.5), "AngleArc(hdc, 5, 5, 3, 45, 1.5);"},
		{"scale", gdi.EmfRecordTypeScaleViewportExtEx, emftest.Payload{}.I32(1, 2, 3, 4), "ScaleViewportExtEx(hdc, 1, 2, 3, 4, nullptr);"},
		{"pixel", gdi.EmfRecordTypeSetPixelV, emftest.Payload{}.I32(1, 1).U32(0x000000FF), "SetPixelV(hdc, 1, 1, RGB(255, 0, 0));"},
		{"miter", gdi.EmfRecordTypeSetMiterLimit, emftest.Payload{}.F32(10), "SetMiterLimit(hdc, 10, nullptr);"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := emit(t, tc.kind, tc.p)
			require.Equal(t, tc.want+"\n"+TrailerPrefix+tc.kind.String()+"\n", got)
		})
	}
}

func TestWorldTransform(t *testing.T) {
	p := emftest.Payload{}.F32(1, 0, 0, 1, 10.5, -2).U32(4)
	got := emit(t, gdi.EmfRecordTypeModifyWorldTransform, p)
	require.Equal(t, "{\n"+
		"\tXFORM xf = {1, 0, 0, 1, 10.5, -2};\n"+
		"\tModifyWorldTransform(hdc, &xf, MWT_SET);\n"+
		"}\n"+
		"// record kind = ModifyWorldTransform\n", got)
}

func TestStockSelect(t *testing.T) {
	got := emit(t, gdi.EmfRecordTypeSelectObject, emftest.Payload{}.U32(gdi.StockFlag|4))
	require.Equal(t, "g_stockObject = GetStockObject(BLACK_BRUSH);\n"+
		"SelectObject(hdc, g_stockObject);\n"+
		"// record kind = SelectObject\n", got)
}

func TestCustomNames(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, WithDeviceContext("dc"), WithHandleArray("objs"), WithStockCell("stock"))

	p := emftest.Payload{}.U32(1)
	_, err := s.Record(gdi.EmfRecordTypeSelectObject, 0, p.Size(), p)
	require.NoError(t, err)
	p = emftest.Payload{}.U32(2)
	_, err = s.Record(gdi.EmfRecordTypeSetBkMode, 0, p.Size(), p)
	require.NoError(t, err)

	require.Equal(t, "SelectObject(dc, objs[1]);\n// record kind = SelectObject\n"+
		"SetBkMode(dc, OPAQUE);\n// record kind = SetBkMode\n", out.String())
}

func TestObjectLiterals(t *testing.T) {
	t.Run("hatched brush", func(t *testing.T) {
		p := emftest.Payload{}.U32(3, gdi.BrushHatched, 0x00FF0000, 1)
		got := emit(t, gdi.EmfRecordTypeCreateBrushIndirect, p)
		require.Contains(t, got, "\tLOGBRUSH logBrush = {BS_HATCHED, RGB(0, 0, 255), HS_VERTICAL};\n")
		require.Contains(t, got, "\tgdiHandles[3] = CreateBrushIndirect(&logBrush);\n")
	})

	t.Run("solid brush ignores hatch", func(t *testing.T) {
		p := emftest.Payload{}.U32(3, gdi.BrushSolid, 0, 1)
		require.Contains(t, emit(t, gdi.EmfRecordTypeCreateBrushIndirect, p), "{BS_SOLID, RGB(0, 0, 0), 0}")
	})

	t.Run("font", func(t *testing.T) {
		p := emftest.Payload{}.U32(2).
			I32(-12, 0, 0, 0, 700).
			Raw(1, 0, 0, 0, 0, 0, 4, 0x22).
			UTF16(`Ar"ial`, 32)
		got := emit(t, gdi.EmfRecordTypeExtCreateFontIndirect, p)
		require.Contains(t, got, `LOGFONTW logFont = {-12, 0, 0, 0, FW_BOLD, TRUE, FALSE, FALSE, ANSI_CHARSET, OUT_DEFAULT_PRECIS, CLIP_DEFAULT_PRECIS, ANTIALIASED_QUALITY, VARIABLE_PITCH | FF_SWISS, L"Ar\"ial"};`)
		require.Contains(t, got, "\tgdiHandles[2] = CreateFontIndirectW(&logFont);\n")
	})

	t.Run("ext pen with style entries", func(t *testing.T) {
		p := emftest.Payload{}.U32(1, 0, 0, 0, 0, 0x10007, 4).U32(gdi.BrushSolid, 0, 0).U32(2, 5, 7)
		got := emit(t, gdi.EmfRecordTypeExtCreatePen, p)
		require.Contains(t, got, "\t\t5,7\n")
		require.Contains(t, got, "\tgdiHandles[1] = ExtCreatePen(PS_USERSTYLE | PS_ENDCAP_ROUND | PS_JOIN_ROUND | PS_GEOMETRIC, 4, &logBrush, 2, style);\n")
	})

	t.Run("palette", func(t *testing.T) {
		p := emftest.Payload{}.U32(4).U16(0x300, 2).Raw(1, 2, 3, 0, 4, 5, 6, 0)
		got := emit(t, gdi.EmfRecordTypeCreatePalette, p)
		require.Contains(t, got, "PALETTEENTRY palPalEntry[2]; } logPalette = {0x300, 2, {\n\t\t{1,2,3,0},{4,5,6,0}\n\t}};\n")
		require.Contains(t, got, "\tgdiHandles[4] = CreatePalette((LOGPALETTE*)&logPalette);\n")
	})

	t.Run("select palette", func(t *testing.T) {
		got := emit(t, gdi.EmfRecordTypeSelectPalette, emftest.Payload{}.U32(gdi.StockFlag|15))
		require.Contains(t, got, "SelectPalette(hdc, (HPALETTE)GetStockObject(DEFAULT_PALETTE), FALSE);\n")
	})
}

func TestRecoverableErrors(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, WithLogger(newTestLogger()))

	header := emftest.HeaderPayload(3)
	_, err := s.Record(gdi.EmfRecordTypeHeader, 0, header.Size(), header)
	require.NoError(t, err)
	out.Reset()

	t.Run("truncated payload", func(t *testing.T) {
		out.Reset()
		more, err := s.Record(gdi.EmfRecordTypeSetBkMode, 0, 2, []byte{2, 0})
		require.NoError(t, err)
		require.True(t, more)
		require.True(t, strings.HasPrefix(out.String(), DecodeErrorPrefix))
		require.Contains(t, out.String(), emferrors.ErrTruncated.Error())
		require.True(t, strings.HasSuffix(out.String(), "// record kind = SetBkMode\n"))
	})

	t.Run("handle out of range", func(t *testing.T) {
		out.Reset()
		p := emftest.Payload{}.U32(5)
		more, err := s.Record(gdi.EmfRecordTypeDeleteObject, 0, p.Size(), p)
		require.NoError(t, err)
		require.True(t, more)
		require.Contains(t, out.String(), emferrors.ErrHandleOutOfRange.Error())
		require.NotContains(t, out.String(), "DeleteObject(gdiHandles")
	})

	t.Run("session continues", func(t *testing.T) {
		out.Reset()
		p := emftest.Payload{}.U32(1, 0).I32(1, 0).U32(0)
		_, err := s.Record(gdi.EmfRecordTypeCreatePen, 0, p.Size(), p)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out.String(), "gdiHandles[1] = CreatePen("))
	})

	require.Equal(t, 2, s.Summary().Failures)
}

func TestContractViolation(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out)

	more, err := s.Record(gdi.EmfRecordTypeSetBkMode, 0, 8, []byte{2, 0, 0, 0})
	require.False(t, more)
	require.True(t, errors.Is(err, emferrors.ErrContractViolation))
	require.Empty(t, out.String())

	var nilSession *Session
	_, err = nilSession.Record(gdi.EmfRecordTypeSaveDC, 0, 0, nil)
	require.ErrorIs(t, err, emferrors.ErrContractViolation)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterFailureIsFatal(t *testing.T) {
	s := NewSession(failingWriter{})
	more, err := s.Record(gdi.EmfRecordTypeSaveDC, 0, 0, nil)
	require.False(t, more)
	require.ErrorContains(t, err, "disk full")
}

func TestInertKinds(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, WithLogger(newTestLogger()))

	for _, kind := range []gdi.RecordType{
		gdi.EmfRecordTypeSetColorAdjustment,
		gdi.EmfRecordTypeSetColorAdjustment,
		gdi.EmfRecordTypeGradientFill,
		gdi.WmfRecordTypeSetBkMode,
		gdi.EmfPlusRecordTypeHeader,
		gdi.RecordType(9999),
	} {
		_, err := s.Record(kind, 0, 0, nil)
		require.NoError(t, err)
	}

	require.Equal(t, "// record kind = SetColorAdjustment\n"+
		"// record kind = SetColorAdjustment\n"+
		"// record kind = GradientFill\n"+
		"// record kind = WmfSetBkMode\n"+
		"// record kind = EmfPlusHeader\n"+
		"// record kind = 9999\n", out.String())
	require.Equal(t, 5, s.Summary().Inert)
}

func TestExtTextOut(t *testing.T) {
	textOut := func(chars uint32, options uint32, text emftest.Payload) emftest.Payload {
		return emftest.Payload{}.
			I32(0, 0, 100, 20).U32(1).F32(1, 1).
			I32(10, 20).U32(chars, 8+68, options).
			I32(0, 0, 100, 20).U32(0).
			Raw(text...)
	}

	t.Run("wide", func(t *testing.T) {
		got := emit(t, gdi.EmfRecordTypeExtTextOutW, textOut(3, 0x4, emftest.Payload{}.UTF16("hé\"", 3)))
		require.Equal(t, "{\n"+
			"\tconst wchar_t* text = L\"hé\\\"\";\n"+
			"\tRECT rect = {0,0,100,20};\n"+
			"\tExtTextOutW(hdc, 10, 20, ETO_CLIPPED, &rect, text, 3, nullptr);\n"+
			"}\n"+
			"// record kind = ExtTextOutW\n", got)
	})

	t.Run("ansi keeps code page bytes", func(t *testing.T) {
		got := emit(t, gdi.EmfRecordTypeExtTextOutA, textOut(4, 0, emftest.Payload{}.Raw('c', 'a', 'f', 0xE9)))
		require.Contains(t, got, "\tconst char* text = \"caf\\351\"; // café\n")
		require.Contains(t, got, "\tExtTextOutA(hdc, 10, 20, 0, &rect, text, 4, nullptr);\n")
	})

	t.Run("no rect", func(t *testing.T) {
		p := emftest.Payload{}.
			I32(0, 0, 100, 20).U32(1).F32(1, 1).
			I32(10, 20).U32(2, 8+52, 0x100).
			U32(0).
			Raw('o', 'k')
		got := emit(t, gdi.EmfRecordTypeExtTextOutA, p)
		require.NotContains(t, got, "RECT rect")
		require.Contains(t, got, "ExtTextOutA(hdc, 10, 20, ETO_NO_RECT, nullptr, text, 2, nullptr);")
	})
}

// memorySink records the bitmaps it is handed.
type memorySink struct {
	mu    sync.Mutex
	names []string
}

func (m *memorySink) WriteBitmap(seq int, kind gdi.RecordType, dib *fields.DIB) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := fmt.Sprintf("%04d-%s-%dx%d.png", seq, kind, dib.Header.Width, dib.Rows())
	m.names = append(m.names, name)
	return name, nil
}

func bitBltPayload() emftest.Payload {
	bmi := emftest.Payload{}.U32(40).I32(2, 2).U16(1, 24).U32(0, 16).I32(0, 0).U32(0, 0)
	bits := make([]byte, 16)
	for i := range bits {
		bits[i] = byte(i)
	}
	const fixed = 92
	return emftest.Payload{}.
		I32(0, 0, 2, 2).
		I32(5, 6, 2, 2).
		U32(0x00CC0020).
		I32(0, 0).
		F32(1, 0, 0, 1, 0, 0).
		U32(0xFFFFFF, 0).
		U32(8+fixed, bmi.Size(), 8+fixed+bmi.Size(), uint32(len(bits))).
		Raw(bmi...).
		Raw(bits...)
}

func TestBitBlt(t *testing.T) {
	sink := &memorySink{}
	got := emit(t, gdi.EmfRecordTypeBitBlt, bitBltPayload(), WithBitmapSink(sink))

	require.Equal(t, []string{"0001-BitBlt-2x2.png"}, sink.names)
	require.Contains(t, got, "\t// bitmap extracted to 0001-BitBlt-2x2.png\n")
	require.Contains(t, got, "\tconst unsigned char bits[] = {\n"+
		"\t\t0x00,0x01,0x02,0x03,0x04,0x05,0x06,0x07,\n"+
		"\t\t0x08,0x09,0x0a,0x0b,0x0c,0x0d,0x0e,0x0f\n"+
		"\t};\n")
	require.Contains(t, got, "\tBITMAPINFO bmi = {\n\t\t{\n\t\t\t40, // biSize\n")
	require.Contains(t, got, "\t\t\tBI_RGB, // biCompression\n")
	require.Contains(t, got, "\t\t\t0 // biClrImportant\n\t\t}\n\t};\n")
	require.Contains(t, got, "\tSetDIBits(hdc, hBitmap, 0, 2, bits, &bmi, DIB_RGB_COLORS);\n")
	require.Contains(t, got, "\tBitBlt(hdc, 5, 6, 2, 2, hMemDC, 0, 0, SRCCOPY);\n")
	require.Contains(t, got, "\tDeleteDC(hMemDC);\n}\n// record kind = BitBlt\n")
}

func TestBitBltWithoutSource(t *testing.T) {
	p := bitBltPayload()[:92]
	for i := 76; i < 92; i++ {
		p[i] = 0
	}
	got := emit(t, gdi.EmfRecordTypeBitBlt, p)
	require.Equal(t, "BitBlt(hdc, 5, 6, 2, 2, nullptr, 0, 0, SRCCOPY);\n// record kind = BitBlt\n", got)
}

func monoBrushPayload() emftest.Payload {
	const fixed = 24
	bmi := emftest.Payload{}.U32(40).I32(8, 2).U16(1, 1).U32(0, 8).I32(0, 0).U32(2, 0).
		U32(0x00000000, 0x00FFFFFF)
	return emftest.Payload{}.
		U32(1, 0).
		U32(8+fixed, bmi.Size(), 8+fixed+bmi.Size(), 8).
		Raw(bmi...).
		Raw(0xAA, 0, 0, 0, 0x55, 0, 0, 0)
}

func TestPatternBrushes(t *testing.T) {
	mono := emit(t, gdi.EmfRecordTypeCreateMonoBrush, monoBrushPayload())
	require.Equal(t, "{\n"+
		"\tconst unsigned char bits[] = {\n"+
		"\t\t0xaa,0x00,0x00,0x00,\n"+
		"\t\t0x55,0x00,0x00,0x00\n"+
		"\t};\n"+
		"\tHBITMAP hPattern = CreateBitmap(8, 2, 1, 1, bits);\n"+
		"\tgdiHandles[1] = CreatePatternBrush(hPattern);\n"+
		"\tDeleteObject(hPattern);\n"+
		"}\n"+
		"// record kind = CreateMonoBrush\n", mono)

	sink := &memorySink{}
	dib := emit(t, gdi.EmfRecordTypeCreateDIBPatternBrushPt, monoBrushPayload(), WithBitmapSink(sink))
	require.Equal(t, []string{"0001-CreateDIBPatternBrushPt-8x2.png"}, sink.names)
	require.Contains(t, dib, "\tconst unsigned char packedDIB[] = {\n\t\t0x28,0x00,0x00,0x00,")
	require.Contains(t, dib, "\t\t0xaa,0x00,0x00,0x00,0x55,0x00,0x00,0x00\n\t};\n")
	require.Contains(t, dib, "\tgdiHandles[1] = CreateDIBPatternBrushPt(packedDIB, DIB_RGB_COLORS);\n")

	missing := emit(t, gdi.EmfRecordTypeCreateMonoBrush, emftest.Payload{}.U32(1, 0, 0, 0, 0, 0))
	require.True(t, strings.HasPrefix(missing, DecodeErrorPrefix))
	require.Contains(t, missing, "pattern brush without a bitmap")
}

func TestStretchDIBits(t *testing.T) {
	const fixed = 72
	bmi := emftest.Payload{}.U32(40).I32(2, 2).U16(1, 24).U32(0, 16).I32(0, 0).U32(0, 0)
	bits := make([]byte, 16)
	p := emftest.Payload{}.
		I32(0, 0, 4, 4).
		I32(1, 2, 0, 0, 2, 2).
		U32(8+fixed, bmi.Size(), 8+fixed+bmi.Size(), uint32(len(bits))).
		U32(0, 0x00CC0020).
		I32(4, 4).
		Raw(bmi...).
		Raw(bits...)

	got := emit(t, gdi.EmfRecordTypeStretchDIBits, p)
	require.True(t, strings.HasPrefix(got, "{\n\tconst unsigned char bits[] = {\n"))
	require.Contains(t, got, "\tBITMAPINFO bmi = {\n")
	require.Contains(t, got, "\tStretchDIBits(hdc, 1, 2, 4, 4, 0, 0, 2, 2, bits, &bmi, DIB_RGB_COLORS, SRCCOPY);\n}\n")

	noBits := p[:fixed]
	for i := 40; i < 56; i++ {
		noBits[i] = 0
	}
	got = emit(t, gdi.EmfRecordTypeStretchDIBits, noBits)
	require.Equal(t, "StretchDIBits(hdc, 1, 2, 4, 4, 0, 0, 2, 2, nullptr, nullptr, DIB_RGB_COLORS, SRCCOPY);\n"+
		"// record kind = StretchDIBits\n", got)
}

func TestExtSelectClipRgn(t *testing.T) {
	empty := emit(t, gdi.EmfRecordTypeExtSelectClipRgn, emftest.Payload{}.U32(0, 5))
	require.Equal(t, "ExtSelectClipRgn(hdc, nullptr, RGN_COPY);\n// record kind = ExtSelectClipRgn\n", empty)

	p := emftest.Payload{}.U32(64, 1).
		U32(32, 1, 2, 32).I32(0, 0, 20, 10).
		I32(0, 0, 10, 10, 10, 0, 20, 5)
	got := emit(t, gdi.EmfRecordTypeExtSelectClipRgn, p)
	require.Contains(t, got, "\t\t{0,0,10,10},{10,0,20,5}\n")
	require.Contains(t, got, "\tfor (int i = 0; i < 2; ++i) {\n")
	require.Contains(t, got, "\tExtSelectClipRgn(hdc, hRgn, RGN_AND);\n")
}

func TestGdiComment(t *testing.T) {
	plus := emftest.Payload{}.U16(0x4001, 1).U32(28, 16).U32(0, 0, 0, 0).
		U16(0x4002, 0).U32(12, 0)
	p := emftest.Payload{}.U32(4 + plus.Size()).U32(fields.CommentEMFPlus).Raw(plus...)
	got := emit(t, gdi.EmfRecordTypeGdiComment, p)
	require.Equal(t, "// GdiComment: EMF+ records EmfPlusHeader, EmfPlusEndOfFile\n// record kind = GdiComment\n", got)
}

func TestHeaderAndEOF(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, WithLogger(newTestLogger()))

	stream := emftest.NewStream(5).
		Record(gdi.EmfRecordTypeSetBkMode, emftest.Payload{}.U32(1)).
		Bytes()
	require.NoError(t, metafile.Enumerate(context.Background(), stream, s.Callback()))

	got := out.String()
	require.True(t, strings.HasPrefix(got, "// ENHMETAHEADER\n// rclBounds=(0,0,99,99) "))
	require.Contains(t, got, "// has no OpenGL commands\n")
	require.Contains(t, got, "// szlMicrometers=(508000, 286000) ")
	require.Contains(t, got, "SetGraphicsMode(hdc, GM_ADVANCED);\n\nHGDIOBJ gdiHandles[5] = {0};\nHGDIOBJ g_stockObject = NULL;\n// record kind = Header\n")
	require.Contains(t, got, "SetBkMode(hdc, TRANSPARENT);\n")
	require.True(t, strings.HasSuffix(got, "// EOF\n// record kind = EOF\n"))

	sum := s.Summary()
	require.True(t, sum.Finished)
	require.Equal(t, 3, sum.Records)

	// records after EOF are still emitted
	_, err := s.Record(gdi.EmfRecordTypeSaveDC, 0, 0, nil)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out.String(), "SaveDC(hdc);\n// record kind = SaveDC\n"))
}

func TestIndependentSessions(t *testing.T) {
	stream := emftest.NewStream(2).
		Record(gdi.EmfRecordTypeSelectObject, emftest.Payload{}.U32(gdi.StockFlag|7)).
		Bytes()

	outputs := make([]string, 8)
	var wg sync.WaitGroup
	for i := range outputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var out strings.Builder
			s := NewSession(&out)
			if err := metafile.Enumerate(context.Background(), stream, s.Callback()); err == nil {
				outputs[i] = out.String()
			}
		}(i)
	}
	wg.Wait()

	for _, got := range outputs {
		require.Equal(t, outputs[0], got)
		require.Contains(t, got, "g_stockObject = GetStockObject(BLACK_PEN);\n")
	}
}
