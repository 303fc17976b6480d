package gdi

import (
	"errors"
	"strconv"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

// TestUnknownValuesRenderAsDecimal checks the fallback of every simple domain
func TestUnknownValuesRenderAsDecimal(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "gdi_test",
		Level: hclog.Trace,
	})

	simple := []Domain{
		DomainBkMode, DomainMapMode, DomainROP2, DomainBrushStyle, DomainHatchStyle,
		DomainClipRgnMergeMode, DomainPolyFillMode, DomainStretchBltMode, DomainStockObject,
		DomainColorTableUsage, DomainICMMode, DomainWorldTransform, DomainFontWeight,
		DomainBigBool, DomainCharSet, DomainOutPrecision, DomainQuality, DomainArcDirection,
		DomainFloodFill, DomainCompression, DomainGraphicsMode, DomainRecordType,
		DomainPointType, DomainTextAlign,
	}
	values := []uint32{0x7FFF0000, 4294967295, 9999}

	for _, d := range simple {
		for _, v := range values {
			t.Run(d.String()+"/"+strconv.FormatUint(uint64(v), 10), func(t *testing.T) {
				logger.Debug("🧪 Testing decimal fallback", "domain", d, "value", v)
				require.Equal(t, strconv.FormatUint(uint64(v), 10), Decode(d, v))
			})
		}
	}
}

func TestSimpleDomains(t *testing.T) {
	testCases := []struct {
		domain Domain
		value  uint32
		want   string
	}{
		{DomainBkMode, 1, "TRANSPARENT"},
		{DomainBkMode, 2, "OPAQUE"},
		{DomainMapMode, 8, "MM_ANISOTROPIC"},
		{DomainROP2, 13, "R2_COPYPEN"},
		{DomainClipRgnMergeMode, 5, "RGN_COPY"},
		{DomainWorldTransform, 4, "MWT_SET"},
		{DomainStockObject, 4, "BLACK_BRUSH"},
		{DomainStockObject, 9, "9"},
		{DomainFontWeight, 700, "FW_BOLD"},
		{DomainBigBool, 1, "TRUE"},
		{DomainCharSet, 204, "RUSSIAN_CHARSET"},
		{DomainCompression, 3, "BI_BITFIELDS"},
		{DomainGraphicsMode, 2, "GM_ADVANCED"},
		{DomainRecordType, 18, "SetBkMode"},
		{DomainColor, 0x0000FF, "RGB(255, 0, 0)"},
	}

	for _, tc := range testCases {
		t.Run(tc.domain.String()+"="+tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, Decode(tc.domain, tc.value))
		})
	}
}

func TestPenStyle(t *testing.T) {
	testCases := []struct {
		name  string
		value uint32
		want  string
	}{
		{"zero", 0, "PS_SOLID | PS_ENDCAP_ROUND | PS_JOIN_ROUND | PS_COSMETIC"},
		{"geometric dash flat miter", 0x00012201, "PS_DASH | PS_ENDCAP_FLAT | PS_JOIN_MITER | PS_GEOMETRIC"},
		{"unknown style nibble", 0x0000000C, "12 | PS_ENDCAP_ROUND | PS_JOIN_ROUND | PS_COSMETIC"},
		{"residual", 0x00100000, "PS_SOLID | PS_ENDCAP_ROUND | PS_JOIN_ROUND | PS_COSMETIC | 1048576"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PenStyle(tc.value))
		})
	}
}

// TestFlagRenderingOrder checks that flags render in table order, never bit order
func TestFlagRenderingOrder(t *testing.T) {
	testCases := []struct {
		name string
		got  string
		want string
	}{
		{"layout A and C", Layout(0x1 | 0x4), "LAYOUT_RTL | LAYOUT_VBH"},
		{"layout residual", Layout(0x2 | 0x20), "LAYOUT_BTT | 32"},
		{"layout zero", Layout(0), "0"},
		{"text out", ExtTextOutOptions(0x4 | 0x2), "ETO_OPAQUE | ETO_CLIPPED"},
		{"text out residual", ExtTextOutOptions(0x2 | 0x8), "ETO_OPAQUE | 8"},
		{"clip precision", ClipPrecision(0x2 | 0x80 | 0x10), "CLIP_STROKE_PRECIS | CLIP_LH_ANGLES | CLIP_EMBEDDED"},
		{"pitch and family", PitchAndFamily(0x22), "VARIABLE_PITCH | FF_SWISS"},
		{"mono font", PitchAndFamily(0x31 | 0x08), "FIXED_PITCH | FF_MODERN | MONO_FONT"},
		{"rop3", ROP3(0x00CC0020), "SRCCOPY"},
		{"rop3 flags", ROP3(0x00CC0020 | 0x80000000 | 0x40000000), "SRCCOPY | NOMIRRORBITMAP | CAPTUREBLT"},
		{"rop3 unknown", ROP3(0x00123456), "1193046"},
		{"point move", PointType(6), "PT_MOVETO"},
		{"point close", PointType(3), "PT_LINETO | PT_CLOSEFIGURE"},
		{"point invalid", PointType(0), "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestTextAlign(t *testing.T) {
	testCases := []struct {
		name  string
		value uint32
		want  string
	}{
		{"default", 0, "TA_LEFT | TA_TOP"},
		{"update cp", TAUpdateCP, "TA_UPDATECP | TA_LEFT | TA_TOP"},
		{"center baseline", TACenter | TABaseline, "TA_CENTER | TA_BASELINE"},
		{"right bottom rtl", TARight | TABottom | TARTLReading, "TA_RIGHT | TA_BOTTOM | TA_RTLREADING"},
		{"half center", 4, "4"},
		{"half baseline", 16, "16"},
		{"outside mask", 0x200, "512"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TextAlign(tc.value))
		})
	}
}

func TestRGBColor(t *testing.T) {
	require.Equal(t, "RGB(1, 2, 3)", RGBColor(0x00030201))
	require.Equal(t, "PALETTEINDEX(7)", RGBColor(0x01000007))
	require.Equal(t, "PALETTERGB(16, 32, 48)", RGBColor(0x02302010))
	require.Equal(t, "4278190080", RGBColor(0xFF000000))
}

func TestRecordTypeNames(t *testing.T) {
	testCases := []struct {
		kind RecordType
		want string
	}{
		{EmfRecordTypeHeader, "Header"},
		{EmfRecordTypeEOF, "EOF"},
		{EmfRecordTypeSetBkMode, "SetBkMode"},
		{EmfRecordTypeExtTextOutW, "ExtTextOutW"},
		{EmfRecordTypeCreateColorSpaceW, "CreateColorSpaceW"},
		{WmfRecordTypeSetBkMode, "WmfSetBkMode"},
		{EmfPlusRecordTypeHeader, "EmfPlusHeader"},
		{EmfPlusRecordTypeSetTSClip, "EmfPlusSetTSClip"},
		{RecordType(0), "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.kind.String())
		})
	}

	require.Equal(t, RecordType(122), EmfRecordTypeCreateColorSpaceW)
	require.Equal(t, RecordType(0x403A), EmfPlusRecordTypeSetTSClip)
	require.True(t, EmfRecordTypePolyDraw16.IsEMF())
	require.True(t, WmfRecordTypeCreateRegion.IsWMF())
	require.True(t, EmfPlusRecordTypeComment.IsEMFPlus())
	require.False(t, EmfPlusRecordTypeComment.IsEMF())
}

func TestParseDomain(t *testing.T) {
	for _, d := range Domains() {
		got, err := ParseDomain(d.String())
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	_, err := ParseDomain("no-such-domain")
	require.True(t, errors.Is(err, emferrors.ErrUnknownDomain))
}
