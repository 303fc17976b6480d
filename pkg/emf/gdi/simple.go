package gdi

var bkModes = map[uint32]string{
	1: "TRANSPARENT",
	2: "OPAQUE",
}

func BkMode(v uint32) string { return lookup(bkModes, v) }

var mapModes = map[uint32]string{
	1: "MM_TEXT",
	2: "MM_LOMETRIC",
	3: "MM_HIMETRIC",
	4: "MM_LOENGLISH",
	5: "MM_HIENGLISH",
	6: "MM_TWIPS",
	7: "MM_ISOTROPIC",
	8: "MM_ANISOTROPIC",
}

func MapMode(v uint32) string { return lookup(mapModes, v) }

var rop2s = map[uint32]string{
	1:  "R2_BLACK",
	2:  "R2_NOTMERGEPEN",
	3:  "R2_MASKNOTPEN",
	4:  "R2_NOTCOPYPEN",
	5:  "R2_MASKPENNOT",
	6:  "R2_NOT",
	7:  "R2_XORPEN",
	8:  "R2_NOTMASKPEN",
	9:  "R2_MASKPEN",
	10: "R2_NOTXORPEN",
	11: "R2_NOP",
	12: "R2_MERGENOTPEN",
	13: "R2_COPYPEN",
	14: "R2_MERGEPENNOT",
	15: "R2_MERGEPEN",
	16: "R2_WHITE",
}

func ROP2(v uint32) string { return lookup(rop2s, v) }

var brushStyles = map[uint32]string{
	0: "BS_SOLID",
	1: "BS_NULL",
	2: "BS_HATCHED",
	3: "BS_PATTERN",
	4: "BS_INDEXED",
	5: "BS_DIBPATTERN",
	6: "BS_DIBPATTERNPT",
	7: "BS_PATTERN8X8",
	8: "BS_DIBPATTERN8X8",
	9: "BS_MONOPATTERN",
}

// Brush styles that carry a hatch value worth decoding.
const (
	BrushSolid   = 0
	BrushNull    = 1
	BrushHatched = 2
)

func BrushStyle(v uint32) string { return lookup(brushStyles, v) }

var hatchStyles = map[uint32]string{
	0: "HS_HORIZONTAL",
	1: "HS_VERTICAL",
	2: "HS_FDIAGONAL",
	3: "HS_BDIAGONAL",
	4: "HS_CROSS",
	5: "HS_DIAGCROSS",
}

func HatchStyle(v uint32) string { return lookup(hatchStyles, v) }

var clipModes = map[uint32]string{
	1: "RGN_AND",
	2: "RGN_OR",
	3: "RGN_XOR",
	4: "RGN_DIFF",
	5: "RGN_COPY",
}

func ClipRgnMergeMode(v uint32) string { return lookup(clipModes, v) }

var polyFillModes = map[uint32]string{
	1: "ALTERNATE",
	2: "WINDING",
}

func PolyFillMode(v uint32) string { return lookup(polyFillModes, v) }

var stretchModes = map[uint32]string{
	1: "BLACKONWHITE",
	2: "WHITEONBLACK",
	3: "COLORONCOLOR",
	4: "HALFTONE",
}

func StretchBltMode(v uint32) string { return lookup(stretchModes, v) }

// StockFlag marks an object index as a stock object id.
const StockFlag uint32 = 0x80000000

var stockObjects = map[uint32]string{
	0:  "WHITE_BRUSH",
	1:  "LTGRAY_BRUSH",
	2:  "GRAY_BRUSH",
	3:  "DKGRAY_BRUSH",
	4:  "BLACK_BRUSH",
	5:  "NULL_BRUSH",
	6:  "WHITE_PEN",
	7:  "BLACK_PEN",
	8:  "NULL_PEN",
	10: "OEM_FIXED_FONT",
	11: "ANSI_FIXED_FONT",
	12: "ANSI_VAR_FONT",
	13: "SYSTEM_FONT",
	14: "DEVICE_DEFAULT_FONT",
	15: "DEFAULT_PALETTE",
	16: "SYSTEM_FIXED_FONT",
	17: "DEFAULT_GUI_FONT",
	18: "DC_BRUSH",
	19: "DC_PEN",
}

func StockObject(v uint32) string { return lookup(stockObjects, v) }

var colorUsages = map[uint32]string{
	0: "DIB_RGB_COLORS",
	1: "DIB_PAL_COLORS",
}

func ColorTableUsage(v uint32) string { return lookup(colorUsages, v) }

var icmModes = map[uint32]string{
	1: "ICM_OFF",
	2: "ICM_ON",
	3: "ICM_QUERY",
	4: "ICM_DONE_OUTSIDEDC",
}

func ICMMode(v uint32) string { return lookup(icmModes, v) }

var worldTransforms = map[uint32]string{
	1: "MWT_IDENTITY",
	2: "MWT_LEFTMULTIPLY",
	3: "MWT_RIGHTMULTIPLY",
	4: "MWT_SET",
}

func WorldTransform(v uint32) string { return lookup(worldTransforms, v) }

var fontWeights = map[uint32]string{
	0:   "FW_DONTCARE",
	100: "FW_THIN",
	200: "FW_EXTRALIGHT",
	300: "FW_LIGHT",
	400: "FW_NORMAL",
	500: "FW_MEDIUM",
	600: "FW_SEMIBOLD",
	700: "FW_BOLD",
	800: "FW_EXTRABOLD",
	900: "FW_HEAVY",
}

func FontWeight(v uint32) string { return lookup(fontWeights, v) }

var bigBools = map[uint32]string{
	0: "FALSE",
	1: "TRUE",
}

func BigBool(v uint32) string { return lookup(bigBools, v) }

var charSets = map[uint32]string{
	0:   "ANSI_CHARSET",
	1:   "DEFAULT_CHARSET",
	2:   "SYMBOL_CHARSET",
	77:  "MAC_CHARSET",
	128: "SHIFTJIS_CHARSET",
	129: "HANGEUL_CHARSET",
	130: "JOHAB_CHARSET",
	134: "GB2312_CHARSET",
	136: "CHINESEBIG5_CHARSET",
	161: "GREEK_CHARSET",
	162: "TURKISH_CHARSET",
	163: "VIETNAMESE_CHARSET",
	177: "HEBREW_CHARSET",
	178: "ARABIC_CHARSET",
	186: "BALTIC_CHARSET",
	204: "RUSSIAN_CHARSET",
	222: "THAI_CHARSET",
	238: "EASTEUROPE_CHARSET",
	255: "OEM_CHARSET",
}

func CharSet(v uint32) string { return lookup(charSets, v) }

var outPrecisions = map[uint32]string{
	0:  "OUT_DEFAULT_PRECIS",
	1:  "OUT_STRING_PRECIS",
	2:  "OUT_CHARACTER_PRECIS",
	3:  "OUT_STROKE_PRECIS",
	4:  "OUT_TT_PRECIS",
	5:  "OUT_DEVICE_PRECIS",
	6:  "OUT_RASTER_PRECIS",
	7:  "OUT_TT_ONLY_PRECIS",
	8:  "OUT_OUTLINE_PRECIS",
	9:  "OUT_SCREEN_OUTLINE_PRECIS",
	10: "OUT_PS_ONLY_PRECIS",
}

func OutPrecision(v uint32) string { return lookup(outPrecisions, v) }

var qualities = map[uint32]string{
	0: "DEFAULT_QUALITY",
	1: "DRAFT_QUALITY",
	2: "PROOF_QUALITY",
	3: "NONANTIALIASED_QUALITY",
	4: "ANTIALIASED_QUALITY",
	5: "CLEARTYPE_QUALITY",
	6: "CLEARTYPE_NATURAL_QUALITY",
}

func Quality(v uint32) string { return lookup(qualities, v) }

var arcDirections = map[uint32]string{
	1: "AD_COUNTERCLOCKWISE",
	2: "AD_CLOCKWISE",
}

func ArcDirection(v uint32) string { return lookup(arcDirections, v) }

var floodFills = map[uint32]string{
	0: "FLOODFILLBORDER",
	1: "FLOODFILLSURFACE",
}

func FloodFill(v uint32) string { return lookup(floodFills, v) }

var compressions = map[uint32]string{
	0: "BI_RGB",
	1: "BI_RLE8",
	2: "BI_RLE4",
	3: "BI_BITFIELDS",
	4: "BI_JPEG",
	5: "BI_PNG",
}

func Compression(v uint32) string { return lookup(compressions, v) }

var graphicsModes = map[uint32]string{
	1: "GM_COMPATIBLE",
	2: "GM_ADVANCED",
}

func GraphicsMode(v uint32) string { return lookup(graphicsModes, v) }
