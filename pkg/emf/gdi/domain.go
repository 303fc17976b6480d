// Package gdi maps raw GDI integers to the symbolic constant names used by
// the Win32 drawing API.
//
// Every function is pure and returns a fresh string. Values a table does not
// know are rendered as plain base-10 text, so the output always compiles to
// the same number the metafile carried.
package gdi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
)

// Domain identifies one value space of the dictionary.
type Domain int

const (
	DomainBkMode Domain = iota
	DomainMapMode
	DomainROP2
	DomainROP3
	DomainPenStyle
	DomainBrushStyle
	DomainHatchStyle
	DomainClipRgnMergeMode
	DomainPolyFillMode
	DomainStretchBltMode
	DomainTextAlign
	DomainLayout
	DomainStockObject
	DomainColorTableUsage
	DomainICMMode
	DomainWorldTransform
	DomainExtTextOutOptions
	DomainFontWeight
	DomainBigBool
	DomainCharSet
	DomainOutPrecision
	DomainClipPrecision
	DomainQuality
	DomainPitchAndFamily
	DomainArcDirection
	DomainFloodFill
	DomainPointType
	DomainCompression
	DomainGraphicsMode
	DomainRecordType
	DomainColor
)

var domainNames = map[Domain]string{
	DomainBkMode:            "bk-mode",
	DomainMapMode:           "map-mode",
	DomainROP2:              "rop2",
	DomainROP3:              "rop3",
	DomainPenStyle:          "pen-style",
	DomainBrushStyle:        "brush-style",
	DomainHatchStyle:        "hatch-style",
	DomainClipRgnMergeMode:  "clip-merge-mode",
	DomainPolyFillMode:      "poly-fill-mode",
	DomainStretchBltMode:    "stretch-mode",
	DomainTextAlign:         "text-align",
	DomainLayout:            "layout",
	DomainStockObject:       "stock-object",
	DomainColorTableUsage:   "color-usage",
	DomainICMMode:           "icm-mode",
	DomainWorldTransform:    "world-transform",
	DomainExtTextOutOptions: "text-out-options",
	DomainFontWeight:        "font-weight",
	DomainBigBool:           "bool",
	DomainCharSet:           "charset",
	DomainOutPrecision:      "out-precision",
	DomainClipPrecision:     "clip-precision",
	DomainQuality:           "quality",
	DomainPitchAndFamily:    "pitch-and-family",
	DomainArcDirection:      "arc-direction",
	DomainFloodFill:         "flood-fill",
	DomainPointType:         "point-type",
	DomainCompression:       "compression",
	DomainGraphicsMode:      "graphics-mode",
	DomainRecordType:        "record-type",
	DomainColor:             "color",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return "domain(" + strconv.Itoa(int(d)) + ")"
}

// Domains returns every domain sorted by name.
func Domains() []Domain {
	out := make([]Domain, 0, len(domainNames))
	for d := range domainNames {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// ParseDomain looks a domain up by its String name.
func ParseDomain(name string) (Domain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d, n := range domainNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", emferrors.ErrUnknownDomain, name)
}

// Decode renders v in domain d.
func Decode(d Domain, v uint32) string {
	switch d {
	case DomainBkMode:
		return BkMode(v)
	case DomainMapMode:
		return MapMode(v)
	case DomainROP2:
		return ROP2(v)
	case DomainROP3:
		return ROP3(v)
	case DomainPenStyle:
		return PenStyle(v)
	case DomainBrushStyle:
		return BrushStyle(v)
	case DomainHatchStyle:
		return HatchStyle(v)
	case DomainClipRgnMergeMode:
		return ClipRgnMergeMode(v)
	case DomainPolyFillMode:
		return PolyFillMode(v)
	case DomainStretchBltMode:
		return StretchBltMode(v)
	case DomainTextAlign:
		return TextAlign(v)
	case DomainLayout:
		return Layout(v)
	case DomainStockObject:
		return StockObject(v)
	case DomainColorTableUsage:
		return ColorTableUsage(v)
	case DomainICMMode:
		return ICMMode(v)
	case DomainWorldTransform:
		return WorldTransform(v)
	case DomainExtTextOutOptions:
		return ExtTextOutOptions(v)
	case DomainFontWeight:
		return FontWeight(v)
	case DomainBigBool:
		return BigBool(v)
	case DomainCharSet:
		return CharSet(v)
	case DomainOutPrecision:
		return OutPrecision(v)
	case DomainClipPrecision:
		return ClipPrecision(v)
	case DomainQuality:
		return Quality(v)
	case DomainPitchAndFamily:
		return PitchAndFamily(v)
	case DomainArcDirection:
		return ArcDirection(v)
	case DomainFloodFill:
		return FloodFill(v)
	case DomainPointType:
		return PointType(v)
	case DomainCompression:
		return Compression(v)
	case DomainGraphicsMode:
		return GraphicsMode(v)
	case DomainRecordType:
		return RecordType(v).String()
	case DomainColor:
		return RGBColor(v)
	}
	return decimal(v)
}

// Or joins symbolic parts the way C source combines flags.
const Or = " | "

func decimal(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func lookup(table map[uint32]string, v uint32) string {
	if name, ok := table[v]; ok {
		return name
	}
	return decimal(v)
}
