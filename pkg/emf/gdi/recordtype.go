package gdi

import "strconv"

// RecordType identifies a record kind. Values follow the GDI+
// EmfPlusRecordType enumeration, so one type spans WMF records
// (0x10000 | META_*), EMF records (1..122) and EMF+ records (0x4000 up).
type RecordType uint32

const (
	wmfRecordBase     = 0x00010000
	emfPlusRecordBase = 0x00004000
)

// WMF records.
const (
	WmfRecordTypeSetBkColor            RecordType = wmfRecordBase | 0x0201
	WmfRecordTypeSetBkMode             RecordType = wmfRecordBase | 0x0102
	WmfRecordTypeSetMapMode            RecordType = wmfRecordBase | 0x0103
	WmfRecordTypeSetROP2               RecordType = wmfRecordBase | 0x0104
	WmfRecordTypeSetRelAbs             RecordType = wmfRecordBase | 0x0105
	WmfRecordTypeSetPolyFillMode       RecordType = wmfRecordBase | 0x0106
	WmfRecordTypeSetStretchBltMode     RecordType = wmfRecordBase | 0x0107
	WmfRecordTypeSetTextCharExtra      RecordType = wmfRecordBase | 0x0108
	WmfRecordTypeSetTextColor          RecordType = wmfRecordBase | 0x0209
	WmfRecordTypeSetTextJustification  RecordType = wmfRecordBase | 0x020A
	WmfRecordTypeSetWindowOrg          RecordType = wmfRecordBase | 0x020B
	WmfRecordTypeSetWindowExt          RecordType = wmfRecordBase | 0x020C
	WmfRecordTypeSetViewportOrg        RecordType = wmfRecordBase | 0x020D
	WmfRecordTypeSetViewportExt        RecordType = wmfRecordBase | 0x020E
	WmfRecordTypeOffsetWindowOrg       RecordType = wmfRecordBase | 0x020F
	WmfRecordTypeScaleWindowExt        RecordType = wmfRecordBase | 0x0410
	WmfRecordTypeOffsetViewportOrg     RecordType = wmfRecordBase | 0x0211
	WmfRecordTypeScaleViewportExt      RecordType = wmfRecordBase | 0x0412
	WmfRecordTypeLineTo                RecordType = wmfRecordBase | 0x0213
	WmfRecordTypeMoveTo                RecordType = wmfRecordBase | 0x0214
	WmfRecordTypeExcludeClipRect       RecordType = wmfRecordBase | 0x0415
	WmfRecordTypeIntersectClipRect     RecordType = wmfRecordBase | 0x0416
	WmfRecordTypeArc                   RecordType = wmfRecordBase | 0x0817
	WmfRecordTypeEllipse               RecordType = wmfRecordBase | 0x0418
	WmfRecordTypeFloodFill             RecordType = wmfRecordBase | 0x0419
	WmfRecordTypePie                   RecordType = wmfRecordBase | 0x081A
	WmfRecordTypeRectangle             RecordType = wmfRecordBase | 0x041B
	WmfRecordTypeRoundRect             RecordType = wmfRecordBase | 0x061C
	WmfRecordTypePatBlt                RecordType = wmfRecordBase | 0x061D
	WmfRecordTypeSaveDC                RecordType = wmfRecordBase | 0x001E
	WmfRecordTypeSetPixel              RecordType = wmfRecordBase | 0x041F
	WmfRecordTypeOffsetClipRgn         RecordType = wmfRecordBase | 0x0220
	WmfRecordTypeTextOut               RecordType = wmfRecordBase | 0x0521
	WmfRecordTypeBitBlt                RecordType = wmfRecordBase | 0x0922
	WmfRecordTypeStretchBlt            RecordType = wmfRecordBase | 0x0B23
	WmfRecordTypePolygon               RecordType = wmfRecordBase | 0x0324
	WmfRecordTypePolyline              RecordType = wmfRecordBase | 0x0325
	WmfRecordTypeEscape                RecordType = wmfRecordBase | 0x0626
	WmfRecordTypeRestoreDC             RecordType = wmfRecordBase | 0x0127
	WmfRecordTypeFillRegion            RecordType = wmfRecordBase | 0x0228
	WmfRecordTypeFrameRegion           RecordType = wmfRecordBase | 0x0429
	WmfRecordTypeInvertRegion          RecordType = wmfRecordBase | 0x012A
	WmfRecordTypePaintRegion           RecordType = wmfRecordBase | 0x012B
	WmfRecordTypeSelectClipRegion      RecordType = wmfRecordBase | 0x012C
	WmfRecordTypeSelectObject          RecordType = wmfRecordBase | 0x012D
	WmfRecordTypeSetTextAlign          RecordType = wmfRecordBase | 0x012E
	WmfRecordTypeDrawText              RecordType = wmfRecordBase | 0x062F
	WmfRecordTypeChord                 RecordType = wmfRecordBase | 0x0830
	WmfRecordTypeSetMapperFlags        RecordType = wmfRecordBase | 0x0231
	WmfRecordTypeExtTextOut            RecordType = wmfRecordBase | 0x0A32
	WmfRecordTypeSetDIBToDev           RecordType = wmfRecordBase | 0x0D33
	WmfRecordTypeSelectPalette         RecordType = wmfRecordBase | 0x0234
	WmfRecordTypeRealizePalette        RecordType = wmfRecordBase | 0x0035
	WmfRecordTypeAnimatePalette        RecordType = wmfRecordBase | 0x0436
	WmfRecordTypeSetPalEntries         RecordType = wmfRecordBase | 0x0037
	WmfRecordTypePolyPolygon           RecordType = wmfRecordBase | 0x0538
	WmfRecordTypeResizePalette         RecordType = wmfRecordBase | 0x0139
	WmfRecordTypeDIBBitBlt             RecordType = wmfRecordBase | 0x0940
	WmfRecordTypeDIBStretchBlt         RecordType = wmfRecordBase | 0x0B41
	WmfRecordTypeDIBCreatePatternBrush RecordType = wmfRecordBase | 0x0142
	WmfRecordTypeStretchDIB            RecordType = wmfRecordBase | 0x0F43
	WmfRecordTypeExtFloodFill          RecordType = wmfRecordBase | 0x0548
	WmfRecordTypeSetLayout             RecordType = wmfRecordBase | 0x0149
	WmfRecordTypeResetDC               RecordType = wmfRecordBase | 0x014C
	WmfRecordTypeStartDoc              RecordType = wmfRecordBase | 0x014D
	WmfRecordTypeStartPage             RecordType = wmfRecordBase | 0x004F
	WmfRecordTypeEndPage               RecordType = wmfRecordBase | 0x0050
	WmfRecordTypeAbortDoc              RecordType = wmfRecordBase | 0x0052
	WmfRecordTypeEndDoc                RecordType = wmfRecordBase | 0x005E
	WmfRecordTypeDeleteObject          RecordType = wmfRecordBase | 0x01F0
	WmfRecordTypeCreatePalette         RecordType = wmfRecordBase | 0x00F7
	WmfRecordTypeCreateBrush           RecordType = wmfRecordBase | 0x00F8
	WmfRecordTypeCreatePatternBrush    RecordType = wmfRecordBase | 0x01F9
	WmfRecordTypeCreatePenIndirect     RecordType = wmfRecordBase | 0x02FA
	WmfRecordTypeCreateFontIndirect    RecordType = wmfRecordBase | 0x02FB
	WmfRecordTypeCreateBrushIndirect   RecordType = wmfRecordBase | 0x02FC
	WmfRecordTypeCreateBitmapIndirect  RecordType = wmfRecordBase | 0x02FD
	WmfRecordTypeCreateBitmap          RecordType = wmfRecordBase | 0x06FE
	WmfRecordTypeCreateRegion          RecordType = wmfRecordBase | 0x06FF
)

// EMF records.
const (
	EmfRecordTypeHeader RecordType = iota + 1
	EmfRecordTypePolyBezier
	EmfRecordTypePolygon
	EmfRecordTypePolyline
	EmfRecordTypePolyBezierTo
	EmfRecordTypePolylineTo
	EmfRecordTypePolyPolyline
	EmfRecordTypePolyPolygon
	EmfRecordTypeSetWindowExtEx
	EmfRecordTypeSetWindowOrgEx
	EmfRecordTypeSetViewportExtEx
	EmfRecordTypeSetViewportOrgEx
	EmfRecordTypeSetBrushOrgEx
	EmfRecordTypeEOF
	EmfRecordTypeSetPixelV
	EmfRecordTypeSetMapperFlags
	EmfRecordTypeSetMapMode
	EmfRecordTypeSetBkMode
	EmfRecordTypeSetPolyFillMode
	EmfRecordTypeSetROP2
	EmfRecordTypeSetStretchBltMode
	EmfRecordTypeSetTextAlign
	EmfRecordTypeSetColorAdjustment
	EmfRecordTypeSetTextColor
	EmfRecordTypeSetBkColor
	EmfRecordTypeOffsetClipRgn
	EmfRecordTypeMoveToEx
	EmfRecordTypeSetMetaRgn
	EmfRecordTypeExcludeClipRect
	EmfRecordTypeIntersectClipRect
	EmfRecordTypeScaleViewportExtEx
	EmfRecordTypeScaleWindowExtEx
	EmfRecordTypeSaveDC
	EmfRecordTypeRestoreDC
	EmfRecordTypeSetWorldTransform
	EmfRecordTypeModifyWorldTransform
	EmfRecordTypeSelectObject
	EmfRecordTypeCreatePen
	EmfRecordTypeCreateBrushIndirect
	EmfRecordTypeDeleteObject
	EmfRecordTypeAngleArc
	EmfRecordTypeEllipse
	EmfRecordTypeRectangle
	EmfRecordTypeRoundRect
	EmfRecordTypeArc
	EmfRecordTypeChord
	EmfRecordTypePie
	EmfRecordTypeSelectPalette
	EmfRecordTypeCreatePalette
	EmfRecordTypeSetPaletteEntries
	EmfRecordTypeResizePalette
	EmfRecordTypeRealizePalette
	EmfRecordTypeExtFloodFill
	EmfRecordTypeLineTo
	EmfRecordTypeArcTo
	EmfRecordTypePolyDraw
	EmfRecordTypeSetArcDirection
	EmfRecordTypeSetMiterLimit
	EmfRecordTypeBeginPath
	EmfRecordTypeEndPath
	EmfRecordTypeCloseFigure
	EmfRecordTypeFillPath
	EmfRecordTypeStrokeAndFillPath
	EmfRecordTypeStrokePath
	EmfRecordTypeFlattenPath
	EmfRecordTypeWidenPath
	EmfRecordTypeSelectClipPath
	EmfRecordTypeAbortPath
	EmfRecordTypeReserved069
	EmfRecordTypeGdiComment
	EmfRecordTypeFillRgn
	EmfRecordTypeFrameRgn
	EmfRecordTypeInvertRgn
	EmfRecordTypePaintRgn
	EmfRecordTypeExtSelectClipRgn
	EmfRecordTypeBitBlt
	EmfRecordTypeStretchBlt
	EmfRecordTypeMaskBlt
	EmfRecordTypePlgBlt
	EmfRecordTypeSetDIBitsToDevice
	EmfRecordTypeStretchDIBits
	EmfRecordTypeExtCreateFontIndirect
	EmfRecordTypeExtTextOutA
	EmfRecordTypeExtTextOutW
	EmfRecordTypePolyBezier16
	EmfRecordTypePolygon16
	EmfRecordTypePolyline16
	EmfRecordTypePolyBezierTo16
	EmfRecordTypePolylineTo16
	EmfRecordTypePolyPolyline16
	EmfRecordTypePolyPolygon16
	EmfRecordTypePolyDraw16
	EmfRecordTypeCreateMonoBrush
	EmfRecordTypeCreateDIBPatternBrushPt
	EmfRecordTypeExtCreatePen
	EmfRecordTypePolyTextOutA
	EmfRecordTypePolyTextOutW
	EmfRecordTypeSetICMMode
	EmfRecordTypeCreateColorSpace
	EmfRecordTypeSetColorSpace
	EmfRecordTypeDeleteColorSpace
	EmfRecordTypeGLSRecord
	EmfRecordTypeGLSBoundedRecord
	EmfRecordTypePixelFormat
	EmfRecordTypeDrawEscape
	EmfRecordTypeExtEscape
	EmfRecordTypeStartDoc
	EmfRecordTypeSmallTextOut
	EmfRecordTypeForceUFIMapping
	EmfRecordTypeNamedEscape
	EmfRecordTypeColorCorrectPalette
	EmfRecordTypeSetICMProfileA
	EmfRecordTypeSetICMProfileW
	EmfRecordTypeAlphaBlend
	EmfRecordTypeSetLayout
	EmfRecordTypeTransparentBlt
	EmfRecordTypeReserved117
	EmfRecordTypeGradientFill
	EmfRecordTypeSetLinkedUFIs
	EmfRecordTypeSetTextJustification
	EmfRecordTypeColorMatchToTargetW
	EmfRecordTypeCreateColorSpaceW
)

// EMF+ records. They are named, never decoded.
const (
	EmfPlusRecordTypeInvalid RecordType = emfPlusRecordBase + iota
	EmfPlusRecordTypeHeader
	EmfPlusRecordTypeEndOfFile
	EmfPlusRecordTypeComment
	EmfPlusRecordTypeGetDC
	EmfPlusRecordTypeMultiFormatStart
	EmfPlusRecordTypeMultiFormatSection
	EmfPlusRecordTypeMultiFormatEnd
	EmfPlusRecordTypeObject
	EmfPlusRecordTypeClear
	EmfPlusRecordTypeFillRects
	EmfPlusRecordTypeDrawRects
	EmfPlusRecordTypeFillPolygon
	EmfPlusRecordTypeDrawLines
	EmfPlusRecordTypeFillEllipse
	EmfPlusRecordTypeDrawEllipse
	EmfPlusRecordTypeFillPie
	EmfPlusRecordTypeDrawPie
	EmfPlusRecordTypeDrawArc
	EmfPlusRecordTypeFillRegion
	EmfPlusRecordTypeFillPath
	EmfPlusRecordTypeDrawPath
	EmfPlusRecordTypeFillClosedCurve
	EmfPlusRecordTypeDrawClosedCurve
	EmfPlusRecordTypeDrawCurve
	EmfPlusRecordTypeDrawBeziers
	EmfPlusRecordTypeDrawImage
	EmfPlusRecordTypeDrawImagePoints
	EmfPlusRecordTypeDrawString
	EmfPlusRecordTypeSetRenderingOrigin
	EmfPlusRecordTypeSetAntiAliasMode
	EmfPlusRecordTypeSetTextRenderingHint
	EmfPlusRecordTypeSetTextContrast
	EmfPlusRecordTypeSetInterpolationMode
	EmfPlusRecordTypeSetPixelOffsetMode
	EmfPlusRecordTypeSetCompositingMode
	EmfPlusRecordTypeSetCompositingQuality
	EmfPlusRecordTypeSave
	EmfPlusRecordTypeRestore
	EmfPlusRecordTypeBeginContainer
	EmfPlusRecordTypeBeginContainerNoParams
	EmfPlusRecordTypeEndContainer
	EmfPlusRecordTypeSetWorldTransform
	EmfPlusRecordTypeResetWorldTransform
	EmfPlusRecordTypeMultiplyWorldTransform
	EmfPlusRecordTypeTranslateWorldTransform
	EmfPlusRecordTypeScaleWorldTransform
	EmfPlusRecordTypeRotateWorldTransform
	EmfPlusRecordTypeSetPageTransform
	EmfPlusRecordTypeResetClip
	EmfPlusRecordTypeSetClipRect
	EmfPlusRecordTypeSetClipPath
	EmfPlusRecordTypeSetClipRegion
	EmfPlusRecordTypeOffsetClip
	EmfPlusRecordTypeDrawDriverString
	EmfPlusRecordTypeStrokeFillPath
	EmfPlusRecordTypeSerializableObject
	EmfPlusRecordTypeSetTSGraphics
	EmfPlusRecordTypeSetTSClip
)

// EmfRecordTypeMax is the last EMF record kind.
const EmfRecordTypeMax = EmfRecordTypeCreateColorSpaceW

var recordNames = map[RecordType]string{
	WmfRecordTypeSetBkColor:                  "WmfSetBkColor",
	WmfRecordTypeSetBkMode:                   "WmfSetBkMode",
	WmfRecordTypeSetMapMode:                  "WmfSetMapMode",
	WmfRecordTypeSetROP2:                     "WmfSetROP2",
	WmfRecordTypeSetRelAbs:                   "WmfSetRelAbs",
	WmfRecordTypeSetPolyFillMode:             "WmfSetPolyFillMode",
	WmfRecordTypeSetStretchBltMode:           "WmfSetStretchBltMode",
	WmfRecordTypeSetTextCharExtra:            "WmfSetTextCharExtra",
	WmfRecordTypeSetTextColor:                "WmfSetTextColor",
	WmfRecordTypeSetTextJustification:        "WmfSetTextJustification",
	WmfRecordTypeSetWindowOrg:                "WmfSetWindowOrg",
	WmfRecordTypeSetWindowExt:                "WmfSetWindowExt",
	WmfRecordTypeSetViewportOrg:              "WmfSetViewportOrg",
	WmfRecordTypeSetViewportExt:              "WmfSetViewportExt",
	WmfRecordTypeOffsetWindowOrg:             "WmfOffsetWindowOrg",
	WmfRecordTypeScaleWindowExt:              "WmfScaleWindowExt",
	WmfRecordTypeOffsetViewportOrg:           "WmfOffsetViewportOrg",
	WmfRecordTypeScaleViewportExt:            "WmfScaleViewportExt",
	WmfRecordTypeLineTo:                      "WmfLineTo",
	WmfRecordTypeMoveTo:                      "WmfMoveTo",
	WmfRecordTypeExcludeClipRect:             "WmfExcludeClipRect",
	WmfRecordTypeIntersectClipRect:           "WmfIntersectClipRect",
	WmfRecordTypeArc:                         "WmfArc",
	WmfRecordTypeEllipse:                     "WmfEllipse",
	WmfRecordTypeFloodFill:                   "WmfFloodFill",
	WmfRecordTypePie:                         "WmfPie",
	WmfRecordTypeRectangle:                   "WmfRectangle",
	WmfRecordTypeRoundRect:                   "WmfRoundRect",
	WmfRecordTypePatBlt:                      "WmfPatBlt",
	WmfRecordTypeSaveDC:                      "WmfSaveDC",
	WmfRecordTypeSetPixel:                    "WmfSetPixel",
	WmfRecordTypeOffsetClipRgn:               "WmfOffsetClipRgn",
	WmfRecordTypeTextOut:                     "WmfTextOut",
	WmfRecordTypeBitBlt:                      "WmfBitBlt",
	WmfRecordTypeStretchBlt:                  "WmfStretchBlt",
	WmfRecordTypePolygon:                     "WmfPolygon",
	WmfRecordTypePolyline:                    "WmfPolyline",
	WmfRecordTypeEscape:                      "WmfEscape",
	WmfRecordTypeRestoreDC:                   "WmfRestoreDC",
	WmfRecordTypeFillRegion:                  "WmfFillRegion",
	WmfRecordTypeFrameRegion:                 "WmfFrameRegion",
	WmfRecordTypeInvertRegion:                "WmfInvertRegion",
	WmfRecordTypePaintRegion:                 "WmfPaintRegion",
	WmfRecordTypeSelectClipRegion:            "WmfSelectClipRegion",
	WmfRecordTypeSelectObject:                "WmfSelectObject",
	WmfRecordTypeSetTextAlign:                "WmfSetTextAlign",
	WmfRecordTypeDrawText:                    "WmfDrawText",
	WmfRecordTypeChord:                       "WmfChord",
	WmfRecordTypeSetMapperFlags:              "WmfSetMapperFlags",
	WmfRecordTypeExtTextOut:                  "WmfExtTextOut",
	WmfRecordTypeSetDIBToDev:                 "WmfSetDIBToDev",
	WmfRecordTypeSelectPalette:               "WmfSelectPalette",
	WmfRecordTypeRealizePalette:              "WmfRealizePalette",
	WmfRecordTypeAnimatePalette:              "WmfAnimatePalette",
	WmfRecordTypeSetPalEntries:               "WmfSetPalEntries",
	WmfRecordTypePolyPolygon:                 "WmfPolyPolygon",
	WmfRecordTypeResizePalette:               "WmfResizePalette",
	WmfRecordTypeDIBBitBlt:                   "WmfDIBBitBlt",
	WmfRecordTypeDIBStretchBlt:               "WmfDIBStretchBlt",
	WmfRecordTypeDIBCreatePatternBrush:       "WmfDIBCreatePatternBrush",
	WmfRecordTypeStretchDIB:                  "WmfStretchDIB",
	WmfRecordTypeExtFloodFill:                "WmfExtFloodFill",
	WmfRecordTypeSetLayout:                   "WmfSetLayout",
	WmfRecordTypeResetDC:                     "WmfResetDC",
	WmfRecordTypeStartDoc:                    "WmfStartDoc",
	WmfRecordTypeStartPage:                   "WmfStartPage",
	WmfRecordTypeEndPage:                     "WmfEndPage",
	WmfRecordTypeAbortDoc:                    "WmfAbortDoc",
	WmfRecordTypeEndDoc:                      "WmfEndDoc",
	WmfRecordTypeDeleteObject:                "WmfDeleteObject",
	WmfRecordTypeCreatePalette:               "WmfCreatePalette",
	WmfRecordTypeCreateBrush:                 "WmfCreateBrush",
	WmfRecordTypeCreatePatternBrush:          "WmfCreatePatternBrush",
	WmfRecordTypeCreatePenIndirect:           "WmfCreatePenIndirect",
	WmfRecordTypeCreateFontIndirect:          "WmfCreateFontIndirect",
	WmfRecordTypeCreateBrushIndirect:         "WmfCreateBrushIndirect",
	WmfRecordTypeCreateBitmapIndirect:        "WmfCreateBitmapIndirect",
	WmfRecordTypeCreateBitmap:                "WmfCreateBitmap",
	WmfRecordTypeCreateRegion:                "WmfCreateRegion",
	EmfRecordTypeHeader:                      "Header",
	EmfRecordTypePolyBezier:                  "PolyBezier",
	EmfRecordTypePolygon:                     "Polygon",
	EmfRecordTypePolyline:                    "Polyline",
	EmfRecordTypePolyBezierTo:                "PolyBezierTo",
	EmfRecordTypePolylineTo:                  "PolylineTo",
	EmfRecordTypePolyPolyline:                "PolyPolyline",
	EmfRecordTypePolyPolygon:                 "PolyPolygon",
	EmfRecordTypeSetWindowExtEx:              "SetWindowExtEx",
	EmfRecordTypeSetWindowOrgEx:              "SetWindowOrgEx",
	EmfRecordTypeSetViewportExtEx:            "SetViewportExtEx",
	EmfRecordTypeSetViewportOrgEx:            "SetViewportOrgEx",
	EmfRecordTypeSetBrushOrgEx:               "SetBrushOrgEx",
	EmfRecordTypeEOF:                         "EOF",
	EmfRecordTypeSetPixelV:                   "SetPixelV",
	EmfRecordTypeSetMapperFlags:              "SetMapperFlags",
	EmfRecordTypeSetMapMode:                  "SetMapMode",
	EmfRecordTypeSetBkMode:                   "SetBkMode",
	EmfRecordTypeSetPolyFillMode:             "SetPolyFillMode",
	EmfRecordTypeSetROP2:                     "SetROP2",
	EmfRecordTypeSetStretchBltMode:           "SetStretchBltMode",
	EmfRecordTypeSetTextAlign:                "SetTextAlign",
	EmfRecordTypeSetColorAdjustment:          "SetColorAdjustment",
	EmfRecordTypeSetTextColor:                "SetTextColor",
	EmfRecordTypeSetBkColor:                  "SetBkColor",
	EmfRecordTypeOffsetClipRgn:               "OffsetClipRgn",
	EmfRecordTypeMoveToEx:                    "MoveToEx",
	EmfRecordTypeSetMetaRgn:                  "SetMetaRgn",
	EmfRecordTypeExcludeClipRect:             "ExcludeClipRect",
	EmfRecordTypeIntersectClipRect:           "IntersectClipRect",
	EmfRecordTypeScaleViewportExtEx:          "ScaleViewportExtEx",
	EmfRecordTypeScaleWindowExtEx:            "ScaleWindowExtEx",
	EmfRecordTypeSaveDC:                      "SaveDC",
	EmfRecordTypeRestoreDC:                   "RestoreDC",
	EmfRecordTypeSetWorldTransform:           "SetWorldTransform",
	EmfRecordTypeModifyWorldTransform:        "ModifyWorldTransform",
	EmfRecordTypeSelectObject:                "SelectObject",
	EmfRecordTypeCreatePen:                   "CreatePen",
	EmfRecordTypeCreateBrushIndirect:         "CreateBrushIndirect",
	EmfRecordTypeDeleteObject:                "DeleteObject",
	EmfRecordTypeAngleArc:                    "AngleArc",
	EmfRecordTypeEllipse:                     "Ellipse",
	EmfRecordTypeRectangle:                   "Rectangle",
	EmfRecordTypeRoundRect:                   "RoundRect",
	EmfRecordTypeArc:                         "Arc",
	EmfRecordTypeChord:                       "Chord",
	EmfRecordTypePie:                         "Pie",
	EmfRecordTypeSelectPalette:               "SelectPalette",
	EmfRecordTypeCreatePalette:               "CreatePalette",
	EmfRecordTypeSetPaletteEntries:           "SetPaletteEntries",
	EmfRecordTypeResizePalette:               "ResizePalette",
	EmfRecordTypeRealizePalette:              "RealizePalette",
	EmfRecordTypeExtFloodFill:                "ExtFloodFill",
	EmfRecordTypeLineTo:                      "LineTo",
	EmfRecordTypeArcTo:                       "ArcTo",
	EmfRecordTypePolyDraw:                    "PolyDraw",
	EmfRecordTypeSetArcDirection:             "SetArcDirection",
	EmfRecordTypeSetMiterLimit:               "SetMiterLimit",
	EmfRecordTypeBeginPath:                   "BeginPath",
	EmfRecordTypeEndPath:                     "EndPath",
	EmfRecordTypeCloseFigure:                 "CloseFigure",
	EmfRecordTypeFillPath:                    "FillPath",
	EmfRecordTypeStrokeAndFillPath:           "StrokeAndFillPath",
	EmfRecordTypeStrokePath:                  "StrokePath",
	EmfRecordTypeFlattenPath:                 "FlattenPath",
	EmfRecordTypeWidenPath:                   "WidenPath",
	EmfRecordTypeSelectClipPath:              "SelectClipPath",
	EmfRecordTypeAbortPath:                   "AbortPath",
	EmfRecordTypeReserved069:                 "Reserved069",
	EmfRecordTypeGdiComment:                  "GdiComment",
	EmfRecordTypeFillRgn:                     "FillRgn",
	EmfRecordTypeFrameRgn:                    "FrameRgn",
	EmfRecordTypeInvertRgn:                   "InvertRgn",
	EmfRecordTypePaintRgn:                    "PaintRgn",
	EmfRecordTypeExtSelectClipRgn:            "ExtSelectClipRgn",
	EmfRecordTypeBitBlt:                      "BitBlt",
	EmfRecordTypeStretchBlt:                  "StretchBlt",
	EmfRecordTypeMaskBlt:                     "MaskBlt",
	EmfRecordTypePlgBlt:                      "PlgBlt",
	EmfRecordTypeSetDIBitsToDevice:           "SetDIBitsToDevice",
	EmfRecordTypeStretchDIBits:               "StretchDIBits",
	EmfRecordTypeExtCreateFontIndirect:       "ExtCreateFontIndirect",
	EmfRecordTypeExtTextOutA:                 "ExtTextOutA",
	EmfRecordTypeExtTextOutW:                 "ExtTextOutW",
	EmfRecordTypePolyBezier16:                "PolyBezier16",
	EmfRecordTypePolygon16:                   "Polygon16",
	EmfRecordTypePolyline16:                  "Polyline16",
	EmfRecordTypePolyBezierTo16:              "PolyBezierTo16",
	EmfRecordTypePolylineTo16:                "PolylineTo16",
	EmfRecordTypePolyPolyline16:              "PolyPolyline16",
	EmfRecordTypePolyPolygon16:               "PolyPolygon16",
	EmfRecordTypePolyDraw16:                  "PolyDraw16",
	EmfRecordTypeCreateMonoBrush:             "CreateMonoBrush",
	EmfRecordTypeCreateDIBPatternBrushPt:     "CreateDIBPatternBrushPt",
	EmfRecordTypeExtCreatePen:                "ExtCreatePen",
	EmfRecordTypePolyTextOutA:                "PolyTextOutA",
	EmfRecordTypePolyTextOutW:                "PolyTextOutW",
	EmfRecordTypeSetICMMode:                  "SetICMMode",
	EmfRecordTypeCreateColorSpace:            "CreateColorSpace",
	EmfRecordTypeSetColorSpace:               "SetColorSpace",
	EmfRecordTypeDeleteColorSpace:            "DeleteColorSpace",
	EmfRecordTypeGLSRecord:                   "GLSRecord",
	EmfRecordTypeGLSBoundedRecord:            "GLSBoundedRecord",
	EmfRecordTypePixelFormat:                 "PixelFormat",
	EmfRecordTypeDrawEscape:                  "DrawEscape",
	EmfRecordTypeExtEscape:                   "ExtEscape",
	EmfRecordTypeStartDoc:                    "StartDoc",
	EmfRecordTypeSmallTextOut:                "SmallTextOut",
	EmfRecordTypeForceUFIMapping:             "ForceUFIMapping",
	EmfRecordTypeNamedEscape:                 "NamedEscape",
	EmfRecordTypeColorCorrectPalette:         "ColorCorrectPalette",
	EmfRecordTypeSetICMProfileA:              "SetICMProfileA",
	EmfRecordTypeSetICMProfileW:              "SetICMProfileW",
	EmfRecordTypeAlphaBlend:                  "AlphaBlend",
	EmfRecordTypeSetLayout:                   "SetLayout",
	EmfRecordTypeTransparentBlt:              "TransparentBlt",
	EmfRecordTypeReserved117:                 "Reserved117",
	EmfRecordTypeGradientFill:                "GradientFill",
	EmfRecordTypeSetLinkedUFIs:               "SetLinkedUFIs",
	EmfRecordTypeSetTextJustification:        "SetTextJustification",
	EmfRecordTypeColorMatchToTargetW:         "ColorMatchToTargetW",
	EmfRecordTypeCreateColorSpaceW:           "CreateColorSpaceW",
	EmfPlusRecordTypeInvalid:                 "EmfPlusInvalid",
	EmfPlusRecordTypeHeader:                  "EmfPlusHeader",
	EmfPlusRecordTypeEndOfFile:               "EmfPlusEndOfFile",
	EmfPlusRecordTypeComment:                 "EmfPlusComment",
	EmfPlusRecordTypeGetDC:                   "EmfPlusGetDC",
	EmfPlusRecordTypeMultiFormatStart:        "EmfPlusMultiFormatStart",
	EmfPlusRecordTypeMultiFormatSection:      "EmfPlusMultiFormatSection",
	EmfPlusRecordTypeMultiFormatEnd:          "EmfPlusMultiFormatEnd",
	EmfPlusRecordTypeObject:                  "EmfPlusObject",
	EmfPlusRecordTypeClear:                   "EmfPlusClear",
	EmfPlusRecordTypeFillRects:               "EmfPlusFillRects",
	EmfPlusRecordTypeDrawRects:               "EmfPlusDrawRects",
	EmfPlusRecordTypeFillPolygon:             "EmfPlusFillPolygon",
	EmfPlusRecordTypeDrawLines:               "EmfPlusDrawLines",
	EmfPlusRecordTypeFillEllipse:             "EmfPlusFillEllipse",
	EmfPlusRecordTypeDrawEllipse:             "EmfPlusDrawEllipse",
	EmfPlusRecordTypeFillPie:                 "EmfPlusFillPie",
	EmfPlusRecordTypeDrawPie:                 "EmfPlusDrawPie",
	EmfPlusRecordTypeDrawArc:                 "EmfPlusDrawArc",
	EmfPlusRecordTypeFillRegion:              "EmfPlusFillRegion",
	EmfPlusRecordTypeFillPath:                "EmfPlusFillPath",
	EmfPlusRecordTypeDrawPath:                "EmfPlusDrawPath",
	EmfPlusRecordTypeFillClosedCurve:         "EmfPlusFillClosedCurve",
	EmfPlusRecordTypeDrawClosedCurve:         "EmfPlusDrawClosedCurve",
	EmfPlusRecordTypeDrawCurve:               "EmfPlusDrawCurve",
	EmfPlusRecordTypeDrawBeziers:             "EmfPlusDrawBeziers",
	EmfPlusRecordTypeDrawImage:               "EmfPlusDrawImage",
	EmfPlusRecordTypeDrawImagePoints:         "EmfPlusDrawImagePoints",
	EmfPlusRecordTypeDrawString:              "EmfPlusDrawString",
	EmfPlusRecordTypeSetRenderingOrigin:      "EmfPlusSetRenderingOrigin",
	EmfPlusRecordTypeSetAntiAliasMode:        "EmfPlusSetAntiAliasMode",
	EmfPlusRecordTypeSetTextRenderingHint:    "EmfPlusSetTextRenderingHint",
	EmfPlusRecordTypeSetTextContrast:         "EmfPlusSetTextContrast",
	EmfPlusRecordTypeSetInterpolationMode:    "EmfPlusSetInterpolationMode",
	EmfPlusRecordTypeSetPixelOffsetMode:      "EmfPlusSetPixelOffsetMode",
	EmfPlusRecordTypeSetCompositingMode:      "EmfPlusSetCompositingMode",
	EmfPlusRecordTypeSetCompositingQuality:   "EmfPlusSetCompositingQuality",
	EmfPlusRecordTypeSave:                    "EmfPlusSave",
	EmfPlusRecordTypeRestore:                 "EmfPlusRestore",
	EmfPlusRecordTypeBeginContainer:          "EmfPlusBeginContainer",
	EmfPlusRecordTypeBeginContainerNoParams:  "EmfPlusBeginContainerNoParams",
	EmfPlusRecordTypeEndContainer:            "EmfPlusEndContainer",
	EmfPlusRecordTypeSetWorldTransform:       "EmfPlusSetWorldTransform",
	EmfPlusRecordTypeResetWorldTransform:     "EmfPlusResetWorldTransform",
	EmfPlusRecordTypeMultiplyWorldTransform:  "EmfPlusMultiplyWorldTransform",
	EmfPlusRecordTypeTranslateWorldTransform: "EmfPlusTranslateWorldTransform",
	EmfPlusRecordTypeScaleWorldTransform:     "EmfPlusScaleWorldTransform",
	EmfPlusRecordTypeRotateWorldTransform:    "EmfPlusRotateWorldTransform",
	EmfPlusRecordTypeSetPageTransform:        "EmfPlusSetPageTransform",
	EmfPlusRecordTypeResetClip:               "EmfPlusResetClip",
	EmfPlusRecordTypeSetClipRect:             "EmfPlusSetClipRect",
	EmfPlusRecordTypeSetClipPath:             "EmfPlusSetClipPath",
	EmfPlusRecordTypeSetClipRegion:           "EmfPlusSetClipRegion",
	EmfPlusRecordTypeOffsetClip:              "EmfPlusOffsetClip",
	EmfPlusRecordTypeDrawDriverString:        "EmfPlusDrawDriverString",
	EmfPlusRecordTypeStrokeFillPath:          "EmfPlusStrokeFillPath",
	EmfPlusRecordTypeSerializableObject:      "EmfPlusSerializableObject",
	EmfPlusRecordTypeSetTSGraphics:           "EmfPlusSetTSGraphics",
	EmfPlusRecordTypeSetTSClip:               "EmfPlusSetTSClip",
}

// String names EMF kinds by their GDI name, WMF kinds with a Wmf prefix and
// EMF+ kinds with an EmfPlus prefix. Unknown kinds render as decimal.
func (t RecordType) String() string {
	if name, ok := recordNames[t]; ok {
		return name
	}
	return strconv.FormatUint(uint64(t), 10)
}

// IsEMF reports whether t is a classic EMF record kind.
func (t RecordType) IsEMF() bool {
	return t >= EmfRecordTypeHeader && t <= EmfRecordTypeMax
}

// IsEMFPlus reports whether t is an EMF+ record kind.
func (t RecordType) IsEMFPlus() bool {
	return t >= EmfPlusRecordTypeInvalid && t <= EmfPlusRecordTypeSetTSClip
}

// IsWMF reports whether t is a WMF record kind.
func (t RecordType) IsWMF() bool {
	return t&^0xFFFF == wmfRecordBase
}
