package emitter

// =================================
// Identifiers in generated code
// =================================
const (
	DefaultDeviceContext = "hdc"           // HDC every call draws on
	DefaultHandleArray   = "gdiHandles"    // HGDIOBJ array sized by nHandles
	DefaultStockCell     = "g_stockObject" // scratch cell for stock selects
)

// =================================
// Rendering
// =================================
const (
	Indent            = "\t"
	NullArg           = "nullptr"
	TrailerPrefix     = "// record kind = "
	EmptyArrayMarker  = "// Array count = 0"
	DecodeErrorPrefix = "// decode error: "
	EOFMarker         = "// EOF"
)

// =================================
// Generated declarations
// =================================
const (
	pointType     = "POINT"
	pointTypeSize = 8
	rectType      = "RECT"
	rectTypeSize  = 16
	dwordType     = "DWORD"
	intType       = "INT"
	byteType      = "BYTE"
	uint32Size    = 4
	bitmapHeader  = 40 // sizeof(BITMAPINFOHEADER)
	packedRowSize = 16 // bytes per line for blobs without scan lines
)
