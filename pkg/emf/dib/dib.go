// Package dib converts the device-independent bitmaps embedded in EMF
// records into standard images.
package dib

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/bmp"

	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
	"github.com/provide-io/emfsrc/pkg/utils/permissions"
)

const (
	fileHeaderSize = 14 // BITMAPFILEHEADER
	infoHeaderSize = 40 // BITMAPINFOHEADER
	coreHeaderSize = 12 // BITMAPCOREHEADER
)

// File returns d as the bytes of a .bmp file: a BITMAPFILEHEADER followed
// by the packed DIB. Core headers are widened to BITMAPINFOHEADER.
func File(d *fields.DIB) []byte {
	info := d.Info
	if d.Header.Size == coreHeaderSize {
		info = widenCore(d)
	}

	out := make([]byte, fileHeaderSize, fileHeaderSize+len(info)+len(d.Bits))
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:], uint32(cap(out)))
	binary.LittleEndian.PutUint32(out[10:], uint32(fileHeaderSize+len(info)))
	out = append(out, info...)
	return append(out, d.Bits...)
}

// widenCore rewrites a BITMAPCOREHEADER and its RGBTRIPLE color table.
func widenCore(d *fields.DIB) []byte {
	h := d.Header
	out := make([]byte, infoHeaderSize)
	binary.LittleEndian.PutUint32(out[0:], infoHeaderSize)
	binary.LittleEndian.PutUint32(out[4:], uint32(h.Width))
	binary.LittleEndian.PutUint32(out[8:], uint32(h.Height))
	binary.LittleEndian.PutUint16(out[12:], h.Planes)
	binary.LittleEndian.PutUint16(out[14:], h.BitCount)

	table := d.Info[coreHeaderSize:]
	for i := 0; i+3 <= len(table); i += 3 {
		out = append(out, table[i], table[i+1], table[i+2], 0)
	}
	return out
}

// Decode parses d into an image.
func Decode(d *fields.DIB) (image.Image, error) {
	if d == nil {
		return nil, fmt.Errorf("no bitmap")
	}
	img, err := bmp.Decode(bytes.NewReader(File(d)))
	if err != nil {
		return nil, fmt.Errorf("decoding %dx%d %d-bit %s bitmap: %w",
			d.Header.Width, d.Rows(), d.Header.BitCount, gdi.Compression(d.Header.Compression), err)
	}
	return img, nil
}

// Extractor writes each bitmap it receives to a PNG file in a directory.
type Extractor struct {
	dir    string
	prefix string
	perms  os.FileMode
	logger hclog.Logger
	count  int
}

// NewExtractor creates an extractor writing into dir
func NewExtractor(dir, prefix string) *Extractor {
	return NewExtractorWithLogger(dir, prefix, hclog.NewNullLogger())
}

// NewExtractorWithLogger creates an extractor with a custom logger
func NewExtractorWithLogger(dir, prefix string, logger hclog.Logger) *Extractor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if prefix == "" {
		prefix = "bitmap"
	}
	return &Extractor{
		dir:    dir,
		prefix: prefix,
		perms:  permissions.DefaultFilePerms,
		logger: logger,
	}
}

// WithPerms sets the mode of the files written.
func (e *Extractor) WithPerms(perms os.FileMode) *Extractor {
	e.perms = perms
	return e
}

// Count returns the number of files written.
func (e *Extractor) Count() int {
	return e.count
}

// WriteBitmap decodes d and stores it as <prefix>-<seq>-<kind>.png. The
// returned name is relative to the extractor's directory.
func (e *Extractor) WriteBitmap(seq int, kind gdi.RecordType, d *fields.DIB) (string, error) {
	img, err := Decode(d)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, permissions.DefaultDirPerms); err != nil {
		return "", fmt.Errorf("creating bitmap directory: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding png: %w", err)
	}

	name := fmt.Sprintf("%s-%04d-%s.png", e.prefix, seq, kind)
	if err := os.WriteFile(filepath.Join(e.dir, name), buf.Bytes(), e.perms); err != nil {
		return "", fmt.Errorf("writing bitmap: %w", err)
	}

	e.count++
	e.logger.Debug("🖼️ Bitmap written", "file", name, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return name, nil
}
