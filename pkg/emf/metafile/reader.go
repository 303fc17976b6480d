// Package metafile splits an EMF byte stream into records and hands them,
// in stream order, to a callback.
package metafile

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/emfsrc/pkg/codec"
	_ "github.com/provide-io/emfsrc/pkg/codec/compress"
	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// Record framing.
const (
	RecordPrefixSize = 8 // iType u32, nSize u32
	MinRecordSize    = RecordPrefixSize
	signatureOffset  = RecordPrefixSize + 32
)

// Record is one EMF record. Data aliases the stream and is only valid for
// the duration of the callback.
type Record struct {
	Type   gdi.RecordType
	Flags  uint32 // always 0 for EMF records
	Size   uint32 // payload size: nSize minus the prefix
	Offset int64  // stream offset of the record prefix
	Data   []byte
}

// Callback receives each record and returns false to stop enumeration.
type Callback func(Record) (bool, error)

// Reader enumerates the records of one in-memory metafile.
type Reader struct {
	data   []byte
	codecs []uint8
	logger hclog.Logger
}

// NewReader creates a reader over raw EMF bytes
func NewReader(data []byte) *Reader {
	return NewReaderWithLogger(data, hclog.NewNullLogger())
}

// NewReaderWithLogger creates a reader with a custom logger
func NewReaderWithLogger(data []byte, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{data: data, logger: logger}
}

// Open reads path and unwraps any compression layers it recognizes.
func Open(path string, logger hclog.Logger) (*Reader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metafile: %w", err)
	}
	return Unwrap(raw, nil, logger)
}

// Unwrap builds a reader over raw, removing the compression layers named by
// chain, or the detected ones when chain is nil.
func Unwrap(raw []byte, chain []uint8, logger hclog.Logger) (*Reader, error) {
	r := NewReaderWithLogger(nil, logger)

	var err error
	if chain == nil {
		r.data, r.codecs, err = codec.Unpack(raw)
	} else {
		r.data, err = codec.ReverseChain(raw, chain)
		r.codecs = chain
	}
	if err != nil {
		return nil, fmt.Errorf("unwrapping metafile: %w", err)
	}

	r.logger.Debug("📂 Metafile loaded", "stored", len(raw), "size", len(r.data), "codec", codec.ChainString(r.codecs))
	return r, nil
}

// Data returns the uncompressed stream.
func (r *Reader) Data() []byte {
	return r.data
}

// Codecs returns the compression layers removed on open, outermost first.
func (r *Reader) Codecs() []uint8 {
	return r.codecs
}

// Header decodes the leading header record.
func (r *Reader) Header() (fields.Header, error) {
	rec, err := r.recordAt(0)
	if err != nil {
		return fields.Header{}, err
	}
	if rec.Type != gdi.EmfRecordTypeHeader {
		return fields.Header{}, fmt.Errorf("%w: found %s", emferrors.ErrMissingHeader, rec.Type)
	}
	return fields.DecodeHeader(rec.Data, rec.Size)
}

// recordAt frames the record at off and checks its size.
func (r *Reader) recordAt(off int64) (Record, error) {
	rest := int64(len(r.data)) - off
	if rest < MinRecordSize {
		return Record{}, fmt.Errorf("%w: %d trailing bytes at offset %d", emferrors.ErrInvalidRecordSize, rest, off)
	}

	kind := binary.LittleEndian.Uint32(r.data[off:])
	size := binary.LittleEndian.Uint32(r.data[off+4:])
	if size < MinRecordSize || size%4 != 0 || int64(size) > rest {
		return Record{}, fmt.Errorf("%w: %d bytes for %s at offset %d", emferrors.ErrInvalidRecordSize, size, gdi.RecordType(kind), off)
	}

	return Record{
		Type:   gdi.RecordType(kind),
		Size:   size - RecordPrefixSize,
		Offset: off,
		Data:   r.data[off+RecordPrefixSize : off+int64(size)],
	}, nil
}

// Enumerate calls fn for every record in order. It stops when fn returns
// false or an error, when ctx is done, or after the EOF record. The first
// record must be a header carrying the EMF signature.
func (r *Reader) Enumerate(ctx context.Context, fn Callback) error {
	if err := r.checkSignature(); err != nil {
		return err
	}

	var off int64
	var count int
	for off < int64(len(r.data)) {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := r.recordAt(off)
		if err != nil {
			return err
		}
		if count == 0 && rec.Type != gdi.EmfRecordTypeHeader {
			return fmt.Errorf("%w: found %s", emferrors.ErrMissingHeader, rec.Type)
		}

		r.logger.Trace("📄 Record", "index", count, "kind", rec.Type, "offset", off, "size", rec.Size)

		more, err := fn(rec)
		if err != nil {
			return fmt.Errorf("record %d (%s): %w", count, rec.Type, err)
		}
		count++
		off += int64(rec.Size) + RecordPrefixSize

		if !more {
			r.logger.Debug("⏹️ Enumeration stopped by callback", "records", count)
			return nil
		}
		if rec.Type == gdi.EmfRecordTypeEOF {
			if off < int64(len(r.data)) {
				r.logger.Warn("⚠️ Data after EOF record ignored", "offset", off, "bytes", int64(len(r.data))-off)
			}
			return nil
		}
	}

	r.logger.Warn("⚠️ Metafile has no EOF record", "records", count)
	return nil
}

func (r *Reader) checkSignature() error {
	if len(r.data) < signatureOffset+4 {
		return fmt.Errorf("%w: stream is %d bytes", emferrors.ErrInvalidSignature, len(r.data))
	}
	if sig := binary.LittleEndian.Uint32(r.data[signatureOffset:]); sig != fields.Signature {
		return fmt.Errorf("%w: 0x%08X", emferrors.ErrInvalidSignature, sig)
	}
	return nil
}

// Enumerate is a convenience wrapper over NewReader(data).Enumerate.
func Enumerate(ctx context.Context, data []byte, fn Callback) error {
	return NewReader(data).Enumerate(ctx, fn)
}
