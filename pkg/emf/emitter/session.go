// Package emitter turns EMF records into the GDI calls that replay them.
//
// A Session consumes records in stream order, decodes each payload, keeps
// the handle table in step with the object records and writes C statements
// against an HDC to an io.Writer. Every record, whether it produced code or
// not, is closed by a "// record kind = <Kind>" trailer.
package emitter

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
	"github.com/provide-io/emfsrc/pkg/emf/handles"
	"github.com/provide-io/emfsrc/pkg/emf/metafile"
)

// BitmapSink stores the bitmaps carried by blit and pattern brush records
// and returns a name to reference in the generated code.
type BitmapSink interface {
	WriteBitmap(seq int, kind gdi.RecordType, dib *fields.DIB) (string, error)
}

type state int

const (
	stateIdle   state = iota // no header yet
	stateActive              // header seen
	stateDone                // EOF seen
)

// Session is one decode. It is not safe for concurrent use; independent
// sessions share nothing.
type Session struct {
	w      io.Writer
	names  handles.Names
	table  *handles.Table
	sink   BitmapSink
	logger hclog.Logger

	state    state
	seq      int
	failures int
	inert    map[gdi.RecordType]bool
}

// NewSession creates a session writing to w.
func NewSession(w io.Writer, opts ...Option) *Session {
	s := &Session{
		w: w,
		names: handles.Names{
			Array:   DefaultHandleArray,
			Stock:   DefaultStockCell,
			Context: DefaultDeviceContext,
		},
		logger: hclog.NewNullLogger(),
		inert:  make(map[gdi.RecordType]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	// Until the header sizes it, the table accepts any index.
	s.table = handles.NewUnbounded(s.names)
	return s
}

// Summary describes a session so far.
type Summary struct {
	Records  int // records consumed
	Failures int // records replaced by a decode error comment
	Inert    int // distinct kinds without a statement form
	Created  int // objects assigned to handle slots
	Deleted  int // handle slots freed
	Finished bool
}

func (s *Session) Summary() Summary {
	created, deleted := s.table.Stats()
	return Summary{
		Records:  s.seq,
		Failures: s.failures,
		Inert:    len(s.inert),
		Created:  created,
		Deleted:  deleted,
		Finished: s.state == stateDone,
	}
}

// Record consumes one record: kind, flags, the declared payload size and
// the payload. It reports whether enumeration should continue.
//
// Decode failures and bad handle indices are not fatal: the record's code is
// replaced by a "// decode error" comment and the session goes on. Only a
// broken caller contract or a failing writer returns an error.
func (s *Session) Record(kind gdi.RecordType, flags, size uint32, payload []byte) (bool, error) {
	if s == nil || s.w == nil {
		return false, fmt.Errorf("%w: session has no output", emferrors.ErrContractViolation)
	}
	if uint64(len(payload)) < uint64(size) {
		return false, fmt.Errorf("%w: %s payload is %d bytes, declared %d", emferrors.ErrContractViolation, kind, len(payload), size)
	}

	s.seq++
	switch {
	case s.state == stateDone:
		s.logger.Warn("⚠️ Record after EOF", "kind", kind, "seq", s.seq)
	case s.state == stateIdle && kind != gdi.EmfRecordTypeHeader:
		s.logger.Warn("⚠️ Record before header", "kind", kind, "seq", s.seq)
	}
	if flags != 0 {
		s.logger.Trace("🏳️ Record flags ignored", "kind", kind, "flags", flags)
	}

	b := s.newBlock()
	if err := s.dispatch(b, kind, payload[:size], size); err != nil {
		s.failures++
		s.logger.Warn("⚠️ Record not decoded", "kind", kind, "seq", s.seq, "error", err)
		b = s.newBlock()
		b.line(DecodeErrorPrefix + strings.ReplaceAll(err.Error(), "\n", " "))
	}
	b.line(TrailerPrefix + kind.String())

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return false, fmt.Errorf("writing record %d: %w", s.seq, err)
	}
	return true, nil
}

// Callback adapts the session to the record enumerator.
func (s *Session) Callback() metafile.Callback {
	return func(rec metafile.Record) (bool, error) {
		return s.Record(rec.Type, rec.Flags, rec.Size, rec.Data)
	}
}

// inertKind notes a kind without a statement form, logging it once per
// session.
func (s *Session) inertKind(kind gdi.RecordType) {
	if s.inert[kind] {
		return
	}
	s.inert[kind] = true
	s.logger.Warn("🔕 Record kind has no statement form", "kind", kind)
}

func (s *Session) header(b *block, data []byte, size uint32) error {
	h, err := fields.DecodeHeader(data, size)
	if err != nil {
		return err
	}
	if s.state != stateIdle {
		s.logger.Warn("⚠️ Repeated header resets the handle table", "seq", s.seq)
	}
	s.table = handles.NewNamed(int(h.Handles), s.names)
	s.state = stateActive
	s.logger.Debug("🧾 Header", "version", h.Version, "records", h.Records, "handles", h.Handles)

	b.line("// ENHMETAHEADER")
	b.linef("// rclBounds=%s inclusive-inclusive bounds in device units", rectTuple(h.Bounds))
	b.linef("// rclFrame=%s inclusive-inclusive picture frame in .01 mm units", rectTuple(h.Frame))
	b.linef("// nVersion=%d", h.Version)
	b.linef("// nBytes=%d size of the metafile in bytes", h.Bytes)
	b.linef("// nRecords=%d number of records in the metafile", h.Records)
	b.linef("// nHandles=%d number of handles in the handle table, index zero is reserved", h.Handles)
	b.linef("// szlDevice=%s size of the reference device in pixels", sizeTuple(h.Device))
	b.linef("// szlMillimeters=%s size of the reference device in millimeters", sizeTuple(h.Millimeters))
	if h.HasOpenGL {
		if h.OpenGL {
			b.line("// has OpenGL commands")
		} else {
			b.line("// has no OpenGL commands")
		}
	}
	if h.HasMicrometers {
		b.linef("// szlMicrometers=%s size of the reference device in micrometers", sizeTuple(h.Micrometers))
	}
	for _, d := range h.Description {
		b.linef("// description: %s", commentText(d))
	}

	b.call("SetGraphicsMode", "GM_ADVANCED")
	b.line("")
	b.linef("HGDIOBJ %s[%d] = {0};", s.names.Array, h.Handles)
	b.linef("HGDIOBJ %s = NULL;", s.names.Stock)
	return nil
}

func (s *Session) eof(b *block) error {
	if s.state == stateDone {
		s.logger.Warn("⚠️ Repeated EOF", "seq", s.seq)
	}
	s.state = stateDone
	created, deleted := s.table.Stats()
	s.logger.Debug("🏁 EOF", "records", s.seq, "failures", s.failures, "created", created, "deleted", deleted)
	b.line(EOFMarker)
	return nil
}
