package metafile

import (
	"context"
	"fmt"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/fields"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// Report summarizes a structural check of a metafile.
type Report struct {
	Header   fields.Header
	Records  int
	Bytes    int
	HasEOF   bool
	Kinds    map[gdi.RecordType]int
	Problems []string
}

// OK reports whether no problems were found.
func (rep *Report) OK() bool {
	return len(rep.Problems) == 0
}

// Verify walks every record and cross-checks the header counts against the
// stream. Framing errors abort the walk and are returned; count mismatches
// are collected in the report.
func (r *Reader) Verify(ctx context.Context) (*Report, error) {
	header, err := r.Header()
	if err != nil {
		return nil, err
	}

	rep := &Report{Header: header, Bytes: len(r.data), Kinds: make(map[gdi.RecordType]int)}
	err = r.Enumerate(ctx, func(rec Record) (bool, error) {
		rep.Records++
		rep.Kinds[rec.Type]++
		if rec.Type == gdi.EmfRecordTypeEOF {
			rep.HasEOF = true
		}
		return true, nil
	})
	if err != nil {
		return rep, err
	}

	if !rep.HasEOF {
		rep.Problems = append(rep.Problems, emferrors.ErrMissingEOF.Error())
	}
	if int(header.Bytes) != rep.Bytes {
		rep.Problems = append(rep.Problems, fmt.Sprintf("header declares %d bytes, stream has %d", header.Bytes, rep.Bytes))
	}
	if int(header.Records) != rep.Records {
		rep.Problems = append(rep.Problems, fmt.Sprintf("header declares %d records, stream has %d", header.Records, rep.Records))
	}
	if header.Handles == 0 {
		rep.Problems = append(rep.Problems, "header declares no handle slots")
	}

	for _, p := range rep.Problems {
		r.logger.Warn("⚠️ Verification problem", "details", p)
	}
	r.logger.Debug("🔍 Verification finished", "records", rep.Records, "problems", len(rep.Problems))
	return rep, nil
}
