// Package pkg is the entry point for decoding metafiles from Go code: it
// ties the enumerator, the emitter and the bitmap extractor together.
package pkg

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/emfsrc/pkg/codec"
	"github.com/provide-io/emfsrc/pkg/emf/dib"
	"github.com/provide-io/emfsrc/pkg/emf/emitter"
	"github.com/provide-io/emfsrc/pkg/emf/metafile"
)

// Options configure a decode. The zero value decodes with the default
// identifiers, detects compression and extracts nothing.
type Options struct {
	Logger hclog.Logger

	// Codec names the compression chain ("gzip", "bzip2", "gzip|bzip2",
	// "raw"). Empty means detect.
	Codec string

	// BitmapDir receives a PNG per bitmap carried by the stream.
	BitmapDir  string
	BitmapPerm uint16

	HandleArray   string
	StockCell     string
	DeviceContext string

	// Strict turns records replaced by decode error comments, and streams
	// without EOF, into errors.
	Strict bool
}

func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

func (o Options) sessionOptions() []emitter.Option {
	opts := []emitter.Option{emitter.WithLogger(o.logger().Named("emitter"))}
	if o.HandleArray != "" {
		opts = append(opts, emitter.WithHandleArray(o.HandleArray))
	}
	if o.StockCell != "" {
		opts = append(opts, emitter.WithStockCell(o.StockCell))
	}
	if o.DeviceContext != "" {
		opts = append(opts, emitter.WithDeviceContext(o.DeviceContext))
	}
	if o.BitmapDir != "" {
		ex := dib.NewExtractorWithLogger(o.BitmapDir, "", o.logger().Named("dib"))
		if o.BitmapPerm != 0 {
			ex.WithPerms(os.FileMode(o.BitmapPerm))
		}
		opts = append(opts, emitter.WithBitmapSink(ex))
	}
	return opts
}

// Open loads a metafile from disk and removes its compression layers.
func Open(path string, opts Options) (*metafile.Reader, error) {
	logger := opts.logger().Named("metafile")
	if opts.Codec == "" {
		return metafile.Open(path, logger)
	}

	chain, err := codec.ParseChain(opts.Codec)
	if err != nil {
		return nil, err
	}
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return metafile.Unwrap(raw, chain, logger)
}

// DecodeFile writes the GDI statements for the metafile at path to w.
func DecodeFile(ctx context.Context, path string, w io.Writer, opts Options) (emitter.Summary, error) {
	r, err := Open(path, opts)
	if err != nil {
		return emitter.Summary{}, err
	}
	return decode(ctx, r, w, opts)
}

// DecodeBytes is DecodeFile for a metafile already in memory.
func DecodeBytes(ctx context.Context, data []byte, w io.Writer, opts Options) (emitter.Summary, error) {
	var chain []uint8
	if opts.Codec != "" {
		var err error
		if chain, err = codec.ParseChain(opts.Codec); err != nil {
			return emitter.Summary{}, err
		}
	}
	r, err := metafile.Unwrap(data, chain, opts.logger().Named("metafile"))
	if err != nil {
		return emitter.Summary{}, err
	}
	return decode(ctx, r, w, opts)
}

func decode(ctx context.Context, r *metafile.Reader, w io.Writer, opts Options) (emitter.Summary, error) {
	logger := opts.logger()
	session := emitter.NewSession(w, opts.sessionOptions()...)

	if err := r.Enumerate(ctx, session.Callback()); err != nil {
		return session.Summary(), fmt.Errorf("decoding metafile: %w", err)
	}

	sum := session.Summary()
	logger.Info("✅ Metafile decoded",
		"records", sum.Records,
		"failures", sum.Failures,
		"inert_kinds", sum.Inert,
		"objects", sum.Created)

	if opts.Strict {
		if sum.Failures > 0 {
			return sum, fmt.Errorf("%w: %d of %d", ErrDecodeFailures, sum.Failures, sum.Records)
		}
		if !sum.Finished {
			return sum, ErrIncompleteStream
		}
	}
	return sum, nil
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metafile: %w", err)
	}
	return raw, nil
}
