package emitter

import (
	"github.com/hashicorp/go-hclog"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger routes diagnostics to logger. Sessions log nothing by default.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHandleArray renames the handle table array.
func WithHandleArray(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.names.Array = name
		}
	}
}

// WithStockCell renames the scratch cell stock objects are loaded into.
func WithStockCell(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.names.Stock = name
		}
	}
}

// WithDeviceContext renames the HDC every statement draws on.
func WithDeviceContext(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.names.Context = name
		}
	}
}

// WithBitmapSink hands every bitmap a blit record carries to sink.
func WithBitmapSink(sink BitmapSink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}
