// Package codec unwraps the compression layers a metafile may arrive in
// (.emz is a gzip wrapped EMF) before its records are enumerated.
package codec

import (
	"bytes"
	"fmt"
	"io"
)

// Operation identifiers.
const (
	// No operation - raw data
	OP_NONE = 0x00

	// Compression operations (0x10-0x2F)
	OP_GZIP  = 0x10 // GZIP compression
	OP_BZIP2 = 0x13 // BZIP2 compression
)

// Operation is one reversible transformation of a metafile stream.
type Operation interface {
	// ID returns the operation identifier (e.g., OP_GZIP)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Magic returns the leading bytes that identify data the operation produced
	Magic() []byte

	// Apply applies the operation to input data
	Apply(input []byte) ([]byte, error)

	// Reverse undoes the operation
	Reverse(input []byte) ([]byte, error)

	// ReverseStream undoes the operation on a stream
	ReverseStream(input io.Reader, output io.Writer) error
}

// BaseOperation provides common functionality for operations
type BaseOperation struct {
	OpID    uint8
	OpName  string
	OpMagic []byte
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

func (o *BaseOperation) Magic() []byte {
	return o.OpMagic
}

// Registry maps operation IDs to implementations
var Registry = make(map[uint8]Operation)

// Register registers an operation implementation
func Register(op Operation) {
	Registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	op, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown operation: 0x%02x", id)
	}
	return op, nil
}

// Detect returns the registered operation whose magic prefixes data.
func Detect(data []byte) (Operation, bool) {
	for _, id := range []uint8{OP_GZIP, OP_BZIP2} {
		op, ok := Registry[id]
		if !ok {
			continue
		}
		if m := op.Magic(); len(m) > 0 && bytes.HasPrefix(data, m) {
			return op, true
		}
	}
	return nil, false
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_GZIP:
		return "GZIP"
	case OP_BZIP2:
		return "BZIP2"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
