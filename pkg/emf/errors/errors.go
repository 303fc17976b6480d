package errors

import "errors"

var (
	// Stream errors 📼
	ErrInvalidSignature  = errors.New("❌ invalid EMF signature")
	ErrInvalidRecordSize = errors.New("❌ invalid record size")
	ErrMissingHeader     = errors.New("❌ first record is not an EMF header")
	ErrMissingEOF        = errors.New("❌ stream ended without an EOF record")

	// Record errors 🧩
	ErrTruncated = errors.New("❌ record payload truncated")
	ErrBadOffset = errors.New("❌ embedded offset outside record")

	// Handle table errors 🗂️
	ErrHandleOutOfRange = errors.New("❌ handle index out of range")

	// Caller errors 🚨
	ErrContractViolation = errors.New("❌ enumerator contract violated")
	ErrUnknownDomain     = errors.New("❌ unknown constant domain")
)
