package pkg

import "errors"

var (
	// Facade errors 🧰
	ErrVerificationFailed = errors.New("❌ metafile verification failed")
	ErrDecodeFailures     = errors.New("❌ records could not be decoded")
	ErrIncompleteStream   = errors.New("❌ decode stopped before EOF")
)
