package pkg

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/emfsrc/pkg/emf/metafile"
	"github.com/provide-io/emfsrc/pkg/logging"
)

// VerifyFileWithLogger checks the framing of a metafile and cross-checks its
// header counts against the stream.
func VerifyFileWithLogger(ctx context.Context, path string, opts Options, logger hclog.Logger) (*metafile.Report, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	opts.Logger = logger

	reader, err := Open(path, opts)
	if err != nil {
		logger.Error("Failed to open metafile", "error", err)
		return nil, err
	}

	logger.Info("Verifying metafile", "path", path)

	report, err := reader.Verify(ctx)
	if err != nil {
		logger.Error("✗ Record framing invalid", "error", err)
		return report, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	logger.Info("✓ Signature valid")
	logger.Info("✓ Record framing valid", "records", report.Records)

	if report.OK() {
		logger.Info("✓ Metafile verification passed")
		return report, nil
	}

	logger.Error("✗ Metafile verification failed", "error_count", len(report.Problems))
	for _, p := range report.Problems {
		logger.Error("  Verification error", "details", p)
	}
	return report, fmt.Errorf("%w: %d problems", ErrVerificationFailed, len(report.Problems))
}

// VerifyFile verifies a metafile using default logger settings
func VerifyFile(ctx context.Context, path string) (*metafile.Report, error) {
	logger := logging.NewLogger("emfsrc-verify", logging.GetLogLevel(), nil)
	return VerifyFileWithLogger(ctx, path, Options{}, logger)
}
