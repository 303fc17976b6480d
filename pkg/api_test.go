package pkg

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/emfsrc/pkg/codec"
	"github.com/provide-io/emfsrc/pkg/emf/emftest"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

func newTestLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "api_test",
		Level: hclog.Trace,
	})
}

func sampleMetafile() []byte {
	return emftest.NewStream(2).
		Record(gdi.EmfRecordTypeSetBkMode, emftest.Payload{}.U32(2)).
		Record(gdi.EmfRecordTypeSelectObject, emftest.Payload{}.U32(0x80000004)).
		Bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestDecodeFile(t *testing.T) {
	logger := newTestLogger()

	gz, err := codec.ApplyChain(sampleMetafile(), []uint8{codec.OP_GZIP})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		data  []byte
		codec string
	}{
		{"raw", sampleMetafile(), ""},
		{"detected gzip", gz, ""},
		{"named gzip", gz, "emz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger.Info("🧪 Testing decode", "case", tc.name)
			path := writeTemp(t, "sample.emf", tc.data)

			var out bytes.Buffer
			sum, err := DecodeFile(context.Background(), path, &out, Options{Logger: logger, Codec: tc.codec})
			require.NoError(t, err)
			require.True(t, sum.Finished)
			require.Equal(t, 4, sum.Records)

			text := out.String()
			require.Contains(t, text, "SetBkMode(hdc, OPAQUE);\n// record kind = SetBkMode\n")
			require.Contains(t, text, "g_stockObject = GetStockObject(BLACK_BRUSH);\n")
			require.True(t, strings.HasSuffix(text, "// EOF\n// record kind = EOF\n"))
		})
	}
}

func TestDecodeBytesNames(t *testing.T) {
	var out bytes.Buffer
	_, err := DecodeBytes(context.Background(), sampleMetafile(), &out, Options{
		HandleArray:   "objs",
		StockCell:     "stock",
		DeviceContext: "dc",
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "HGDIOBJ objs[2] = {0};")
	require.Contains(t, out.String(), "SelectObject(dc, stock);")
}

func TestDecodeStrict(t *testing.T) {
	bad := emftest.NewStream(2).
		Record(gdi.EmfRecordTypeSelectObject, emftest.Payload{}.U32(9)).
		Bytes()

	var out bytes.Buffer
	sum, err := DecodeBytes(context.Background(), bad, &out, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, sum.Failures)
	require.Contains(t, out.String(), "// decode error: ")

	out.Reset()
	_, err = DecodeBytes(context.Background(), bad, &out, Options{Strict: true})
	require.ErrorIs(t, err, ErrDecodeFailures)

	unfinished := emftest.NewStream(2).
		Record(gdi.EmfRecordTypeSaveDC, nil).
		Unfinished()
	_, err = DecodeBytes(context.Background(), unfinished, &out, Options{Strict: true})
	require.ErrorIs(t, err, ErrIncompleteStream)
}

func TestDecodeBadCodec(t *testing.T) {
	var out bytes.Buffer
	_, err := DecodeBytes(context.Background(), sampleMetafile(), &out, Options{Codec: "zip"})
	require.Error(t, err)
	require.Zero(t, out.Len())
}

func TestVerifyFile(t *testing.T) {
	logger := newTestLogger()

	report, err := VerifyFileWithLogger(context.Background(), writeTemp(t, "ok.emf", sampleMetafile()), Options{}, logger)
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Equal(t, 4, report.Records)

	unfinished := emftest.NewStream(2).Record(gdi.EmfRecordTypeSaveDC, nil).Unfinished()
	report, err = VerifyFileWithLogger(context.Background(), writeTemp(t, "short.emf", unfinished), Options{}, logger)
	require.ErrorIs(t, err, ErrVerificationFailed)
	require.False(t, report.OK())

	_, err = VerifyFileWithLogger(context.Background(), filepath.Join(t.TempDir(), "missing.emf"), Options{}, logger)
	require.Error(t, err)
}
