package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provide-io/emfsrc/pkg/emf/emftest"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
	"github.com/provide-io/emfsrc/pkg/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(logging.EnvLogPath, filepath.Join(t.TempDir(), "emfsrc.log"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sampleFile(t *testing.T) string {
	t.Helper()
	data := emftest.NewStream(2).
		Record(gdi.EmfRecordTypeSetBkMode, emftest.Payload{}.U32(1)).
		Bytes()
	path := filepath.Join(t.TempDir(), "sample.emf")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestConstantCommand(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"constant", "bk-mode", "2"}, "OPAQUE\n"},
		{[]string{"constant", "map-mode", "0x8"}, "MM_ANISOTROPIC\n"},
		{[]string{"constant", "bk-mode", "77"}, "77\n"},
	}

	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}

	out, err := run(t, "constant")
	require.NoError(t, err)
	require.Contains(t, out, "pen-style\n")

	_, err = run(t, "constant", "nonsense", "1")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	path := sampleFile(t)

	out, err := run(t, "decode", path)
	require.NoError(t, err)
	require.Contains(t, out, "SetBkMode(hdc, TRANSPARENT);\n// record kind = SetBkMode\n")

	target := filepath.Join(t.TempDir(), "sample.c")
	_, err = run(t, "decode", path, "-o", target, "--output-mode", "0640", "--dc", "dc")
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o640), info.Mode().Perm()&0o640)

	code, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(code), "SetBkMode(dc, TRANSPARENT);")
}

func TestRecordsCommand(t *testing.T) {
	out, err := run(t, "records", sampleFile(t))
	require.NoError(t, err)
	require.Contains(t, out, "# codec: raw")
	require.Contains(t, out, "SetBkMode")
	require.Contains(t, out, "EOF")

	out, err = run(t, "records", "-n", "1", sampleFile(t))
	require.NoError(t, err)
	require.NotContains(t, out, "SetBkMode")
}

func TestVerifyCommand(t *testing.T) {
	out, err := run(t, "verify", sampleFile(t))
	require.NoError(t, err)
	require.Contains(t, out, "3 records")
}
