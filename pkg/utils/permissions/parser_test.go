package permissions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOctalString(t *testing.T) {
	testCases := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"", DefaultFilePerms, false},
		{"644", 0o644, false},
		{"0644", 0o644, false},
		{"0o755", 0o755, false},
		{"000", 0, false},
		{"0888", DefaultFilePerms, true},
		{"4755", DefaultFilePerms, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseOctalString(tc.in)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatOctal(t *testing.T) {
	require.Equal(t, "0640", FormatOctal(0o640))
}
