// Package permissions parses the file modes given for decoder output
package permissions

import (
	"fmt"
	"strconv"
	"strings"
)

// Default modes for generated source and extracted bitmaps (owner only)
const (
	DefaultFilePerms = 0o600 // Read/write for owner only
	DefaultDirPerms  = 0o700 // Read/write/execute for owner only

	maxPerms = 0o777
)

// ParseOctalString parses an octal permission string into a uint16
// Handles formats like "644", "0644", "0o644"; empty means DefaultFilePerms
func ParseOctalString(s string) (uint16, error) {
	if s == "" {
		return DefaultFilePerms, nil
	}

	// Remove common prefixes
	digits := strings.TrimPrefix(strings.TrimSpace(s), "0o")
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, nil
	}

	val, err := strconv.ParseUint(digits, 8, 16)
	if err != nil {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > maxPerms {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: only permission bits are allowed", s)
	}

	return uint16(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm uint16) string {
	return fmt.Sprintf("0%o", perm)
}
