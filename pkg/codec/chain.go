package codec

import (
	"fmt"
	"strings"
)

// MaxLayers bounds how many wrappers Unpack peels off.
const MaxLayers = 8

// Unpack peels compression layers off data until none is recognized and
// returns the payload with the operations removed, outermost first.
func Unpack(data []byte) ([]byte, []uint8, error) {
	current := data
	var removed []uint8

	for len(removed) < MaxLayers {
		op, ok := Detect(current)
		if !ok {
			return current, removed, nil
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, removed, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		removed = append(removed, op.ID())
		current = result
	}

	return nil, removed, fmt.Errorf("more than %d compression layers", MaxLayers)
}

// ChainString renders operations as "raw" or a pipe separated list.
func ChainString(operations []uint8) string {
	if len(operations) == 0 {
		return "raw"
	}

	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = strings.ToLower(GetName(op))
	}
	return strings.Join(names, "|")
}

// Named chains for parsing
var namedChains = map[string][]uint8{
	"raw":   {},
	"gzip":  {OP_GZIP},
	"emz":   {OP_GZIP},
	"bzip2": {OP_BZIP2},
	"bz2":   {OP_BZIP2},
}

// Named operations for parsing
var namedOperations = map[string]uint8{
	"GZIP":  OP_GZIP,
	"BZIP2": OP_BZIP2,
}

// ParseChain parses "raw", a single name or a pipe separated list such as
// "bzip2|gzip" (outermost first).
func ParseChain(opString string) ([]uint8, error) {
	opString = strings.ToLower(strings.TrimSpace(opString))
	if opString == "" {
		return nil, nil
	}

	if ops, ok := namedChains[opString]; ok {
		return ops, nil
	}

	if strings.Contains(opString, "|") {
		var operations []uint8
		for _, part := range strings.Split(opString, "|") {
			part = strings.TrimSpace(strings.ToUpper(part))
			if part == "" {
				continue
			}

			op, ok := namedOperations[part]
			if !ok {
				return nil, fmt.Errorf("unsupported operation: %s", part)
			}
			operations = append(operations, op)
		}
		if len(operations) > MaxLayers {
			return nil, fmt.Errorf("maximum %d operations allowed, got %d", MaxLayers, len(operations))
		}
		return operations, nil
	}

	return nil, fmt.Errorf("unknown operation string: %s", opString)
}

// ApplyChain wraps data in operations, innermost last: the result of
// ApplyChain(data, ops) unpacks with ReverseChain(result, ops).
func ApplyChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for i := len(operations) - 1; i >= 0; i-- {
		op, err := Get(operations[i])
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", operations[i], err)
		}

		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain removes operations from data, outermost first.
func ReverseChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}
