package nhuff

import "fmt"

// Radix limits. Digits are rendered with the canonical numerals below, so
// the alphabet caps the radix at 36.
const (
	MinRadix = 2
	MaxRadix = len(numerals)

	numerals = "0123456789abcdefghijklmnopqrstuvwxyz"

	// tableVersion tags the serialized table layout.
	tableVersion uint64 = 20240601

	// maxCodeLen bounds a codeword length; 256 symbols in a binary tree
	// reach at most depth 255, which also fits the one-byte length field.
	maxCodeLen = 255
)

// digitValue maps a canonical numeral to its digit value, or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}
	return -1
}

func checkRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidRadix, radix, MinRadix, MaxRadix)
	}
	return nil
}

// pathToCode renders a path of child indices as a codeword.
func pathToCode(path []int, radix int) (string, error) {
	code := make([]byte, len(path))
	for i, idx := range path {
		if idx < 0 || idx >= radix {
			return "", fmt.Errorf("%w: path index %d out of range for radix %d", ErrInvalidRadix, idx, radix)
		}
		code[i] = numerals[idx]
	}
	return string(code), nil
}
