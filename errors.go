package nhuff

import "errors"

var (
	// ErrEmptyInput indicates there are no symbols to build a code from.
	ErrEmptyInput = errors.New("nhuff: empty input")
	// ErrInvalidRadix indicates a radix outside [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("nhuff: invalid radix")
	// ErrDuplicateCode indicates two symbols were assigned the same codeword.
	ErrDuplicateCode = errors.New("nhuff: duplicate codeword")
	// ErrUnknownSymbol indicates an input byte with no codeword in the table.
	ErrUnknownSymbol = errors.New("nhuff: unknown symbol")
	// ErrMalformedStream indicates a digit stream that does not parse into codewords.
	ErrMalformedStream = errors.New("nhuff: malformed stream")
	// ErrBadVersion indicates the serialized table version is not supported.
	ErrBadVersion = errors.New("nhuff: unsupported table version")
	// ErrMalformedTable indicates a serialized table that is not a valid prefix code.
	ErrMalformedTable = errors.New("nhuff: malformed table")
)
