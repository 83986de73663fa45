package png

import "errors"

// Common errors. Load and Encode wrap these with positional context; use
// errors.Is to classify a failure.
var (
	ErrSignature  = errors.New("missing or corrupt stream signature")
	ErrFraming    = errors.New("chunk length mismatch")
	ErrName       = errors.New("invalid chunk name")
	ErrChecksum   = errors.New("chunk CRC mismatch")
	ErrStructural = errors.New("structural invariant violated")
	ErrFormat     = errors.New("invalid scanline data")
)
