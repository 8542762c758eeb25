package hwp5

import "errors"

// Sentinel errors matching the closed error-kind set of the format
// specification. Callers match against these with errors.Is.
var (
	ErrInvalidSignature  = errors.New("hwp: invalid signature")
	ErrPasswordProtected = errors.New("hwp: password-protected document")
	ErrStreamNotFound    = errors.New("hwp: stream not found")
	ErrInvalidRecord     = errors.New("hwp: invalid record header")
	ErrDecompressFailed  = errors.New("hwp: decompression failed")
	ErrDecryptFailed     = errors.New("hwp: decryption failed")
	ErrParse             = errors.New("hwp: parse error")
)
