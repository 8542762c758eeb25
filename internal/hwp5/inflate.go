package hwp5

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
)

// inflateRaw decompresses a headerless (raw) deflate stream, as used for
// every compressed HWP stream and record body.
func inflateRaw(b []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(b))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressFailed, err)
	}
	return out, nil
}
