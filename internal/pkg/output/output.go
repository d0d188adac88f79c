package output

import (
	"io"
)

// WriteAll hands the whole of b to w in exactly one Write call, including when
// b is empty. A short write without an error is reported as io.ErrShortWrite.
func WriteAll(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}

	return nil
}
