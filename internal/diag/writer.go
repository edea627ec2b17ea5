// Package diag provides a small sticky-error io.Writer used to back the
// calculator's diagnostic output sink (the `print` word).
package diag

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and remembers the first write error it
// encounters. Once set, every subsequent Write returns that same error
// without touching the underlying writer again.
type Writer struct {
	w   io.Writer
	Err error
}

// New returns a new Writer wrapping w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "diag: write failed")
	}
	return n, w.Err
}
