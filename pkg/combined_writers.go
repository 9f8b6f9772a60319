package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees writes to all writers. A failing writer does not stop
// the others; its error is combined into the returned one.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: append([]io.Writer(nil), writers...)}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written != len(p) {
			werr = io.ErrShortWrite
		}
		err = multierr.Append(err, werr)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
