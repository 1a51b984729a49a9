package transfer

import (
	"encoding/base64"
	"io"
)

const base64LineLength = 76

var base64LineBreak = []byte{'\r', '\n'}

// lineWriter wraps an io.Writer and inserts a line break after every fixed
// number of bytes written.
type lineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (lw *lineWriter) Write(b []byte) (int, error) {
	var n int
	for len(b) > 0 {
		room := lw.every - lw.acc
		if len(b) < room {
			wn, err := lw.w.Write(b)
			n += wn
			lw.acc += wn
			return n, err
		}

		wn, err := lw.w.Write(b[:room])
		n += wn
		if err != nil {
			return n, err
		}

		if _, err := lw.w.Write(lw.lbr); err != nil {
			return n, err
		}

		b = b[room:]
		lw.acc = 0
	}
	return n, nil
}

// Close flushes the trailing line break. The underlying writer is the
// caller's destination and is never closed here.
func (lw *lineWriter) Close() error {
	if lw.acc > 0 {
		if _, err := lw.w.Write(lw.lbr); err != nil {
			return err
		}
		lw.acc = 0
	}
	return nil
}

// NewBase64Encoder will translate all bytes written to the returned
// io.WriteCloser into base64 with 76-column lines and write those to the
// given io.Writer.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	lw := &lineWriter{
		every: base64LineLength,
		lbr:   base64LineBreak,
		w:     w,
	}
	b64 := base64.NewEncoder(base64.StdEncoding, lw)
	return &writer{b64, closerChain{b64, lw}}
}

// closerChain closes a stack of writers outermost first.
type closerChain []io.Closer

func (cs closerChain) Close() error {
	for _, c := range cs {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

// NewBase64Decoder will translate all bytes read from the given io.Reader as
// base64 and return the binary data from the returned io.Reader.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}
