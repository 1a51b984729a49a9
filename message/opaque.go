package message

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/zostay/go-courier/message/header"
	"github.com/zostay/go-courier/message/transfer"
)

// Opaque is the leaf message object. It is simply a header and a body,
// very similar to the net/mail message implementation.
type Opaque struct {
	// Header contains the header of the message or part.
	header.Header

	// Reader contains the body content of the message. If the content is
	// zero bytes long, Reader should be set to nil.
	io.Reader

	// encoded tracks whether the body already has the
	// Content-transfer-encoding applied.
	encoded bool
}

// NewOpaque builds a leaf part with the given media type and the given bytes
// as its decoded body. The Content-transfer-encoding is chosen from the
// payload via transfer.Select.
func NewOpaque(mediaType string, body []byte) *Opaque {
	m := &Opaque{Reader: bytes.NewReader(body)}
	m.SetMediaType(mediaType)
	if te := transfer.Select(body); te != transfer.None {
		m.SetTransferEncoding(te)
	}
	return m
}

// countingWriter records how many bytes actually reach the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the Opaque header and body to the destination io.Writer.
//
// If the body bytes are in decoded form (the usual case for messages being
// composed), the header's Content-transfer-encoding is applied as the body is
// written. The returned count is the number of bytes that reached the
// destination, including anything the encoder flushes on close.
//
// This can only be safely called once as it will consume the io.Reader.
func (m *Opaque) WriteTo(w io.Writer) (int64, error) {
	total, err := m.Header.WriteTo(w)
	if err != nil {
		return total, err
	}

	cw := &countingWriter{w: w}

	var dest io.Writer = cw
	var tw io.WriteCloser
	if !m.encoded {
		tw = transfer.ApplyTransferEncoding(&m.Header, cw)
		dest = tw
	}

	if m.Reader != nil {
		if _, err := io.Copy(dest, m.Reader); err != nil {
			return total + cw.n, err
		}
	}

	if tw != nil {
		if err := tw.Close(); err != nil {
			return total + cw.n, err
		}
	}

	return total + cw.n, nil
}

// IsMultipart always returns false.
func (m *Opaque) IsMultipart() bool {
	return false
}

// IsEncoded returns true if the Content-transfer-encoding has already been
// applied to the bytes returned by the associated io.Reader.
func (m *Opaque) IsEncoded() bool {
	return m.encoded
}

// GetHeader returns the header for the message.
func (m *Opaque) GetHeader() *header.Header {
	return &m.Header
}

// GetReader returns the reader containing the body of the message.
func (m *Opaque) GetReader() io.Reader {
	return m.Reader
}

// GetParts always returns nil.
func (m *Opaque) GetParts() []Part {
	return nil
}

// AttachmentFile is a constructor that will create an Opaque from the given
// file path and MIME type. This will read the given file path from the disk,
// make its base name the name of an attachment, and return it. It will return
// an error if there's a problem reading the file from the disk.
//
// The last argument is the transfer encoding to use. Use transfer.None if you
// do not want to set a transfer encoding.
func AttachmentFile(fn, mt, te string) (*Opaque, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	m := &Opaque{Reader: f}
	m.SetMediaType(mt)
	m.SetPresentation("attachment")
	m.SetFilename(filepath.Base(fn))

	if te != transfer.None {
		m.SetTransferEncoding(te)
	}

	return m, nil
}
