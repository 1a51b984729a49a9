package message

import (
	"fmt"
	"io"

	"github.com/zostay/go-courier/message/header"
)

// Multipart is a branch in the message tree. The media type set in the
// Content-type header of these objects always starts with multipart/*.
type Multipart struct {
	// Header is the header for the message.
	header.Header

	// parts holds this layer's parts
	parts []Part
}

// WriteTo writes the Multipart header and parts to the destination io.Writer.
// This method will fail with an error if the message does not have a
// Content-type boundary parameter set. It may return an error on an IO error
// as well.
//
// This may only be safely called one time because it will consume all the
// bytes from all the readers of all the Opaque objects within.
func (mm *Multipart) WriteTo(w io.Writer) (int64, error) {
	boundary, err := mm.GetBoundary()
	if err != nil {
		return 0, err
	}

	br := mm.Break()

	n, err := mm.Header.WriteTo(w)
	if err != nil {
		return n, err
	}

	for _, part := range mm.parts {
		bn, err := fmt.Fprintf(w, "--%s%s", boundary, br)
		n += int64(bn)
		if err != nil {
			return n, err
		}

		pn, err := part.WriteTo(w)
		n += pn
		if err != nil {
			return n, err
		}

		bn, err = fmt.Fprint(w, br)
		n += int64(bn)
		if err != nil {
			return n, err
		}
	}

	bn, err := fmt.Fprintf(w, "--%s--%s", boundary, br)
	n += int64(bn)
	return n, err
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool {
	return true
}

// IsEncoded always returns false.
func (mm *Multipart) IsEncoded() bool {
	return false
}

// GetHeader returns the header for the message.
func (mm *Multipart) GetHeader() *header.Header {
	return &mm.Header
}

// GetReader always returns nil.
func (mm *Multipart) GetReader() io.Reader {
	return nil
}

// GetParts returns the sub-parts of this message or nil if there aren't any.
func (mm *Multipart) GetParts() []Part {
	return mm.parts
}

// Add appends more parts to this message.
func (mm *Multipart) Add(parts ...Part) {
	mm.parts = append(mm.parts, parts...)
}

// newMultipart builds a Multipart with the given media type, a freshly
// generated boundary, and the given parts attached.
func newMultipart(mt string, parts []Part) *Multipart {
	m := &Multipart{parts: parts}
	m.SetMediaType(mt)
	_ = m.SetBoundary(GenerateBoundary())
	return m
}

// MultipartMixed returns a Multipart with a Content-type header set to
// multipart/mixed and the given parts attached.
func MultipartMixed(parts ...Part) *Multipart {
	return newMultipart("multipart/mixed", parts)
}

// MultipartAlternative returns a Multipart with a Content-type header set to
// multipart/alternative and the given parts attached.
func MultipartAlternative(parts ...Part) *Multipart {
	return newMultipart("multipart/alternative", parts)
}

// MultipartRelated returns a Multipart with a Content-type header set to
// multipart/related and the given parts attached.
func MultipartRelated(parts ...Part) *Multipart {
	return newMultipart("multipart/related", parts)
}
