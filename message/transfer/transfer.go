package transfer

import (
	"io"

	"github.com/zostay/go-courier/message/header"
)

// The Content-transfer-encodings understood by this package.
const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be transformed between quoted-printable and binary data
	Base64          = "base64"           // bytes will be transformed between base64 and binary data
)

// writer makes wrapped and as-is writers close correctly.
type writer struct {
	io.Writer
	io.Closer
}

// Close will close the nested writer if there is one to close.
func (w *writer) Close() error {
	if w.Closer != nil {
		return w.Closer.Close()
	}
	return nil
}

// Transcoding is a pair of functions that can be used to transform to and
// from a transfer encoding.
type Transcoding struct {
	// Encoder returns an io.WriteCloser, which will encode binary data and
	// write the encoded form to the given io.Writer. You must call Close() on
	// the returned io.WriteCloser when you are finished.
	Encoder func(io.Writer) io.WriteCloser

	// Decoder returns an io.Reader, which will read from the given io.Reader
	// when read and decode the encoded data back into binary form.
	Decoder func(io.Reader) io.Reader
}

// AsIsTranscoder is just a shortcut to a no-op encoder/decoder.
var AsIsTranscoder = Transcoding{NewAsIsEncoder, NewAsIsDecoder}

// Transcodings defines the supported Content-transfer-encodings and how to
// handle them.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoder,
	Bit7:            AsIsTranscoder,
	Bit8:            AsIsTranscoder,
	Binary:          AsIsTranscoder,
	QuotedPrintable: {NewQuotedPrintableEncoder, NewQuotedPrintableDecoder},
	Base64:          {NewBase64Encoder, NewBase64Decoder},
}

// ApplyTransferEncoding is a helper that will check the given header to see
// if transfer encoding ought to be performed. It will return an
// io.WriteCloser that will write the encoding (or just pass data through if
// no encoding is necessary).
//
// You must call Close() on the returned io.WriteCloser when you are finished
// writing.
func ApplyTransferEncoding(h *header.Header, w io.Writer) io.WriteCloser {
	cte, err := h.GetTransferEncoding()
	if err != nil {
		return &writer{w, nil}
	}

	if tc, hasCode := Transcodings[cte]; hasCode {
		return tc.Encoder(w)
	}

	return &writer{w, nil}
}

// ApplyTransferDecoding returns an io.Reader that will modify incoming bytes
// according to the transfer encoding detected from the given header, or leave
// the bytes as-is if there is no transfer encoding set or the encoding is one
// that is interpreted as-is.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	// multipart/* containers never carry a transfer encoding themselves
	mt, err := h.GetMediaType()
	if err == nil && len(mt) >= 10 && mt[:10] == "multipart/" {
		return r
	}

	cte, err := h.GetTransferEncoding()
	if err != nil {
		return r
	}

	if tc, hasCode := Transcodings[cte]; hasCode {
		return tc.Decoder(r)
	}

	return r
}
