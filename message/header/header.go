package header

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"strings"
	"time"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-courier/message/header/param"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned by Header methods when the
	// operation being performed failed because the header exists, but a
	// sub-field of the header does not exist.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrWrongAddressType is returned by address setting methods that accept
	// either a string or an addr type when something other than those types
	// is provided.
	ErrWrongAddressType = errors.New("incorrect address type during write")
)

// These are standard headers defined in RFC 5322 and RFC 2045.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentDisposition      = "Content-disposition"
	ContentID               = "Content-id"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	MessageID               = "Message-id"
	MIMEVersion             = "MIME-version"
	ReplyTo                 = "Reply-to"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// field is a single header field. The body is stored in its decoded form and
// is transformed into wire form during WriteTo.
type field struct {
	name string
	body string
}

// Header holds an ordered list of header fields. New fields are appended in
// the order they are first set, which keeps output deterministic. The zero
// value is an empty header that writes with CRLF line breaks.
//
// The getter methods of this object will return an error if the field being
// fetched has not been set on the header. The error returned will be
// ErrNoSuchField.
type Header struct {
	lbr    Break
	fields []*field
}

// Break returns the line break this header writes with.
func (h *Header) Break() Break {
	if h.lbr == "" {
		return CRLF
	}
	return h.lbr
}

// SetBreak changes the line break this header writes with.
func (h *Header) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Len returns the number of fields set on the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Names returns the field names in the order they appear in the header.
func (h *Header) Names() []string {
	names := make([]string, len(h.fields))
	for i, f := range h.fields {
		names[i] = f.name
	}
	return names
}

// Clone returns a deep copy of the header object.
func (h *Header) Clone() *Header {
	fields := make([]*field, len(h.fields))
	for i, f := range h.fields {
		fc := *f
		fields[i] = &fc
	}
	return &Header{lbr: h.lbr, fields: fields}
}

// indexesNamed returns the positions of all fields matching the given name,
// compared case-insensitively.
func (h *Header) indexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.name, name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// Get retrieves the string value of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple headers for the given named
// field, it will return the first value found and return ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.fields[ixs[0]].body
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll retrieves the string values of every field with the given name in
// order. It returns nil if the field is not set.
func (h *Header) GetAll(name string) []string {
	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		return nil
	}
	bs := make([]string, len(ixs))
	for i, ix := range ixs {
		bs[i] = h.fields[ix].body
	}
	return bs
}

// Set replaces all existing fields with the given name with a single field
// holding the given body. If no field with that name exists, the field is
// appended to the header.
func (h *Header) Set(name, body string) {
	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		h.fields = append(h.fields, &field{name: name, body: body})
		return
	}

	h.fields[ixs[0]].body = body
	for i := len(ixs) - 1; i >= 1; i-- {
		h.fields = append(h.fields[:ixs[i]], h.fields[ixs[i]+1:]...)
	}
}

// Add appends another field with the given name, leaving any existing fields
// with the same name in place.
func (h *Header) Add(name, body string) {
	h.fields = append(h.fields, &field{name: name, body: body})
}

// Delete removes all fields with the given name. It returns ErrNoSuchField if
// no such field is set.
func (h *Header) Delete(name string) error {
	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		return ErrNoSuchField
	}
	for i := len(ixs) - 1; i >= 0; i-- {
		h.fields = append(h.fields[:ixs[i]], h.fields[ixs[i]+1:]...)
	}
	return nil
}

// encodeBody prepares a field body for the wire. Bodies that are entirely
// printable ASCII pass through unchanged. Anything else is encoded as an
// RFC 2047 encoded word in UTF-8.
func encodeBody(body string) string {
	for _, c := range body {
		if c > '\x7e' || (c < '\x20' && c != '\t') {
			return mime.QEncoding.Encode("utf-8", body)
		}
	}
	return body
}

// WriteTo serializes the header fields followed by the blank line that
// terminates the header block.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	lbr := h.Break()
	var total int64
	for _, f := range h.fields {
		n, err := fmt.Fprintf(w, "%s: %s%s", f.name, encodeBody(f.body), lbr)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	n, err := w.Write(lbr.Bytes())
	total += int64(n)
	return total, err
}

// GetSubject returns the value of the Subject header.
func (h *Header) GetSubject() (string, error) {
	return h.Get(Subject)
}

// SetSubject replaces the Subject header.
func (h *Header) SetSubject(s string) {
	h.Set(Subject, s)
}

// GetDate parses the Date header.
func (h *Header) GetDate() (time.Time, error) {
	body, err := h.Get(Date)
	if err != nil {
		return time.Time{}, err
	}
	return mail.ParseDate(body)
}

// SetDate replaces the Date header with the given time in RFC 5322 form.
func (h *Header) SetDate(d time.Time) {
	h.Set(Date, d.Format(time.RFC1123Z))
}

// GetMessageID returns the Message-id header with any angle brackets
// removed.
func (h *Header) GetMessageID() (string, error) {
	body, err := h.Get(MessageID)
	if err != nil {
		return "", err
	}
	return strings.Trim(body, "<>"), nil
}

// SetMessageID replaces the Message-id header. The given identifier should
// not include angle brackets; they are added on write.
func (h *Header) SetMessageID(id string) {
	h.Set(MessageID, "<"+id+">")
}

// GetContentType returns the parsed Content-type header.
func (h *Header) GetContentType() (*param.Value, error) {
	body, err := h.Get(ContentType)
	if err != nil {
		return nil, err
	}
	return param.Parse(body)
}

// SetContentType replaces the Content-type header.
func (h *Header) SetContentType(v *param.Value) {
	h.Set(ContentType, v.String())
}

// GetMediaType returns the media type of the Content-type header, without
// parameters.
func (h *Header) GetMediaType() (string, error) {
	ct, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return ct.MediaType(), nil
}

// SetMediaType replaces the media type of the Content-type header. Any
// parameters already present on the header are preserved.
func (h *Header) SetMediaType(mt string) {
	ct, err := h.GetContentType()
	if err != nil {
		h.SetContentType(param.New(mt))
		return
	}
	h.SetContentType(param.Modify(ct, param.Change(mt)))
}

// GetCharset returns the charset parameter of the Content-type header. It
// returns ErrNoSuchFieldParameter if the Content-type is set but has no
// charset.
func (h *Header) GetCharset() (string, error) {
	return h.getContentTypeParameter(param.Charset)
}

// SetCharset sets the charset parameter of the Content-type header. It
// returns ErrNoSuchField if no Content-type is set.
func (h *Header) SetCharset(c string) error {
	return h.setContentTypeParameter(param.Charset, c)
}

// GetBoundary returns the boundary parameter of the Content-type header. It
// returns ErrNoSuchFieldParameter if the Content-type is set but has no
// boundary.
func (h *Header) GetBoundary() (string, error) {
	return h.getContentTypeParameter(param.Boundary)
}

// SetBoundary sets the boundary parameter of the Content-type header. It
// returns ErrNoSuchField if no Content-type is set.
func (h *Header) SetBoundary(b string) error {
	return h.setContentTypeParameter(param.Boundary, b)
}

func (h *Header) getContentTypeParameter(name string) (string, error) {
	ct, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	p := ct.Parameter(name)
	if p == "" {
		return "", ErrNoSuchFieldParameter
	}
	return p, nil
}

func (h *Header) setContentTypeParameter(name, value string) error {
	ct, err := h.GetContentType()
	if err != nil {
		return err
	}
	h.SetContentType(param.Modify(ct, param.Set(name, value)))
	return nil
}

// GetTransferEncoding returns the Content-transfer-encoding header.
func (h *Header) GetTransferEncoding() (string, error) {
	return h.Get(ContentTransferEncoding)
}

// SetTransferEncoding replaces the Content-transfer-encoding header.
func (h *Header) SetTransferEncoding(te string) {
	h.Set(ContentTransferEncoding, te)
}

// GetContentID returns the Content-id header with any angle brackets
// removed.
func (h *Header) GetContentID() (string, error) {
	body, err := h.Get(ContentID)
	if err != nil {
		return "", err
	}
	return strings.Trim(body, "<>"), nil
}

// SetContentID replaces the Content-id header. The given identifier should
// not include angle brackets; they are added on write.
func (h *Header) SetContentID(id string) {
	h.Set(ContentID, "<"+id+">")
}

// GetContentDisposition returns the parsed Content-disposition header.
func (h *Header) GetContentDisposition() (*param.Value, error) {
	body, err := h.Get(ContentDisposition)
	if err != nil {
		return nil, err
	}
	return param.Parse(body)
}

// SetContentDisposition replaces the Content-disposition header.
func (h *Header) SetContentDisposition(v *param.Value) {
	h.Set(ContentDisposition, v.String())
}

// GetPresentation returns the primary value of the Content-disposition
// header, typically either "inline" or "attachment".
func (h *Header) GetPresentation() (string, error) {
	cd, err := h.GetContentDisposition()
	if err != nil {
		return "", err
	}
	return cd.Presentation(), nil
}

// SetPresentation sets the primary value of the Content-disposition header,
// preserving any parameters already present.
func (h *Header) SetPresentation(p string) {
	cd, err := h.GetContentDisposition()
	if err != nil {
		h.SetContentDisposition(param.New(p))
		return
	}
	h.SetContentDisposition(param.Modify(cd, param.Change(p)))
}

// GetFilename returns the filename parameter of the Content-disposition
// header. It returns ErrNoSuchFieldParameter if the disposition is set but
// carries no filename.
func (h *Header) GetFilename() (string, error) {
	cd, err := h.GetContentDisposition()
	if err != nil {
		return "", err
	}
	fn := cd.Filename()
	if fn == "" {
		return "", ErrNoSuchFieldParameter
	}
	return fn, nil
}

// SetFilename sets the filename parameter of the Content-disposition header.
// If no disposition is set yet, the presentation defaults to "attachment".
func (h *Header) SetFilename(fn string) {
	cd, err := h.GetContentDisposition()
	if err != nil {
		cd = param.New("attachment")
	}
	h.SetContentDisposition(param.Modify(cd, param.Set(param.Filename, fn)))
}

// ParseAddressList parses an email address list. This method is forgiving: a
// badly formatted field returns whatever addresses could be salvaged rather
// than an error.
func ParseAddressList(body string) addr.AddressList {
	al, _ := addr.ParseEmailAddressList(body)
	return al
}

// GetAddressList will return an addr.AddressList for the named field.
//
// It will return nil and ErrNoSuchField if the field is not set on the
// header. It will return ErrManyFields if the field is set more than once on
// the header.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}
	return ParseAddressList(body), nil
}

// SetAddressList will replace all existing header fields with the given name
// with a single header containing the given addr.AddressList.
func (h *Header) SetAddressList(name string, body ...addr.Address) {
	h.Set(name, addr.AddressList(body).String())
}

// setAddress sets an address field from the given values, each of which may
// be a string containing one or more addresses, an addr.Address, or an
// addr.AddressList.
func (h *Header) setAddress(name string, as []any) error {
	var al addr.AddressList
	for _, a := range as {
		switch v := a.(type) {
		case string:
			vl, err := addr.ParseEmailAddressList(v)
			if err != nil {
				return fmt.Errorf("parsing %s address %q: %w", name, v, err)
			}
			al = append(al, vl...)
		case addr.Address:
			al = append(al, v)
		case addr.AddressList:
			al = append(al, v...)
		default:
			return ErrWrongAddressType
		}
	}
	h.SetAddressList(name, al...)
	return nil
}

// GetTo returns the To address field as an addr.AddressList.
func (h *Header) GetTo() (addr.AddressList, error) {
	return h.GetAddressList(To)
}

// SetTo sets the To address field from strings, addr.Address values, or
// addr.AddressList values. It will fail with an error if something other
// than those types is provided or if a given string fails to parse.
func (h *Header) SetTo(as ...any) error {
	return h.setAddress(To, as)
}

// GetCc returns the Cc address field as an addr.AddressList.
func (h *Header) GetCc() (addr.AddressList, error) {
	return h.GetAddressList(Cc)
}

// SetCc sets the Cc address field. See SetTo for accepted types.
func (h *Header) SetCc(as ...any) error {
	return h.setAddress(Cc, as)
}

// GetBcc returns the Bcc address field as an addr.AddressList.
func (h *Header) GetBcc() (addr.AddressList, error) {
	return h.GetAddressList(Bcc)
}

// SetBcc sets the Bcc address field. See SetTo for accepted types.
func (h *Header) SetBcc(as ...any) error {
	return h.setAddress(Bcc, as)
}

// GetFrom returns the From address field as an addr.AddressList.
func (h *Header) GetFrom() (addr.AddressList, error) {
	return h.GetAddressList(From)
}

// SetFrom sets the From address field. See SetTo for accepted types.
func (h *Header) SetFrom(as ...any) error {
	return h.setAddress(From, as)
}

// GetReplyTo returns the Reply-to address field as an addr.AddressList.
func (h *Header) GetReplyTo() (addr.AddressList, error) {
	return h.GetAddressList(ReplyTo)
}

// SetReplyTo sets the Reply-to address field. See SetTo for accepted types.
func (h *Header) SetReplyTo(as ...any) error {
	return h.setAddress(ReplyTo, as)
}
