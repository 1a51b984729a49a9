package param

import (
	"errors"
	"mime"
	"strings"
)

// ErrBadValue is returned by Parse when the given string cannot be understood
// as a structured header value.
var ErrBadValue = errors.New("malformed structured header value")

// Names of parameters commonly found on Content-type and Content-disposition
// header fields.
const (
	Boundary = "boundary"
	Charset  = "charset"
	Filename = "filename"
)

// Value represents a structured header field body made up of a primary value
// and a set of named parameters, as used by the Content-type and
// Content-disposition header fields.
//
// A Value is treated as immutable once constructed. Use Modify to build a
// changed copy.
type Value struct {
	value  string
	params map[string]string
}

// New constructs a Value from the given primary value and optional parameter
// map. The parameter map is copied, so later changes to the given map do not
// leak into the Value.
func New(value string, params ...map[string]string) *Value {
	ps := map[string]string{}
	for _, p := range params {
		for k, v := range p {
			ps[strings.ToLower(k)] = v
		}
	}
	return &Value{value: value, params: ps}
}

// Parse interprets a raw header field body as a structured value. It will
// return ErrBadValue (possibly wrapped) if the body cannot be parsed.
func Parse(body string) (*Value, error) {
	v, ps, err := mime.ParseMediaType(body)
	if err != nil {
		return nil, errors.Join(ErrBadValue, err)
	}
	if strings.Count(v, "/") > 1 || strings.HasPrefix(v, "/") || strings.HasSuffix(v, "/") {
		return nil, ErrBadValue
	}
	return &Value{value: v, params: ps}, nil
}

// Value returns the primary value.
func (v *Value) Value() string { return v.value }

// MediaType is a synonym for Value, named for use with Content-type.
func (v *Value) MediaType() string { return v.value }

// Presentation is a synonym for Value, named for use with
// Content-disposition (e.g., "inline" or "attachment").
func (v *Value) Presentation() string { return v.value }

// Type returns the part of the media type before the slash or an empty string
// if the primary value contains no slash.
func (v *Value) Type() string {
	t, _, found := strings.Cut(v.value, "/")
	if !found {
		return ""
	}
	return t
}

// Subtype returns the part of the media type after the slash or an empty
// string if the primary value contains no slash.
func (v *Value) Subtype() string {
	_, st, found := strings.Cut(v.value, "/")
	if !found {
		return ""
	}
	return st
}

// Parameters returns a copy of the parameters attached to this value.
func (v *Value) Parameters() map[string]string {
	ps := make(map[string]string, len(v.params))
	for k, p := range v.params {
		ps[k] = p
	}
	return ps
}

// Parameter returns the named parameter or an empty string if the parameter
// is not set.
func (v *Value) Parameter(name string) string {
	return v.params[strings.ToLower(name)]
}

// Boundary returns the boundary parameter.
func (v *Value) Boundary() string { return v.Parameter(Boundary) }

// Charset returns the charset parameter.
func (v *Value) Charset() string { return v.Parameter(Charset) }

// Filename returns the filename parameter.
func (v *Value) Filename() string { return v.Parameter(Filename) }

// String serializes the value and its parameters into a header field body.
func (v *Value) String() string {
	return mime.FormatMediaType(v.value, v.params)
}

// Bytes serializes the value and its parameters into a header field body.
func (v *Value) Bytes() []byte {
	return []byte(v.String())
}

// Modifier is a transformation applied to a Value by Modify.
type Modifier func(*Value)

// Modify builds a copy of the given Value with the given modifications
// applied in order.
func Modify(v *Value, mods ...Modifier) *Value {
	nv := New(v.value, v.params)
	for _, mod := range mods {
		mod(nv)
	}
	return nv
}

// Change replaces the primary value.
func Change(value string) Modifier {
	return func(v *Value) { v.value = value }
}

// Set sets the named parameter to the given value.
func Set(name, value string) Modifier {
	return func(v *Value) { v.params[strings.ToLower(name)] = value }
}

// Delete removes the named parameter.
func Delete(name string) Modifier {
	return func(v *Value) { delete(v.params, strings.ToLower(name)) }
}
