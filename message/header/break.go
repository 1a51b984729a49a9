package header

// Break represents the line break to use when writing out a header.
type Break string

// Constants for use when selecting a line break for a new header. If you
// don't know what to pick, choose CRLF.
const (
	CRLF Break = "\x0d\x0a" // \r\n - network line break
	LF   Break = "\x0a"     // \n - Unix line break
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
