// Package header provides tooling for building email message headers. The
// Header object keeps fields in the order they were first set and provides
// high-level accessors that keep manipulation of the header safe and strictly
// correct on output. Structured fields, such as Content-type and the address
// fields, have typed getters and setters built on the param sub-package and
// on github.com/zostay/go-addr.
package header
