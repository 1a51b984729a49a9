package message

import (
	"io"

	"github.com/zostay/go-courier/message/header"
)

// Part is the interface shared by the parts of a message tree. Each Part is
// either a branch or a leaf.
//
// A branch Part is one that has sub-parts. In this case, the IsMultipart()
// method will return true, the GetParts() method is available, and GetReader()
// must not be called.
//
// A leaf Part is one that contains content. In this case, the IsMultipart()
// method will return false. The GetParts() method must not be called on a
// leaf Part. However, the GetReader() method will return a reader for reading
// the content of the part.
type Part interface {
	io.WriterTo

	// IsMultipart will return true if this Part is a branch with nested
	// parts. You may call the GetParts() method to process the parts only if
	// this returns true. If it returns false, this Part is a leaf and you may
	// call GetReader() instead.
	IsMultipart() bool

	// IsEncoded will return true if the bytes returned from the reader given
	// by GetReader() already have the Content-transfer-encoding applied. This
	// must return false if IsMultipart() returns true.
	IsEncoded() bool

	// GetHeader is available on all Part objects.
	GetHeader() *header.Header

	// GetReader provides the content of the message, but only if
	// IsMultipart() returns false. This must return nil if IsMultipart()
	// returns true.
	GetReader() io.Reader

	// GetParts provides the sub-parts of a multipart message. This should
	// only be called when IsMultipart() returns true. This must return nil if
	// IsMultipart() is false.
	GetParts() []Part
}

// Generic is just an alias for Part, which is intended to convey additional
// semantics: the value is a complete message rather than a sub-part, and it
// is guaranteed to be either a *Opaque or a *Multipart, so it is safe to use
// in a type-switch looking only for those two objects.
type Generic = Part
