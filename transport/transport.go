// Package transport defines the delivery abstraction for assembled messages
// and the envelope information delivery needs beyond the message header.
package transport

import (
	"context"
	"fmt"

	"github.com/zostay/go-courier/message"
)

// Envelope carries the delivery addressing for a message. These are the
// addresses handed to the mail infrastructure, which may differ from the
// header fields (Bcc recipients, for one, appear here but not in the
// header).
type Envelope struct {
	// From is the bare sender address.
	From string

	// Recipients are the bare addresses the message is delivered to,
	// including Bcc recipients.
	Recipients []string
}

// Transport delivers a finished message to its recipients.
type Transport interface {
	// Deliver sends the message to the envelope recipients. The message
	// reader is consumed by delivery, so a message may only be delivered
	// once.
	Deliver(ctx context.Context, env Envelope, msg message.Generic) error
}

// DeliveryError wraps a failure from a concrete transport with the name of
// the transport that produced it.
type DeliveryError struct {
	Transport string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery via %s failed: %v", e.Transport, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
