// Package stdout writes messages to a writer instead of delivering them.
// It backs dry runs and local debugging.
package stdout

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/transport"
)

// Transport prints each message, framed with its envelope, to Out.
type Transport struct {
	Out io.Writer
}

var _ transport.Transport = &Transport{}

// New builds a transport printing to standard output.
func New() *Transport {
	return &Transport{Out: os.Stdout}
}

// Deliver writes the envelope and the complete message to the output writer.
func (t *Transport) Deliver(_ context.Context, env transport.Envelope, msg message.Generic) error {
	out := t.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "=== MAIL FROM: %s\n", env.From)
	for _, rcpt := range env.Recipients {
		fmt.Fprintf(out, "=== RCPT TO: %s\n", rcpt)
	}

	if _, err := msg.WriteTo(out); err != nil {
		return &transport.DeliveryError{Transport: "stdout", Err: err}
	}
	fmt.Fprintln(out)

	return nil
}
