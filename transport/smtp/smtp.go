// Package smtp delivers messages through an SMTP relay.
package smtp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/emersion/go-sasl"
	gosmtp "github.com/emersion/go-smtp"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/transport"
)

// Config holds the relay connection settings.
type Config struct {
	// Host is the relay host name.
	Host string

	// Port is the relay port. Zero means 587.
	Port int

	// Username and Password authenticate with the relay via PLAIN when
	// Username is non-empty.
	Username string
	Password string

	// ImplicitTLS dials a TLS connection directly (the SMTPS convention on
	// port 465) instead of upgrading with STARTTLS.
	ImplicitTLS bool
}

// Transport delivers messages through a single SMTP relay.
type Transport struct {
	cfg Config
}

var _ transport.Transport = &Transport{}

// New builds a transport for the given relay.
func New(cfg Config) *Transport {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &Transport{cfg: cfg}
}

// Deliver writes the message out and hands it to the relay in a single SMTP
// transaction.
func (t *Transport) Deliver(ctx context.Context, env transport.Envelope, msg message.Generic) error {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return &transport.DeliveryError{Transport: "smtp", Err: err}
	}

	if err := ctx.Err(); err != nil {
		return &transport.DeliveryError{Transport: "smtp", Err: err}
	}

	var auth sasl.Client
	if t.cfg.Username != "" {
		auth = sasl.NewPlainClient("", t.cfg.Username, t.cfg.Password)
	}

	addr := fmt.Sprintf("%s:%d", t.cfg.Host, t.cfg.Port)

	send := gosmtp.SendMail
	if t.cfg.ImplicitTLS {
		send = gosmtp.SendMailTLS
	}

	if err := send(addr, auth, env.From, env.Recipients, &buf); err != nil {
		return &transport.DeliveryError{Transport: "smtp", Err: err}
	}

	return nil
}
