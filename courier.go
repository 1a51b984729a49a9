package courier

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zostay/go-courier/compose"
	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/message/header"
	"github.com/zostay/go-courier/table"
	"github.com/zostay/go-courier/templates"
	"github.com/zostay/go-courier/transport"
)

// ErrNoTransport is returned by Send when the Sender has no transport
// configured.
var ErrNoTransport = errors.New("no transport configured")

// Message is the logical description of one email. Compose turns it into a
// finished MIME message. Zero fields fall back to the Sender's defaults
// field by field.
type Message struct {
	// Subject is the message subject. A message whose subject resolves to
	// empty after defaults fails to compose.
	Subject string

	// From is the sender address.
	From string

	// To, Cc, and Bcc are the recipient addresses. Bcc recipients receive
	// the message but are not named in its header.
	To  []string
	Cc  []string
	Bcc []string

	// Text and HTML are inline template sources for the two body
	// renditions. Either, both, or neither may be set.
	Text string
	HTML string

	// TextTemplate and HTMLTemplate name templates in the Sender's stores
	// to use instead of the inline sources.
	TextTemplate string
	HTMLTemplate string

	// Tables are rendered into both body renditions. Each key becomes a
	// template variable holding the rendered fragment.
	Tables map[string]*table.Table

	// Images are embedded inline in the HTML rendition. Each key becomes a
	// template variable holding an img element referencing the embedded
	// payload.
	Images map[string]compose.Image

	// Params are template variables available to both bodies. They shadow
	// the implicit variables on conflict.
	Params map[string]any

	// HTMLTheme, when set, overrides the Sender's table theme for this
	// message only.
	HTMLTheme *table.HTMLTheme

	// TextRenderer, when set, overrides the Sender's text table renderer
	// for this message only.
	TextRenderer *table.TextRenderer

	// Attachments maps attachment filenames to their content sources.
	Attachments map[string]compose.Source
}

// Sender composes messages and hands them to a transport. A Sender is safe
// for concurrent use; configuration changes apply to compositions started
// after the change.
type Sender struct {
	mu sync.RWMutex

	transport    transport.Transport
	defaults     Message
	textStore    templates.Store
	htmlStore    templates.Store
	theme        table.HTMLTheme
	textRenderer table.TextRenderer
	now          func() time.Time
}

// Option configures a Sender.
type Option func(*Sender)

// WithTransport sets the delivery transport.
func WithTransport(t transport.Transport) Option {
	return func(s *Sender) { s.transport = t }
}

// WithTextTemplates sets the store that named text templates are loaded
// from and inline text bodies are expanded through.
func WithTextTemplates(store templates.Store) Option {
	return func(s *Sender) { s.textStore = store }
}

// WithHTMLTemplates sets the store that named HTML templates are loaded
// from and inline HTML bodies are expanded through.
func WithHTMLTemplates(store templates.Store) Option {
	return func(s *Sender) { s.htmlStore = store }
}

// WithTemplates sets one store for both body renditions.
func WithTemplates(store templates.Store) Option {
	return func(s *Sender) {
		s.textStore = store
		s.htmlStore = store
	}
}

// WithHTMLTheme sets the theme used when rendering tables into HTML bodies.
func WithHTMLTheme(theme table.HTMLTheme) Option {
	return func(s *Sender) { s.theme = theme }
}

// WithTextRenderer sets the renderer used when rendering tables into text
// bodies.
func WithTextRenderer(r table.TextRenderer) Option {
	return func(s *Sender) { s.textRenderer = r }
}

// WithClock overrides the time source used for the Date header and the
// implicit now template variable.
func WithClock(now func() time.Time) Option {
	return func(s *Sender) { s.now = now }
}

// NewSender builds a Sender with the given options.
func NewSender(opts ...Option) *Sender {
	s := &Sender{
		theme: table.Modest,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDefaults replaces the Sender's default message. Each composed message
// falls back to these defaults field by field.
func (s *Sender) SetDefaults(defaults Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = defaults
}

// withDefaults fills the zero fields of msg from the defaults.
func withDefaults(msg, def Message) Message {
	if msg.Subject == "" {
		msg.Subject = def.Subject
	}
	if msg.From == "" {
		msg.From = def.From
	}
	if len(msg.To) == 0 {
		msg.To = def.To
	}
	if len(msg.Cc) == 0 {
		msg.Cc = def.Cc
	}
	if len(msg.Bcc) == 0 {
		msg.Bcc = def.Bcc
	}
	if msg.Text == "" {
		msg.Text = def.Text
	}
	if msg.HTML == "" {
		msg.HTML = def.HTML
	}
	if msg.TextTemplate == "" {
		msg.TextTemplate = def.TextTemplate
	}
	if msg.HTMLTemplate == "" {
		msg.HTMLTemplate = def.HTMLTemplate
	}
	return msg
}

// snapshot copies the Sender's configuration under the read lock so a
// composition sees one consistent view.
func (s *Sender) snapshot() *Sender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Sender{
		transport:    s.transport,
		defaults:     s.defaults,
		textStore:    s.textStore,
		htmlStore:    s.htmlStore,
		theme:        s.theme,
		textRenderer: s.textRenderer,
		now:          s.now,
	}
}

func anyStrings(ss []string) []any {
	as := make([]any, len(ss))
	for i, s := range ss {
		as[i] = s
	}
	return as
}

// compose builds the full MIME message and its delivery envelope.
func (s *Sender) compose(msg Message) (message.Generic, transport.Envelope, error) {
	var env transport.Envelope

	msg = withDefaults(msg, s.defaults)
	if msg.Subject == "" {
		return nil, env, compose.ErrNoSubject
	}

	now := s.now()
	a := compose.NewAssembly()

	theme := s.theme
	if msg.HTMLTheme != nil {
		theme = *msg.HTMLTheme
	}

	textRenderer := s.textRenderer
	if msg.TextRenderer != nil {
		textRenderer = *msg.TextRenderer
	}

	if msg.Text != "" || msg.TextTemplate != "" {
		body := &compose.TextBody{
			Content:      msg.Text,
			TemplateName: msg.TextTemplate,
			Store:        s.textStore,
			Renderer:     textRenderer,
		}
		params := compose.TextParams(msg.From, now, msg.Params)
		if err := body.Attach(a, msg.Tables, params); err != nil {
			return nil, env, err
		}
	}

	if msg.HTML != "" || msg.HTMLTemplate != "" {
		body := &compose.HTMLBody{
			Content:      msg.HTML,
			TemplateName: msg.HTMLTemplate,
			Store:        s.htmlStore,
			Renderer:     table.HTMLRenderer{Theme: theme},
			Images:       msg.Images,
		}
		params := compose.HTMLParams(msg.From, now, msg.Params)
		if err := body.Attach(a, msg.Tables, params); err != nil {
			return nil, env, err
		}
	}

	for _, fn := range slices.Sorted(maps.Keys(msg.Attachments)) {
		if err := a.Attach(fn, msg.Attachments[fn]); err != nil {
			return nil, env, err
		}
	}

	envHeader := &header.Header{}
	envHeader.SetSubject(msg.Subject)
	envHeader.SetDate(now)
	envHeader.SetMessageID(uuid.NewString() + "@go-courier")
	envHeader.Set(header.MIMEVersion, "1.0")
	if msg.From != "" {
		if err := envHeader.SetFrom(msg.From); err != nil {
			return nil, env, err
		}
	}
	if len(msg.To) > 0 {
		if err := envHeader.SetTo(anyStrings(msg.To)...); err != nil {
			return nil, env, err
		}
	}
	if len(msg.Cc) > 0 {
		if err := envHeader.SetCc(anyStrings(msg.Cc)...); err != nil {
			return nil, env, err
		}
	}

	m, err := a.Assemble(envHeader)
	if err != nil {
		return nil, env, err
	}

	env.From = msg.From
	env.Recipients = slices.Concat(msg.To, msg.Cc, msg.Bcc)

	return m, env, nil
}

// Compose builds the full MIME message for msg without delivering it. The
// Bcc recipients influence delivery only, so they do not appear in the
// composed header.
func (s *Sender) Compose(msg Message) (message.Generic, error) {
	m, _, err := s.snapshot().compose(msg)
	return m, err
}

// Send composes msg and delivers it through the configured transport.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	snap := s.snapshot()
	if snap.transport == nil {
		return ErrNoTransport
	}

	m, env, err := snap.compose(msg)
	if err != nil {
		return err
	}

	return snap.transport.Deliver(ctx, env, m)
}
