package courier_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-courier"
	"github.com/zostay/go-courier/compose"
	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/table"
	"github.com/zostay/go-courier/transport"
)

type captureTransport struct {
	env transport.Envelope
	out bytes.Buffer
}

func (c *captureTransport) Deliver(_ context.Context, env transport.Envelope, msg message.Generic) error {
	c.env = env
	_, err := msg.WriteTo(&c.out)
	return err
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 23, 9, 30, 0, 0, time.UTC)
}

func TestSenderComposeTextMessage(t *testing.T) {
	t.Parallel()

	s := courier.NewSender(courier.WithClock(fixedClock))

	m, err := s.Compose(courier.Message{
		Subject: "hello",
		From:    "sender@example.com",
		To:      []string{"dest@example.com"},
		Text:    "just text",
	})
	require.NoError(t, err)

	h := m.GetHeader()

	subject, err := h.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "hello", subject)

	date, err := h.GetDate()
	require.NoError(t, err)
	assert.True(t, fixedClock().Equal(date))

	id, err := h.GetMessageID()
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	version, err := h.Get("MIME-version")
	require.NoError(t, err)
	assert.Equal(t, "1.0", version)

	from, err := h.GetFrom()
	require.NoError(t, err)
	require.Len(t, from, 1)
	assert.Equal(t, "sender@example.com", from[0].Address())

	mt, err := h.GetMediaType()
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mt)
}

func TestSenderComposeNoSubject(t *testing.T) {
	t.Parallel()

	s := courier.NewSender()

	_, err := s.Compose(courier.Message{Text: "body but no subject"})
	assert.ErrorIs(t, err, compose.ErrNoSubject)
}

func TestSenderComposeEmpty(t *testing.T) {
	t.Parallel()

	s := courier.NewSender()

	_, err := s.Compose(courier.Message{Subject: "empty"})
	assert.ErrorIs(t, err, compose.ErrEmptyMessage)
}

func TestSenderDefaults(t *testing.T) {
	t.Parallel()

	s := courier.NewSender(courier.WithClock(fixedClock))
	s.SetDefaults(courier.Message{
		From:    "noreply@example.com",
		To:      []string{"team@example.com"},
		Subject: "fallback subject",
	})

	m, err := s.Compose(courier.Message{Text: "content"})
	require.NoError(t, err)

	h := m.GetHeader()

	subject, err := h.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "fallback subject", subject)

	to, err := h.GetTo()
	require.NoError(t, err)
	require.Len(t, to, 1)
	assert.Equal(t, "team@example.com", to[0].Address())

	// explicit fields still win over defaults
	m, err = s.Compose(courier.Message{
		Subject: "explicit",
		Text:    "content",
		To:      []string{"other@example.com"},
	})
	require.NoError(t, err)

	subject, err = m.GetHeader().GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "explicit", subject)
}

func TestSenderComposeImplicitParams(t *testing.T) {
	t.Parallel()

	s := courier.NewSender(courier.WithClock(fixedClock))

	m, err := s.Compose(courier.Message{
		Subject: "params",
		From:    "sender@example.com",
		Text:    "sent by {{ sender }}, missing: {{ error }}",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "sent by sender@example.com")
	assert.Contains(t, buf.String(), "[value missing]")
}

func TestSenderComposeFullMessage(t *testing.T) {
	t.Parallel()

	tbl := table.New("dept", "sales")
	tbl.Append("A", 10)
	tbl.Append("B", 20)

	s := courier.NewSender(courier.WithClock(fixedClock))

	m, err := s.Compose(courier.Message{
		Subject: "report",
		From:    "sender@example.com",
		To:      []string{"dest@example.com"},
		Text:    "Totals:\n{{ sales }}",
		HTML:    "<h1>Totals</h1>{{ sales }}{{ logo }}",
		Tables:  map[string]*table.Table{"sales": tbl},
		Images: map[string]compose.Image{
			"logo": {Data: []byte("fake image bytes")},
		},
		Attachments: map[string]compose.Source{
			"sales.csv": compose.TableData{Table: tbl},
		},
	})
	require.NoError(t, err)

	mt, err := m.GetHeader().GetMediaType()
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mt)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "multipart/alternative")
	assert.Contains(t, out, "multipart/related")
	assert.Contains(t, out, `src="cid:`)
	assert.Contains(t, out, "dept,sales")
}

func TestSenderHTMLThemeSelection(t *testing.T) {
	t.Parallel()

	tbl := table.New("a")
	tbl.Append("x")
	tables := map[string]*table.Table{"data": tbl}

	s := courier.NewSender(
		courier.WithHTMLTheme(table.PlainHTML),
		courier.WithClock(fixedClock),
	)

	m, err := s.Compose(courier.Message{
		Subject: "themes",
		HTML:    "{{ data }}",
		Tables:  tables,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<table>")
	assert.NotContains(t, buf.String(), "<table style=")

	// a per-message theme wins over the sender's
	m, err = s.Compose(courier.Message{
		Subject:   "themes",
		HTML:      "{{ data }}",
		Tables:    tables,
		HTMLTheme: &table.Modest,
	})
	require.NoError(t, err)

	buf.Reset()
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<table style=")
}

func TestSenderTextRendererSelection(t *testing.T) {
	t.Parallel()

	tbl := table.New("a", "b")
	tbl.Append("x", "y")
	tables := map[string]*table.Table{"data": tbl}

	s := courier.NewSender(
		courier.WithTextRenderer(table.TextRenderer{Gap: 4}),
		courier.WithClock(fixedClock),
	)

	m, err := s.Compose(courier.Message{
		Subject: "gaps",
		Text:    "{{ data }}",
		Tables:  tables,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a    b")

	// a per-message renderer wins over the sender's
	m, err = s.Compose(courier.Message{
		Subject:      "gaps",
		Text:         "{{ data }}",
		Tables:       tables,
		TextRenderer: &table.TextRenderer{Gap: 1},
	})
	require.NoError(t, err)

	buf.Reset()
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a b")
}

func TestSenderSend(t *testing.T) {
	t.Parallel()

	ct := &captureTransport{}
	s := courier.NewSender(
		courier.WithTransport(ct),
		courier.WithClock(fixedClock),
	)

	err := s.Send(context.Background(), courier.Message{
		Subject: "sent",
		From:    "sender@example.com",
		To:      []string{"to@example.com"},
		Cc:      []string{"cc@example.com"},
		Bcc:     []string{"bcc@example.com"},
		Text:    "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "sender@example.com", ct.env.From)
	assert.Equal(t, []string{"to@example.com", "cc@example.com", "bcc@example.com"},
		ct.env.Recipients)

	out := ct.out.String()
	assert.Contains(t, out, "To: to@example.com")
	assert.Contains(t, out, "Cc: cc@example.com")
	// blind recipients never reach the header
	assert.NotContains(t, out, "bcc@example.com")
}

func TestSenderSendNoTransport(t *testing.T) {
	t.Parallel()

	s := courier.NewSender()

	err := s.Send(context.Background(), courier.Message{Subject: "x", Text: "y"})
	assert.ErrorIs(t, err, courier.ErrNoTransport)
}
