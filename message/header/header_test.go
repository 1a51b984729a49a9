package header_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-courier/message/header"
)

func TestHeaderBasics(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	assert.Equal(t, 0, h.Len())

	h.Set("X-One", "first")
	h.Set("X-Two", "second")

	v, err := h.Get("X-One")
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	// lookup is case-insensitive
	v, err = h.Get("x-one")
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	_, err = h.Get("X-Missing")
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	assert.Equal(t, []string{"X-One", "X-Two"}, h.Names())
}

func TestHeaderSetReplacesAddAppends(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Add("Received", "one")
	h.Add("Received", "two")

	_, err := h.Get("Received")
	assert.ErrorIs(t, err, header.ErrManyFields)
	assert.Equal(t, []string{"one", "two"}, h.GetAll("Received"))

	h.Set("Received", "only")
	assert.Equal(t, []string{"only"}, h.GetAll("Received"))

	require.NoError(t, h.Delete("Received"))
	assert.ErrorIs(t, h.Delete("Received"), header.ErrNoSuchField)
}

func TestHeaderWriteTo(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetSubject("test message")
	h.Set("X-Thing", "value")

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)

	expect := "Subject: test message\r\nX-Thing: value\r\n\r\n"
	assert.Equal(t, expect, buf.String())
	assert.Equal(t, int64(len(expect)), n)
}

func TestHeaderWriteToEncodesNonASCII(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetBreak(header.LF)
	h.SetSubject("héllo wörld")

	var buf bytes.Buffer
	_, err := h.WriteTo(&buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "=?utf-8?q?")
	assert.NotContains(t, buf.String(), "é")
}

func TestHeaderDate(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	when := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)
	h.SetDate(when)

	got, err := h.GetDate()
	require.NoError(t, err)
	assert.True(t, when.Equal(got))
}

func TestHeaderMessageID(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetMessageID("abc123@example.com")

	raw, err := h.Get(header.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "<abc123@example.com>", raw)

	id, err := h.GetMessageID()
	require.NoError(t, err)
	assert.Equal(t, "abc123@example.com", id)
}

func TestHeaderContentType(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetMediaType("text/html")
	require.NoError(t, h.SetCharset("utf-8"))

	mt, err := h.GetMediaType()
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt)

	cs, err := h.GetCharset()
	require.NoError(t, err)
	assert.Equal(t, "utf-8", cs)

	// changing the media type keeps the parameters
	h.SetMediaType("text/plain")
	cs, err = h.GetCharset()
	require.NoError(t, err)
	assert.Equal(t, "utf-8", cs)

	_, err = h.GetBoundary()
	assert.ErrorIs(t, err, header.ErrNoSuchFieldParameter)

	empty := &header.Header{}
	assert.ErrorIs(t, empty.SetCharset("utf-8"), header.ErrNoSuchField)
}

func TestHeaderContentID(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetContentID("res-1@example")

	raw, err := h.Get(header.ContentID)
	require.NoError(t, err)
	assert.Equal(t, "<res-1@example>", raw)

	id, err := h.GetContentID()
	require.NoError(t, err)
	assert.Equal(t, "res-1@example", id)
}

func TestHeaderDisposition(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetFilename("report.csv")

	// setting a filename with no disposition implies attachment
	pres, err := h.GetPresentation()
	require.NoError(t, err)
	assert.Equal(t, "attachment", pres)

	fn, err := h.GetFilename()
	require.NoError(t, err)
	assert.Equal(t, "report.csv", fn)
}

func TestHeaderAddresses(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	require.NoError(t, h.SetTo("alice@example.com", "Bob <bob@example.com>"))

	al, err := h.GetTo()
	require.NoError(t, err)
	require.Len(t, al, 2)
	assert.Equal(t, "alice@example.com", al[0].Address())
	assert.Equal(t, "Bob", al[1].DisplayName())

	err = h.SetCc(42)
	assert.ErrorIs(t, err, header.ErrWrongAddressType)

	err = h.SetFrom("not an address <<<")
	assert.Error(t, err)
}

func TestHeaderClone(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetSubject("original")

	c := h.Clone()
	c.SetSubject("changed")

	s, err := h.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "original", s)
}
