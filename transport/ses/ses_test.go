package ses_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/transport"
	"github.com/zostay/go-courier/transport/ses"
)

type mockSendEmail struct {
	inputs []*sesv2.SendEmailInput
	errs   []error
}

func (m *mockSendEmail) SendEmail(
	_ context.Context,
	params *sesv2.SendEmailInput,
	_ ...func(*sesv2.Options),
) (*sesv2.SendEmailOutput, error) {
	m.inputs = append(m.inputs, params)
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return nil, err
	}
	return &sesv2.SendEmailOutput{}, nil
}

func testMessage() message.Generic {
	return message.NewOpaque("text/plain", []byte("ses body"))
}

func TestDeliverRaw(t *testing.T) {
	t.Parallel()

	mock := &mockSendEmail{}
	tr := ses.NewWithClient(mock)

	env := transport.Envelope{
		From:       "sender@example.com",
		Recipients: []string{"one@example.com", "two@example.com"},
	}

	err := tr.Deliver(context.Background(), env, testMessage())
	require.NoError(t, err)

	require.Len(t, mock.inputs, 1)
	in := mock.inputs[0]

	assert.Equal(t, "sender@example.com", *in.FromEmailAddress)
	assert.Equal(t, env.Recipients, in.Destination.ToAddresses)

	require.NotNil(t, in.Content.Raw)
	assert.Contains(t, string(in.Content.Raw.Data), "ses body")
	assert.Contains(t, string(in.Content.Raw.Data), "Content-type: text/plain")
}

func TestDeliverRetriesTransientFailure(t *testing.T) {
	t.Parallel()

	mock := &mockSendEmail{
		errs: []error{errors.New("throttled")},
	}
	tr := ses.NewWithClient(mock)
	tr.RetryDelay = time.Millisecond

	err := tr.Deliver(context.Background(), transport.Envelope{
		From:       "sender@example.com",
		Recipients: []string{"dest@example.com"},
	}, testMessage())

	require.NoError(t, err)
	assert.Len(t, mock.inputs, 2)
}

func TestDeliverGivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	boom := errors.New("persistent failure")
	mock := &mockSendEmail{
		errs: []error{boom, boom, boom, boom, boom},
	}
	tr := ses.NewWithClient(mock)
	tr.RetryDelay = time.Millisecond

	err := tr.Deliver(context.Background(), transport.Envelope{
		From:       "sender@example.com",
		Recipients: []string{"dest@example.com"},
	}, testMessage())

	var de *transport.DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "ses", de.Transport)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, mock.inputs, 4)
}

func TestDeliverCancelledContext(t *testing.T) {
	t.Parallel()

	mock := &mockSendEmail{
		errs: []error{errors.New("first try fails")},
	}
	tr := ses.NewWithClient(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tr.Deliver(ctx, transport.Envelope{
		From:       "sender@example.com",
		Recipients: []string{"dest@example.com"},
	}, testMessage())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	// the cancelled context stops the retry loop before a second attempt
	assert.Len(t, mock.inputs, 1)
}
