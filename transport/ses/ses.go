// Package ses delivers messages through the AWS SES v2 API.
package ses

import (
	"bytes"
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/transport"
)

// maxRetries is the number of retry attempts for a failed API call.
const maxRetries = 3

// baseRetryDelay is the initial delay for exponential backoff.
const baseRetryDelay = 1 * time.Second

// Config holds the settings for reaching SES.
type Config struct {
	Region string

	// AccessKeyID and SecretAccessKey are static credentials. When empty,
	// the ambient AWS credential chain is used instead.
	AccessKeyID     string
	SecretAccessKey string
}

// SendEmailAPI is the slice of the SES v2 client that delivery uses. Tests
// substitute a mock implementation.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Transport delivers messages as raw MIME through SES v2.
type Transport struct {
	client SendEmailAPI

	// RetryDelay is the initial backoff delay between attempts. Zero means
	// one second.
	RetryDelay time.Duration
}

var _ transport.Transport = &Transport{}

// New builds a transport backed by a real SES client.
func New(ctx context.Context, cfg Config) (*Transport, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Transport{client: sesv2.NewFromConfig(awsCfg)}, nil
}

// NewWithClient builds a transport around an existing client, used for
// testing.
func NewWithClient(client SendEmailAPI) *Transport {
	return &Transport{client: client}
}

// Deliver writes the message out and submits it to SES as raw content,
// retrying transient failures with exponential backoff.
func (t *Transport) Deliver(ctx context.Context, env transport.Envelope, msg message.Generic) error {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return &transport.DeliveryError{Transport: "ses", Err: err}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &env.From,
		Destination: &types.Destination{
			ToAddresses: env.Recipients,
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{
				Data: buf.Bytes(),
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepWithContext(ctx, t.backoffDelay(attempt)); err != nil {
				return &transport.DeliveryError{Transport: "ses", Err: err}
			}
		}

		_, err := t.client.SendEmail(ctx, input)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	return &transport.DeliveryError{
		Transport: "ses",
		Err:       fmt.Errorf("after %d retries: %w", maxRetries, lastErr),
	}
}

func (t *Transport) backoffDelay(attempt int) time.Duration {
	delay := t.RetryDelay
	if delay == 0 {
		delay = baseRetryDelay
	}
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
