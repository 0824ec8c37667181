package email

import (
	"context"
	"errors"
)

// Transport error categories. Senders wrap provider errors with one of
// these so callers can answer "credentials or network?" without parsing
// provider-specific messages.
var (
	// ErrNotConfigured means required sender credentials are absent.
	ErrNotConfigured = errors.New("email sender is not configured")
	// ErrAuthFailed means the provider rejected the credentials.
	ErrAuthFailed = errors.New("email provider rejected credentials")
	// ErrUnreachable means the provider could not be reached.
	ErrUnreachable = errors.New("email provider unreachable")
)

// Sender is the interface that all email providers must implement.
// This abstraction allows swapping email providers (SMTP, Gmail, etc.)
// without changing business logic.
type Sender interface {
	// Verify checks that the transport is reachable and authenticated
	// without sending anything. Callers verify once per request before
	// the first send.
	Verify(ctx context.Context) error
	// Send sends an email to the specified recipient.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	ReplyTo  string // optional Reply-To address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}
