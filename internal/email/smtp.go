package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"

	"gopkg.in/gomail.v2"

	"github.com/pixelsmith/contactrelay/internal/config"
)

// SMTPSender implements Sender over an authenticated SMTP account.
// Each Verify/Send opens its own session; nothing is pooled across
// requests, so concurrent submissions never share transport state.
type SMTPSender struct {
	dialer        *gomail.Dialer
	senderAddress string
	senderName    string
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(cfg config.SMTPEmailConfig) (*SMTPSender, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrNotConfigured
	}

	return &SMTPSender{
		dialer:        gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		senderAddress: cfg.From(),
		senderName:    cfg.SenderName,
	}, nil
}

// Verify dials the server and authenticates, then closes the session.
// No message is sent.
func (s *SMTPSender) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	closer, err := s.dialer.Dial()
	if err != nil {
		return classifySMTPError(err)
	}
	return closer.Close()
}

// Send delivers one message through a fresh authenticated session.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderAddress, s.senderName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	// text part first, HTML as the preferred alternative
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		if msg.HTMLBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		}
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return classifySMTPError(err)
	}
	return nil
}

// classifySMTPError maps a raw SMTP/dial error onto a transport category,
// keeping the original error in the chain for logs.
func classifySMTPError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		// 530/534/535 are the auth rejection replies
		if protoErr.Code >= 530 && protoErr.Code <= 535 {
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
	}

	return fmt.Errorf("smtp: send failed: %w", err)
}
