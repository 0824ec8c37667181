package email

import (
	"context"
	"fmt"

	"github.com/pixelsmith/contactrelay/internal/config"
)

// NewSender builds the Sender named by the email configuration.
func NewSender(ctx context.Context, cfg config.EmailConfig) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPSender(cfg.SMTP)
	case "gmail":
		return NewGmailSender(ctx, cfg.Gmail)
	case "dev":
		return DevSender{}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
