package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/database"
	"github.com/pixelsmith/contactrelay/internal/email"
	"github.com/pixelsmith/contactrelay/internal/logger"
	"github.com/pixelsmith/contactrelay/internal/model"
)

// Contact relay errors
var (
	ErrNameRequired    = errors.New("full name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrNotConfigured   = errors.New("contact relay is not configured")
)

const dedupPrefix = "contact_dedup:"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService validates contact submissions and dispatches the
// owner-notification and auto-reply emails. It holds no per-submission
// state; every Submit call is independent.
type ContactService struct {
	rdb    *database.Redis // optional, nil when Redis is not configured
	sender email.Sender
	cfg    *config.Config
	log    *logger.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(rdb *database.Redis, sender email.Sender, cfg *config.Config, log *logger.Logger) *ContactService {
	return &ContactService{
		rdb:    rdb,
		sender: sender,
		cfg:    cfg,
		log:    log.WithComponent("contact"),
	}
}

// Submit validates the submission and, if it passes, sends the owner
// notification followed by the auto-reply. The two sends are strictly
// sequential: the auto-reply is never attempted when the owner
// notification fails. Either both emails go out or the whole call fails.
func (s *ContactService) Submit(ctx context.Context, sub model.Submission) error {
	sub.FullName = strings.TrimSpace(sub.FullName)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.CompanyName = strings.TrimSpace(sub.CompanyName)
	sub.ContactNumber = strings.TrimSpace(sub.ContactNumber)
	sub.Message = strings.TrimSpace(sub.Message)

	if err := validate(sub); err != nil {
		return err
	}

	if s.sender == nil || s.cfg.Contact.OwnerEmail == "" {
		return ErrNotConfigured
	}

	// Optional duplicate suppression. Redis being down never blocks a
	// submission; the relay then falls back to its documented behavior
	// of sending duplicates.
	dedupKey := ""
	if window := s.cfg.Contact.DedupWindow; window > 0 && s.rdb != nil {
		dedupKey = dedupPrefix + submissionHash(sub)
		inserted, err := s.rdb.SetNXWithTTL(ctx, dedupKey, "1", window)
		if err != nil {
			s.log.Warn().Err(err).Msg("dedup check failed, proceeding without it")
			dedupKey = ""
		} else if !inserted {
			s.log.Info().Str("email", sub.Email).Msg("duplicate submission suppressed")
			return nil
		}
	}

	// One authenticated transport session per request, verified before
	// anything is sent.
	if err := s.sender.Verify(ctx); err != nil {
		s.releaseDedup(ctx, dedupKey)
		return fmt.Errorf("transport verification failed: %w", err)
	}

	appName := s.cfg.Contact.AppName

	owner := email.Message{
		To:       s.cfg.Contact.OwnerEmail,
		ReplyTo:  sub.Email,
		Subject:  fmt.Sprintf("New inquiry from %s", sub.FullName),
		HTMLBody: email.OwnerNotificationHTML(sub, appName),
		TextBody: email.OwnerNotificationText(sub, appName),
	}
	if err := s.sender.Send(ctx, owner); err != nil {
		s.releaseDedup(ctx, dedupKey)
		return fmt.Errorf("failed to send owner notification: %w", err)
	}

	reply := email.Message{
		To:       sub.Email,
		Subject:  fmt.Sprintf("Thanks for contacting %s", appName),
		HTMLBody: email.AutoReplyHTML(sub, appName),
		TextBody: email.AutoReplyText(sub, appName),
	}
	if err := s.sender.Send(ctx, reply); err != nil {
		// The owner notification already went out. The request still
		// reports failure, so name what was delivered for reconciliation.
		s.log.Warn().
			Err(err).
			Str("email", sub.Email).
			Msg("auto-reply failed after owner notification was delivered")
		s.releaseDedup(ctx, dedupKey)
		return fmt.Errorf("failed to send auto-reply: %w", err)
	}

	s.log.Info().
		Str("name", sub.FullName).
		Str("email", sub.Email).
		Msg("contact submission relayed")
	return nil
}

// releaseDedup drops the dedup key after a failed dispatch so the user
// can resubmit immediately.
func (s *ContactService) releaseDedup(ctx context.Context, key string) {
	if key == "" || s.rdb == nil {
		return
	}
	if err := s.rdb.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("failed to release dedup key")
	}
}

func validate(sub model.Submission) error {
	if sub.FullName == "" {
		return ErrNameRequired
	}
	if sub.Email == "" {
		return ErrEmailRequired
	}
	if sub.Message == "" {
		return ErrMessageRequired
	}
	if !emailPattern.MatchString(sub.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// submissionHash fingerprints the normalized payload for the dedup window.
func submissionHash(sub model.Submission) string {
	h := sha256.Sum256([]byte(strings.Join([]string{
		sub.FullName, sub.Email, sub.CompanyName, sub.ContactNumber, sub.Message,
	}, "\x00")))
	return hex.EncodeToString(h[:])
}
