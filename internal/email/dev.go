package email

import (
	"context"
	"fmt"
)

// DevSender prints messages to stdout instead of sending them.
// Used with provider "dev" for local work without mail credentials.
type DevSender struct{}

// Verify always succeeds.
func (DevSender) Verify(ctx context.Context) error {
	return nil
}

// Send prints the message.
func (DevSender) Send(ctx context.Context, msg Message) error {
	fmt.Println("==========")
	fmt.Printf("To: %s\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Printf("Reply-To: %s\n", msg.ReplyTo)
	}
	fmt.Printf("Subject: %s\n\n", msg.Subject)
	fmt.Println(msg.TextBody)
	fmt.Println("==========")

	return nil
}
