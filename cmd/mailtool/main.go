package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/email"
	"github.com/pixelsmith/contactrelay/internal/logger"
	"github.com/pixelsmith/contactrelay/internal/model"
)

var rootCmd = &cobra.Command{
	Use:   "mailtool",
	Short: "Mail transport tool for the contact relay",
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Dial and authenticate against the configured email provider",
	RunE:  runVerify,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a test submission through the configured provider",
	RunE:  runSend,
}

var (
	sendTo   string
	sendName string
)

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient address for the test auto-reply (required)")
	sendCmd.Flags().StringVar(&sendName, "name", "Test Submission", "submitter name used in the test emails")
	sendCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getSender() (email.Sender, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	sender, err := email.NewSender(context.Background(), cfg.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize email sender: %w", err)
	}

	return sender, cfg, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logger.New("info", "text")
	log.Info().Msg("verifying email transport...")

	sender, cfg, err := getSender()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sender.Verify(ctx); err != nil {
		return fmt.Errorf("transport verification failed: %w", err)
	}

	log.Info().Str("provider", cfg.Email.Provider).Msg("transport verified successfully")
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	log := logger.New("info", "text")

	sender, cfg, err := getSender()
	if err != nil {
		return err
	}

	sub := model.Submission{
		FullName:      sendName,
		Email:         sendTo,
		CompanyName:   "Mailtool",
		ContactNumber: "000-0000",
		Message:       "Test submission sent with mailtool at " + time.Now().Format(time.RFC1123),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := sender.Verify(ctx); err != nil {
		return fmt.Errorf("transport verification failed: %w", err)
	}

	appName := cfg.Contact.AppName
	msg := email.Message{
		To:       sendTo,
		Subject:  fmt.Sprintf("Thanks for contacting %s", appName),
		HTMLBody: email.AutoReplyHTML(sub, appName),
		TextBody: email.AutoReplyText(sub, appName),
	}
	if err := sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	log.Info().Str("to", sendTo).Msg("test email sent")
	return nil
}
