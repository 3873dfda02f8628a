package noop

import (
	"context"
	"log"

	"bananadb/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendWelcomeEmail(_ context.Context, toEmail, toName string) error {
	log.Printf("[NOOP EMAIL] Welcome email for %s (%s)", toName, toEmail)
	return nil
}
