package services

import (
	"encoding/json"
	"fmt"
	"log"

	"pasar/pkg/rabbitmq"
)

// Mailer dispatches verification messages to users. Delivery is
// fire-and-forget; callers log failures but do not retry.
type Mailer interface {
	SendVerificationEmail(email, token string) error
}

// QueueMailer hands verification emails to the message queue, where a
// delivery worker picks them up. Without a broker it falls back to logging
// the message, which keeps the flow visible in development.
type QueueMailer struct {
	client *rabbitmq.Client
}

// NewQueueMailer creates a QueueMailer. A nil client enables the logging
// fallback.
func NewQueueMailer(client *rabbitmq.Client) *QueueMailer {
	return &QueueMailer{client: client}
}

// VerificationEmail is the queue payload for one verification message.
type VerificationEmail struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// SendVerificationEmail publishes the verification message.
func (m *QueueMailer) SendVerificationEmail(email, token string) error {
	if m.client == nil {
		log.Printf("[EMAIL] send verification token %s to %s", token, email)
		return nil
	}
	body, err := json.Marshal(VerificationEmail{Email: email, Token: token})
	if err != nil {
		return fmt.Errorf("failed to marshal verification email: %w", err)
	}
	return m.client.Publish(rabbitmq.QueueVerificationEmails, body)
}
