package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"careers-backend/internal/shared/telemetry"
)

const (
	maxNameLen    = 200
	maxSubjectLen = 300
	maxMessageLen = 5000
)

// ErrInvalidInput marks a user-correctable form problem.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for contact messages.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Submit validates and stores a contact-form message. Messages persist even
// when no notification channel is configured.
func (s *Service) Submit(ctx context.Context, name, email, subject, body string) (Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)

	switch {
	case name == "" || len(name) > maxNameLen:
		return Message{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		return Message{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	case subject == "" || len(subject) > maxSubjectLen:
		return Message{}, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	case body == "" || len(body) > maxMessageLen:
		return Message{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	msg := Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}

	telemetry.Info("contact.message_received", map[string]any{
		"message_id": msg.ID,
		"subject":    msg.Subject,
	})
	return msg, nil
}

// List returns stored messages, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Message, error) {
	return s.Repo.List(ctx, limit, offset)
}

// MarkRead flags a message as handled.
func (s *Service) MarkRead(ctx context.Context, messageID string) error {
	if strings.TrimSpace(messageID) == "" {
		return fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}
	return s.Repo.MarkRead(ctx, messageID)
}
