package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/domain/notification"
	"pim-api/internal/infrastructure/mail"
	"pim-api/internal/infrastructure/mq"
)

const (
	MaxTicketAttachments    = 5
	MaxTicketAttachmentSize = 10 << 20

	DefaultTicketPriority = "normal"
)

var (
	TicketCategories = []string{"bug", "question", "feature", "billing", "other"}
	TicketPriorities = []string{"low", "normal", "high", "urgent"}
)

type SupportService struct {
	mailer   ports.Mailer
	mq       ports.EventPublisher
	logger   *zap.Logger
	mCounter *prometheus.CounterVec
}

func NewSupportService(
	mailer ports.Mailer,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.SupportService {
	return &SupportService{
		mailer:   mailer,
		mq:       mq,
		logger:   logger,
		mCounter: mCounter,
	}
}

// SubmitTicket forwards the ticket to the support mailbox and returns its reference.
func (ss *SupportService) SubmitTicket(ctx context.Context, t ports.SupportTicket) (uuid.UUID, error) {
	if err := normalizeTicket(&t); err != nil {
		return uuid.Nil, err
	}

	attachments, err := readAttachments(t.Attachments)
	if err != nil {
		return uuid.Nil, err
	}

	ref := uuid.New()
	err = ss.mailer.Send(ctx, mail.Message{
		ReplyTo:     t.Email,
		Subject:     fmt.Sprintf("[%s][%s] %s", t.Category, t.Priority, t.Subject),
		Body:        renderTicket(ref, t, time.Now().UTC()),
		Headers:     map[string]string{"X-Ticket-Id": ref.String()},
		Attachments: attachments,
	})
	if err != nil {
		ss.mCounter.WithLabelValues("support_tickets_failed_total").Inc()
		return uuid.Nil, fmt.Errorf("%w: %w", ErrMail, err)
	}

	subject := t.Subject
	ss.mq.Publish(mq.NewEvent(notification.Entry{
		UserID:     t.UserID,
		EntityType: notification.EntitySupportTicket,
		EntityID:   &ref,
		Action:     notification.ActionSubmitted,
		EntityName: &subject,
		Metadata: map[string]any{
			"category":    t.Category,
			"priority":    t.Priority,
			"attachments": len(attachments),
		},
	}))
	ss.mCounter.WithLabelValues("support_tickets_submitted_total").Inc()
	ss.logger.Info("support ticket submitted", zap.String("ticket_id", ref.String()), zap.String("category", t.Category))

	return ref, nil
}

func normalizeTicket(t *ports.SupportTicket) error {
	if t.UserID == uuid.Nil {
		return fmt.Errorf("%w: authenticated user is required", ErrValidation)
	}

	t.Subject = strings.TrimSpace(t.Subject)
	t.Message = strings.TrimSpace(t.Message)
	t.Email = strings.TrimSpace(t.Email)
	t.Category = strings.ToLower(strings.TrimSpace(t.Category))
	t.Priority = strings.ToLower(strings.TrimSpace(t.Priority))
	if t.Priority == "" {
		t.Priority = DefaultTicketPriority
	}

	switch {
	case t.Subject == "":
		return fmt.Errorf("%w: subject is required", ErrValidation)
	case t.Message == "":
		return fmt.Errorf("%w: message is required", ErrValidation)
	case t.Email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case !slices.Contains(TicketCategories, t.Category):
		return fmt.Errorf("%w: category must be one of %s", ErrValidation, strings.Join(TicketCategories, ", "))
	case !slices.Contains(TicketPriorities, t.Priority):
		return fmt.Errorf("%w: priority must be one of %s", ErrValidation, strings.Join(TicketPriorities, ", "))
	case len(t.Attachments) > MaxTicketAttachments:
		return fmt.Errorf("%w: at most %d attachments are allowed", ErrValidation, MaxTicketAttachments)
	}

	return nil
}

func readAttachments(files []*multipart.FileHeader) ([]mail.Attachment, error) {
	out := make([]mail.Attachment, 0, len(files))
	for _, fh := range files {
		if fh.Size > MaxTicketAttachmentSize {
			return nil, fmt.Errorf("%w: attachment %q exceeds %d bytes", ErrValidation, fh.Filename, MaxTicketAttachmentSize)
		}

		data, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		if len(data) > MaxTicketAttachmentSize {
			return nil, fmt.Errorf("%w: attachment %q exceeds %d bytes", ErrValidation, fh.Filename, MaxTicketAttachmentSize)
		}

		name := displayName(fh.Filename)
		out = append(out, mail.Attachment{
			Name:        name,
			ContentType: contentType(fh.Header.Get("Content-Type"), name),
			Data:        data,
		})
	}

	return out, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, MaxTicketAttachmentSize+1))
}

func renderTicket(ref uuid.UUID, t ports.SupportTicket, at time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket:   %s\n", ref)
	fmt.Fprintf(&b, "User:     %s\n", t.UserID)
	fmt.Fprintf(&b, "Email:    %s\n", t.Email)
	fmt.Fprintf(&b, "Category: %s\n", t.Category)
	fmt.Fprintf(&b, "Priority: %s\n", t.Priority)
	fmt.Fprintf(&b, "Received: %s\n\n", at.Format(time.RFC3339))
	b.WriteString(t.Message)
	b.WriteString("\n")
	return b.String()
}
