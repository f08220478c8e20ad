package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/infrastructure/mail"
)

func validTicket(t *testing.T) ports.SupportTicket {
	return ports.SupportTicket{
		UserID:   uuid.New(),
		Subject:  " Upload fails ",
		Message:  "steps to reproduce",
		Email:    "jane@example.com",
		Category: "Bug",
		Attachments: []*multipart.FileHeader{
			newFileHeader(t, "attachments", "screen.png", "image/png", []byte("png")),
		},
	}
}

func TestSubmitTicket(t *testing.T) {
	mailer := &FakeMailer{}
	pub := &fakePublisher{}
	svc := NewSupportService(mailer, pub, zap.NewNop(), newCounter())

	ref, err := svc.SubmitTicket(context.Background(), validTicket(t))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ref)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "[bug][normal] Upload fails", msg.Subject)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Equal(t, ref.String(), msg.Headers["X-Ticket-Id"])
	assert.Contains(t, msg.Body, "steps to reproduce")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, mail.Attachment{Name: "screen.png", ContentType: "image/png", Data: []byte("png")}, msg.Attachments[0])

	ev := pub.last()
	assert.Equal(t, "support_ticket", ev.EntityType)
	assert.Equal(t, "submitted", ev.Action)
	assert.Equal(t, ref, *ev.EntityID)
}

func TestSubmitTicket_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, tk *ports.SupportTicket)
	}{
		{"no user", func(_ *testing.T, tk *ports.SupportTicket) { tk.UserID = uuid.Nil }},
		{"no subject", func(_ *testing.T, tk *ports.SupportTicket) { tk.Subject = " " }},
		{"unknown category", func(_ *testing.T, tk *ports.SupportTicket) { tk.Category = "rant" }},
		{"unknown priority", func(_ *testing.T, tk *ports.SupportTicket) { tk.Priority = "asap" }},
		{"too many attachments", func(t *testing.T, tk *ports.SupportTicket) {
			for i := 0; i < MaxTicketAttachments; i++ {
				tk.Attachments = append(tk.Attachments, newFileHeader(t, "attachments", "a.txt", "text/plain", []byte("a")))
			}
		}},
		{"attachment too large", func(t *testing.T, tk *ports.SupportTicket) {
			tk.Attachments = []*multipart.FileHeader{
				newFileHeader(t, "attachments", "big.bin", "", []byte(strings.Repeat("x", MaxTicketAttachmentSize+1))),
			}
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mailer := &FakeMailer{}
			svc := NewSupportService(mailer, &fakePublisher{}, zap.NewNop(), newCounter())

			tk := validTicket(t)
			tt.mutate(t, &tk)

			_, err := svc.SubmitTicket(context.Background(), tk)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestSubmitTicket_MailFailure(t *testing.T) {
	mailer := &FakeMailer{SendFunc: func(context.Context, mail.Message) error { return errors.New("smtp down") }}
	pub := &fakePublisher{}
	svc := NewSupportService(mailer, pub, zap.NewNop(), newCounter())

	ref, err := svc.SubmitTicket(context.Background(), validTicket(t))

	assert.ErrorIs(t, err, ErrMail)
	assert.Equal(t, uuid.Nil, ref)
	assert.Empty(t, pub.events)
}
