package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

type (
	SupportTicket struct {
		UserID      uuid.UUID
		Subject     string
		Message     string
		Email       string
		Category    string
		Priority    string
		Attachments []*multipart.FileHeader
	}

	SupportService interface {
		SubmitTicket(ctx context.Context, t SupportTicket) (uuid.UUID, error)
	}
)
