package ports

import (
	"context"

	"pim-api/internal/infrastructure/mail"
)

type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}
