package family

import (
	"time"

	"github.com/google/uuid"
)

type (
	Family struct {
		ID     uuid.UUID
		UserID uuid.UUID

		Code        string
		Name        string
		Description string
		Attributes  []string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Families []*Family
)

func (f *Family) scanTargets() []any {
	return []any{
		&f.ID,
		&f.UserID,

		&f.Code,
		&f.Name,
		&f.Description,
		&f.Attributes,

		&f.CreatedAt,
		&f.UpdatedAt,
	}
}
