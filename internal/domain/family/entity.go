package family

import (
	"context"
	"errors"
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

	Patch struct {
		Code        *string
		Name        *string
		Description *string
		Attributes  *[]string
	}
)

var ErrCodeExists = errors.New("family code already exists")

// Repository methods return (nil, nil) when the row does not exist or is owned by another user.
// Create and Update return ErrCodeExists when the code is taken by another family of the same user.
type Repository interface {
	FetchFamily(ctx context.Context, userID, id uuid.UUID) (*Family, error)
	FetchFamilies(ctx context.Context, userID uuid.UUID, search string, page, limit int) (Families, int64, error)
	CreateFamily(ctx context.Context, req *Family) (*Family, error)
	UpdateFamily(ctx context.Context, req *Family) (*Family, error)
	DeleteFamily(ctx context.Context, userID, id uuid.UUID) (*Family, error)
}
