package ports

import (
	"context"

	"github.com/google/uuid"

	"pim-api/internal/domain/family"
	"pim-api/internal/domain/page"
)

type FamilyService interface {
	CreateFamily(ctx context.Context, f family.Family) (*family.Family, error)
	FindFamily(ctx context.Context, userID, id uuid.UUID) (*family.Family, error)
	FindFamilies(ctx context.Context, userID uuid.UUID, search string, pg, limit int) (family.Families, page.Meta, error)
	UpdateFamily(ctx context.Context, userID, id uuid.UUID, p family.Patch) (*family.Family, error)
	DeleteFamily(ctx context.Context, userID, id uuid.UUID) error
}
