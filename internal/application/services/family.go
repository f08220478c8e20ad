package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"pim-api/internal/application/ports"
	domain "pim-api/internal/domain/family"
	"pim-api/internal/domain/notification"
	"pim-api/internal/domain/page"
	"pim-api/internal/infrastructure/mq"
)

var codeRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{0,99}$`)

type FamilyService struct {
	familyRepository domain.Repository
	mq               ports.EventPublisher
	mCounter         *prometheus.CounterVec
}

func NewFamilyService(
	familyRepository domain.Repository,
	mq ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) ports.FamilyService {
	return &FamilyService{
		familyRepository: familyRepository,
		mq:               mq,
		mCounter:         mCounter,
	}
}

func (fs *FamilyService) CreateFamily(ctx context.Context, f domain.Family) (*domain.Family, error) {
	if err := normalizeFamily(&f); err != nil {
		return nil, err
	}

	out, err := fs.familyRepository.CreateFamily(ctx, &f)
	if err != nil {
		return nil, conflictOr(err)
	}

	fs.publish(out, notification.ActionCreated)
	fs.mCounter.WithLabelValues("families_created_total").Inc()

	return out, nil
}

func (fs *FamilyService) FindFamily(ctx context.Context, userID, id uuid.UUID) (*domain.Family, error) {
	f, err := fs.familyRepository.FetchFamily(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: family %s", ErrNotFound, id)
	}

	return f, nil
}

func (fs *FamilyService) FindFamilies(ctx context.Context, userID uuid.UUID, search string, pg, limit int) (domain.Families, page.Meta, error) {
	items, total, err := fs.familyRepository.FetchFamilies(ctx, userID, search, pg, limit)
	if err != nil {
		return nil, page.Meta{}, err
	}
	if items == nil {
		items = domain.Families{}
	}

	return items, page.NewMeta(pg, limit, total), nil
}

func (fs *FamilyService) UpdateFamily(ctx context.Context, userID, id uuid.UUID, p domain.Patch) (*domain.Family, error) {
	current, err := fs.FindFamily(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if p.Code != nil {
		next.Code = *p.Code
	}
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Attributes != nil {
		next.Attributes = *p.Attributes
	}
	if err = normalizeFamily(&next); err != nil {
		return nil, err
	}

	out, err := fs.familyRepository.UpdateFamily(ctx, &next)
	if err != nil {
		return nil, conflictOr(err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: family %s", ErrNotFound, id)
	}

	fs.publish(out, notification.ActionUpdated)

	return out, nil
}

func (fs *FamilyService) DeleteFamily(ctx context.Context, userID, id uuid.UUID) error {
	f, err := fs.familyRepository.DeleteFamily(ctx, userID, id)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: family %s", ErrNotFound, id)
	}

	fs.publish(f, notification.ActionDeleted)

	return nil
}

func (fs *FamilyService) publish(f *domain.Family, action notification.Action) {
	id, name := f.ID, f.Name
	fs.mq.Publish(mq.NewEvent(notification.Entry{
		UserID:     f.UserID,
		EntityType: notification.EntityFamily,
		EntityID:   &id,
		Action:     action,
		EntityName: &name,
		Metadata:   map[string]any{"code": f.Code},
	}))
}

// normalizeFamily lowercases the code and de-duplicates attribute codes, keeping their order.
func normalizeFamily(f *domain.Family) error {
	if f.UserID == uuid.Nil {
		return fmt.Errorf("%w: authenticated user is required", ErrValidation)
	}

	f.Code = strings.ToLower(strings.TrimSpace(f.Code))
	if !codeRe.MatchString(f.Code) {
		return fmt.Errorf("%w: code must match %s", ErrValidation, codeRe.String())
	}

	name, err := requireName(f.Name)
	if err != nil {
		return err
	}
	f.Name = name
	f.Description = strings.TrimSpace(f.Description)
	if len(f.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description is too long", ErrValidation)
	}

	seen := make(map[string]struct{}, len(f.Attributes))
	attrs := make([]string, 0, len(f.Attributes))
	for _, a := range f.Attributes {
		a = strings.ToLower(strings.TrimSpace(a))
		if !codeRe.MatchString(a) {
			return fmt.Errorf("%w: attribute code %q is invalid", ErrValidation, a)
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		attrs = append(attrs, a)
	}
	f.Attributes = attrs

	return nil
}

func conflictOr(err error) error {
	if errors.Is(err, domain.ErrCodeExists) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
