package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pim-api/internal/domain/page"
)

var ErrInvalidFilter = errors.New("invalid asset filter")

type (
	SortField    string
	SortOrder    string
	DateShortcut string
)

const (
	SortByName      SortField = "name"
	SortByFileName  SortField = "fileName"
	SortBySize      SortField = "size"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"

	DateLatest DateShortcut = "latest"
	DateOldest DateShortcut = "oldest"
)

var sortFields = map[SortField]struct{}{
	SortByName:      {},
	SortByFileName:  {},
	SortBySize:      {},
	SortByCreatedAt: {},
	SortByUpdatedAt: {},
}

// Filter is the full set of recognized listing options. Nil pointers and
// zero-valued enums mean "not requested".
type Filter struct {
	UserID uuid.UUID

	AssetGroupID  *uuid.UUID
	HasGroup      *bool
	Search        *string
	MimeType      *string
	MinSize       *int64
	MaxSize       *int64
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	SortBy       SortField
	SortOrder    SortOrder
	DateShortcut DateShortcut

	Page  int
	Limit int
}

func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return "", nil
	}
	f := SortField(s)
	if _, ok := sortFields[f]; !ok {
		return "", fmt.Errorf("%w: unsupported sortBy %q", ErrInvalidFilter, s)
	}
	return f, nil
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: unsupported sortOrder %q", ErrInvalidFilter, s)
}

func ParseDateShortcut(s string) (DateShortcut, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case string(DateLatest):
		return DateLatest, nil
	case string(DateOldest):
		return DateOldest, nil
	}
	return "", fmt.Errorf("%w: unsupported dateFilter %q", ErrInvalidFilter, s)
}

// WithDefaults fills paging defaults.
func (f Filter) WithDefaults() Filter {
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = page.DefaultLimit
	}
	return f
}

func (f Filter) Validate() error {
	if f.UserID == uuid.Nil {
		return fmt.Errorf("%w: owner is required", ErrInvalidFilter)
	}
	if f.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidFilter)
	}
	if f.Limit < 1 || f.Limit > page.MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidFilter, page.MaxLimit)
	}
	if f.MinSize != nil && *f.MinSize < 0 {
		return fmt.Errorf("%w: minSize must be >= 0", ErrInvalidFilter)
	}
	if f.MaxSize != nil && *f.MaxSize < 0 {
		return fmt.Errorf("%w: maxSize must be >= 0", ErrInvalidFilter)
	}
	if f.MinSize != nil && f.MaxSize != nil && *f.MinSize > *f.MaxSize {
		return fmt.Errorf("%w: minSize greater than maxSize", ErrInvalidFilter)
	}
	if f.CreatedAfter != nil && f.CreatedBefore != nil && f.CreatedAfter.After(*f.CreatedBefore) {
		return fmt.Errorf("%w: createdAfter is later than createdBefore", ErrInvalidFilter)
	}
	if _, err := ParseSortField(string(f.SortBy)); err != nil {
		return err
	}
	return nil
}

// GroupPresence returns the has-group constraint that actually applies:
// an explicit group id makes it redundant.
func (f Filter) GroupPresence() *bool {
	if f.AssetGroupID != nil {
		return nil
	}
	return f.HasGroup
}

// ResolveSort applies the precedence date shortcut > explicit field > newest first.
func (f Filter) ResolveSort() (SortField, SortOrder) {
	switch f.DateShortcut {
	case DateLatest:
		return SortByCreatedAt, SortDesc
	case DateOldest:
		return SortByCreatedAt, SortAsc
	}

	if f.SortBy != "" {
		if _, ok := sortFields[f.SortBy]; ok {
			order := f.SortOrder
			if order == "" {
				order = SortAsc
			}
			return f.SortBy, order
		}
	}

	return SortByCreatedAt, SortDesc
}

func (f Filter) Offset() int { return page.Offset(f.Page, f.Limit) }
