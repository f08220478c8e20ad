package validator

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pim-api/internal/domain/asset"
)

const dateOnly = "2006-01-02"

// AssetFilter parses the GET /assets query. Cross-field rules (min <= max,
// after <= before) are left to asset.Filter.Validate.
func AssetFilter(userID uuid.UUID, q url.Values) (asset.Filter, map[string]string) {
	errs := make(map[string]string)
	f := asset.Filter{UserID: userID}

	var err error
	if f.Page, err = ValidatePage(q.Get("page")); err != nil {
		errs["page"] = err.Error()
	}
	if f.Limit, err = ValidateLimit(q.Get("limit")); err != nil {
		errs["limit"] = err.Error()
	}

	if v := strings.TrimSpace(q.Get("groupId")); v != "" {
		if ok, id := IsUUID(v); ok {
			f.AssetGroupID = &id
		} else {
			errs["groupId"] = "must be a valid UUID"
		}
	}
	if v := strings.TrimSpace(q.Get("hasGroup")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.HasGroup = &b
		} else {
			errs["hasGroup"] = "must be true or false"
		}
	}

	if v := strings.TrimSpace(q.Get("search")); v != "" {
		f.Search = &v
	}
	if v := strings.TrimSpace(q.Get("mimeType")); v != "" {
		f.MimeType = &v
	}

	f.MinSize = parseSize(q.Get("minSize"), "minSize", errs)
	f.MaxSize = parseSize(q.Get("maxSize"), "maxSize", errs)
	f.CreatedAfter = parseDate(q.Get("createdAfter"), "createdAfter", false, errs)
	f.CreatedBefore = parseDate(q.Get("createdBefore"), "createdBefore", true, errs)

	if f.SortBy, err = asset.ParseSortField(q.Get("sortBy")); err != nil {
		errs["sortBy"] = "must be one of: name, fileName, size, createdAt, updatedAt"
	}
	if f.SortOrder, err = asset.ParseSortOrder(q.Get("sortOrder")); err != nil {
		errs["sortOrder"] = "must be asc or desc"
	}
	if f.DateShortcut, err = asset.ParseDateShortcut(q.Get("dateFilter")); err != nil {
		errs["dateFilter"] = "must be latest or oldest"
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

func parseSize(v, field string, errs map[string]string) *int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		errs[field] = "must be a non-negative integer"
		return nil
	}
	return &n
}

// parseDate accepts RFC 3339 or YYYY-MM-DD. A bare date used as an upper
// bound covers the whole day.
func parseDate(v, field string, upper bool, errs map[string]string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	t, err := time.Parse(dateOnly, v)
	if err != nil {
		errs[field] = "must be an RFC 3339 timestamp or YYYY-MM-DD"
		return nil
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}
