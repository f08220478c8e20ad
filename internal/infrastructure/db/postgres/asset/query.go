package asset

import (
	"fmt"
	"strings"

	domain "pim-api/internal/domain/asset"
)

var sortColumns = map[domain.SortField]string{
	domain.SortByName:      "name",
	domain.SortByFileName:  "file_name",
	domain.SortBySize:      "size",
	domain.SortByCreatedAt: "created_at",
	domain.SortByUpdatedAt: "updated_at",
}

// buildWhere renders the WHERE clause for f with placeholders numbered from startArg.
// The owner predicate is always first.
func buildWhere(f domain.Filter, startArg int) (string, []any) {
	var (
		conditions []string
		args       []any
		argIdx     = startArg
	)

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, argIdx))
		args = append(args, arg)
		argIdx++
	}

	add("user_id = $%d", f.UserID)

	if f.AssetGroupID != nil {
		add("asset_group_id = $%d", *f.AssetGroupID)
	}
	if hasGroup := f.GroupPresence(); hasGroup != nil {
		if *hasGroup {
			conditions = append(conditions, "asset_group_id IS NOT NULL")
		} else {
			conditions = append(conditions, "asset_group_id IS NULL")
		}
	}
	if f.Search != nil && *f.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR file_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(*f.Search)+"%")
		argIdx++
	}
	if f.MimeType != nil && *f.MimeType != "" {
		add("mime_type ILIKE $%d", "%"+escapeLike(*f.MimeType)+"%")
	}
	if f.MinSize != nil {
		add("size >= $%d", *f.MinSize)
	}
	if f.MaxSize != nil {
		add("size <= $%d", *f.MaxSize)
	}
	if f.CreatedAfter != nil {
		add("created_at >= $%d", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		add("created_at <= $%d", *f.CreatedBefore)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func buildOrderBy(f domain.Filter) string {
	field, order := f.ResolveSort()

	col, ok := sortColumns[field]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if order == domain.SortDesc {
		dir = "DESC"
	}

	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

func buildLimit(f domain.Filter, startArg int) (string, []any) {
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", startArg, startArg+1), []any{f.Limit, f.Offset()}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
