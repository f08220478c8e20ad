package asset_group

const (
	groupColumns = `id, user_id, name, description, total_size, created_at, updated_at`

	SelectAssetGroup = `
		SELECT ` + groupColumns + `
		FROM asset_groups
		WHERE id = $1 AND user_id = $2
	`
	SelectAssetGroups = `
		SELECT ` + groupColumns + `
		FROM asset_groups
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	CountAssetGroups = `
		SELECT COUNT(*)
		FROM asset_groups
		WHERE user_id = $1
	`
	InsertAssetGroup = `
		INSERT INTO asset_groups (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + groupColumns + `
	`
	UpdateAssetGroup = `
		UPDATE asset_groups
		SET name = $3, description = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + groupColumns + `
	`
	DeleteAssetGroup = `
		DELETE FROM asset_groups
		WHERE id = $1 AND user_id = $2
		RETURNING ` + groupColumns + `
	`
	// RecomputeTotalSize reads the whole member set, so concurrent runs converge.
	RecomputeTotalSize = `
		UPDATE asset_groups
		SET total_size = (SELECT COALESCE(SUM(size), 0) FROM assets WHERE asset_group_id = $1),
		    updated_at = now()
		WHERE id = $1
		RETURNING total_size
	`
	SelectGroupIDsByUser = `
		SELECT id FROM asset_groups WHERE user_id = $1
	`
	SelectAllGroupIDs = `
		SELECT id FROM asset_groups
	`
)
