package asset

const (
	assetColumns = `id, user_id, name, file_name, storage_key, mime_type, size, asset_group_id, created_at, updated_at`

	SelectAsset = `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE id = $1 AND user_id = $2
	`
	// SelectAssets and CountAssets are completed by buildWhere / buildOrderBy.
	SelectAssets = `
		SELECT ` + assetColumns + `
		FROM assets
	`
	CountAssets = `
		SELECT COUNT(*)
		FROM assets
	`
	InsertAsset = `
		INSERT INTO assets (user_id, name, file_name, storage_key, mime_type, size, asset_group_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + assetColumns + `
	`
	UpdateAsset = `
		UPDATE assets
		SET name = $3, asset_group_id = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + assetColumns + `
	`
	DeleteAsset = `
		DELETE FROM assets
		WHERE id = $1 AND user_id = $2
		RETURNING ` + assetColumns + `
	`
)
