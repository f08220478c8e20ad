package family

const (
	familyColumns = `id, user_id, code, name, description, attributes, created_at, updated_at`

	SelectFamily = `
		SELECT ` + familyColumns + `
		FROM families
		WHERE id = $1 AND user_id = $2
	`
	// $2 is an ILIKE pattern on code or name, '' disables it.
	SelectFamilies = `
		SELECT ` + familyColumns + `
		FROM families
		WHERE user_id = $1 AND ($2 = '' OR code ILIKE $2 OR name ILIKE $2)
		ORDER BY code ASC, id ASC
		LIMIT $3 OFFSET $4
	`
	CountFamilies = `
		SELECT COUNT(*)
		FROM families
		WHERE user_id = $1 AND ($2 = '' OR code ILIKE $2 OR name ILIKE $2)
	`
	InsertFamily = `
		INSERT INTO families (user_id, code, name, description, attributes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + familyColumns + `
	`
	UpdateFamily = `
		UPDATE families
		SET code = $3, name = $4, description = $5, attributes = $6, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + familyColumns + `
	`
	DeleteFamily = `
		DELETE FROM families
		WHERE id = $1 AND user_id = $2
		RETURNING ` + familyColumns + `
	`
)
