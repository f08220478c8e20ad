package notification

const (
	notificationColumns = `id, user_id, entity_type, entity_id, action, entity_name, message, metadata, created_at`

	InsertNotification = `
		INSERT INTO notifications (user_id, entity_type, entity_id, action, entity_name, message, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + notificationColumns + `
	`
	SelectNotifications = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	CountNotifications = `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1
	`
	DeleteNotificationsBefore = `
		DELETE FROM notifications
		WHERE created_at < $1
	`
)
