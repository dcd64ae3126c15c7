package queries

const (
	QueryCreateMessage = `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id;
	`

	QueryGetMessageByID = `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE message_id = $1;
	`

	QueryListMessagesByAuthor = `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE posted_by = $1
		ORDER BY message_id;
	`

	QueryListMessages = `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		ORDER BY message_id;
	`

	QueryUpdateMessageText = `
		UPDATE message
		SET message_text = $2, time_posted_epoch = $3
		WHERE message_id = $1;
	`

	QueryDeleteMessageByID = `DELETE FROM message WHERE message_id = $1;`
)
