package domain

type MessageID int64

// MaxMessageTextLen - предел длины текста в символах.
const MaxMessageTextLen = 255

type Message struct {
	ID              MessageID `json:"id" db:"message_id"`
	PostedBy        AccountID `json:"posted_by" db:"posted_by"`
	MessageText     string    `json:"message_text" db:"message_text"`
	TimePostedEpoch int64     `json:"time_posted_epoch" db:"time_posted_epoch"`
}
