package http

// CredentialsRequest - тело /login. Пустая строка - нарушение, пробелы - нет.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest добавляет к учетным данным правило длины пароля.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Порядок тегов задает порядок проверок: сначала длина, потом пустота.
type PostMessageRequest struct {
	PostedBy        int64  `json:"posted_by"`
	MessageText     string `json:"message_text" validate:"max=255,required"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

type UpdateMessageRequest struct {
	MessageText     string `json:"message_text" validate:"required,max=255"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
