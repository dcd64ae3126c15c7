package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrStorage            = errors.New("storage failure")
)

// CodePasswordTooShort уходит клиенту в поле errorCode.
const CodePasswordTooShort = 1

// ToHTTP отдает статус по умолчанию для ошибки. Ручки, у которых
// отсутствие сообщения означает что-то другое, решают это сами.
func ToHTTP(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrAccountNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code возвращает прикладной код ошибки или 0.
func Code(err error) int {
	if errors.Is(err, ErrPasswordTooShort) {
		return CodePasswordTooShort
	}
	return 0
}
