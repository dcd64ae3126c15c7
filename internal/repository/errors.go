package repository

import "errors"

// Ошибки уровня pg; наружу из репозиториев не выходят, только в логи.
var (
	ErrAlreadyExists = errors.New("repository: already exists")
	ErrForeignKey    = errors.New("repository: foreign key violation")
	ErrCheck         = errors.New("repository: check violation")
)
