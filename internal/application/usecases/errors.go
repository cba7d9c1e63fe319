package usecases

import (
	"errors"

	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoSuitability = errors.New("user has no suitability evaluation")
	// ErrNotFound cobre também registros de outro usuário
	ErrNotFound   = repositories.ErrNotFound
	ErrEmailTaken = repositories.ErrEmailTaken
)
