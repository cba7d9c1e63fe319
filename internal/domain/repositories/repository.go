package repositories

import (
	"context"
	"errors"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserRepository acessa os usuários cadastrados
type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id int) (entities.User, bool, error)
	GetByEmail(ctx context.Context, email string) (entities.User, bool, error)
	// Authenticate procura o usuário pelo email exato. A senha não é verificada.
	Authenticate(ctx context.Context, email, password string) (entities.User, error)
	// Create verifica o email e grava numa única operação; ErrEmailTaken se já existir
	Create(ctx context.Context, user entities.User) (entities.User, error)
}

type SuitabilityRepository interface {
	ListByOwner(ctx context.Context, userID int) ([]entities.Suitability, error)
	GetByID(ctx context.Context, id int) (entities.Suitability, bool, error)
	Create(ctx context.Context, s entities.Suitability) (entities.Suitability, error)
}

type SessionRepository interface {
	ListByOwner(ctx context.Context, userID int) ([]entities.Session, error)
	GetByID(ctx context.Context, id int) (entities.Session, bool, error)
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
}

type RecommendationRepository interface {
	ListByOwner(ctx context.Context, userID int) ([]entities.Recommendation, error)
	GetByID(ctx context.Context, id int) (entities.Recommendation, bool, error)
	Create(ctx context.Context, r entities.Recommendation) (entities.Recommendation, error)
}

// PlanRepository é somente leitura: os planos vêm do seed
type PlanRepository interface {
	List(ctx context.Context) ([]entities.Plan, error)
	GetByID(ctx context.Context, id int) (entities.Plan, bool, error)
}

type ContractRepository interface {
	ListByOwner(ctx context.Context, userID int) ([]entities.Contract, error)
	GetByID(ctx context.Context, id int) (entities.Contract, bool, error)
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
}

type PaymentRepository interface {
	ListByOwner(ctx context.Context, userID int) ([]entities.Payment, error)
	GetByID(ctx context.Context, id int) (entities.Payment, bool, error)
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
}

type CardRepository interface {
	ListByOwner(ctx context.Context, userID int) ([]entities.Card, error)
	GetByID(ctx context.Context, id int) (entities.Card, bool, error)
	Create(ctx context.Context, c entities.Card) (entities.Card, error)
	// Delete remove o cartão; ErrNotFound se o id não existir
	Delete(ctx context.Context, id int) error
}

// Registry agrupa os repositórios de um mesmo backend
type Registry struct {
	Users           UserRepository
	Suitability     SuitabilityRepository
	Sessions        SessionRepository
	Recommendations RecommendationRepository
	Plans           PlanRepository
	Contracts       ContractRepository
	Payments        PaymentRepository
	Cards           CardRepository
}
