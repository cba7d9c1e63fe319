package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type suitabilityRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewSuitabilityRepository(db *gorm.DB, clock Clock) SuitabilityRepository {
	return &suitabilityRepository{db: db, clock: clock}
}

// ListByOwner retorna as avaliações do usuário da mais antiga para a mais recente
func (r *suitabilityRepository) ListByOwner(ctx context.Context, userID int) ([]entities.Suitability, error) {
	return listByOwner[entities.Suitability](ctx, r.db, "suitability_id", userID)
}

func (r *suitabilityRepository) GetByID(ctx context.Context, id int) (entities.Suitability, bool, error) {
	return findByID[entities.Suitability](ctx, r.db, "suitability_id", id)
}

func (r *suitabilityRepository) Create(ctx context.Context, rec entities.Suitability) (entities.Suitability, error) {
	rec.EvaluationDate = r.clock.Today()
	err := insert(ctx, r.db, "suitability_id", &rec, func(v *entities.Suitability, id int) { v.SuitabilityID = id })
	return rec, err
}
