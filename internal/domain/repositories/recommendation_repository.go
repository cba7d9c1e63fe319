package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type recommendationRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewRecommendationRepository(db *gorm.DB, clock Clock) RecommendationRepository {
	return &recommendationRepository{db: db, clock: clock}
}

func (r *recommendationRepository) ListByOwner(ctx context.Context, userID int) ([]entities.Recommendation, error) {
	return listByOwner[entities.Recommendation](ctx, r.db, "recommendation_id", userID)
}

func (r *recommendationRepository) GetByID(ctx context.Context, id int) (entities.Recommendation, bool, error) {
	return findByID[entities.Recommendation](ctx, r.db, "recommendation_id", id)
}

func (r *recommendationRepository) Create(ctx context.Context, rec entities.Recommendation) (entities.Recommendation, error) {
	rec.RequestDate = r.clock.Today()
	err := insert(ctx, r.db, "recommendation_id", &rec, func(v *entities.Recommendation, id int) { v.RecommendationID = id })
	return rec, err
}
