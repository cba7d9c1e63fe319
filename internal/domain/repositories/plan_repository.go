package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db}
}

// List retorna os planos ordenados pelo id
func (r *planRepository) List(ctx context.Context) ([]entities.Plan, error) {
	plans := []entities.Plan{}
	if err := r.db.WithContext(ctx).Order("plan_id asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) GetByID(ctx context.Context, id int) (entities.Plan, bool, error) {
	return findByID[entities.Plan](ctx, r.db, "plan_id", id)
}
