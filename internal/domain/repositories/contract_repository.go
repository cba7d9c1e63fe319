package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type contractRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewContractRepository(db *gorm.DB, clock Clock) ContractRepository {
	return &contractRepository{db: db, clock: clock}
}

func (r *contractRepository) ListByOwner(ctx context.Context, userID int) ([]entities.Contract, error) {
	return listByOwner[entities.Contract](ctx, r.db, "contract_id", userID)
}

func (r *contractRepository) GetByID(ctx context.Context, id int) (entities.Contract, bool, error) {
	return findByID[entities.Contract](ctx, r.db, "contract_id", id)
}

func (r *contractRepository) Create(ctx context.Context, rec entities.Contract) (entities.Contract, error) {
	rec.ContractDate = r.clock.Today()
	err := insert(ctx, r.db, "contract_id", &rec, func(v *entities.Contract, id int) { v.ContractID = id })
	return rec, err
}
