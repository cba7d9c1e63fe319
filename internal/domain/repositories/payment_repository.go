package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewPaymentRepository(db *gorm.DB, clock Clock) PaymentRepository {
	return &paymentRepository{db: db, clock: clock}
}

func (r *paymentRepository) ListByOwner(ctx context.Context, userID int) ([]entities.Payment, error) {
	return listByOwner[entities.Payment](ctx, r.db, "payment_id", userID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int) (entities.Payment, bool, error) {
	return findByID[entities.Payment](ctx, r.db, "payment_id", id)
}

func (r *paymentRepository) Create(ctx context.Context, rec entities.Payment) (entities.Payment, error) {
	rec.PaymentDate = r.clock.Today()
	err := insert(ctx, r.db, "payment_id", &rec, func(v *entities.Payment, id int) { v.PaymentID = id })
	return rec, err
}
