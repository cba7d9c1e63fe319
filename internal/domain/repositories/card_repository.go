package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type cardRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewCardRepository(db *gorm.DB, clock Clock) CardRepository {
	return &cardRepository{db: db, clock: clock}
}

func (r *cardRepository) ListByOwner(ctx context.Context, userID int) ([]entities.Card, error) {
	return listByOwner[entities.Card](ctx, r.db, "card_id", userID)
}

func (r *cardRepository) GetByID(ctx context.Context, id int) (entities.Card, bool, error) {
	return findByID[entities.Card](ctx, r.db, "card_id", id)
}

func (r *cardRepository) Create(ctx context.Context, rec entities.Card) (entities.Card, error) {
	rec.AddedDate = r.clock.Today()
	err := insert(ctx, r.db, "card_id", &rec, func(v *entities.Card, id int) { v.CardID = id })
	return rec, err
}

func (r *cardRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("card_id = ?", id).Delete(&entities.Card{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
