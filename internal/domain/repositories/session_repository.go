package repositories

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewSessionRepository(db *gorm.DB, clock Clock) SessionRepository {
	return &sessionRepository{db: db, clock: clock}
}

func (r *sessionRepository) ListByOwner(ctx context.Context, userID int) ([]entities.Session, error) {
	return listByOwner[entities.Session](ctx, r.db, "session_id", userID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id int) (entities.Session, bool, error) {
	return findByID[entities.Session](ctx, r.db, "session_id", id)
}

// Create grava a conversa compilada e carimba session_date
func (r *sessionRepository) Create(ctx context.Context, rec entities.Session) (entities.Session, error) {
	rec.SessionDate = r.clock.Today()
	err := insert(ctx, r.db, "session_id", &rec, func(v *entities.Session, id int) { v.SessionID = id })
	return rec, err
}
