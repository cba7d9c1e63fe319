package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NewRegistry monta todos os repositórios sobre uma conexão GORM
func NewRegistry(db *gorm.DB, clock Clock) Registry {
	return Registry{
		Users:           NewUserRepository(db, clock),
		Suitability:     NewSuitabilityRepository(db, clock),
		Sessions:        NewSessionRepository(db, clock),
		Recommendations: NewRecommendationRepository(db, clock),
		Plans:           NewPlanRepository(db),
		Contracts:       NewContractRepository(db, clock),
		Payments:        NewPaymentRepository(db, clock),
		Cards:           NewCardRepository(db, clock),
	}
}

func listByOwner[T any](ctx context.Context, db *gorm.DB, pk string, userID int) ([]T, error) {
	out := []T{}
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order(pk + " asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, pk string, id int) (T, bool, error) {
	var rec T
	err := db.WithContext(ctx).Where(pk+" = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, false, nil
	}
	if err != nil {
		return rec, false, err
	}
	return rec, true, nil
}

// insertAttempts limita as novas tentativas quando duas transações leem o mesmo MAX(pk)
const insertAttempts = 5

// insert atribui MAX(pk)+1 e grava o registro na mesma transação
func insert[T any](ctx context.Context, db *gorm.DB, pk string, rec *T, assign func(*T, int)) error {
	return insertChecked(ctx, db, pk, rec, assign, nil)
}

// insertChecked roda check dentro da transação antes de gravar. Em READ COMMITTED
// duas transações concorrentes podem calcular o mesmo id; a que perde recebe
// gorm.ErrDuplicatedKey e a transação inteira é repetida, check incluso.
func insertChecked[T any](ctx context.Context, db *gorm.DB, pk string, rec *T, assign func(*T, int), check func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < insertAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if check != nil {
				if err := check(tx); err != nil {
					return err
				}
			}
			var maxID int
			if err := tx.Model(new(T)).Select(fmt.Sprintf("COALESCE(MAX(%s), 0)", pk)).Scan(&maxID).Error; err != nil {
				return fmt.Errorf("next id: %w", err)
			}
			assign(rec, maxID+1)
			return tx.Create(rec).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
