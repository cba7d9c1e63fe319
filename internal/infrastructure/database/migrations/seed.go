package migrations

import (
	"fmt"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/seed"
	"gorm.io/gorm"
)

// Seed grava o dataset inicial se a tabela de usuários estiver vazia.
// Um banco já populado nunca é sobrescrito.
func Seed(db *gorm.DB, ds seed.Dataset) error {
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		batches := []struct {
			name string
			rows interface{}
			size int
		}{
			{"users", &ds.Users, len(ds.Users)},
			{"suitability", &ds.Suitability, len(ds.Suitability)},
			{"sessions", &ds.Sessions, len(ds.Sessions)},
			{"recommendations", &ds.Recommendations, len(ds.Recommendations)},
			{"plans", &ds.Plans, len(ds.Plans)},
			{"contracts", &ds.Contracts, len(ds.Contracts)},
			{"payments", &ds.Payments, len(ds.Payments)},
			{"cards", &ds.Cards, len(ds.Cards)},
		}
		for _, b := range batches {
			if b.size == 0 {
				continue
			}
			if err := tx.Create(b.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", b.name, err)
			}
		}
		return nil
	})
}
