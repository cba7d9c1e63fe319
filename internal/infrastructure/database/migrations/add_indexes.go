package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes cria os índices usados pelas telas de histórico e pelo login
func AddIndexes(db *gorm.DB) error {
	indexes := []string{
		// Última avaliação do usuário
		"CREATE INDEX IF NOT EXISTS idx_suitability_user_date ON suitability (user_id, evaluation_date)",
		"CREATE INDEX IF NOT EXISTS idx_recommendations_user_date ON recommendations (user_id, request_date)",
		"CREATE INDEX IF NOT EXISTS idx_contracts_user_status ON contracts (user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_payments_user_date ON payments (user_id, payment_date)",
		"CREATE INDEX IF NOT EXISTS idx_cards_token ON cards (token)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}
