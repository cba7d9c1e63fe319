package migrations

import (
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"

	"gorm.io/gorm"
)

// Models lista todas as tabelas gerenciadas pela API
var Models = []interface{}{
	&entities.User{},
	&entities.Suitability{},
	&entities.Session{},
	&entities.Recommendation{},
	&entities.Plan{},
	&entities.Contract{},
	&entities.Payment{},
	&entities.Card{},
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}
