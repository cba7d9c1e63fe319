package database

import (
	"context"

	"gorm.io/gorm"
)

// Chave para o contexto que indica se o timezone já foi configurado
type timezoneKey struct{}

// SetTimezoneMiddleware cria um callback GORM que fixa o timezone de São Paulo,
// para que CURRENT_DATE e afins batam com as datas carimbadas pela API
func SetTimezoneMiddleware() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return // Evita recursão infinita
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)
		tx := db.Session(&gorm.Session{NewDB: true}).WithContext(ctx)
		tx.Exec("SET timezone = 'America/Sao_Paulo'")
	}
}

// RegisterMiddlewares registra os callbacks no GORM (somente Postgres)
func RegisterMiddlewares(db *gorm.DB) {
	db.Callback().Create().Before("gorm:create").Register("set_timezone_before_create", SetTimezoneMiddleware())
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware())
}
