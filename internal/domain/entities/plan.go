package entities

// Plan é um plano de assinatura disponível para compra
type Plan struct {
	PlanID       int      `json:"plan_id" gorm:"primaryKey;column:plan_id;autoIncrement:false"`
	PlanName     string   `json:"plan_name" gorm:"column:plan_name"`
	Description  string   `json:"description" gorm:"column:description"`
	Price        float64  `json:"price" gorm:"column:price"`
	Features     []string `json:"features" gorm:"column:features;serializer:json"`
	DurationDays int      `json:"duration_days" gorm:"column:duration_days"`
}

func (Plan) TableName() string { return "plans" }
