package entities

const ContractStatusActive = "active"

type Contract struct {
	ContractID   int    `json:"contract_id" gorm:"primaryKey;column:contract_id;autoIncrement:false"`
	UserID       int    `json:"user_id" gorm:"column:user_id;index"`
	PlanID       int    `json:"plan_id" gorm:"column:plan_id"`
	Status       string `json:"status" gorm:"column:status"`
	ContractDate string `json:"contract_date" gorm:"column:contract_date"`
	ExpiresAt    string `json:"expires_at" gorm:"column:expires_at"`
}

func (Contract) TableName() string { return "contracts" }
