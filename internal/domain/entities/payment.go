package entities

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentStatusApproved   = "approved"
)

type Payment struct {
	PaymentID     int     `json:"payment_id" gorm:"primaryKey;column:payment_id;autoIncrement:false"`
	UserID        int     `json:"user_id" gorm:"column:user_id;index"`
	PlanID        int     `json:"plan_id" gorm:"column:plan_id"`
	Amount        float64 `json:"amount" gorm:"column:amount"`
	PaymentMethod string  `json:"payment_method" gorm:"column:payment_method"`
	Status        string  `json:"status" gorm:"column:status"`
	PaymentDate   string  `json:"payment_date" gorm:"column:payment_date"`
}

func (Payment) TableName() string { return "payments" }
