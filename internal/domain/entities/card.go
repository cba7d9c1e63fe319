package entities

// Card é um cartão salvo. Nunca guarda o número real nem o CVV.
type Card struct {
	CardID         int    `json:"card_id" gorm:"primaryKey;column:card_id;autoIncrement:false"`
	UserID         int    `json:"user_id" gorm:"column:user_id;index"`
	MaskedNumber   string `json:"masked_number" gorm:"column:masked_number"`
	Token          string `json:"token" gorm:"column:token"`
	Brand          string `json:"brand" gorm:"column:brand"`
	ExpirationDate string `json:"expiration_date" gorm:"column:expiration_date"`
	AddedDate      string `json:"added_date" gorm:"column:added_date"`
}

func (Card) TableName() string { return "cards" }
