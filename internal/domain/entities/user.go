package entities

// User representa um investidor cadastrado
type User struct {
	UserID      int    `json:"user_id" gorm:"primaryKey;column:user_id;autoIncrement:false"`
	Name        string `json:"name" gorm:"column:name"`
	Surname     string `json:"surname" gorm:"column:surname"`
	Email       string `json:"email" gorm:"column:email;uniqueIndex"`
	IncomeRange string `json:"income_range" gorm:"column:income_range"`
	SignOnDate  string `json:"sign_on_date" gorm:"column:sign_on_date"`
}

func (User) TableName() string { return "users" }

// FullName junta nome e sobrenome
func (u User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}
