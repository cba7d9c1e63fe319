package entities

// Suitability é o resultado de um questionário de perfil de investidor.
// Cada nova avaliação gera um novo registro; nunca é atualizado.
type Suitability struct {
	SuitabilityID  int    `json:"suitability_id" gorm:"primaryKey;column:suitability_id;autoIncrement:false"`
	UserID         int    `json:"user_id" gorm:"column:user_id;index"`
	Score          int    `json:"score" gorm:"column:score"`
	Profile        string `json:"profile" gorm:"column:profile"`
	AnswersJSON    string `json:"answers_json" gorm:"column:answers_json;type:text"`
	EvaluationDate string `json:"evaluation_date" gorm:"column:evaluation_date"`
}

func (Suitability) TableName() string { return "suitability" }
