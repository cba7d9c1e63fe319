package entities

// Session guarda as falas do usuário de uma conversa encerrada com o assessor
type Session struct {
	SessionID       int    `json:"session_id" gorm:"primaryKey;column:session_id;autoIncrement:false"`
	UserID          int    `json:"user_id" gorm:"column:user_id;index"`
	SessionCompiled string `json:"session_compiled" gorm:"column:session_compiled;type:text"`
	SessionDate     string `json:"session_date" gorm:"column:session_date"`
}

func (Session) TableName() string { return "sessions" }
