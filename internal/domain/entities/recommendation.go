package entities

import (
	"encoding/json"
	"fmt"
)

type Recommendation struct {
	RecommendationID int    `json:"recommendation_id" gorm:"primaryKey;column:recommendation_id;autoIncrement:false"`
	UserID           int    `json:"user_id" gorm:"column:user_id;index"`
	SessionID        int    `json:"session_id" gorm:"column:session_id"`
	SuitabilityID    int    `json:"suitability_id" gorm:"column:suitability_id"`
	InputJSON        string `json:"input_json" gorm:"column:input_json;type:text"`
	OutputJSON       string `json:"output_json" gorm:"column:output_json;type:text"`
	RequestDate      string `json:"request_date" gorm:"column:request_date"`
}

func (Recommendation) TableName() string { return "recommendations" }

// Asset é uma posição sugerida dentro da carteira recomendada
type Asset struct {
	Name        string `json:"name"`
	Percentage  int    `json:"percentage"`
	Description string `json:"description"`
}

// RecommendationOutput é o conteúdo de output_json
type RecommendationOutput struct {
	Profile string  `json:"profile,omitempty"`
	Assets  []Asset `json:"assets"`
}

// Output decodifica output_json
func (r Recommendation) Output() (RecommendationOutput, error) {
	var out RecommendationOutput
	if r.OutputJSON == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(r.OutputJSON), &out); err != nil {
		return out, fmt.Errorf("decode output_json of recommendation %d: %w", r.RecommendationID, err)
	}
	return out, nil
}

// TotalPercentage soma os percentuais dos ativos. Não é validado contra 100.
func (o RecommendationOutput) TotalPercentage() int {
	total := 0
	for _, a := range o.Assets {
		total += a.Percentage
	}
	return total
}
