package analytics

import (
	"encoding/json"
	"time"
)

// Nomes dos eventos publicados na camada de dados
const (
	UserRegister              = "user_register"
	UserLogin                 = "user_login"
	UserLogout                = "user_logout"
	SuitabilityStart          = "suitability_start"
	SuitabilityComplete       = "suitability_complete"
	ChatStart                 = "chat_start"
	ChatMessage               = "chat_message"
	ChatEnd                   = "chat_end"
	RecommendationRequest     = "recommendation_request"
	RecommendationView        = "recommendation_view"
	RecommendationInvestClick = "recommendation_invest_click"
	PlanView                  = "plan_view"
	PlanSelect                = "plan_select"
	PaymentStart              = "payment_start"
	PaymentSuccess            = "payment_success"
	PaymentFailed             = "payment_failed"
	CardAdd                   = "card_add"
	CardRemove                = "card_remove"
	PageView                  = "page_view"
	Error                     = "error"
)

// Event é um registro plano: {"event": nome, campos..., "timestamp": RFC3339}
type Event struct {
	Name      string
	Fields    map[string]any
	Timestamp time.Time
}

func (e Event) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		flat[k] = v
	}
	flat["event"] = e.Name
	flat["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339Nano)
	return json.Marshal(flat)
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	e.Name, _ = flat["event"].(string)
	if ts, ok := flat["timestamp"].(string); ok {
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return err
		}
		e.Timestamp = parsed
	}
	delete(flat, "event")
	delete(flat, "timestamp")
	e.Fields = flat
	return nil
}

// UserID lê o campo user_id; 0 quando ausente ou anônimo.
// Depois de passar por JSON o valor chega como float64.
func (e Event) UserID() int {
	switch v := e.Fields["user_id"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
