package analytics

import (
	"context"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
)

// Tracker publica eventos sem nunca devolver erro ao chamador.
// Falhas do sink são apenas registradas no log.
type Tracker struct {
	sink Sink
	log  *logger.Logger
	now  func() time.Time
}

func NewTracker(sink Sink, log *logger.Logger) *Tracker {
	if log == nil {
		log = logger.Nop()
	}
	return &Tracker{sink: sink, log: log, now: time.Now}
}

// Track publica um evento com os campos informados
func (t *Tracker) Track(ctx context.Context, name string, fields map[string]any) {
	if t == nil || t.sink == nil {
		return
	}
	e := Event{Name: name, Fields: fields, Timestamp: t.now()}
	if err := t.sink.Publish(context.WithoutCancel(ctx), e); err != nil {
		t.log.Warn("analytics publish failed", "event", name, "error", err)
	}
}

func (t *Tracker) UserRegister(ctx context.Context, userID int, email string) {
	t.Track(ctx, UserRegister, map[string]any{"user_id": userID, "email": email})
}

func (t *Tracker) UserLogin(ctx context.Context, userID int, email string) {
	t.Track(ctx, UserLogin, map[string]any{"user_id": userID, "email": email})
}

func (t *Tracker) UserLogout(ctx context.Context, userID int) {
	t.Track(ctx, UserLogout, map[string]any{"user_id": userID})
}

func (t *Tracker) SuitabilityStart(ctx context.Context, userID int) {
	t.Track(ctx, SuitabilityStart, map[string]any{"user_id": userID})
}

func (t *Tracker) SuitabilityComplete(ctx context.Context, userID int, profile string, score int) {
	t.Track(ctx, SuitabilityComplete, map[string]any{"user_id": userID, "profile": profile, "score": score})
}

func (t *Tracker) ChatStart(ctx context.Context, userID int) {
	t.Track(ctx, ChatStart, map[string]any{"user_id": userID})
}

// ChatMessage registra uma mensagem; messageType é "user" ou "assistant"
func (t *Tracker) ChatMessage(ctx context.Context, userID int, messageType string) {
	t.Track(ctx, ChatMessage, map[string]any{"user_id": userID, "message_type": messageType})
}

func (t *Tracker) ChatEnd(ctx context.Context, userID, sessionID int) {
	t.Track(ctx, ChatEnd, map[string]any{"user_id": userID, "session_id": sessionID})
}

func (t *Tracker) RecommendationRequest(ctx context.Context, userID, sessionID int) {
	t.Track(ctx, RecommendationRequest, map[string]any{"user_id": userID, "session_id": sessionID})
}

func (t *Tracker) RecommendationView(ctx context.Context, userID, recommendationID, assetsCount int) {
	t.Track(ctx, RecommendationView, map[string]any{"user_id": userID, "recommendation_id": recommendationID, "assets_count": assetsCount})
}

func (t *Tracker) RecommendationInvest(ctx context.Context, userID, recommendationID int) {
	t.Track(ctx, RecommendationInvestClick, map[string]any{"user_id": userID, "recommendation_id": recommendationID})
}

func (t *Tracker) PlanView(ctx context.Context, userID, planID int, planName string) {
	t.Track(ctx, PlanView, map[string]any{"user_id": userID, "plan_id": planID, "plan_name": planName})
}

func (t *Tracker) PlanSelect(ctx context.Context, userID, planID int, planName string, price float64) {
	t.Track(ctx, PlanSelect, map[string]any{"user_id": userID, "plan_id": planID, "plan_name": planName, "price": price})
}

func (t *Tracker) PaymentStart(ctx context.Context, userID, planID int, amount float64) {
	t.Track(ctx, PaymentStart, map[string]any{"user_id": userID, "plan_id": planID, "amount": amount})
}

func (t *Tracker) PaymentSuccess(ctx context.Context, userID, paymentID, planID int, amount float64) {
	t.Track(ctx, PaymentSuccess, map[string]any{"user_id": userID, "payment_id": paymentID, "plan_id": planID, "amount": amount})
}

func (t *Tracker) PaymentFailed(ctx context.Context, userID, planID int, amount float64, reason string) {
	t.Track(ctx, PaymentFailed, map[string]any{"user_id": userID, "plan_id": planID, "amount": amount, "error": reason})
}

func (t *Tracker) CardAdd(ctx context.Context, userID int, brand string) {
	t.Track(ctx, CardAdd, map[string]any{"user_id": userID, "card_brand": brand})
}

func (t *Tracker) CardRemove(ctx context.Context, userID, cardID int) {
	t.Track(ctx, CardRemove, map[string]any{"user_id": userID, "card_id": cardID})
}

// PageView aceita userID nil para visitantes anônimos
func (t *Tracker) PageView(ctx context.Context, page string, userID *int) {
	t.Track(ctx, PageView, map[string]any{"page_name": page, "user_id": optionalID(userID)})
}

func (t *Tracker) Error(ctx context.Context, errorType, message string, userID *int) {
	t.Track(ctx, Error, map[string]any{"error_type": errorType, "error_message": message, "user_id": optionalID(userID)})
}

func optionalID(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}
