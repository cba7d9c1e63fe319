package usecases

import (
	"time"

	"github.com/PavaniTiago/advisor-api/internal/domain/advisory"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/domain/suitability"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/session"
)

// Deps são as dependências compartilhadas pelos casos de uso
type Deps struct {
	Repos         repositories.Registry
	Sessions      session.Store
	Tracker       *analytics.Tracker
	Feed          analytics.Feed
	Conversations *cache.Cache[*advisory.Conversation]
	ChatTTL       time.Duration
	Clock         repositories.Clock
	InvestURL     string
}

// UseCases agrupa todos os casos de uso da API
type UseCases struct {
	Auth           *AuthUseCase
	Suitability    *SuitabilityUseCase
	Chat           *ChatUseCase
	Recommendation *RecommendationUseCase
	Billing        *BillingUseCase
	History        *HistoryUseCase
	Activity       *ActivityUseCase
}

func New(d Deps) *UseCases {
	r := d.Repos
	return &UseCases{
		Auth:           NewAuthUseCase(r.Users, d.Sessions, d.Tracker),
		Suitability:    NewSuitabilityUseCase(r.Suitability, suitability.Default(), d.Tracker),
		Chat:           NewChatUseCase(r.Sessions, d.Conversations, d.ChatTTL, d.Tracker),
		Recommendation: NewRecommendationUseCase(r.Recommendations, r.Suitability, r.Sessions, d.Tracker, d.InvestURL),
		Billing:        NewBillingUseCase(r.Plans, r.Cards, r.Payments, r.Contracts, d.Clock, d.Tracker),
		History:        NewHistoryUseCase(r),
		Activity:       NewActivityUseCase(d.Tracker, d.Feed),
	}
}
