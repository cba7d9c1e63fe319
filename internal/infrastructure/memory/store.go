package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/seed"
)

// Latency é o atraso artificial que simula uma chamada de rede
type Latency struct {
	Read  time.Duration
	Write time.Duration
}

var DefaultLatency = Latency{Read: 100 * time.Millisecond, Write: 200 * time.Millisecond}

// Store guarda as oito coleções em memória. Os registros criados vivem só
// enquanto o Store existir; nada é gravado de volta no seed.
type Store struct {
	mu      sync.RWMutex
	latency Latency
	clock   repositories.Clock

	users           collection[entities.User]
	suitability     collection[entities.Suitability]
	sessions        collection[entities.Session]
	recommendations collection[entities.Recommendation]
	plans           collection[entities.Plan]
	contracts       collection[entities.Contract]
	payments        collection[entities.Payment]
	cards           collection[entities.Card]
}

type Option func(*Store)

func WithLatency(l Latency) Option {
	return func(s *Store) { s.latency = l }
}

func WithClock(c repositories.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// New cria um Store a partir do dataset de seed
func New(ds seed.Dataset, opts ...Option) *Store {
	s := &Store{
		latency: DefaultLatency,
		users: newCollection(ds.Users,
			func(u entities.User) int { return u.UserID },
			func(u entities.User) int { return u.UserID }),
		suitability: newCollection(ds.Suitability,
			func(v entities.Suitability) int { return v.SuitabilityID },
			func(v entities.Suitability) int { return v.UserID }),
		sessions: newCollection(ds.Sessions,
			func(v entities.Session) int { return v.SessionID },
			func(v entities.Session) int { return v.UserID }),
		recommendations: newCollection(ds.Recommendations,
			func(v entities.Recommendation) int { return v.RecommendationID },
			func(v entities.Recommendation) int { return v.UserID }),
		plans: newCollection(ds.Plans,
			func(v entities.Plan) int { return v.PlanID },
			func(entities.Plan) int { return 0 }),
		contracts: newCollection(ds.Contracts,
			func(v entities.Contract) int { return v.ContractID },
			func(v entities.Contract) int { return v.UserID }),
		payments: newCollection(ds.Payments,
			func(v entities.Payment) int { return v.PaymentID },
			func(v entities.Payment) int { return v.UserID }),
		cards: newCollection(ds.Cards,
			func(v entities.Card) int { return v.CardID },
			func(v entities.Card) int { return v.UserID }),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry expõe o Store pelos contratos de repositório
func (s *Store) Registry() repositories.Registry {
	return repositories.Registry{
		Users: &userRepo{s: s},
		Suitability: ownedRepo[entities.Suitability]{s: s, col: &s.suitability,
			stamp: func(v *entities.Suitability, id int, date string) { v.SuitabilityID, v.EvaluationDate = id, date }},
		Sessions: ownedRepo[entities.Session]{s: s, col: &s.sessions,
			stamp: func(v *entities.Session, id int, date string) { v.SessionID, v.SessionDate = id, date }},
		Recommendations: ownedRepo[entities.Recommendation]{s: s, col: &s.recommendations,
			stamp: func(v *entities.Recommendation, id int, date string) { v.RecommendationID, v.RequestDate = id, date }},
		Plans: &planRepo{s: s},
		Contracts: ownedRepo[entities.Contract]{s: s, col: &s.contracts,
			stamp: func(v *entities.Contract, id int, date string) { v.ContractID, v.ContractDate = id, date }},
		Payments: ownedRepo[entities.Payment]{s: s, col: &s.payments,
			stamp: func(v *entities.Payment, id int, date string) { v.PaymentID, v.PaymentDate = id, date }},
		Cards: cardRepo{ownedRepo[entities.Card]{s: s, col: &s.cards,
			stamp: func(v *entities.Card, id int, date string) { v.CardID, v.AddedDate = id, date }}},
	}
}

func (s *Store) read(ctx context.Context) error  { return wait(ctx, s.latency.Read) }
func (s *Store) write(ctx context.Context) error { return wait(ctx, s.latency.Write) }

// wait suspende a chamada pelo atraso configurado ou até o contexto ser cancelado
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
