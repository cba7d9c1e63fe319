package usecases

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"golang.org/x/sync/errgroup"
)

// History reúne tudo que o usuário já fez no app
type History struct {
	User            entities.User             `json:"user"`
	Suitability     []entities.Suitability    `json:"suitability"`
	Sessions        []entities.Session        `json:"sessions"`
	Recommendations []entities.Recommendation `json:"recommendations"`
	Contracts       []entities.Contract       `json:"contracts"`
	Payments        []entities.Payment        `json:"payments"`
	Cards           []entities.Card           `json:"cards"`
}

type HistoryUseCase struct {
	repos repositories.Registry
}

func NewHistoryUseCase(repos repositories.Registry) *HistoryUseCase {
	return &HistoryUseCase{repos: repos}
}

// Overview busca as coleções do usuário em paralelo
func (uc *HistoryUseCase) Overview(ctx context.Context, userID int) (History, error) {
	var h History
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, ok, err := uc.repos.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		h.User = user
		return nil
	})
	g.Go(func() (err error) {
		h.Suitability, err = uc.repos.Suitability.ListByOwner(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		h.Sessions, err = uc.repos.Sessions.ListByOwner(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		h.Recommendations, err = uc.repos.Recommendations.ListByOwner(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		h.Contracts, err = uc.repos.Contracts.ListByOwner(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		h.Payments, err = uc.repos.Payments.ListByOwner(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		h.Cards, err = uc.repos.Cards.ListByOwner(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return History{}, err
	}
	return h, nil
}
