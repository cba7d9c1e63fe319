package usecases

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// ActivityUseCase cobre os eventos que não pertencem a um fluxo específico
type ActivityUseCase struct {
	tracker *analytics.Tracker
	feed    analytics.Feed
}

func NewActivityUseCase(tracker *analytics.Tracker, feed analytics.Feed) *ActivityUseCase {
	return &ActivityUseCase{tracker: tracker, feed: feed}
}

// PageView registra a página vista; userID 0 é visitante anônimo
func (uc *ActivityUseCase) PageView(ctx context.Context, page string, userID int) {
	uc.tracker.PageView(ctx, page, optionalUser(userID))
}

// Failure registra um erro genérico, sem interromper quem chamou
func (uc *ActivityUseCase) Failure(ctx context.Context, errorType string, err error, userID int) {
	trackFailure(ctx, uc.tracker, errorType, err, userID)
}

// Recent lista os últimos eventos do próprio usuário
func (uc *ActivityUseCase) Recent(ctx context.Context, userID, limit int) ([]analytics.Event, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	if uc.feed == nil {
		return []analytics.Event{}, nil
	}
	return uc.feed.Recent(ctx, userID, limit)
}

func trackFailure(ctx context.Context, tracker *analytics.Tracker, errorType string, err error, userID int) {
	if err == nil {
		return
	}
	tracker.Error(ctx, errorType, err.Error(), optionalUser(userID))
}

func optionalUser(userID int) *int {
	if userID <= 0 {
		return nil
	}
	return &userID
}
