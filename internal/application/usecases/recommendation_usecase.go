package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PavaniTiago/advisor-api/internal/domain/advisory"
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/domain/suitability"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
)

// RecommendationInput é o conteúdo gravado em input_json
type RecommendationInput struct {
	SessionID       int    `json:"session_id"`
	SessionCompiled string `json:"session_compiled"`
	SuitabilityID   int    `json:"suitability_id"`
	Profile         string `json:"profile"`
	Score           int    `json:"score"`
}

// RecommendationView junta o registro e a carteira decodificada
type RecommendationView struct {
	entities.Recommendation
	Output entities.RecommendationOutput `json:"output"`

	// AllocatedPercentage soma os ativos da carteira; registros antigos podem não fechar 100
	AllocatedPercentage int `json:"allocated_percentage"`
}

func newRecommendationView(rec entities.Recommendation, output entities.RecommendationOutput) RecommendationView {
	return RecommendationView{Recommendation: rec, Output: output, AllocatedPercentage: output.TotalPercentage()}
}

type RecommendationUseCase struct {
	recommendationRepo repositories.RecommendationRepository
	suitabilityRepo    repositories.SuitabilityRepository
	sessionRepo        repositories.SessionRepository
	tracker            *analytics.Tracker
	investURL          string
}

func NewRecommendationUseCase(
	recommendationRepo repositories.RecommendationRepository,
	suitabilityRepo repositories.SuitabilityRepository,
	sessionRepo repositories.SessionRepository,
	tracker *analytics.Tracker,
	investURL string,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		recommendationRepo: recommendationRepo,
		suitabilityRepo:    suitabilityRepo,
		sessionRepo:        sessionRepo,
		tracker:            tracker,
		investURL:          investURL,
	}
}

// Request gera a carteira a partir da última avaliação do usuário e de uma sessão encerrada
func (uc *RecommendationUseCase) Request(ctx context.Context, userID, sessionID int) (RecommendationView, error) {
	sess, ok, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return RecommendationView{}, err
	}
	if !ok || sess.UserID != userID {
		return RecommendationView{}, fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}
	uc.tracker.RecommendationRequest(ctx, userID, sessionID)

	latest, err := latestSuitability(ctx, uc.suitabilityRepo, userID)
	if err != nil {
		return RecommendationView{}, err
	}

	output, err := advisory.Portfolio(suitability.Profile(latest.Profile))
	if err != nil {
		return RecommendationView{}, fmt.Errorf("suitability %d: %w", latest.SuitabilityID, err)
	}

	inputJSON, err := json.Marshal(RecommendationInput{
		SessionID:       sess.SessionID,
		SessionCompiled: sess.SessionCompiled,
		SuitabilityID:   latest.SuitabilityID,
		Profile:         latest.Profile,
		Score:           latest.Score,
	})
	if err != nil {
		return RecommendationView{}, err
	}
	outputJSON, err := json.Marshal(output)
	if err != nil {
		return RecommendationView{}, err
	}

	saved, err := uc.recommendationRepo.Create(ctx, entities.Recommendation{
		UserID:        userID,
		SessionID:     sess.SessionID,
		SuitabilityID: latest.SuitabilityID,
		InputJSON:     string(inputJSON),
		OutputJSON:    string(outputJSON),
	})
	if err != nil {
		return RecommendationView{}, err
	}
	return newRecommendationView(saved, output), nil
}

// Get devolve uma recomendação do próprio usuário
func (uc *RecommendationUseCase) Get(ctx context.Context, userID, recommendationID int) (RecommendationView, error) {
	rec, err := uc.owned(ctx, userID, recommendationID)
	if err != nil {
		return RecommendationView{}, err
	}
	output, err := rec.Output()
	if err != nil {
		return RecommendationView{}, err
	}
	uc.tracker.RecommendationView(ctx, userID, rec.RecommendationID, len(output.Assets))
	return newRecommendationView(rec, output), nil
}

func (uc *RecommendationUseCase) List(ctx context.Context, userID int) ([]entities.Recommendation, error) {
	return uc.recommendationRepo.ListByOwner(ctx, userID)
}

// Invest registra o clique em investir e devolve o link da corretora
func (uc *RecommendationUseCase) Invest(ctx context.Context, userID, recommendationID int) (string, error) {
	rec, err := uc.owned(ctx, userID, recommendationID)
	if err != nil {
		return "", err
	}
	uc.tracker.RecommendationInvest(ctx, userID, rec.RecommendationID)
	return uc.investURL, nil
}

func (uc *RecommendationUseCase) owned(ctx context.Context, userID, recommendationID int) (entities.Recommendation, error) {
	rec, ok, err := uc.recommendationRepo.GetByID(ctx, recommendationID)
	if err != nil {
		return entities.Recommendation{}, err
	}
	if !ok || rec.UserID != userID {
		return entities.Recommendation{}, fmt.Errorf("recommendation %d: %w", recommendationID, ErrNotFound)
	}
	return rec, nil
}
