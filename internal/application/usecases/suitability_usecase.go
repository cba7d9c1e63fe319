package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/domain/suitability"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
)

type SuitabilityUseCase struct {
	suitabilityRepo repositories.SuitabilityRepository
	questionnaire   *suitability.Questionnaire
	tracker         *analytics.Tracker
}

func NewSuitabilityUseCase(suitabilityRepo repositories.SuitabilityRepository, questionnaire *suitability.Questionnaire, tracker *analytics.Tracker) *SuitabilityUseCase {
	if questionnaire == nil {
		questionnaire = suitability.Default()
	}
	return &SuitabilityUseCase{
		suitabilityRepo: suitabilityRepo,
		questionnaire:   questionnaire,
		tracker:         tracker,
	}
}

// QuestionSet é o questionário com a faixa de pontuação possível
type QuestionSet struct {
	Questions []suitability.Question `json:"questions"`
	MinScore  int                    `json:"min_score"`
	MaxScore  int                    `json:"max_score"`
}

// Questions devolve o questionário e marca o início da avaliação
func (uc *SuitabilityUseCase) Questions(ctx context.Context, userID int) QuestionSet {
	uc.tracker.SuitabilityStart(ctx, userID)
	lo, hi := uc.questionnaire.Range()
	return QuestionSet{Questions: uc.questionnaire.Questions(), MinScore: lo, MaxScore: hi}
}

// Submit pontua as opções escolhidas e grava a avaliação
func (uc *SuitabilityUseCase) Submit(ctx context.Context, userID int, selections map[int]string) (entities.Suitability, error) {
	saved, err := uc.submit(ctx, userID, selections)
	if err != nil {
		trackFailure(ctx, uc.tracker, "suitability_failed", err, userID)
		return entities.Suitability{}, err
	}
	uc.tracker.SuitabilityComplete(ctx, userID, saved.Profile, saved.Score)
	return saved, nil
}

func (uc *SuitabilityUseCase) submit(ctx context.Context, userID int, selections map[int]string) (entities.Suitability, error) {
	answers, err := uc.questionnaire.Resolve(selections)
	if err != nil {
		return entities.Suitability{}, err
	}
	result, err := uc.questionnaire.Evaluate(answers)
	if err != nil {
		return entities.Suitability{}, err
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return entities.Suitability{}, fmt.Errorf("encode answers: %w", err)
	}

	return uc.suitabilityRepo.Create(ctx, entities.Suitability{
		UserID:      userID,
		Score:       result.Score,
		Profile:     string(result.Profile),
		AnswersJSON: string(answersJSON),
	})
}

func (uc *SuitabilityUseCase) List(ctx context.Context, userID int) ([]entities.Suitability, error) {
	return uc.suitabilityRepo.ListByOwner(ctx, userID)
}

// Latest é a avaliação mais recente (maior id) do usuário
func (uc *SuitabilityUseCase) Latest(ctx context.Context, userID int) (entities.Suitability, error) {
	return latestSuitability(ctx, uc.suitabilityRepo, userID)
}

func latestSuitability(ctx context.Context, repo repositories.SuitabilityRepository, userID int) (entities.Suitability, error) {
	all, err := repo.ListByOwner(ctx, userID)
	if err != nil {
		return entities.Suitability{}, err
	}
	if len(all) == 0 {
		return entities.Suitability{}, ErrNoSuitability
	}
	latest := all[0]
	for _, s := range all[1:] {
		if s.SuitabilityID > latest.SuitabilityID {
			latest = s
		}
	}
	return latest, nil
}
