package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/PavaniTiago/advisor-api/internal/domain/billing"
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
)

// CheckoutInput paga um plano com um cartão salvo (CardID) ou com um cartão novo (Card)
type CheckoutInput struct {
	PlanID   int                `json:"plan_id"`
	CardID   int                `json:"card_id"`
	Card     *billing.CardInput `json:"card"`
	SaveCard bool               `json:"save_card"`
}

type CheckoutResult struct {
	Payment  entities.Payment  `json:"payment"`
	Contract entities.Contract `json:"contract"`
	Card     *entities.Card    `json:"card,omitempty"`
}

type BillingUseCase struct {
	planRepo     repositories.PlanRepository
	cardRepo     repositories.CardRepository
	paymentRepo  repositories.PaymentRepository
	contractRepo repositories.ContractRepository
	clock        repositories.Clock
	tracker      *analytics.Tracker
}

func NewBillingUseCase(
	planRepo repositories.PlanRepository,
	cardRepo repositories.CardRepository,
	paymentRepo repositories.PaymentRepository,
	contractRepo repositories.ContractRepository,
	clock repositories.Clock,
	tracker *analytics.Tracker,
) *BillingUseCase {
	return &BillingUseCase{
		planRepo:     planRepo,
		cardRepo:     cardRepo,
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		clock:        clock,
		tracker:      tracker,
	}
}

func (uc *BillingUseCase) Plans(ctx context.Context) ([]entities.Plan, error) {
	return uc.planRepo.List(ctx)
}

// Plan busca um plano; userID 0 indica visitante anônimo
func (uc *BillingUseCase) Plan(ctx context.Context, userID, planID int) (entities.Plan, error) {
	plan, ok, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return entities.Plan{}, err
	}
	if !ok {
		return entities.Plan{}, fmt.Errorf("plan %d: %w", planID, ErrNotFound)
	}
	if userID > 0 {
		uc.tracker.PlanView(ctx, userID, plan.PlanID, plan.PlanName)
	}
	return plan, nil
}

// Checkout registra pagamento aprovado e contrato ativo para o plano.
// Não há transação entre os repositórios: se o contrato falhar, o pagamento
// aprovado já gravado permanece e a falha é rastreada. O cartão novo só é
// salvo depois do contrato; se isso falhar o checkout segue sem ele.
func (uc *BillingUseCase) Checkout(ctx context.Context, userID int, in CheckoutInput) (CheckoutResult, error) {
	plan, ok, err := uc.planRepo.GetByID(ctx, in.PlanID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !ok {
		return CheckoutResult{}, fmt.Errorf("plan %d: %w", in.PlanID, ErrNotFound)
	}
	uc.tracker.PlanSelect(ctx, userID, plan.PlanID, plan.PlanName, plan.Price)
	uc.tracker.PaymentStart(ctx, userID, plan.PlanID, plan.Price)

	fail := func(err error) (CheckoutResult, error) {
		uc.tracker.PaymentFailed(ctx, userID, plan.PlanID, plan.Price, err.Error())
		trackFailure(ctx, uc.tracker, "payment_processing_failed", err, userID)
		return CheckoutResult{}, err
	}

	switch {
	case in.CardID > 0:
		if _, err := uc.ownedCard(ctx, userID, in.CardID); err != nil {
			return fail(err)
		}
	case in.Card != nil:
		if err := billing.ValidateCard(*in.Card); err != nil {
			return fail(err)
		}
	default:
		return fail(fmt.Errorf("%w: card_id or card is required", ErrInvalidInput))
	}

	expiresAt, err := billing.ExpiresAt(uc.clock.Today(), plan.DurationDays)
	if err != nil {
		return fail(err)
	}

	payment, err := uc.paymentRepo.Create(ctx, entities.Payment{
		UserID:        userID,
		PlanID:        plan.PlanID,
		Amount:        plan.Price,
		PaymentMethod: entities.PaymentMethodCreditCard,
		Status:        entities.PaymentStatusApproved,
	})
	if err != nil {
		return fail(err)
	}

	contract, err := uc.contractRepo.Create(ctx, entities.Contract{
		UserID:    userID,
		PlanID:    plan.PlanID,
		Status:    entities.ContractStatusActive,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fail(fmt.Errorf("payment %d has no contract: %w", payment.PaymentID, err))
	}
	result := CheckoutResult{Payment: payment, Contract: contract}

	if in.CardID <= 0 && in.Card != nil && in.SaveCard {
		// AddCard já rastreia a própria falha
		if card, err := uc.AddCard(ctx, userID, *in.Card); err == nil {
			result.Card = &card
		}
	}

	uc.tracker.PaymentSuccess(ctx, userID, payment.PaymentID, plan.PlanID, payment.Amount)
	return result, nil
}

func (uc *BillingUseCase) Cards(ctx context.Context, userID int) ([]entities.Card, error) {
	return uc.cardRepo.ListByOwner(ctx, userID)
}

// AddCard valida o cartão de testes e guarda só a versão mascarada e o token
func (uc *BillingUseCase) AddCard(ctx context.Context, userID int, in billing.CardInput) (entities.Card, error) {
	card, err := uc.addCard(ctx, userID, in)
	if err != nil {
		trackFailure(ctx, uc.tracker, "card_add_failed", err, userID)
		return entities.Card{}, err
	}
	uc.tracker.CardAdd(ctx, userID, card.Brand)
	return card, nil
}

func (uc *BillingUseCase) addCard(ctx context.Context, userID int, in billing.CardInput) (entities.Card, error) {
	if err := billing.ValidateCard(in); err != nil {
		return entities.Card{}, err
	}
	brand, err := billing.NormalizeBrand(in.Brand)
	if err != nil {
		return entities.Card{}, err
	}
	return uc.cardRepo.Create(ctx, entities.Card{
		UserID:         userID,
		MaskedNumber:   billing.Mask(in.Number),
		Token:          billing.NewToken(),
		Brand:          brand,
		ExpirationDate: in.Expiry,
	})
}

func (uc *BillingUseCase) RemoveCard(ctx context.Context, userID, cardID int) error {
	if err := uc.removeCard(ctx, userID, cardID); err != nil {
		trackFailure(ctx, uc.tracker, "card_delete_failed", err, userID)
		return err
	}
	uc.tracker.CardRemove(ctx, userID, cardID)
	return nil
}

func (uc *BillingUseCase) removeCard(ctx context.Context, userID, cardID int) error {
	if _, err := uc.ownedCard(ctx, userID, cardID); err != nil {
		return err
	}
	if err := uc.cardRepo.Delete(ctx, cardID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("card %d: %w", cardID, ErrNotFound)
		}
		return err
	}
	return nil
}

func (uc *BillingUseCase) Payments(ctx context.Context, userID int) ([]entities.Payment, error) {
	return uc.paymentRepo.ListByOwner(ctx, userID)
}

func (uc *BillingUseCase) Contracts(ctx context.Context, userID int) ([]entities.Contract, error) {
	return uc.contractRepo.ListByOwner(ctx, userID)
}

func (uc *BillingUseCase) ownedCard(ctx context.Context, userID, cardID int) (entities.Card, error) {
	card, ok, err := uc.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return entities.Card{}, err
	}
	if !ok || card.UserID != userID {
		return entities.Card{}, fmt.Errorf("card %d: %w", cardID, ErrNotFound)
	}
	return card, nil
}
