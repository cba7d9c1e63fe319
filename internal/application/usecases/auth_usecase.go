package usecases

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/session"
)

type RegisterInput struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IncomeRange string `json:"income_range"`
}

type AuthUseCase struct {
	userRepo repositories.UserRepository
	sessions session.Store
	tracker  *analytics.Tracker
}

func NewAuthUseCase(userRepo repositories.UserRepository, sessions session.Store, tracker *analytics.Tracker) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		sessions: sessions,
		tracker:  tracker,
	}
}

// Register cria o usuário e já abre uma sessão para ele.
// A senha não é armazenada.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return entities.User{}, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return entities.User{}, "", fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	user, err := uc.userRepo.Create(ctx, entities.User{
		Name:        in.Name,
		Surname:     in.Surname,
		Email:       in.Email,
		IncomeRange: in.IncomeRange,
	})
	if err != nil {
		return entities.User{}, "", err
	}

	token, err := uc.sessions.NewSession(ctx, user)
	if err != nil {
		return entities.User{}, "", err
	}
	uc.tracker.UserRegister(ctx, user.UserID, user.Email)
	return user, token, nil
}

// Login procura o usuário pelo email; a senha é ignorada
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	user, err := uc.userRepo.Authenticate(ctx, strings.TrimSpace(email), password)
	if err != nil {
		trackFailure(ctx, uc.tracker, "login_failed", err, 0)
		return entities.User{}, "", err
	}
	token, err := uc.sessions.NewSession(ctx, user)
	if err != nil {
		return entities.User{}, "", err
	}
	uc.tracker.UserLogin(ctx, user.UserID, user.Email)
	return user, token, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string, userID int) error {
	if err := uc.sessions.Logout(ctx, token); err != nil {
		return err
	}
	uc.tracker.UserLogout(ctx, userID)
	return nil
}

// CurrentUser resolve o token da requisição
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token string) (entities.User, bool, error) {
	if token == "" {
		return entities.User{}, false, nil
	}
	return uc.sessions.CurrentUser(ctx, token)
}

// IsAuthenticated só confirma que o token ainda abre uma sessão
func (uc *AuthUseCase) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return uc.sessions.IsAuthenticated(ctx, token)
}

// Profile relê o usuário do repositório
func (uc *AuthUseCase) Profile(ctx context.Context, userID int) (entities.User, error) {
	user, ok, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if !ok {
		return entities.User{}, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return user, nil
}
