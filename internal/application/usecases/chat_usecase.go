package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/domain/advisory"
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/cache"
	"github.com/google/uuid"
)

type ChatUseCase struct {
	sessionRepo   repositories.SessionRepository
	conversations *cache.Cache[*advisory.Conversation]
	ttl           time.Duration
	tracker       *analytics.Tracker
	now           func() time.Time

	// protege as conversas guardadas no cache
	mu sync.Mutex
}

func NewChatUseCase(sessionRepo repositories.SessionRepository, conversations *cache.Cache[*advisory.Conversation], ttl time.Duration, tracker *analytics.Tracker) *ChatUseCase {
	return &ChatUseCase{
		sessionRepo:   sessionRepo,
		conversations: conversations,
		ttl:           ttl,
		tracker:       tracker,
		now:           time.Now,
	}
}

// Start abre uma conversa nova com a saudação do assessor
func (uc *ChatUseCase) Start(ctx context.Context, user entities.User) advisory.Conversation {
	conv := advisory.Start(uuid.NewString(), user.UserID, user.Name, uc.now())

	uc.mu.Lock()
	uc.conversations.Set(conv.ID, conv, uc.ttl)
	snapshot := copyConversation(conv)
	uc.mu.Unlock()

	uc.tracker.ChatStart(ctx, user.UserID)
	return snapshot
}

// Get devolve o estado atual de uma conversa do usuário
func (uc *ChatUseCase) Get(ctx context.Context, userID int, conversationID string) (advisory.Conversation, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	conv, err := uc.lookup(userID, conversationID)
	if err != nil {
		return advisory.Conversation{}, err
	}
	return copyConversation(conv), nil
}

// Send registra a mensagem do usuário e devolve a resposta do assessor
func (uc *ChatUseCase) Send(ctx context.Context, userID int, conversationID, content string) (advisory.Message, error) {
	uc.mu.Lock()
	conv, err := uc.lookup(userID, conversationID)
	if err != nil {
		uc.mu.Unlock()
		return advisory.Message{}, err
	}
	reply, err := conv.Send(content, uc.now())
	if err == nil {
		uc.conversations.Set(conv.ID, conv, uc.ttl)
	}
	uc.mu.Unlock()
	if err != nil {
		return advisory.Message{}, err
	}

	uc.tracker.ChatMessage(ctx, userID, advisory.RoleUser)
	uc.tracker.ChatMessage(ctx, userID, advisory.RoleAssistant)
	return reply, nil
}

// End encerra a conversa e grava as falas do usuário como uma sessão
func (uc *ChatUseCase) End(ctx context.Context, userID int, conversationID string) (entities.Session, error) {
	uc.mu.Lock()
	conv, err := uc.lookup(userID, conversationID)
	if err != nil {
		uc.mu.Unlock()
		return entities.Session{}, err
	}
	compiled, err := conv.End(uc.now())
	uc.mu.Unlock()
	if err != nil {
		return entities.Session{}, err
	}

	saved, err := uc.sessionRepo.Create(ctx, entities.Session{
		UserID:          userID,
		SessionCompiled: compiled,
	})
	if err != nil {
		// permite tentar encerrar de novo
		uc.mu.Lock()
		conv.Ended = false
		conv.Messages = conv.Messages[:len(conv.Messages)-1]
		uc.mu.Unlock()
		return entities.Session{}, err
	}

	uc.conversations.Delete(conversationID)
	uc.tracker.ChatEnd(ctx, userID, saved.SessionID)
	return saved, nil
}

func (uc *ChatUseCase) Sessions(ctx context.Context, userID int) ([]entities.Session, error) {
	return uc.sessionRepo.ListByOwner(ctx, userID)
}

func (uc *ChatUseCase) lookup(userID int, conversationID string) (*advisory.Conversation, error) {
	conv, ok := uc.conversations.Get(conversationID)
	if !ok || conv.UserID != userID {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}
	return conv, nil
}

func copyConversation(c *advisory.Conversation) advisory.Conversation {
	out := *c
	out.Messages = append([]advisory.Message(nil), c.Messages...)
	return out
}
