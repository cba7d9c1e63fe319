package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/google/uuid"
)

// KeyPrefix antecede o token em todas as chaves de sessão
const KeyPrefix = "advisor:current_user:"

// Store guarda o usuário logado por token. A presença da chave é o único
// sinal de autenticação.
type Store interface {
	NewSession(ctx context.Context, user entities.User) (string, error)
	CurrentUser(ctx context.Context, token string) (entities.User, bool, error)
	Logout(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) (bool, error)
}

func newToken() string {
	return uuid.NewString()
}

func key(token string) string {
	return KeyPrefix + token
}

func encode(user entities.User) ([]byte, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session user: %w", err)
	}
	return data, nil
}

func decode(data []byte) (entities.User, error) {
	var user entities.User
	if err := json.Unmarshal(data, &user); err != nil {
		return entities.User{}, fmt.Errorf("decode session user: %w", err)
	}
	return user, nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore mantém as sessões no processo
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore cria um store em memória. ttl <= 0 mantém a sessão até o logout.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) NewSession(ctx context.Context, user entities.User) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := encode(user)
	if err != nil {
		return "", err
	}
	entry := memoryEntry{data: data}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	token := newToken()
	s.mu.Lock()
	s.sessions[key(token)] = entry
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) CurrentUser(ctx context.Context, token string) (entities.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, false, err
	}
	s.mu.RLock()
	entry, ok := s.sessions[key(token)]
	s.mu.RUnlock()
	if !ok {
		return entities.User{}, false, nil
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, key(token))
		s.mu.Unlock()
		return entities.User{}, false, nil
	}
	user, err := decode(entry.data)
	if err != nil {
		return entities.User{}, false, err
	}
	return user, true, nil
}

func (s *MemoryStore) Logout(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, key(token))
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	_, ok, err := s.CurrentUser(ctx, token)
	return ok, err
}
