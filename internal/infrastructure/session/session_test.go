package session

import (
	"context"
	"testing"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var ana = entities.User{UserID: 1, Name: "Ana", Surname: "Souza", Email: "ana.souza@example.com"}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	token, err := s.NewSession(ctx, ana)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}

	got, ok, err := s.CurrentUser(ctx, token)
	if err != nil || !ok {
		t.Fatalf("current user: ok=%v err=%v", ok, err)
	}
	if got != ana {
		t.Fatalf("got %+v, want %+v", got, ana)
	}
	if ok, _ := s.IsAuthenticated(ctx, token); !ok {
		t.Fatalf("expected authenticated")
	}

	other, err := s.NewSession(ctx, ana)
	if err != nil || other == token {
		t.Fatalf("second session must have its own token: %q %v", other, err)
	}

	if err := s.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if ok, _ := s.IsAuthenticated(ctx, token); ok {
		t.Fatalf("still authenticated after logout")
	}
	if _, ok, _ := s.CurrentUser(ctx, token); ok {
		t.Fatalf("current user survived logout")
	}
	if ok, _ := s.IsAuthenticated(ctx, other); !ok {
		t.Fatalf("logout removed an unrelated session")
	}
	// Logout de token inexistente não é erro
	if err := s.Logout(ctx, "nope"); err != nil {
		t.Fatalf("logout unknown: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(0))
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	exerciseStore(t, NewRedisStore(client, 0))
}

func TestRedisStoreKeysAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisStore(client, time.Hour)
	token, err := s.NewSession(context.Background(), ana)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if !mr.Exists(KeyPrefix + token) {
		t.Fatalf("session key not stored under prefix")
	}
	if ttl := mr.TTL(KeyPrefix + token); ttl != time.Hour {
		t.Fatalf("ttl=%v, want 1h", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if ok, _ := s.IsAuthenticated(context.Background(), token); ok {
		t.Fatalf("session should have expired")
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	token, _ := s.NewSession(context.Background(), ana)
	now = now.Add(30 * time.Second)
	if ok, _ := s.IsAuthenticated(context.Background(), token); !ok {
		t.Fatalf("expired too early")
	}
	now = now.Add(time.Minute)
	if ok, _ := s.IsAuthenticated(context.Background(), token); ok {
		t.Fatalf("expected expiry")
	}
}
