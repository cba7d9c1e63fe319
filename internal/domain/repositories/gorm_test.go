package repositories_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/config"
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/database"
)

func newSQLiteRegistry(t *testing.T) repositories.Registry {
	t.Helper()
	db, err := database.Open(config.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := database.Prepare(db); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	clock := repositories.Clock(func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) })
	return repositories.NewRegistry(db, clock)
}

func TestGormSeededData(t *testing.T) {
	ctx := context.Background()
	reg := newSQLiteRegistry(t)

	users, err := reg.Users.List(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 3 || users[0].UserID != 1 {
		t.Fatalf("unexpected seeded users: %+v", users)
	}

	plan, ok, err := reg.Plans.GetByID(ctx, 2)
	if err != nil || !ok {
		t.Fatalf("plan 2: ok=%v err=%v", ok, err)
	}
	if len(plan.Features) == 0 {
		t.Fatalf("plan features not decoded: %+v", plan)
	}
}

func TestGormCreateAndRetrieve(t *testing.T) {
	ctx := context.Background()
	reg := newSQLiteRegistry(t)

	rec, err := reg.Recommendations.Create(ctx, entities.Recommendation{UserID: 3, SessionID: 1, SuitabilityID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.RecommendationID != 3 {
		t.Fatalf("id=%d, want 3", rec.RecommendationID)
	}
	if rec.RequestDate != "2025-03-10" {
		t.Fatalf("request_date=%q", rec.RequestDate)
	}
	got, ok, err := reg.Recommendations.GetByID(ctx, rec.RecommendationID)
	if err != nil || !ok || got.UserID != 3 {
		t.Fatalf("get: %+v ok=%v err=%v", got, ok, err)
	}

	list, err := reg.Recommendations.ListByOwner(ctx, 3)
	if err != nil || len(list) != 1 {
		t.Fatalf("list owner 3: %v %v", list, err)
	}
	empty, err := reg.Recommendations.ListByOwner(ctx, 42)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("unknown owner: %v %v", empty, err)
	}
}

func TestGormAuthenticate(t *testing.T) {
	ctx := context.Background()
	reg := newSQLiteRegistry(t)

	u, err := reg.Users.Authenticate(ctx, "bruno.lima@example.com", "anything")
	if err != nil || u.UserID != 2 {
		t.Fatalf("authenticate: %+v %v", u, err)
	}
	_, err = reg.Users.Authenticate(ctx, "ghost@example.com", "")
	if !errors.Is(err, repositories.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestGormDeleteCard(t *testing.T) {
	ctx := context.Background()
	reg := newSQLiteRegistry(t)

	if err := reg.Cards.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := reg.Cards.GetByID(ctx, 2); ok {
		t.Fatalf("card 2 still present")
	}
	if err := reg.Cards.Delete(ctx, 2); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormUserCreateRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	reg := newSQLiteRegistry(t)

	u, err := reg.Users.Create(ctx, entities.User{Name: "Davi", Email: "davi@example.com"})
	if err != nil || u.UserID != 4 || u.SignOnDate != "2025-03-10" {
		t.Fatalf("create: %+v %v", u, err)
	}
	if _, err := reg.Users.Create(ctx, entities.User{Name: "Outro", Email: "davi@example.com"}); !errors.Is(err, repositories.ErrEmailTaken) {
		t.Fatalf("duplicate email: %v", err)
	}
	users, _ := reg.Users.List(ctx)
	if len(users) != 4 {
		t.Fatalf("users=%d, want 4", len(users))
	}
}

func TestGormConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	reg := newSQLiteRegistry(t)

	const n = 10
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := reg.Payments.Create(ctx, entities.Payment{UserID: 3, PlanID: 1})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- p.PaymentID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate payment id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d ids, want %d", len(seen), n)
	}
}
