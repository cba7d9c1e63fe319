package memory

import (
	"context"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
)

// ownedRepo serve as coleções filtradas por user_id
type ownedRepo[T any] struct {
	s     *Store
	col   *collection[T]
	stamp func(rec *T, id int, date string)
}

func (r ownedRepo[T]) ListByOwner(ctx context.Context, userID int) ([]T, error) {
	if err := r.s.read(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.col.byOwner(userID), nil
}

func (r ownedRepo[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	if err := r.s.read(ctx); err != nil {
		var zero T
		return zero, false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.col.find(id)
	return rec, ok, nil
}

func (r ownedRepo[T]) Create(ctx context.Context, rec T) (T, error) {
	if err := r.s.write(ctx); err != nil {
		var zero T
		return zero, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.stamp(&rec, r.col.nextID(), r.s.clock.Today())
	r.col.add(rec)
	return rec, nil
}

type cardRepo struct {
	ownedRepo[entities.Card]
}

func (r cardRepo) Delete(ctx context.Context, id int) error {
	if err := r.s.write(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.col.remove(id) {
		return repositories.ErrNotFound
	}
	return nil
}

type userRepo struct {
	s *Store
}

func (r *userRepo) List(ctx context.Context) ([]entities.User, error) {
	if err := r.s.read(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.all(), nil
}

func (r *userRepo) GetByID(ctx context.Context, id int) (entities.User, bool, error) {
	if err := r.s.read(ctx); err != nil {
		return entities.User{}, false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users.find(id)
	return u, ok, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (entities.User, bool, error) {
	if err := r.s.read(ctx); err != nil {
		return entities.User{}, false, err
	}
	u, ok := r.byEmail(email)
	return u, ok, nil
}

func (r *userRepo) byEmail(email string) (entities.User, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users.items {
		if u.Email == email {
			return u, true
		}
	}
	return entities.User{}, false
}

// Authenticate usa o atraso de escrita, como o login original
func (r *userRepo) Authenticate(ctx context.Context, email, _ string) (entities.User, error) {
	if err := r.s.write(ctx); err != nil {
		return entities.User{}, err
	}
	u, ok := r.byEmail(email)
	if !ok {
		return entities.User{}, repositories.ErrInvalidCredentials
	}
	return u, nil
}

func (r *userRepo) Create(ctx context.Context, u entities.User) (entities.User, error) {
	if err := r.s.write(ctx); err != nil {
		return entities.User{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users.items {
		if existing.Email == u.Email {
			return entities.User{}, repositories.ErrEmailTaken
		}
	}
	u.UserID = r.s.users.nextID()
	u.SignOnDate = r.s.clock.Today()
	r.s.users.add(u)
	return u, nil
}

type planRepo struct {
	s *Store
}

func (r *planRepo) List(ctx context.Context) ([]entities.Plan, error) {
	if err := r.s.read(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.plans.all(), nil
}

func (r *planRepo) GetByID(ctx context.Context, id int) (entities.Plan, bool, error) {
	if err := r.s.read(ctx); err != nil {
		return entities.Plan{}, false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.plans.find(id)
	return p, ok, nil
}
