package repositories

import (
	"context"
	"errors"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	clock Clock
}

func NewUserRepository(db *gorm.DB, clock Clock) UserRepository {
	return &userRepository{db: db, clock: clock}
}

func (r *userRepository) List(ctx context.Context) ([]entities.User, error) {
	users := []entities.User{}
	if err := r.db.WithContext(ctx).Order("user_id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (entities.User, bool, error) {
	return findByID[entities.User](ctx, r.db, "user_id", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entities.User, bool, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Order("user_id asc").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, false, nil
	}
	if err != nil {
		return user, false, err
	}
	return user, true, nil
}

func (r *userRepository) Authenticate(ctx context.Context, email, _ string) (entities.User, error) {
	user, ok, err := r.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if !ok {
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user entities.User) (entities.User, error) {
	user.SignOnDate = r.clock.Today()
	emailFree := func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.User{}).Where("email = ?", user.Email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrEmailTaken
		}
		return nil
	}
	err := insertChecked(ctx, r.db, "user_id", &user, func(u *entities.User, id int) { u.UserID = id }, emailFree)
	if err != nil {
		return entities.User{}, err
	}
	return user, nil
}
