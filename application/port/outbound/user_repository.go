package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/cryptofolio/cryptofolio/domain/entity"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	FindAll(ctx context.Context, offset, limit int) ([]*entity.User, int, error)
}
