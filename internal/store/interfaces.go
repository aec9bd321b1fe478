package store

import (
	"context"

	"github.com/Raphalinho91/user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Usernames are unique across all
// records and ids are assigned by the database.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned id.
	// Fails with [ErrUsernameAlreadyExists] on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername fails with [ErrNoUserWasFound] when absent.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID fails with [ErrNoUserWasFound] when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// SaveUser overwrites the username and password of the record with
	// user.UserID and returns the stored state.
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUserByID fails with [ErrNoUserWasFound] when nothing was deleted.
	DeleteUserByID(ctx context.Context, userID int64) error
	// ListUsers returns every account ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
