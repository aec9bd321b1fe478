package service

import (
	"context"
	"time"

	"github.com/Raphalinho91/user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService implements the account use cases. Methods are safe for
// concurrent use.
type AccountService interface {
	// SignUp registers a new account and returns its public view.
	SignUp(ctx context.Context, username, password string) (models.PublicUser, error)
	// LogIn checks the credentials and issues an access token.
	LogIn(ctx context.Context, username, password string) (models.PublicUser, models.Token, error)
	// FindAll returns every stored account, password hashes included.
	FindAll(ctx context.Context) ([]models.User, error)
	// FindOne returns the stored account with the given id.
	FindOne(ctx context.Context, userID int64) (models.User, error)
	// Update changes username and/or password of the token owner's account.
	Update(ctx context.Context, update models.UpdateUser) (models.PublicUser, error)
	// Remove deletes an account.
	Remove(ctx context.Context, remove models.RemoveUser) error
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(ctx context.Context, userID int64, username string, ttl time.Duration) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
