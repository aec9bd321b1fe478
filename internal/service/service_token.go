package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/Raphalinho91/user-accounts/models"
)

// tokenService is the HS256 implementation of [TokenService].
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in and required of every token.
	issuer string

	// now is the clock used for iat, exp and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// TokenOption customises a [TokenService] built by [NewTokenService].
type TokenOption func(*tokenService)

// WithClock replaces the wall clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService constructs a [TokenService] signing with cfg.TokenSignKey
// and stamping cfg.TokenIssuer.
func NewTokenService(cfg config.App, logger *logger.Logger, opts ...TokenOption) TokenService {
	s := &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		now:     time.Now,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Issue signs a token for userID valid for ttl from now.
func (s *tokenService) Issue(ctx context.Context, userID int64, username string, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:        s.issuer,
		UserID:        userID,
		Username:      username,
		TokenDuration: ttl,
		SignKey:       s.signKey,
		Now:           s.now(),
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// Verify checks tokenString and returns its claims. Every failure is
// reported as [ErrInvalidToken]; the cause is only logged.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Debug().Err(err).Msg("token verification failed")
		return models.Claims{}, ErrInvalidToken
	}

	return claims, nil
}
