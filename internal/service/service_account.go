// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package service

import (
	"context"
	"errors"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/crypto"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/store"
	"github.com/Raphalinho91/user-accounts/models"
)

// accountService is the concrete implementation of [AccountService].
// It is stateless apart from its read-only dependencies.
type accountService struct {
	// userRepository is the data-access layer used to persist accounts.
	userRepository store.UserRepository

	// hasher derives and checks password hashes.
	hasher crypto.PasswordHasher

	// tokens issues tokens on login and verifies them on update/remove.
	tokens TokenService

	// tokenDuration is the lifetime of tokens issued on login.
	tokenDuration time.Duration

	// requireTokenOnRemove makes Remove check token ownership like Update.
	requireTokenOnRemove bool

	logger *logger.Logger
}

// NewAccountService constructs an [AccountService].
func NewAccountService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens TokenService,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		userRepository:       userRepository,
		hasher:               hasher,
		tokens:               tokens,
		tokenDuration:        cfg.TokenDuration,
		requireTokenOnRemove: cfg.RequireTokenOnRemove,
		logger:               logger,
	}
}

// SignUp creates an account for username.
//
// Returns:
//   - ErrConflict if the username is taken, including when a concurrent
//     signup wins the race and the store rejects the insert.
//   - ErrInternal for hashing or storage failures.
func (s *accountService) SignUp(ctx context.Context, username, password string) (models.PublicUser, error) {
	_, err := s.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return models.PublicUser{}, ErrConflict
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.PublicUser{}, s.internal(ctx, err, "user lookup before signup failed")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.PublicUser{}, s.internal(ctx, err, "password hashing failed")
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.PublicUser{}, ErrConflict
	}
	if err != nil {
		return models.PublicUser{}, s.internal(ctx, err, "user creation failed")
	}

	logger.FromContextOr(ctx, s.logger).Info().Int64("user_id", created.UserID).Msg("user signed up")
	return created.Public(), nil
}

// LogIn verifies the credentials and issues a token valid for the
// configured token duration.
//
// Returns ErrNotFound for an unknown username and ErrInvalidCredentials for
// a wrong password. No token is issued in either case.
func (s *accountService) LogIn(ctx context.Context, username, password string) (models.PublicUser, models.Token, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PublicUser{}, models.Token{}, ErrNotFound
	}
	if err != nil {
		return models.PublicUser{}, models.Token{}, s.internal(ctx, err, "user lookup on login failed")
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return models.PublicUser{}, models.Token{}, s.internal(ctx, err, "password verification failed")
	}
	if !ok {
		logger.FromContextOr(ctx, s.logger).Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.PublicUser{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.UserID, user.Username, s.tokenDuration)
	if err != nil {
		return models.PublicUser{}, models.Token{}, s.internal(ctx, err, "token issuance failed")
	}

	return user.Public(), token, nil
}

// FindAll returns all stored accounts.
func (s *accountService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, s.internal(ctx, err, "listing users failed")
	}

	return users, nil
}

// FindOne returns the account with userID. A non-positive id is
// ErrBadRequest, a missing one ErrNotFound.
func (s *accountService) FindOne(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrBadRequest
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, s.internal(ctx, err, "user lookup by id failed")
	}

	return user, nil
}

// Update applies the optional username and password of update to the
// account owning update.Token. An update with neither field is persisted
// unchanged.
//
// Returns:
//   - ErrUnauthorized if the token does not verify.
//   - ErrIdentityMismatch (an ErrUnauthorized) if the token belongs to
//     another account. The record is not touched.
//   - ErrNotFound if the account does not exist.
//   - ErrConflict if the new username is taken.
func (s *accountService) Update(ctx context.Context, update models.UpdateUser) (models.PublicUser, error) {
	if err := s.authorize(ctx, update.Token, update.UserID); err != nil {
		return models.PublicUser{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, update.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PublicUser{}, ErrNotFound
	}
	if err != nil {
		return models.PublicUser{}, s.internal(ctx, err, "user lookup before update failed")
	}

	if update.Username != nil {
		user.Username = *update.Username
	}

	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return models.PublicUser{}, s.internal(ctx, err, "password hashing failed")
		}
		user.PasswordHash = hash
	}

	saved, err := s.userRepository.SaveUser(ctx, user)
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.PublicUser{}, ErrConflict
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.PublicUser{}, ErrNotFound
	case err != nil:
		return models.PublicUser{}, s.internal(ctx, err, "user update failed")
	}

	return saved.Public(), nil
}

// Remove deletes the account with remove.UserID. Ownership of remove.Token
// is only checked when the service was configured to require it.
func (s *accountService) Remove(ctx context.Context, remove models.RemoveUser) error {
	if s.requireTokenOnRemove {
		if err := s.authorize(ctx, remove.Token, remove.UserID); err != nil {
			return err
		}
	}

	if _, err := s.FindOne(ctx, remove.UserID); err != nil {
		return err
	}

	err := s.userRepository.DeleteUserByID(ctx, remove.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrNotFound
	}
	if err != nil {
		return s.internal(ctx, err, "user deletion failed")
	}

	logger.FromContextOr(ctx, s.logger).Info().Int64("user_id", remove.UserID).Msg("user removed")
	return nil
}

// authorize checks that token verifies and was issued for userID.
func (s *accountService) authorize(ctx context.Context, token string, userID int64) error {
	claims, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return ErrUnauthorized
	}

	if claims.UserID != userID {
		logger.FromContextOr(ctx, s.logger).Warn().
			Int64("token_user_id", claims.UserID).
			Int64("user_id", userID).
			Msg("identity mismatch")
		return ErrIdentityMismatch
	}

	return nil
}

// internal logs err with full detail and returns the opaque ErrInternal.
func (s *accountService) internal(ctx context.Context, err error, msg string) error {
	logger.FromContextOr(ctx, s.logger).Err(err).Msg(msg)
	return ErrInternal
}
