package service

import (
	"errors"

	"github.com/Raphalinho91/user-accounts/internal/app"
)

// Business outcomes returned by [AccountService]. They are passed to the
// transport unmodified; every other failure is logged and replaced by
// [ErrInternal].
var (
	ErrConflict           = errors.New(app.MsgUsernameAlreadyExists)
	ErrNotFound           = errors.New(app.MsgUserNotFound)
	ErrInvalidCredentials = errors.New(app.MsgInvalidUsernamePassword)
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New(app.MsgInvalidDataProvided)
	ErrInternal           = errors.New(app.MsgInternalServerError)
)

// ErrInvalidToken is returned by [TokenService.Verify] for any token that
// fails signature, structure, issuer or expiry checks.
var ErrInvalidToken = errors.New(app.MsgTokenIsExpiredOrInvalid)

// ErrIdentityMismatch is returned when a valid token belongs to another
// account. It matches [ErrUnauthorized] via [errors.Is].
var ErrIdentityMismatch = &identityMismatchError{}

type identityMismatchError struct{}

func (e *identityMismatchError) Error() string { return app.MsgIdentityMismatch }

func (e *identityMismatchError) Is(target error) bool { return target == ErrUnauthorized }
