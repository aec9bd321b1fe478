package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrHashing is the umbrella error for every failure of a [PasswordHasher].
	ErrHashing = errors.New("password hashing failed")

	// ErrMalformedHash is returned by Verify when the stored hash cannot be
	// decoded. It matches [ErrHashing] via [errors.Is].
	ErrMalformedHash = fmt.Errorf("%w: malformed hash", ErrHashing)

	// ErrIncompatibleVersion is returned by Verify when the stored hash was
	// produced by a different Argon2 version.
	ErrIncompatibleVersion = fmt.Errorf("%w: incompatible argon2 version", ErrMalformedHash)
)
