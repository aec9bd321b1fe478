package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher performs one-way password hashing and verification.
//
// Implementations embed every parameter needed for verification (algorithm,
// cost settings and salt) in the encoded hash, so a stored hash stays
// verifiable after the configured parameters change.
type PasswordHasher interface {
	// Hash derives a self-describing encoded hash from plaintext using a fresh
	// random salt. Two calls with the same input return different strings.
	// Fails with [ErrHashing] if the random source or the algorithm fails.
	Hash(plaintext string) (string, error)

	// Verify recomputes the hash of plaintext with the parameters and salt
	// embedded in encoded and compares both in constant time.
	// A mismatch returns false with a nil error; only a malformed encoded
	// value yields an error ([ErrMalformedHash]).
	Verify(encoded, plaintext string) (bool, error)
}
