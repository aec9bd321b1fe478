// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/Raphalinho91/user-accounts/internal/config"
	"golang.org/x/crypto/argon2"
)

// argonParams holds the Argon2id tuning parameters of a single hash.
type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// argon2idHasher is the private implementation of [PasswordHasher].
type argon2idHasher struct {
	params argonParams
	rand   io.Reader
}

// NewPasswordHasher constructs an Argon2id [PasswordHasher] with the cost
// parameters from cfg. Salts are read from the OS CSPRNG.
func NewPasswordHasher(cfg config.PasswordHashing) PasswordHasher {
	return newArgon2idHasher(cfg, rand.Reader)
}

func newArgon2idHasher(cfg config.PasswordHashing, random io.Reader) *argon2idHasher {
	return &argon2idHasher{
		params: argonParams{
			memory:      cfg.Memory,
			iterations:  cfg.Iterations,
			parallelism: cfg.Parallelism,
			saltLength:  cfg.SaltLength,
			keyLength:   cfg.KeyLength,
		},
		rand: random,
	}
}

// Hash implements [PasswordHasher]. The result has the PHC form
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64.
func (h *argon2idHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.params.saltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: reading salt: %v", ErrHashing, err)
	}

	key := argon2.IDKey(
		[]byte(plaintext),
		salt,
		h.params.iterations,
		h.params.memory,
		h.params.parallelism,
		h.params.keyLength,
	)

	return encodeHash(h.params, salt, key), nil
}

// Verify implements [PasswordHasher].
func (h *argon2idHasher) Verify(encoded, plaintext string) (bool, error) {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey(
		[]byte(plaintext),
		salt,
		params.iterations,
		params.memory,
		params.parallelism,
		params.keyLength,
	)

	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func encodeHash(p argonParams, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory, p.iterations, p.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// decodeHash splits a PHC string into its parameters, salt and key.
func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var p argonParams

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, ErrMalformedHash
	}

	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: version: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("%w: parameters: %v", ErrMalformedHash, err)
	}
	if p.memory == 0 || p.iterations == 0 || p.parallelism == 0 {
		return p, nil, nil, fmt.Errorf("%w: zero parameter", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, fmt.Errorf("%w: salt", ErrMalformedHash)
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, fmt.Errorf("%w: key", ErrMalformedHash)
	}

	p.saltLength = uint32(len(salt))
	p.keyLength = uint32(len(key))

	return p, salt, key, nil
}
