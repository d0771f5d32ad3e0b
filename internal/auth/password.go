package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type hashKind int

const (
	hashArgon2id hashKind = iota + 1
	hashBcrypt
)

func detectHash(hash string) (hashKind, error) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		if _, _, _, err := argon2id.DecodeHash(hash); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedHash, err)
		}

		return hashArgon2id, nil
	case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedHash, err)
		}

		return hashBcrypt, nil
	default:
		return 0, ErrUnsupportedHash
	}
}

// HashPassword hashes password with argon2id and the default parameters.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// comparePassword reports whether password matches hash. The comparison is constant time.
func comparePassword(kind hashKind, password, hash string) bool {
	switch kind {
	case hashArgon2id:
		match, err := argon2id.ComparePasswordAndHash(password, hash)
		if err != nil {
			log.Error().Err(err).Msg("failed to verify password")
			return false
		}

		return match
	case hashBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Err(err).Msg("failed to verify password")
		}

		return err == nil
	default:
		return false
	}
}
