package auth

import (
	"strings"

	"registrar/config"
	"registrar/internal/domain/constants"
	"registrar/internal/domain/service"
	"registrar/internal/errors"
)

// multiHasher hashes with the configured algorithm and verifies any supported
// format, so stored credentials survive an algorithm switch.
type multiHasher struct {
	primary service.PasswordHasher
	bcrypt  service.PasswordHasher
	argon2  service.PasswordHasher
}

// NewPasswordHasher builds the PasswordHasher selected by auth.passwordAlgorithm.
func NewPasswordHasher(cfg *config.Config, random service.RandomSource) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	h := &multiHasher{
		bcrypt: NewBcryptHasherWithCost(authCfg.BcryptCost),
		argon2: NewArgon2Hasher(authCfg.Argon2, random),
	}

	switch authCfg.PasswordAlgorithm {
	case "", constants.PasswordAlgorithmBcrypt:
		h.primary = h.bcrypt
	case constants.PasswordAlgorithmArgon2id:
		h.primary = h.argon2
	default:
		return nil, errors.Errorf("unsupported password algorithm: %s", authCfg.PasswordAlgorithm)
	}

	return h, nil
}

func (h *multiHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *multiHasher) Check(password, hash string) bool {
	if strings.HasPrefix(hash, argon2Prefix) {
		return h.argon2.Check(password, hash)
	}

	return h.bcrypt.Check(password, hash)
}
