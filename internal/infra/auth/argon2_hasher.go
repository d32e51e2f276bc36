package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"registrar/config"
	"registrar/internal/domain/service"
	"registrar/internal/errors"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix     = "$argon2id$"
	argon2SaltLength = 16
)

var errInvalidArgon2Hash = errors.New("argon2: invalid encoded hash format")

// defaultArgon2 mirrors the OWASP baseline of 64 MiB, 3 passes and 4 lanes.
var defaultArgon2 = config.Argon2Config{
	Time:    3,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

type argon2Hasher struct {
	params config.Argon2Config
	random service.RandomSource
}

// NewArgon2Hasher creates an argon2id hasher whose salts come from random.
// Zero-valued parameters take the defaults.
func NewArgon2Hasher(params config.Argon2Config, random service.RandomSource) service.PasswordHasher {
	if params.Time == 0 {
		params.Time = defaultArgon2.Time
	}
	if params.Memory == 0 {
		params.Memory = defaultArgon2.Memory
	}
	if params.Threads == 0 {
		params.Threads = defaultArgon2.Threads
	}
	if params.KeyLen == 0 {
		params.KeyLen = defaultArgon2.KeyLen
	}

	return &argon2Hasher{params: params, random: random}
}

// Hash returns a PHC string: $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", errors.Wrap(err, "argon2: generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Check(password, hash string) bool {
	params, salt, expected, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1
}

func decodeArgon2Hash(encoded string) (config.Argon2Config, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return config.Argon2Config{}, nil, nil, errInvalidArgon2Hash
	}

	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return config.Argon2Config{}, nil, nil, errors.Errorf("argon2: unsupported version %q", parts[2])
	}

	var params config.Argon2Config
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return config.Argon2Config{}, nil, nil, errors.Wrap(errInvalidArgon2Hash, err.Error())
	}
	if params.Memory == 0 || params.Time == 0 || params.Threads == 0 {
		return config.Argon2Config{}, nil, nil, errInvalidArgon2Hash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return config.Argon2Config{}, nil, nil, errors.Wrap(err, "argon2: decode salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return config.Argon2Config{}, nil, nil, errInvalidArgon2Hash
	}
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}
