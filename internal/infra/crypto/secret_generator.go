package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"registrar/internal/domain/service"
	"registrar/internal/errors"
)

const (
	// seedSize is the number of random bytes mixed into every token.
	seedSize = 32

	// attributeSeparator terminates each attribute so ("ab","c") and ("a","bc") differ.
	attributeSeparator = 0x00
)

type secretGenerator struct {
	random service.RandomSource
}

// NewSecretGenerator creates a SHA-256 based token generator reading its seed from random.
func NewSecretGenerator(random service.RandomSource) service.SecretGenerator {
	return &secretGenerator{random: random}
}

// Generate returns hex(SHA-256(seed || attr0 || 0x00 || attr1 || 0x00 ...)).
func (g *secretGenerator) Generate(attributes []string) (string, error) {
	if g.random == nil {
		return "", errors.New("random source is not configured")
	}

	seed := make([]byte, seedSize)
	if _, err := io.ReadFull(g.random, seed); err != nil {
		return "", errors.Wrap(err, "read random seed")
	}

	digest := sha256.New()
	digest.Write(seed)
	for _, attr := range attributes {
		digest.Write([]byte(attr))
		digest.Write([]byte{attributeSeparator})
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

func (g *secretGenerator) TokenLength() int {
	return hex.EncodedLen(sha256.Size)
}
