// Package crypto provides the secure random source and the confirmation
// secret generator.
package crypto

import (
	"crypto/rand"

	"registrar/internal/domain/service"
)

type systemRandom struct{}

// NewRandomSource returns the operating system CSPRNG. It is safe for
// concurrent use and lives for the whole process.
func NewRandomSource() service.RandomSource {
	return systemRandom{}
}

func (systemRandom) Read(p []byte) (int, error) {
	return rand.Read(p)
}
