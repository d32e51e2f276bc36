package service

import "io"

// RandomSource is the process-wide cryptographically secure random generator.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	io.Reader
}

// SecretGenerator issues unguessable confirmation tokens.
type SecretGenerator interface {
	// Generate mixes a fresh random seed with the ordered attributes and returns
	// a fixed-width lowercase hexadecimal token.
	Generate(attributes []string) (string, error)

	// TokenLength is the exact length of every token produced by Generate.
	TokenLength() int
}
