package crypto

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"registrar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool unavailable")
}

var aliceAttributes = []string{"alice", "Alice", "Liddell", "a@x.com", "https://alice.example"}

func TestSecretGenerator_FixedWidthHex(t *testing.T) {
	gen := NewSecretGenerator(NewRandomSource())

	token, err := gen.Generate(aliceAttributes)
	require.NoError(t, err)

	assert.Len(t, token, gen.TokenLength())
	assert.Equal(t, 64, gen.TokenLength())
	assert.Equal(t, token, hexLower(token))
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestSecretGenerator_IdenticalAttributesYieldDistinctTokens(t *testing.T) {
	gen := NewSecretGenerator(NewRandomSource())

	seen := make(map[string]struct{})
	for range 100 {
		token, err := gen.Generate(aliceAttributes)
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token issued twice: %s", token)
		seen[token] = struct{}{}
	}
}

func TestSecretGenerator_BindsAttributes(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, seedSize)

	generate := func(attrs []string) string {
		gen := NewSecretGenerator(bytes.NewReader(seed))
		token, err := gen.Generate(attrs)
		require.NoError(t, err)

		return token
	}

	same := generate(aliceAttributes)
	assert.Equal(t, same, generate(aliceAttributes), "deterministic for a fixed seed")
	assert.NotEqual(t, same, generate([]string{"bob", "Alice", "Liddell", "a@x.com", "https://alice.example"}))
	assert.NotEqual(t, generate([]string{"ab", "c"}), generate([]string{"a", "bc"}))
}

func TestSecretGenerator_RandomSourceFailure(t *testing.T) {
	_, err := NewSecretGenerator(failingReader{}).Generate(aliceAttributes)
	assert.Error(t, err)

	_, err = NewSecretGenerator(bytes.NewReader([]byte{1, 2, 3})).Generate(aliceAttributes)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = NewSecretGenerator(nil).Generate(aliceAttributes)
	assert.Error(t, err)
}

func hexLower(s string) string {
	return string(bytes.ToLower([]byte(s)))
}
