package token_test

import (
	"testing"
	"time"

	"foodorder/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecSignAndParse(t *testing.T) {
	codec := token.NewCodec("test-secret")
	tokenID := uuid.New()

	signed, err := codec.Sign(tokenID, 42, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsedID, err := codec.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, tokenID, parsedID)
}

func TestCodecParse_WrongSecret_ReturnsError(t *testing.T) {
	signer := token.NewCodec("test-secret")
	verifier := token.NewCodec("other-secret")

	signed, err := signer.Sign(uuid.New(), 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestCodecParse_ExpiredToken_ReturnsError(t *testing.T) {
	codec := token.NewCodec("test-secret")

	signed, err := codec.Sign(uuid.New(), 42, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Parse(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestCodecParse_Garbage_ReturnsError(t *testing.T) {
	codec := token.NewCodec("test-secret")

	_, err := codec.Parse("not.a.token")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)

	_, err = codec.Parse("")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}
