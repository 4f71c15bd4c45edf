package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	codec := NewCodec()
	payload := Payload{UserID: "user-1", Role: "user"}

	signed, err := codec.Generate(payload, "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	decoded, err := codec.Verify(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	codec := NewCodec()

	signed, err := codec.Generate(Payload{UserID: "user-1"}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = codec.Verify(signed, "other-secret")
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	codec := NewCodec()

	signed, err := codec.Generate(Payload{UserID: "user-1"}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = codec.Verify(signed, "secret")
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec := NewCodec()
	_, err := codec.Verify("not.a.token", "secret")
	assert.Error(t, err)
}

func TestEmailOnlyPayloadSurvives(t *testing.T) {
	codec := NewCodec()

	signed, err := codec.Generate(Payload{Email: "alice@x.com"}, "secret", time.Hour)
	require.NoError(t, err)

	decoded, err := codec.Verify(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", decoded.Email)
	assert.Empty(t, decoded.UserID)
	assert.Empty(t, decoded.Role)
}

func TestExtractFromHeader(t *testing.T) {
	codec := NewCodec()

	assert.Equal(t, "abc123", codec.ExtractFromHeader("Bearer abc123"))
	assert.Equal(t, "", codec.ExtractFromHeader(""))
	assert.Equal(t, "", codec.ExtractFromHeader("abc123"))
	assert.Equal(t, "", codec.ExtractFromHeader("Basic abc123"))
	assert.Equal(t, "", codec.ExtractFromHeader("Bearer abc 123"))
}
