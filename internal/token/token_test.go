package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := svc.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestVerifyRejectsDifferentKey(t *testing.T) {
	tok, err := NewService("key-one").Issue("a@x.com")
	require.NoError(t, err)

	_, err = NewService("key-two").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	svc := NewService("test-secret")
	tok, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	// Swap the payload segment for one claiming a different email.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "attacker@x.com",
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	tampered := splitSegment(tok, 0) + "." + splitSegment(forged, 1) + "." + splitSegment(tok, 2)
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	svc := NewService("test-secret")

	// Same key, different HMAC variant: the verifier pins HS256.
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@x.com",
		"iat":   time.Now().Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Unsigned token.
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	svc := NewService("test-secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyRejectsMissingEmailClaim(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "123",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func splitSegment(tok string, i int) string {
	return strings.Split(tok, ".")[i]
}
