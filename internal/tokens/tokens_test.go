package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-jwt-secret")

func TestIssue_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	now := time.Now()
	token, exp, err := Issue(42, "admin", secret, time.Hour, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	token, _, err := Issue(1, "user", secret, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	claims, err := Parse(token, secret)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := Issue(1, "user", []byte("other-secret"), time.Hour, time.Now())
	require.NoError(t, err)

	_, err = Parse(token, secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Parse(token, secret)
	require.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Parse("not-a-valid-jwt", secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
