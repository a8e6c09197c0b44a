package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/rental_shop/internal/middleware/auth"
	"github.com/Skotchmaster/rental_shop/internal/tokens"
)

var secret = []byte("guard-secret")

func newGuardedEcho() *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		id, ok := auth.UserID(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "no identity")
		}
		ident, _ := auth.FromContext(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]any{
			"userId":    id,
			"role":      auth.Role(c),
			"ctxUserId": ident.UserID,
		})
	}, auth.Guard(secret))
	return e
}

func doGet(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGuard_ValidToken(t *testing.T) {
	e := newGuardedEcho()
	token, _, err := tokens.Issue(7, "user", secret, time.Hour, time.Now())
	require.NoError(t, err)

	rec := doGet(e, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["userId"])
	assert.EqualValues(t, 7, body["ctxUserId"])
	assert.Equal(t, "user", body["role"])
}

func TestGuard_Rejects(t *testing.T) {
	expired, _, err := tokens.Issue(7, "user", secret, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, _, err := tokens.Issue(7, "admin", []byte("someone-else"), time.Hour, time.Now())
	require.NoError(t, err)
	valid, _, err := tokens.Issue(7, "user", secret, time.Hour, time.Now())
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + valid,
		"malformed":      "Bearer not.a.token",
		"expired":        "Bearer " + expired,
		"wrong secret":   "Bearer " + foreign,
	}

	e := newGuardedEcho()
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doGet(e, header)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}
}
