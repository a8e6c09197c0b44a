package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/tokens"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	ctxClaims = "claims"
)

type identityKey struct{}

type Identity struct {
	UserID uint
	Role   string
}

// Guard rejects requests without a valid "Authorization: Bearer <token>" header.
func Guard(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ctxClaims,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Parse(auth, secret)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(ctxClaims).(*tokens.Claims)
			if !ok {
				return
			}
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)

			ctx := context.WithValue(c.Request().Context(), identityKey{}, Identity{UserID: claims.UserID, Role: claims.Role})
			l := logging.FromContext(ctx).With("user_id", claims.UserID)
			c.SetRequest(c.Request().WithContext(logging.IntoContext(ctx, l)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l := logging.FromContext(c.Request().Context()).With("middleware", "auth.guard")
			reason := unauthorizedReason(c, err)
			l.Warn("auth_failed", "status", 401, "reason", reason, "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, reason)
		},
	})
}

func unauthorizedReason(c echo.Context, err error) string {
	switch {
	case c.Request().Header.Get(echo.HeaderAuthorization) == "":
		return "missing bearer token"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	default:
		return "invalid token"
	}
}

func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(CtxUserID).(uint)
	return id, ok && id != 0
}

func Role(c echo.Context) string {
	role, _ := c.Get(CtxRole).(string)
	return role
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
