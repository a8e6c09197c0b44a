package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/service"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.signup")

	var req transport.SignupRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "signup_error", msg, err)
	}

	user, err := h.Svc.Signup(ctx, req)
	if err != nil {
		return fail(l, "signup_error", "User", err)
	}

	l.Info("signup_success", "users_id", user.UsersID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req transport.LoginRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "login_error", msg, err)
	}

	res, err := h.Svc.Login(ctx, req)
	if err != nil {
		return fail(l, "login_error", "User", err)
	}

	l.Info("login_success", "users_id", res.UserID, "role", res.Role)
	return c.JSON(http.StatusOK, res)
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	users, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "user_list_error", "User", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "user_get_error", "id is not a positive integer", err)
	}

	user, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "user_get_error", "User", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "user_update_error", "id is not a positive integer", err)
	}

	var req transport.UpdateUserRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "user_update_error", msg, err)
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return fail(l, "user_update_error", "User", err)
	}

	l.Info("user_update_success", "users_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "User details updated successfully"})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "user_delete_error", "id is not a positive integer", err)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "user_delete_error", "User", err)
	}

	l.Info("user_delete_success", "users_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Deleted a user"})
}
