package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/service"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type RoleHTTP struct {
	Svc *service.RoleService
}

func (h *RoleHTTP) GetRoles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.list")

	roles, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "role_list_error", "Role", err)
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *RoleHTTP) CreateRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.create")

	var req transport.CreateRoleRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "role_create_error", msg, err)
	}

	role, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "role_create_error", "Role", err)
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *RoleHTTP) ReplaceUserRoles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_roles.replace")

	userID, err := parseID(c, "userId")
	if err != nil {
		return badRequest(l, "user_roles_replace_error", "userId is not a positive integer", err)
	}

	var req transport.ReplaceUserRolesRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "user_roles_replace_error", msg, err)
	}

	if err := h.Svc.ReplaceUserRoles(ctx, userID, req.RolesID); err != nil {
		return fail(l, "user_roles_replace_error", "User", err)
	}

	l.Info("user_roles_replace_success", "users_id", userID, "roles", req.RolesID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "User roles updated successfully"})
}

func (h *RoleHTTP) DeleteUserRoles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_roles.delete")

	userID, err := parseID(c, "userId")
	if err != nil {
		return badRequest(l, "user_roles_delete_error", "userId is not a positive integer", err)
	}

	if err := h.Svc.DeleteUserRoles(ctx, userID); err != nil {
		return fail(l, "user_roles_delete_error", "User", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "User's role deleted successfully"})
}
