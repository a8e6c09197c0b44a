package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/middleware/auth"
	"github.com/Skotchmaster/rental_shop/internal/service"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

// CreateOrder books for the caller; users_id comes from the token, never the body.
func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	userID, ok := auth.UserID(c)
	if !ok {
		l.Warn("order_create_error", "status", 401, "reason", "no caller identity")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req transport.CreateOrderRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "order_create_error", msg, err)
	}

	order, err := h.Svc.Create(ctx, userID, req)
	if err != nil {
		return fail(l, "order_create_error", "Order", err)
	}

	l.Info("order_create_success", "order_id", order.OrderID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	orders, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "order_list_error", "Order", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_for_user")

	userID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "user_orders_error", "id is not a positive integer", err)
	}

	orders, err := h.Svc.ListForUser(ctx, userID)
	if err != nil {
		return fail(l, "user_orders_error", "Order", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "order_get_error", "id is not a positive integer", err)
	}

	order, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "order_get_error", "Order", err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "order_update_error", "id is not a positive integer", err)
	}

	var req transport.UpdateOrderRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "order_update_error", msg, err)
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return fail(l, "order_update_error", "Order", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Updated an Order"})
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "order_delete_error", "id is not a positive integer", err)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "order_delete_error", "Order", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Deleted an order"})
}
