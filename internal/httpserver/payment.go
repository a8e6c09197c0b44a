package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/service"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create")

	var req transport.PaymentRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "payment_create_error", msg, err)
	}

	p, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "payment_create_error", "Payment", err)
	}

	l.Info("payment_create_success", "payment_id", p.PaymentID)
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHTTP) GetPayments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "payment_list_error", "Payment", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *PaymentHTTP) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.get")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "payment_get_error", "id is not a positive integer", err)
	}

	p, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "payment_get_error", "Payment", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHTTP) UpdatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.update")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "payment_update_error", "id is not a positive integer", err)
	}

	var req transport.PaymentRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "payment_update_error", msg, err)
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return fail(l, "payment_update_error", "Payment", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Updated a payment entry"})
}

func (h *PaymentHTTP) DeletePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "payment_delete_error", "id is not a positive integer", err)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "payment_delete_error", "Payment", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Deleted a payment entry"})
}
