package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Skotchmaster/rental_shop/internal/events"
	"github.com/Skotchmaster/rental_shop/internal/models"
	"github.com/Skotchmaster/rental_shop/internal/repo"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type OrderService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	s, err := ParseDate("start_date", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ParseDate("end_date", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date before start_date", ErrValidation)
	}
	return s, e, nil
}

func orderStatus(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return models.OrderStatusPending
	}
	return s
}

// Create books a product for the authenticated user.
func (s *OrderService) Create(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: users_id missing", ErrValidation)
	}
	if req.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		StartDate: start,
		EndDate:   end,
		Status:    orderStatus(req.Status),
		UsersID:   userID,
		ProductID: req.ProductID,
	}
	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, mapRepoErr(err)
	}

	publish(ctx, s.Events, events.TopicOrder, order.OrderID, "order_created", order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.OrderSummary, error) {
	return s.Repo.ListOrders(ctx)
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	return s.Repo.ListUserOrders(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return o, nil
}

func (s *OrderService) Update(ctx context.Context, id uint, req transport.UpdateOrderRequest) error {
	if req.UsersID == 0 || req.ProductID == 0 {
		return fmt.Errorf("%w: users_id and product_id required", ErrValidation)
	}
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	order := models.Order{
		OrderID:   id,
		StartDate: start,
		EndDate:   end,
		Status:    orderStatus(req.Status),
		UsersID:   req.UsersID,
		ProductID: req.ProductID,
	}
	n, err := s.Repo.UpdateOrder(ctx, id, order)
	if err != nil {
		return mapRepoErr(err)
	}
	if n > 0 {
		publish(ctx, s.Events, events.TopicOrder, id, "order_updated", order)
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.TopicOrder, id, "order_deleted", map[string]any{"order_id": id})
	return nil
}
