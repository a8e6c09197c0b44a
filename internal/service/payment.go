package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/rental_shop/internal/events"
	"github.com/Skotchmaster/rental_shop/internal/models"
	"github.com/Skotchmaster/rental_shop/internal/repo"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type PaymentService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func paymentFromRequest(req transport.PaymentRequest) (models.Payment, error) {
	if req.OrderID == 0 || req.UsersID == 0 || req.ProductID == 0 {
		return models.Payment{}, fmt.Errorf("%w: order_id, users_id and product_id required", ErrValidation)
	}
	if req.Amount < 0 {
		return models.Payment{}, fmt.Errorf("%w: amount must be >= 0", ErrValidation)
	}
	date, err := ParseDate("payment_date", req.PaymentDate)
	if err != nil {
		return models.Payment{}, err
	}
	return models.Payment{
		OrderID:         req.OrderID,
		UsersID:         req.UsersID,
		ProductID:       req.ProductID,
		PaymentDate:     date,
		Amount:          req.Amount,
		Status:          req.Status,
		PaymentMode:     req.PaymentMode,
		ReferenceNumber: req.ReferenceNumber,
	}, nil
}

func (s *PaymentService) Create(ctx context.Context, req transport.PaymentRequest) (*models.Payment, error) {
	p, err := paymentFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreatePayment(ctx, &p); err != nil {
		return nil, mapRepoErr(err)
	}
	publish(ctx, s.Events, events.TopicPayment, p.PaymentID, "payment_created", p)
	return &p, nil
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.ListPayments(ctx)
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	p, err := s.Repo.GetPayment(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, id uint, req transport.PaymentRequest) error {
	p, err := paymentFromRequest(req)
	if err != nil {
		return err
	}
	p.PaymentID = id

	n, err := s.Repo.UpdatePayment(ctx, id, p)
	if err != nil {
		return mapRepoErr(err)
	}
	if n > 0 {
		publish(ctx, s.Events, events.TopicPayment, id, "payment_updated", p)
	}
	return nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeletePayment(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.TopicPayment, id, "payment_deleted", map[string]any{"payment_id": id})
	return nil
}
