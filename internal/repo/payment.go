package repo

import (
	"context"

	"github.com/Skotchmaster/rental_shop/internal/models"
)

func (r *GormRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

func (r *GormRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	items := make([]models.Payment, 0)
	if err := r.DB.WithContext(ctx).Order("payment_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("payment_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) UpdatePayment(ctx context.Context, id uint, p models.Payment) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.Payment{}).Where("payment_id = ?", id).Updates(map[string]any{
		"order_id":         p.OrderID,
		"users_id":         p.UsersID,
		"product_id":       p.ProductID,
		"payment_date":     p.PaymentDate,
		"amount":           p.Amount,
		"status":           p.Status,
		"payment_mode":     p.PaymentMode,
		"reference_number": p.ReferenceNumber,
	})
	return res.RowsAffected, translate(res.Error)
}

func (r *GormRepo) DeletePayment(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Where("payment_id = ?", id).Delete(&models.Payment{}).Error
}
