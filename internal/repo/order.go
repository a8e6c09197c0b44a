package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return translate(r.DB.WithContext(ctx).Create(order).Error)
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	items := make([]models.OrderSummary, 0)
	if err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.order_id, orders.start_date, orders.end_date, orders.status, product.price, users.username, orders.product_id, orders.users_id").
		Joins("JOIN product ON product.product_id = orders.product_id").
		Joins("JOIN users ON users.users_id = orders.users_id").
		Order("orders.order_id ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ListUserOrders(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	items := make([]models.UserOrder, 0)
	if err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.order_id, product.product_name, product.product_description, orders.start_date, orders.end_date, orders.status, product.price, "+firstImageFilename+" AS filename").
		Joins("JOIN product ON product.product_id = orders.product_id").
		Where("orders.users_id = ?", userID).
		Order("orders.order_id ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Where("order_id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateOrder(ctx context.Context, id uint, o models.Order) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("order_id = ?", id).Updates(map[string]any{
		"start_date": o.StartDate,
		"end_date":   o.EndDate,
		"status":     o.Status,
		"users_id":   o.UsersID,
		"product_id": o.ProductID,
	})
	return res.RowsAffected, translate(res.Error)
}

// DeleteOrder removes the order and the payments made for it.
func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&models.Order{}).Error
	})
}
