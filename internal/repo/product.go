package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/models"
)

func (r *GormRepo) CreateProductWithImage(ctx context.Context, prod *models.Product, img *models.Image) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prod).Error; err != nil {
			return translate(err)
		}
		if img == nil {
			return nil
		}
		img.ProductID = prod.ProductID
		return translate(tx.Create(img).Error)
	})
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.ProductWithImage, error) {
	items := make([]models.ProductWithImage, 0)
	if err := r.DB.WithContext(ctx).
		Table("product").
		Select("product.*, " + firstImageFilename + " AS product_image_filename").
		Order("product.product_id ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.ProductWithImage, error) {
	var items []models.ProductWithImage
	if err := r.DB.WithContext(ctx).
		Table("product").
		Select("product.*, "+firstImageFilename+" AS product_image_filename").
		Where("product.product_id = ?", id).
		Limit(1).
		Scan(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &items[0], nil
}

func (r *GormRepo) ProductExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("product_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProduct replaces every column. A missing id updates nothing and is not an error.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, p models.Product) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).Where("product_id = ?", id).Updates(map[string]any{
		"product_name":        p.ProductName,
		"product_description": p.ProductDescription,
		"price":               p.Price,
		"availability":        p.Availability,
	})
	return res.RowsAffected, translate(res.Error)
}

// DeleteProductCascade removes the product with its payments, orders and images.
// It returns the filenames of the removed images.
func (r *GormRepo) DeleteProductCascade(ctx context.Context, id uint) ([]string, error) {
	var filenames []string
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Image{}).Where("product_id = ?", id).Pluck("filename", &filenames).Error; err != nil {
			return err
		}

		productOrders := tx.Model(&models.Order{}).Select("order_id").Where("product_id = ?", id)
		if err := tx.Where("product_id = ? OR order_id IN (?)", id, productOrders).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Where("product_id = ?", id).Delete(&models.Product{}).Error
	})
	if err != nil {
		return nil, err
	}
	return filenames, nil
}

func (r *GormRepo) CreateImage(ctx context.Context, img *models.Image) error {
	return translate(r.DB.WithContext(ctx).Create(img).Error)
}

func (r *GormRepo) ListProductImages(ctx context.Context, productID uint) ([]models.Image, error) {
	images := make([]models.Image, 0)
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Order("image_id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
