package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Skotchmaster/rental_shop/internal/events"
	"github.com/Skotchmaster/rental_shop/internal/filestore"
	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/models"
	"github.com/Skotchmaster/rental_shop/internal/repo"
	"github.com/Skotchmaster/rental_shop/internal/transport"
	"github.com/Skotchmaster/rental_shop/internal/util"
)

const ImageField = "image"

type ProductIndex interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type ProductService struct {
	Repo   *repo.GormRepo
	Files  *filestore.Store
	Events events.Publisher
	Index  ProductIndex
}

// Create stores the image, then inserts product and image rows together.
// The stored file is removed again if the insert fails.
func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest, fh *multipart.FileHeader) (*models.Product, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: product_name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if fh == nil {
		return nil, fmt.Errorf("%w: image required", ErrValidation)
	}

	up, err := s.Files.Save(ImageField, fh)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	prod := &models.Product{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		Price:              req.Price,
		Availability:       req.Availability,
	}
	img := &models.Image{
		Filename: up.Filename,
		Filepath: up.Path,
		Mimetype: up.Mimetype,
		Size:     up.Size,
	}

	if err := s.Repo.CreateProductWithImage(ctx, prod, img); err != nil {
		if rmErr := s.Files.Remove(up.Filename); rmErr != nil {
			logging.FromContext(ctx).Warn("remove_orphan_image_failed", "filename", up.Filename, "error", rmErr)
		}
		return nil, mapRepoErr(err)
	}

	s.index(ctx, *prod)
	publish(ctx, s.Events, events.TopicProduct, prod.ProductID, "product_created", map[string]any{
		"product_id":   prod.ProductID,
		"product_name": prod.ProductName,
		"price":        prod.Price,
		"filename":     img.Filename,
	})
	return prod, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductWithImage, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.ProductWithImage, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return fmt.Errorf("%w: product_name required", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	prod := models.Product{
		ProductID:          id,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		Price:              req.Price,
		Availability:       req.Availability,
	}
	n, err := s.Repo.UpdateProduct(ctx, id, prod)
	if err != nil {
		return mapRepoErr(err)
	}
	if n == 0 {
		return nil
	}

	s.index(ctx, prod)
	publish(ctx, s.Events, events.TopicProduct, id, "product_updated", map[string]any{
		"product_id":   id,
		"product_name": prod.ProductName,
		"price":        prod.Price,
	})
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	files, err := s.Repo.DeleteProductCascade(ctx, id)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx)
	for _, name := range files {
		if err := s.Files.Remove(name); err != nil && !errors.Is(err, filestore.ErrNotFound) {
			l.Warn("remove_image_failed", "filename", name, "error", err)
		}
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			l.Warn("search_delete_failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicProduct, id, "product_deleted", map[string]any{"product_id": id})
	return nil
}

// AddImage attaches a further image to an existing product.
func (s *ProductService) AddImage(ctx context.Context, productID uint, fh *multipart.FileHeader) (*models.Image, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if fh == nil {
		return nil, fmt.Errorf("%w: image required", ErrValidation)
	}

	ok, err := s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}

	up, err := s.Files.Save(ImageField, fh)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	img := &models.Image{
		Filename:  up.Filename,
		Filepath:  up.Path,
		Mimetype:  up.Mimetype,
		Size:      up.Size,
		ProductID: productID,
	}
	if err := s.Repo.CreateImage(ctx, img); err != nil {
		if rmErr := s.Files.Remove(up.Filename); rmErr != nil {
			logging.FromContext(ctx).Warn("remove_orphan_image_failed", "filename", up.Filename, "error", rmErr)
		}
		return nil, mapRepoErr(err)
	}
	return img, nil
}

// ImagePath resolves a stored image by filename.
func (s *ProductService) ImagePath(name string) (string, error) {
	p, err := s.Files.Path(name)
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}
	return p, nil
}

func (s *ProductService) Search(ctx context.Context, query string, page, size int) (int64, []models.Product, error) {
	if s.Index == nil {
		return 0, nil, ErrSearchDisabled
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, nil, fmt.Errorf("%w: q required", ErrValidation)
	}
	from, limit := util.Calculate(page, size)
	return s.Index.Search(ctx, query, from, limit)
}

func (s *ProductService) index(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", p.ProductID, "error", err)
	}
}
