package httpserver

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/service"
	"github.com/Skotchmaster/rental_shop/internal/transport"
	"github.com/Skotchmaster/rental_shop/internal/util"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func formFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	return fh, err
}

func productForm(c echo.Context) (transport.CreateProductRequest, error) {
	req := transport.CreateProductRequest{
		ProductName:        c.FormValue("product_name"),
		ProductDescription: c.FormValue("product_description"),
	}

	price, err := cast.ToFloat64E(strings.TrimSpace(c.FormValue("price")))
	if err != nil {
		return req, errors.New("price must be a number")
	}
	req.Price = price

	if raw := strings.TrimSpace(c.FormValue("availability")); raw != "" {
		avail, err := cast.ToBoolE(raw)
		if err != nil {
			return req, errors.New("availability must be a boolean")
		}
		req.Availability = avail
	}
	return req, nil
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	req, err := productForm(c)
	if err != nil {
		return badRequest(l, "product_create_error", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "product_create_error", validationMessage(err), err)
	}

	fh, err := formFile(c, service.ImageField)
	if err != nil {
		return badRequest(l, "product_create_error", "invalid multipart form", err)
	}

	prod, err := h.Svc.Create(ctx, req, fh)
	if err != nil {
		return fail(l, "product_create_error", "Product", err)
	}

	l.Info("product_create_success", "product_id", prod.ProductID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "product_list_error", "Product", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "product_get_error", "id is not a positive integer", err)
	}

	prod, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "product_get_error", "Product", err)
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "product_update_error", "id is not a positive integer", err)
	}

	var req transport.UpdateProductRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		return badRequest(l, "product_update_error", msg, err)
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return fail(l, "product_update_error", "Product", err)
	}

	l.Info("product_update_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Updated a product"})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "product_delete_error", "id is not a positive integer", err)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "product_delete_error", "Product", err)
	}

	l.Info("product_delete_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Deleted a product"})
}

func (h *ProductHTTP) UploadImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.upload_image")

	productID, err := cast.ToUintE(strings.TrimSpace(c.FormValue("product_id")))
	if err != nil {
		return badRequest(l, "image_upload_error", "product_id must be a positive integer", err)
	}
	fh, err := formFile(c, service.ImageField)
	if err != nil {
		return badRequest(l, "image_upload_error", "invalid multipart form", err)
	}

	img, err := h.Svc.AddImage(ctx, productID, fh)
	if err != nil {
		return fail(l, "image_upload_error", "Product", err)
	}

	l.Info("image_upload_success", "product_id", productID, "filename", img.Filename)
	return c.JSON(http.StatusCreated, img)
}

func (h *ProductHTTP) GetImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_image")

	path, err := h.Svc.ImagePath(c.Param("filename"))
	if err != nil {
		return fail(l, "image_get_error", "Image", err)
	}
	return c.File(path)
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	total, items, err := h.Svc.Search(ctx, c.QueryParam("q"), page, size)
	if err != nil {
		return fail(l, "product_search_error", "Product", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":    total,
		"products": items,
	})
}
