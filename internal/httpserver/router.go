package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/db"
	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/middleware/auth"
)

type Deps struct {
	ProductHandler *ProductHTTP
	UserHandler    *UserHTTP
	RoleHandler    *RoleHTTP
	OrderHandler   *OrderHTTP
	PaymentHandler *PaymentHTTP
	JWTSecret      []byte
	ImageDir       string
	DB             *gorm.DB
	SearchEnabled  bool
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			logging.FromContext(c.Request().Context()).Error("readiness_failed", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	e.Static("/image", d.ImageDir)

	guard := auth.Guard(d.JWTSecret)
	api := e.Group("/api/v1")

	products := api.Group("/products")
	if d.SearchEnabled {
		products.GET("/search", d.ProductHandler.SearchProducts)
	}
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	api.POST("/productimage", d.ProductHandler.UploadImage)
	api.GET("/productimage/:filename", d.ProductHandler.GetImage)

	users := api.Group("/users")
	users.POST("/signup", d.UserHandler.Signup)
	users.POST("/login", d.UserHandler.Login)
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	api.GET("/roles", d.RoleHandler.GetRoles)
	api.POST("/roles", d.RoleHandler.CreateRole)
	api.PUT("/user-roles/:userId", d.RoleHandler.ReplaceUserRoles)
	api.DELETE("/user-roles/:userId", d.RoleHandler.DeleteUserRoles)

	orders := api.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder, guard)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/users/:id", d.OrderHandler.GetUserOrders, guard)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	payments := api.Group("/payment")
	payments.POST("", d.PaymentHandler.CreatePayment)
	payments.GET("", d.PaymentHandler.GetPayments)
	payments.GET("/:id", d.PaymentHandler.GetPayment)
	payments.PUT("/:id", d.PaymentHandler.UpdatePayment)
	payments.DELETE("/:id", d.PaymentHandler.DeletePayment)
}
