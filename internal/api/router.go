package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/api/handler"
	"github.com/minimarket/catalog-api/internal/api/middleware"
	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/service"
	"github.com/minimarket/catalog-api/internal/infrastructure/redis"
	"github.com/minimarket/catalog-api/internal/infrastructure/workbook"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *workbook.Store, rdb *goredis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Repositories ---
	users := workbook.NewUserRepository(store)
	customers := workbook.NewCustomerRepository(store)
	products := workbook.NewProductRepository(store)
	orders := workbook.NewOrderRepository(store)

	// --- Services ---
	denylist := redis.NewTokenDenylist(rdb)
	authService := service.NewAuthService(users, customers, denylist, jwtSecret, 24*time.Hour, log)
	productService := service.NewProductService(products, log)
	orderService := service.NewOrderService(orders, log)
	customerService := service.NewCustomerService(customers, log)
	reportService := service.NewReportService(customers, products, orders, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	customerHandler := handler.NewCustomerHandler(customerService)
	adminHandler := handler.NewAdminHandler(reportService)
	healthHandler := handler.NewHealthHandler(rdb)

	authMiddleware := middleware.Auth(jwtSecret, denylist)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/products", productHandler.List)
	v1.GET("/products/mine", productHandler.ListMine, middleware.RBAC(domain.RoleSeller))
	v1.POST("/products", productHandler.Create, middleware.RBAC(domain.RoleSeller))
	v1.PUT("/products/:id", productHandler.Update, middleware.RBAC(domain.RoleSeller))
	v1.DELETE("/products/:id", productHandler.Delete, middleware.RBAC(domain.RoleSeller))

	v1.GET("/orders", orderHandler.List, middleware.RBAC(domain.RoleCustomer))
	v1.POST("/orders", orderHandler.Create, middleware.RBAC(domain.RoleCustomer))
	// Order update/delete are intentionally not ownership-scoped; see the
	// known-gap note in DESIGN.md.
	v1.PUT("/orders/:id", orderHandler.Update)
	v1.DELETE("/orders/:id", orderHandler.Delete)

	admin := v1.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/customers", customerHandler.List)
	admin.POST("/customers", customerHandler.Create)
	admin.PUT("/customers/:id", customerHandler.Update)
	admin.DELETE("/customers/:id", customerHandler.Delete)
	admin.GET("/admin/report", adminHandler.Report)

	return e
}
