package router

import (
	"time"

	"warungpos/internal/config"
	"warungpos/internal/handler"
	"warungpos/internal/infra"
	"warungpos/internal/middleware"
	"warungpos/internal/repository"
	"warungpos/internal/service"
	"warungpos/internal/storage"
	"warungpos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis/Storage
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, store storage.ImageStorage, storageCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderLineRepo := repository.NewOrderLineRepository(db)
	paymentLogRepo := repository.NewPaymentLogRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	categorySvc := service.NewCategoryService(categoryRepo, db)
	menuSvc := service.NewMenuService(menuRepo, categoryRepo, store, storageCB, dispatcher, rdb)
	orderSvc := service.NewOrderService(orderRepo, userRepo)
	orderLineSvc := service.NewOrderLineService(orderLineRepo, orderRepo, menuRepo)
	paymentLogSvc := service.NewPaymentLogService(paymentLogRepo, orderRepo)
	reportSvc := service.NewReportService(orderRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, userSvc)
	usersH := handler.NewUsersHandler(userSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	menusH := handler.NewMenusHandler(menuSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	orderLinesH := handler.NewOrderLinesHandler(orderLineSvc)
	paymentLogsH := handler.NewPaymentLogsHandler(paymentLogSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, storageCB))

	// Auth (public)
	r.POST("/v1/register", middleware.LoginRateLimiter(), authH.Register)
	r.POST("/v1/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/v1/token", authH.Refresh)

	// Price check — public for kiosks, served through the Redis cache
	r.GET("/v1/menu-price/:menuId", menusH.PriceCheck)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTAccessSecret)
	staff := middleware.RequireRole("admin", "superadmin")

	v1 := r.Group("/v1", jwtMW)
	{
		v1.DELETE("/logout", authH.Logout)
		v1.GET("/auth/session", authH.Session)

		// User management — superadmin only
		users := v1.Group("", middleware.RequireRole("superadmin"))
		{
			users.GET("/users", usersH.List)
			users.POST("/user", usersH.Create)
			users.GET("/user/:userId", usersH.Get)
			users.PATCH("/user/:userId", usersH.Update)
			users.DELETE("/user/:userId", usersH.Delete)
		}

		// Categories
		v1.GET("/categories", staff, categoriesH.List)
		v1.POST("/category", staff, categoriesH.Create)
		v1.GET("/category/:categoryId", staff, categoriesH.Get)
		v1.PATCH("/category/:categoryId", staff, categoriesH.Update)
		v1.DELETE("/category/:categoryId", staff, categoriesH.Delete)

		// Menus
		v1.GET("/menus", staff, menusH.List)
		v1.POST("/menu", staff, menusH.Create)
		v1.GET("/menu/:menuId", staff, menusH.Get)
		v1.PATCH("/menu/:menuId", staff, menusH.Update)
		v1.DELETE("/menu/:menuId", staff, menusH.Delete)

		// Orders
		v1.GET("/orders", staff, ordersH.List)
		v1.POST("/order", staff, ordersH.Create)
		v1.GET("/order/:orderId", staff, ordersH.Get)
		v1.GET("/order/:orderId/receipt", staff, ordersH.Receipt)
		v1.PATCH("/order/:orderId", staff, ordersH.Update)
		v1.DELETE("/order/:orderId", staff, ordersH.Delete)

		// Order details
		v1.GET("/order-details", staff, orderLinesH.List)
		v1.POST("/order-detail", staff, orderLinesH.Create)
		v1.GET("/order-detail/:orderDetailId", staff, orderLinesH.Get)
		v1.PATCH("/order-detail/:orderDetailId", staff, orderLinesH.Update)
		v1.DELETE("/order-detail/:orderDetailId", staff, orderLinesH.Delete)

		// Payment logs
		v1.GET("/payment-logs", staff, paymentLogsH.List)
		v1.POST("/payment-log", staff, paymentLogsH.Create)
		v1.GET("/payment-log/:paymentLogId", staff, paymentLogsH.Get)
		v1.PATCH("/payment-log/:paymentLogId", staff, paymentLogsH.Update)
		v1.DELETE("/payment-log/:paymentLogId", staff, paymentLogsH.Delete)

		// Reports
		v1.GET("/reports/sales-summary", staff, reportsH.SalesSummary)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
