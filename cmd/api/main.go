package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Microgestion-api/internal/application/auth"
	"github.com/jhoicas/Microgestion-api/internal/application/inventory"
	"github.com/jhoicas/Microgestion-api/internal/application/purchases"
	"github.com/jhoicas/Microgestion-api/internal/application/receipt"
	"github.com/jhoicas/Microgestion-api/internal/application/sales"
	"github.com/jhoicas/Microgestion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Microgestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Microgestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Microgestion-api/internal/interfaces/http"
	"github.com/jhoicas/Microgestion-api/pkg/config"
	"github.com/jhoicas/Microgestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	planRepo := postgres.NewPaymentPlanRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, planRepo)
	planUC := usecase.NewPaymentPlanUseCase(planRepo)
	productUC := usecase.NewProductUseCase(productRepo, notificationRepo)
	stockUC := inventory.NewStockUseCase(txRunner)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	purchaseUC := purchases.NewRegisterPurchaseUseCase(txRunner, supplierRepo, productRepo, purchaseRepo)
	saleUC := sales.NewProcessSaleUseCase(txRunner, clientRepo, saleRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	portalUC := usecase.NewPortalUseCase(companyRepo, productRepo)

	// PDF: recibo de venta
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewReceiptUseCase(saleRepo, productRepo, companyRepo, clientRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Microgestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		PlanUC:         planUC,
		ProductUC:      productUC,
		StockUC:        stockUC,
		ClientUC:       clientUC,
		SupplierUC:     supplierUC,
		PurchaseUC:     purchaseUC,
		SaleUC:         saleUC,
		ReceiptUC:      receiptUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		PortalUC:       portalUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
