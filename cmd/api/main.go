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

	"github.com/jhoicas/Comercial-api/internal/application/auth"
	"github.com/jhoicas/Comercial-api/internal/application/catalog"
	"github.com/jhoicas/Comercial-api/internal/application/finance"
	"github.com/jhoicas/Comercial-api/internal/application/inventory"
	"github.com/jhoicas/Comercial-api/internal/application/partner"
	"github.com/jhoicas/Comercial-api/internal/application/schedule"
	"github.com/jhoicas/Comercial-api/internal/application/trade"
	"github.com/jhoicas/Comercial-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comercial-api/internal/interfaces/http"
	"github.com/jhoicas/Comercial-api/pkg/config"
	"github.com/jhoicas/Comercial-api/pkg/logger"
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

	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	calendarRepo := postgres.NewCalendarRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconciler := inventory.NewReconciler()

	saleUC := trade.NewSaleUseCase(
		txRunner, saleRepo, clientRepo, productRepo, serviceRepo, transactionRepo, reconciler, log,
	)
	purchaseUC := trade.NewPurchaseUseCase(
		txRunner, purchaseRepo, supplierRepo, productRepo, transactionRepo, reconciler, log,
	)
	transactionUC := finance.NewTransactionUseCase(transactionRepo, log)
	clientUC := partner.NewClientUseCase(clientRepo, saleRepo, transactionRepo, log)
	supplierUC := partner.NewSupplierUseCase(supplierRepo, purchaseRepo, transactionRepo, log)
	productUC := catalog.NewProductUseCase(productRepo, supplierRepo, log)
	serviceUC := catalog.NewServiceUseCase(serviceRepo, log)
	calendarUC := schedule.NewCalendarUseCase(calendarRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Comercial Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		JWTSecret:   cfg.JWT.Secret,
		Auth:        httpRouter.NewAuthHandler(authUC),
		Sale:        httpRouter.NewSaleHandler(saleUC),
		Purchase:    httpRouter.NewPurchaseHandler(purchaseUC),
		Transaction: httpRouter.NewTransactionHandler(transactionUC),
		Client:      httpRouter.NewClientHandler(clientUC),
		Supplier:    httpRouter.NewSupplierHandler(supplierUC),
		Product:     httpRouter.NewProductHandler(productUC),
		Service:     httpRouter.NewServiceHandler(serviceUC),
		Event:       httpRouter.NewEventHandler(calendarUC),
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
