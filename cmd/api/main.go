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
	"github.com/saiidhanna21/garage/internal/application/auth"
	"github.com/saiidhanna21/garage/internal/application/catalog"
	"github.com/saiidhanna21/garage/internal/application/orders"
	"github.com/saiidhanna21/garage/internal/application/revenue"
	"github.com/saiidhanna21/garage/internal/infrastructure/pdf"
	"github.com/saiidhanna21/garage/internal/infrastructure/postgres"
	httpRouter "github.com/saiidhanna21/garage/internal/interfaces/http"
	"github.com/saiidhanna21/garage/pkg/config"
	"github.com/saiidhanna21/garage/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewGarageItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := catalog.NewCustomerUseCase(customerRepo)
	productUC := catalog.NewProductUseCase(productRepo)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo)
	itemUC := catalog.NewGarageItemUseCase(itemRepo, categoryRepo, productRepo)
	orderUC := orders.NewUseCase(txRunner, orderRepo, itemRepo)
	revenueUC := revenue.NewUseCase(revenueRepo, pdf.NewMarotoReportGenerator())

	authUC, err := auth.NewUseCase(auth.Credential{
		Email:        cfg.Admin.Email,
		Name:         cfg.Admin.Name,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin credential")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs. The middleware
	// panics when the generated spec is absent, so only mount it when
	// `swag init` has produced one.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "Garage API",
		}))
	} else {
		log.Warn().Str("path", swaggerSpec).Msg("swagger spec not found, UI disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CustomerUC: customerUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		ItemUC:     itemUC,
		OrderUC:    orderUC,
		RevenueUC:  revenueUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
