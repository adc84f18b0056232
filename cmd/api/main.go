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

	"github.com/Planeacion2510/NX-01-sub000/internal/application/attachments"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/auth"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/orders"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/stock"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/usecase"
	"github.com/Planeacion2510/NX-01-sub000/internal/infrastructure/postgres"
	"github.com/Planeacion2510/NX-01-sub000/internal/infrastructure/storage"
	httpRouter "github.com/Planeacion2510/NX-01-sub000/internal/interfaces/http"
	"github.com/Planeacion2510/NX-01-sub000/pkg/config"
	"github.com/Planeacion2510/NX-01-sub000/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	workRepo := postgres.NewWorkOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(settingRepo)
	stockUC := stock.NewUseCase(txRunner, itemRepo, movRepo, stock.Policy{
		AllowNegativeStock: cfg.Stock.AllowNegativeStock,
	})
	importUC := stock.NewImportUseCase(itemRepo, movRepo)
	purchaseUC := orders.NewPurchaseUseCase(txRunner, purchaseRepo, supplierRepo)
	workUC := orders.NewWorkUseCase(txRunner, workRepo)
	attachmentUC := attachments.NewUseCase(storage.NewLocalStorage(cfg.Storage.Root))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Los archivos XLSX de importación pueden ser grandes
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NexusOne API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SupplierUC:   supplierUC,
		SettingsUC:   settingsUC,
		StockUC:      stockUC,
		ImportUC:     importUC,
		PurchaseUC:   purchaseUC,
		WorkUC:       workUC,
		AttachmentUC: attachmentUC,
		JWTSecret:    cfg.JWT.Secret,
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
