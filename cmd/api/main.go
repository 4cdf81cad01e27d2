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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Distriquim-api/internal/application/auth"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Distriquim-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Distriquim-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Distriquim-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Distriquim-api/internal/interfaces/http"
	"github.com/jhoicas/Distriquim-api/pkg/config"
	"github.com/jhoicas/Distriquim-api/pkg/logger"
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

	if cfg.JWT.Secret == config.DevSecret {
		log.Warn().Msg("JWT_SECRET no definido: usando el secreto de desarrollo, no apto para producción")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	fileStore, err := storage.NewLocalStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}

	userRepo := postgres.NewUserRepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	newsRepo := postgres.NewNewsRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	distributorUC := usecase.NewDistributorUseCase(distributorRepo, userRepo, txRunner)
	documentUC := usecase.NewDocumentUseCase(documentRepo, distributorRepo, txRunner, fileStore)
	newsUC := usecase.NewNewsUseCase(newsRepo, txRunner)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, distributorRepo)
	productUC := usecase.NewProductUseCase(productRepo, infrapdf.NewMarotoPriceListGenerator())
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, documentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    25 * 1024 * 1024, // subida de PDFs
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Distriquim API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		DistributorUC:  distributorUC,
		DocumentUC:     documentUC,
		NewsUC:         newsUC,
		NotificationUC: notificationUC,
		ProductUC:      productUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
		SecureCookie:   cfg.App.IsProduction(),
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
