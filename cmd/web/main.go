package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/campo-registros/internal/application/auth"
	"github.com/tu-usuario/campo-registros/internal/application/usecase"
	"github.com/tu-usuario/campo-registros/internal/infrastructure/postgres"
	"github.com/tu-usuario/campo-registros/internal/interfaces/web"
	"github.com/tu-usuario/campo-registros/pkg/config"
	"github.com/tu-usuario/campo-registros/pkg/logger"
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

	// Arranque: esquema, categorías iniciales y admin provisorio. Corre una
	// sola vez por proceso, antes de atender requests.
	if err := postgres.Bootstrap(ctx, pool, cfg.Bootstrap.AdminEmail); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de base de datos")
	}
	log.Info().Msg("bootstrap completado")

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	animalRepo := postgres.NewAnimalRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo)
	setupUC := auth.NewSetupUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	animalUC := usecase.NewAnimalUseCase(animalRepo, categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	store := web.NewSessionStore(cfg.Session)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		AuthUC:     authUC,
		SetupUC:    setupUC,
		CategoryUC: categoryUC,
		AnimalUC:   animalUC,
		UserUC:     userUC,
		UserRepo:   userRepo,
		Store:      store,
		Log:        log,
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
