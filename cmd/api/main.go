package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventory-pro/docs"
	appanalytics "github.com/jhoicas/inventory-pro/internal/application/analytics"
	"github.com/jhoicas/inventory-pro/internal/application/auth"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/filestore"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/inventory-pro/internal/infrastructure/redis"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/inventory-pro/internal/interfaces/http"
	"github.com/jhoicas/inventory-pro/pkg/config"
	"github.com/jhoicas/inventory-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store_driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir repositorio de snapshot")
	}
	defer closeRepo()

	opts := []inventory.Option{inventory.WithLogger(log.Component("store"))}
	if cfg.Report.Collation != "" {
		tag, err := language.Parse(cfg.Report.Collation)
		if err != nil {
			log.Warn().Err(err).Str("collation", cfg.Report.Collation).Msg("REPORT_COLLATION inválido, se usa orden de bytes")
		} else {
			opts = append(opts, inventory.WithCollation(tag))
		}
	}
	store := inventory.NewStore(repo, opts...)
	store.Init(ctx)
	if cfg.Store.SeedSample {
		store.SeedSampleData(ctx)
	}

	dashboardUC := appanalytics.NewDashboardUseCase(store)
	reportUC := appanalytics.NewReportUseCase(store,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		xmlexport.NewStockReportEncoder(),
	)
	var authUC *auth.AuthUseCase
	if cfg.JWT.Enabled() {
		authUC = auth.NewAuthUseCase(
			auth.Operator{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash},
			auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		)
	} else {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Pro API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

// openRepository elige el adaptador de snapshot según STORE_DRIVER.
func openRepository(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return memory.NewSnapshotRepository(nil), noop, nil
	case config.StoreDriverFile:
		return filestore.NewSnapshotRepository(cfg.Store.FilePath), noop, nil
	case config.StoreDriverRedis:
		repo, err := infraredis.NewSnapshotRepository(ctx, infraredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("driver desconocido %q", cfg.Store.Driver)
	}
}
