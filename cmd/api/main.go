package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"person-api/internal/config"
	"person-api/internal/logger"
	"person-api/internal/metrics"
	"person-api/internal/middleware"
	"person-api/internal/person"
)

const createPersonTable = `
	CREATE TABLE IF NOT EXISTS person (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT,
		age        INT,
		gender     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("storage init failed")
	}
	defer cleanup()

	service := person.NewService(repo)
	handler := person.NewHandler(service)
	m := metrics.New()

	app := fiber.New()
	setupCORS(app)
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(m.Middleware())

	handler.RegisterRoutes(app)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("addr", cfg.Addr).Str("driver", cfg.Driver).Msg("server started")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func openRepository(cfg *config.Config) (person.Repository, func(), error) {
	switch cfg.Driver {
	case "memory":
		return person.NewInMemoryRepository(nil), func() {}, nil
	case "postgres":
		db, err := openPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return person.NewPostgresRepository(db), func() { db.Close() }, nil
	case "sqlite":
		repo, err := person.NewSQLiteRepository(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func openPostgres(dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec(createPersonTable); err != nil {
		return nil, err
	}

	return db, nil
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
