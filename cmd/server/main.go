package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobportal/auth"
	"jobportal/config"
	"jobportal/db"
	"jobportal/db/mongo"
	"jobportal/db/postgres"
	"jobportal/handlers"
	"jobportal/logger"
	"jobportal/repository"
	"jobportal/routes"
	"jobportal/utils"
	"jobportal/validation"
)

func main() {
	// Load config from .env, config.yaml and the environment
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		database db.DB
		userRepo repository.UserRepository
		jobRepo  repository.JobRepository
		orgRepo  repository.OrganizationRepository
	)

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	switch cfg.DBType {
	case config.DBTypePostgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(connectCtx); err != nil {
			fatal(log, "connect postgres", err)
		}
		// Run migrations (for Postgres)
		if err := db.RunMigrations(pg.Conn, cfg.MigrationsPath); err != nil {
			fatal(log, "run migrations", err)
		}
		database = pg

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		jobRepo = repository.NewPostgresJobRepo(pg.Conn)
		orgRepo = repository.NewPostgresOrganizationRepo(pg.Conn)

	case config.DBTypeMongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDB)
		if err := mg.Connect(connectCtx); err != nil {
			fatal(log, "connect mongo", err)
		}
		if err := mg.EnsureIndexes(connectCtx, repository.UsersCollection); err != nil {
			fatal(log, "ensure indexes", err)
		}
		database = mg

		userRepo = repository.NewMongoUserRepo(mg.Database())
		jobRepo = repository.NewMongoJobRepo(mg.Database())
		orgRepo = repository.NewMongoOrganizationRepo(mg.Database())
	}
	cancel()
	log.Info("database connected", "type", cfg.DBType)

	var (
		images    utils.ImageStore
		imagesDir string
	)
	switch cfg.StorageType {
	case config.StorageR2:
		r2, err := utils.NewR2Store(ctx, utils.R2Options{
			AccountID:       cfg.R2.AccountID,
			Bucket:          cfg.R2.Bucket,
			PublicURL:       cfg.R2.PublicURL,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
		})
		if err != nil {
			fatal(log, "init R2 storage", err)
		}
		images = r2
	default:
		local, err := utils.NewLocalStore(cfg.ImagesDir, "/images")
		if err != nil {
			fatal(log, "init image storage", err)
		}
		images = local
		imagesDir = cfg.ImagesDir
	}

	validate := validation.New()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	handler := routes.SetupRoutes(routes.Handlers{
		User: &handlers.UserHandler{
			Repo:         userRepo,
			Images:       images,
			Tokens:       tokens,
			MaxImageSize: cfg.MaxImageSize,
		},
		Job:          &handlers.JobHandler{Repo: jobRepo, Validator: validate},
		Organization: &handlers.OrganizationHandler{Repo: orgRepo, Validator: validate},
		PDF: &handlers.PDFHandler{
			Repo:     repository.NewExportRepository(jobRepo, orgRepo),
			SavePath: cfg.PDFDir,
		},
		Images: &handlers.ImageHandler{Images: images},
		Tokens: tokens,
	}, routes.Options{
		CORSOrigin: cfg.CORSOrigin,
		ImagesDir:  imagesDir,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("server running", "port", cfg.Port, "storage", cfg.StorageType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Error("database disconnect", "error", err)
	}
}

func fatal(log *slog.Logger, what string, err error) {
	log.Error(what, "error", err)
	os.Exit(1)
}
