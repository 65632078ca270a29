package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/config"
	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	appHTTP "github.com/cmlabs-hris/hris-console/internal/handler/http"
	"github.com/cmlabs-hris/hris-console/internal/pkg/database"
	"github.com/cmlabs-hris/hris-console/internal/repository/memory"
	"github.com/cmlabs-hris/hris-console/internal/repository/postgresql"
	documentService "github.com/cmlabs-hris/hris-console/internal/service/document"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg, "hris-datastore")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo document.DocumentRepository
	switch cfg.DataStore.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{})
		if err != nil {
			logger.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			logger.Error("Error preparing schema", "error", err)
			os.Exit(1)
		}
		repo = postgresql.NewDocumentRepository(db)
	default:
		repo = memory.NewDocumentRepository()
	}

	documentSvc := documentService.NewDocumentService(repo)

	if cfg.DataStore.SeedFile != "" {
		data, err := documentService.ReadSeedFile(cfg.DataStore.SeedFile)
		if err != nil {
			logger.Error("Error reading seed file", "error", err)
			os.Exit(1)
		}
		if err := documentSvc.Seed(ctx, data); err != nil {
			logger.Error("Error seeding data store", "error", err)
			os.Exit(1)
		}
	}

	router := appHTTP.NewDataStoreRouter(logger, cfg, appHTTP.NewDocumentHandler(documentSvc))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.DataStore.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Data store running", "addr", server.Addr, "backend", cfg.DataStore.Backend)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
