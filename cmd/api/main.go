package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-console/internal/handler/http"
	"github.com/cmlabs-hris/hris-console/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-console/internal/repository/rest"
	departmentService "github.com/cmlabs-hris/hris-console/internal/service/department"
	employeeService "github.com/cmlabs-hris/hris-console/internal/service/employee"
	reportService "github.com/cmlabs-hris/hris-console/internal/service/report"
	"github.com/cmlabs-hris/hris-console/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg, "hris-console")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Data Store
	client := datastore.NewClient(cfg.DataStore.URL,
		datastore.WithTimeout(cfg.DataStore.Timeout),
		datastore.WithLogger(logger),
	)
	employeeRepo := rest.NewEmployeeRepository(client)
	departmentRepo := rest.NewDepartmentRepository(client)

	// Store
	hub := sse.NewHub()
	st := store.New(employeeRepo, departmentRepo,
		store.WithNotifier(hub),
		store.WithLogger(logger),
	)
	if err := st.Load(ctx); err != nil {
		logger.Warn("Initial load failed, consoles will see the error banner", "error", err)
	}

	// Services
	aggregator := reportService.NewAggregator(cfg.Report.OrphanPolicy)
	employeeSvc := employeeService.NewEmployeeService(st, employeeRepo, time.Now)
	departmentSvc := departmentService.NewDepartmentService(st, aggregator)
	reportSvc := reportService.NewReportService(st, aggregator, time.Now)

	// Background refresh
	scheduler := cron.NewScheduler(logger)
	cron.NewRefreshJobs(st, cfg.App.RefreshInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		logger,
		cfg,
		appHTTP.NewConsoleHandler(st, hub),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewDepartmentHandler(departmentSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// SSE streams end with the process context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Console running", "addr", server.Addr, "datastore", client.BaseURL())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err)
	}
}
