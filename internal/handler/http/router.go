package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewLogger builds the JSON logger shared by the servers and their request logs.
func NewLogger(w io.Writer, cfg *config.Config, app string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
}

func baseRouter(logger *slog.Logger, cfg *config.Config, methods []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   methods,
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	return r
}

// NewRouter serves the admin console API.
func NewRouter(
	logger *slog.Logger,
	cfg *config.Config,
	consoleHandler ConsoleHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := baseRouter(logger, cfg, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/state", func(r chi.Router) {
			r.Get("/", consoleHandler.State)
			r.Post("/reload", consoleHandler.Reload)
			r.Delete("/error", consoleHandler.DismissError)
			r.Delete("/message", consoleHandler.DismissMessage)
		})
		r.Get("/events", consoleHandler.Stream)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
				r.Patch("/status", employeeHandler.ToggleStatus)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.ListDepartments)
			r.Post("/", departmentHandler.CreateDepartment)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", departmentHandler.GetDepartment)
				r.Put("/", departmentHandler.UpdateDepartment)
				r.Delete("/", departmentHandler.DeleteDepartment)
			})
		})

		r.Get("/reports", reportHandler.GetReport)
	})

	return r
}

// NewDataStoreRouter serves the json-server compatible collections at the root.
func NewDataStoreRouter(logger *slog.Logger, cfg *config.Config, documentHandler DocumentHandler) *chi.Mux {
	r := baseRouter(logger, cfg, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})

	r.Route("/{collection}", func(r chi.Router) {
		r.Get("/", documentHandler.List)
		r.Post("/", documentHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", documentHandler.Get)
			r.Put("/", documentHandler.Replace)
			r.Patch("/", documentHandler.Merge)
			r.Delete("/", documentHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("{}\n"))
	})

	return r
}
