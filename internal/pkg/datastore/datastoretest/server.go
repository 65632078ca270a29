// Package datastoretest runs the reference Data Store in-process on the
// memory backend.
package datastoretest

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-console/internal/config"
	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	handler "github.com/cmlabs-hris/hris-console/internal/handler/http"
	"github.com/cmlabs-hris/hris-console/internal/repository/memory"
	documentservice "github.com/cmlabs-hris/hris-console/internal/service/document"
)

// NewServer starts a Data Store seeded with data and closes it when the test ends.
func NewServer(t testing.TB, data map[string][]document.Document) *httptest.Server {
	t.Helper()

	svc := documentservice.NewDocumentService(memory.NewDocumentRepository())
	if err := svc.Seed(context.Background(), data); err != nil {
		t.Fatalf("failed to seed data store: %v", err)
	}

	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", LogLevel: "error"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	srv := httptest.NewServer(handler.NewDataStoreRouter(logger, cfg, handler.NewDocumentHandler(svc)))
	t.Cleanup(srv.Close)
	return srv
}
