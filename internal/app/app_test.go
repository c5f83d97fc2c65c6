package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sunday-league/internal/config"
	"sunday-league/internal/platform/logging"
)

func devConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "sunday-league",
		HTTPAddr:           ":0",
		CacheEnabled:       true,
		CacheTTL:           30 * time.Second,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       30 * time.Second,
		AvatarWorkerCount:  2,
		LogLevel:           logging.LevelInfo,
	}
}

func TestNewHTTPServer_AvatarsDisabledAnswersUnavailable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := devConfig()
	cfg.AvatarEnabled = false

	server, cleanup, err := NewHTTPServer(cfg, logger)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	}()

	req := httptest.NewRequest(http.MethodPost, "/v1/avatars/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status got=%d want=%d body=%s", rec.Code, http.StatusServiceUnavailable, rec.Body.String())
	}
}

func TestNewHTTPServer_MemoryModeServesLeaderboard(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server, cleanup, err := NewHTTPServer(devConfig(), logger)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	}()

	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
