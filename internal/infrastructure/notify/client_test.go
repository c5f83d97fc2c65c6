package notify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"sunday-league/internal/domain/game"
	"sunday-league/internal/domain/match"
	"sunday-league/internal/platform/resilience"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientMatchRecorded_PostsWebhookMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type: %s", got)
		}

		var msg map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Errorf("decode webhook body: %v", err)
		}
		if msg["channel"] != "#matchday" {
			t.Errorf("unexpected channel: %s", msg["channel"])
		}
		if msg["event"] != "match_recorded" {
			t.Errorf("unexpected event: %s", msg["event"])
		}
		if msg["text"] == "" {
			t.Errorf("expected message text")
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		WebhookURL:     srv.URL,
		Channel:        "#matchday",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	record := match.Record{
		ID:        "m1",
		TeamA:     []string{"p1", "p2"},
		TeamB:     []string{"p3", "p4"},
		GoalsA:    3,
		GoalsB:    1,
		MVPPlayer: "p1",
		PlayedAt:  time.Now(),
	}
	if err := client.MatchRecorded(context.Background(), record); err != nil {
		t.Fatalf("match recorded: %v", err)
	}
}

func TestClientGameScheduled_IncludesCapacity(t *testing.T) {
	t.Parallel()

	var gotText atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg map[string]string
		_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&msg)
		gotText.Store(msg["text"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		WebhookURL:     srv.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, discardLogger())

	item := game.ScheduledGame{
		ID:          "g1",
		ScheduledAt: time.Date(2026, 4, 5, 9, 0, 0, 0, time.UTC),
		PitchSize:   game.PitchSmall,
		Location:    "Riverside",
	}
	if err := client.GameScheduled(context.Background(), item); err != nil {
		t.Fatalf("game scheduled: %v", err)
	}

	text, _ := gotText.Load().(string)
	if text == "" {
		t.Fatalf("expected webhook text")
	}
	for _, want := range []string{"Riverside", "12 spots"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text=%q missing %q", text, want)
		}
	}
}

func TestClientPost_ServerErrorsOpenTheBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		WebhookURL: srv.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, discardLogger())

	ctx := context.Background()
	record := match.Record{ID: "m1", TeamA: []string{"a"}, TeamB: []string{"b"}, PlayedAt: time.Now()}

	for i := 0; i < 2; i++ {
		if err := client.MatchRecorded(ctx, record); err == nil {
			t.Fatalf("expected delivery error on attempt %d", i+1)
		}
	}
	if err := client.MatchRecorded(ctx, record); err == nil {
		t.Fatalf("expected breaker rejection after threshold failures")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("webhook calls got=%d want=2 (third attempt rejected locally)", got)
	}
}

func TestClientPost_ClientErrorDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		WebhookURL: srv.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, discardLogger())

	ctx := context.Background()
	record := match.Record{ID: "m1", TeamA: []string{"a"}, TeamB: []string{"b"}, PlayedAt: time.Now()}

	for i := 0; i < 3; i++ {
		if err := client.MatchRecorded(ctx, record); err == nil {
			t.Fatalf("expected error for 400 response")
		}
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("webhook calls got=%d want=3 (4xx must not open the breaker)", got)
	}
}

func TestValidateHTTPBaseURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "https url", in: "https://hooks.example.com/league", wantErr: false},
		{name: "trailing slash trimmed", in: "https://hooks.example.com/", wantErr: false},
		{name: "empty", in: " ", wantErr: true},
		{name: "bad scheme", in: "ftp://hooks.example.com", wantErr: true},
		{name: "missing host", in: "https://", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateHTTPBaseURL(tc.in)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.in, err)
			}
		})
	}
}
