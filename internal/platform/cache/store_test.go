package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	boom := errors.New("load failed")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, boom) {
		t.Fatalf("first GetOrLoad error=%v want %v", err, boom)
	}

	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if got, _ := v.(string); got != "recovered" {
		t.Fatalf("got %q want recovered", got)
	}
}

func TestStore_GetExpiresByClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute).WithClock(func() time.Time { return now })

	ctx := context.Background()
	store.Set(ctx, "k", "v")

	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(61 * time.Second)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "stats:leaderboard", 1)
	store.Set(ctx, "stats:player:p1", 2)
	store.Set(ctx, "badges:p1", 3)

	store.DeletePrefix(ctx, "stats:")

	if _, ok := store.Get(ctx, "stats:leaderboard"); ok {
		t.Fatalf("stats:leaderboard should be gone")
	}
	if _, ok := store.Get(ctx, "stats:player:p1"); ok {
		t.Fatalf("stats:player:p1 should be gone")
	}
	if _, ok := store.Get(ctx, "badges:p1"); !ok {
		t.Fatalf("badges:p1 should survive")
	}
}

func TestStore_NilStoreIsDisabled(t *testing.T) {
	t.Parallel()

	var store *Store
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("nil store must always miss")
	}

	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "loaded", nil
	}
	for i := 0; i < 2; i++ {
		v, err := store.GetOrLoad(ctx, "k", loader)
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if got, _ := v.(string); got != "loaded" {
			t.Fatalf("got %q want loaded", got)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2 on a nil store", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
