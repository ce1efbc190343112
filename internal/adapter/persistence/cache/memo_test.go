package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMemo_LoadsOnceUnderConcurrency(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	release := make(chan struct{})
	m := NewMemo(func(ctx context.Context) (map[string]int, error) {
		calls.Add(1)
		<-release
		return map[string]int{"a": 1}, nil
	})

	const callers = 50
	var wg sync.WaitGroup
	results := make([]map[string]int, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = m.Get(context.Background())
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 load, got %d", got)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error %v", i, errs[i])
		}
		if results[i]["a"] != 1 {
			t.Fatalf("caller %d: unexpected value %v", i, results[i])
		}
	}
	if !m.Loaded() {
		t.Fatalf("expected memo to be loaded")
	}

	if _, err := m.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected cached value on later call, got %d loads", got)
	}
}

func TestMemo_RetriesAfterFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	m := NewMemo(func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("disk unreadable")
		}
		return "rates", nil
	})

	if _, err := m.Get(context.Background()); err == nil || err.Error() != "disk unreadable" {
		t.Fatalf("expected load error, got %v", err)
	}
	if m.Loaded() {
		t.Fatalf("failed load must not be memoized")
	}

	v, err := m.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "rates" {
		t.Fatalf("expected rates, got %q", v)
	}
}

func TestMemo_IgnoresCallerCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewMemo(func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 42, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := m.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}
