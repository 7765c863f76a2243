package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxRetries int) *Config {
	return &Config{
		MaxRetries:    maxRetries,
		BackoffFactor: 2.0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		Jitter:        time.Millisecond,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	r := NewRetrier(fastConfig(3))

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("operation ran %d times, want 1", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	r := NewRetrier(fastConfig(5))

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("operation ran %d times, want 3", calls)
	}
}

func TestDoExhaustsRetries(t *testing.T) {
	r := NewRetrier(fastConfig(2))

	wantErr := errors.New("permanent")
	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("Do() error = %v, want %v", err, wantErr)
	}
	// MaxRetries of 2 means 1 initial attempt + 2 retries.
	if calls != 3 {
		t.Errorf("operation ran %d times, want 3", calls)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	r := NewRetrier(&Config{
		MaxRetries:    10,
		BackoffFactor: 2.0,
		InitialDelay:  50 * time.Millisecond,
		MaxDelay:      time.Second,
		Jitter:        time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Do(ctx, func() error {
		calls++
		return errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("operation ran %d times, want 1", calls)
	}
}
