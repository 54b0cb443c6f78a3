package wrap

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewRetrier(t *testing.T) {
	r, err := NewRetrier[int](RetryConfig{Runs: 3})

	if err != nil {
		t.Fatalf("NewRetrier() error = %v", err)
	}
	if r.config.Runs != 3 {
		t.Errorf("Runs = %d, want 3", r.config.Runs)
	}
	if r.config.Delay != 0 {
		t.Errorf("Delay = %v, want 0", r.config.Delay)
	}
}

func TestNewRetrier_InvalidRuns(t *testing.T) {
	tests := []struct {
		name string
		runs int
	}{
		{"zero", 0},
		{"negative", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRetrier[int](RetryConfig{Runs: tt.runs})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewRetrier() error = %v, want ErrInvalidConfig", err)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("NewRetrier() error type = %T, want *ConfigError", err)
			}
			if cfgErr.Param != "Runs" {
				t.Errorf("Param = %q, want \"Runs\"", cfgErr.Param)
			}
		})
	}
}

func TestRetrier_SuccessOnFirstAttempt(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{Runs: 3})

	attempts := 0
	value, err := r.Execute(context.Background(), func(ctx context.Context) (int, error) {
		attempts++
		return 42, nil
	})

	if err != nil {
		t.Errorf("Execute() error = %v", err)
	}
	if value != 42 {
		t.Errorf("Execute() = %d, want 42", value)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetrier_SuccessOnThirdAttempt(t *testing.T) {
	r, _ := NewRetrier[string](RetryConfig{Runs: 3})

	attempts := 0
	testErr := errors.New("test error")

	value, err := r.Execute(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", testErr
		}
		return "ok", nil
	})

	if err != nil {
		t.Errorf("Execute() error = %v", err)
	}
	if value != "ok" {
		t.Errorf("Execute() = %q, want \"ok\"", value)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetrier_ExhaustedAttempts(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{Runs: 3})

	attempts := 0
	testErr := errors.New("persistent error")

	_, err := r.Execute(context.Background(), func(ctx context.Context) (int, error) {
		attempts++
		return 0, testErr
	})

	// The last attempt's failure must come back unchanged.
	if err != testErr {
		t.Errorf("Execute() error = %v, want %v", err, testErr)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetrier_LastErrorReported(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{Runs: 2})

	first := errors.New("first failure")
	second := errors.New("second failure")
	attempts := 0

	_, err := r.Execute(context.Background(), func(ctx context.Context) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, first
		}
		return 0, second
	})

	if err != second {
		t.Errorf("Execute() error = %v, want %v", err, second)
	}
}

func TestRetrier_SingleRun(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{Runs: 1})

	attempts := 0
	testErr := errors.New("test error")

	_, err := r.Execute(context.Background(), func(ctx context.Context) (int, error) {
		attempts++
		return 0, testErr
	})

	if err != testErr {
		t.Errorf("Execute() error = %v, want %v", err, testErr)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetrier_OnRetry(t *testing.T) {
	var seen []int

	r, _ := NewRetrier[int](RetryConfig{
		Runs: 3,
		OnRetry: func(attempt int, err error) {
			seen = append(seen, attempt)
		},
	})

	testErr := errors.New("test error")
	_, _ = r.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 0, testErr
	})

	// Called before re-attempts only, never after the last one.
	if len(seen) != 2 {
		t.Fatalf("OnRetry calls = %d, want 2", len(seen))
	}
	if seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", seen)
	}
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{
		Runs:  10,
		Delay: 100 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	testErr := errors.New("test error")

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := r.Execute(ctx, func(ctx context.Context) (int, error) {
		return 0, testErr
	})

	if err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestRetrier_Wrap(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{Runs: 2})

	attempts := 0
	testErr := errors.New("test error")

	wrapped := r.Wrap(func(ctx context.Context) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, testErr
		}
		return 7, nil
	})

	value, err := wrapped(context.Background())
	if err != nil {
		t.Errorf("wrapped() error = %v", err)
	}
	if value != 7 {
		t.Errorf("wrapped() = %d, want 7", value)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetrier_Config(t *testing.T) {
	r, _ := NewRetrier[int](RetryConfig{Runs: 5, Delay: time.Millisecond})

	config := r.Config()
	if config.Runs != 5 {
		t.Errorf("Config().Runs = %d, want 5", config.Runs)
	}
	if config.Delay != time.Millisecond {
		t.Errorf("Config().Delay = %v, want 1ms", config.Delay)
	}
}
