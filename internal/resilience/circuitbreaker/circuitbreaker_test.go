package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
)

func TestNew(t *testing.T) {
	cb := New(DefaultConfig("test-new"))

	if cb.Name() != "test-new" {
		t.Errorf("Name() = %q, want %q", cb.Name(), "test-new")
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("initial state = %v, want Closed", cb.State())
	}
	if got := testutil.ToFloat64(breakerState.WithLabelValues("test-new")); got != 0 {
		t.Errorf("state gauge = %v, want 0", got)
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	cb := New(DefaultConfig("test-execute"))

	result, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	if err != nil || result != "ok" {
		t.Fatalf("Execute() = (%v, %v), want (ok, nil)", result, err)
	}

	testErr := errors.New("boom")
	if _, err := cb.Execute(func() (interface{}, error) { return nil, testErr }); !errors.Is(err, testErr) {
		t.Errorf("Execute() err = %v, want %v", err, testErr)
	}
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := New(Config{
		Name:             "test-trip",
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          time.Minute,
		FailureThreshold: 0.6,
		MinRequests:      5,
	})

	testErr := errors.New("db down")
	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, testErr })
	}

	if !cb.IsOpen() {
		t.Fatalf("state = %v, want Open", cb.State())
	}
	if got := testutil.ToFloat64(breakerState.WithLabelValues("test-trip")); got != 2 {
		t.Errorf("state gauge = %v, want 2", got)
	}

	_, err := cb.Execute(func() (interface{}, error) {
		t.Error("function must not run while open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cb := New(Config{
		Name:             "test-min",
		MaxRequests:      1,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      10,
	})

	for i := 0; i < 9; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("fail") })
	}
	if cb.IsOpen() {
		t.Error("breaker opened before MinRequests was reached")
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := New(Config{
		Name:             "test-half-open",
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      5,
	})

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("fail") })
	}
	if !cb.IsOpen() {
		t.Fatalf("state = %v, want Open", cb.State())
	}

	time.Sleep(100 * time.Millisecond)

	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("half-open trial failed: %v", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want Closed after a successful trial", cb.State())
	}
}

func TestStateValue(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		want  float64
	}{
		{gobreaker.StateClosed, 0},
		{gobreaker.StateHalfOpen, 1},
		{gobreaker.StateOpen, 2},
	}
	for _, tt := range tests {
		if got := stateValue(tt.state); got != tt.want {
			t.Errorf("stateValue(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}
