package providers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

type countingProvider struct {
	LeagueCalls   atomic.Int32
	PositionCalls atomic.Int32
	CareerCalls   atomic.Int32
}

func (p *countingProvider) FetchLeagueStats(context.Context, string) ([]RawStatRow, error) {
	p.LeagueCalls.Add(1)
	return nil, nil
}

func (p *countingProvider) FetchPlayerPositions(context.Context, string) (map[int64]string, error) {
	p.PositionCalls.Add(1)
	return nil, nil
}

func (p *countingProvider) FetchCareerRows(context.Context, int64) ([]CareerRow, error) {
	p.CareerCalls.Add(1)
	return nil, nil
}

func TestThrottledProviderWaitsBeforeFirstCall(t *testing.T) {
	inner := &countingProvider{}
	p := newThrottledProvider(inner, 20*time.Millisecond, nil)

	start := time.Now()
	if _, err := p.FetchLeagueStats(context.Background(), "2025-26"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected first call to wait for the interval, elapsed %s", elapsed)
	}
	if inner.LeagueCalls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.LeagueCalls.Load())
	}
}

func TestThrottledProviderSpacesConsecutiveCalls(t *testing.T) {
	inner := &countingProvider{}
	p := newThrottledProvider(inner, 20*time.Millisecond, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := p.FetchCareerRows(context.Background(), int64(i)); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 55*time.Millisecond {
		t.Fatalf("expected three spaced calls to take >= 3 intervals, elapsed %s", elapsed)
	}
	if inner.CareerCalls.Load() != 3 {
		t.Fatalf("expected 3 career calls, got %d", inner.CareerCalls.Load())
	}
}

func TestThrottledProviderRespectsCanceledContext(t *testing.T) {
	inner := &countingProvider{}
	p := NewThrottledProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.FetchPlayerPositions(ctx, "2025-26"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.PositionCalls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestThrottledProviderHandlesNilInner(t *testing.T) {
	p := NewThrottledProvider(nil, time.Second, nil)

	_, err := p.FetchLeagueStats(context.Background(), "2025-26")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestNewThrottledProviderEnforcesMinimumInterval(t *testing.T) {
	p := NewThrottledProvider(&countingProvider{}, time.Millisecond, nil).(*throttledProvider)
	if p.interval != MinRequestInterval {
		t.Fatalf("expected interval raised to %s, got %s", MinRequestInterval, p.interval)
	}
	for call, l := range p.limiters {
		if l.Limit() != rate.Every(MinRequestInterval) {
			t.Fatalf("limiter %s has limit %v", call, l.Limit())
		}
	}
}

func TestNewPacerStartsWithoutToken(t *testing.T) {
	l := NewPacer(time.Hour)
	if l.Allow() {
		t.Fatal("expected pacer to start drained")
	}
}
