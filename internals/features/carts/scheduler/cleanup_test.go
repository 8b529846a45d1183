package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSweeper struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakeSweeper) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

func TestSweepStaleCartsUsesTTL(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	s := &fakeSweeper{n: 4}

	n, err := SweepStaleCarts(context.Background(), s, 48*time.Hour, now)
	if err != nil || n != 4 {
		t.Fatalf("sweep = %d, %v", n, err)
	}
	if want := now.Add(-48 * time.Hour); !s.cutoff.Equal(want) {
		t.Fatalf("cutoff = %s, want %s", s.cutoff, want)
	}
}

func TestSweepStaleCartsPropagatesErrors(t *testing.T) {
	s := &fakeSweeper{err: errors.New("db down")}
	if _, err := SweepStaleCarts(context.Background(), s, time.Hour, time.Now()); err == nil {
		t.Fatal("expected error")
	}
}

func TestStartCartCleanupCron(t *testing.T) {
	c, err := StartCartCleanupCron(&fakeSweeper{}, 0, "@daily")
	if err != nil || c != nil {
		t.Fatalf("disabled = %v, %v", c, err)
	}

	if _, err := StartCartCleanupCron(&fakeSweeper{}, time.Hour, "not a schedule"); err == nil {
		t.Fatal("expected error for bad schedule")
	}

	c, err = StartCartCleanupCron(&fakeSweeper{}, time.Hour, "@daily")
	if err != nil || c == nil {
		t.Fatalf("start = %v, %v", c, err)
	}
	<-c.Stop().Done()
}
