package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"summerschool_backend/internals/metrics"
)

// Sweeper is the part of the cart store the cleanup job needs.
type Sweeper interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// SweepStaleCarts deletes cart items older than ttl and reports how many went.
func SweepStaleCarts(ctx context.Context, store Sweeper, ttl time.Duration, now time.Time) (int64, error) {
	cutoff := now.Add(-ttl)
	n, err := store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.CartSweepDeleted.Add(float64(n))
	if n > 0 {
		log.Printf("[CART-SWEEP] deleted %d items older than %s", n, cutoff.Format(time.RFC3339))
	} else {
		log.Printf("[CART-SWEEP] nothing to delete (cutoff=%s)", cutoff.Format(time.RFC3339))
	}
	return n, nil
}

// StartCartCleanupCron schedules the sweep. A zero ttl disables it and returns nil.
// The caller stops the returned cron on shutdown.
func StartCartCleanupCron(store Sweeper, ttl time.Duration, schedule string) (*cron.Cron, error) {
	if ttl <= 0 {
		log.Println("[CART-SWEEP] disabled (CART_ITEM_TTL=0)")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := SweepStaleCarts(ctx, store, ttl, time.Now()); err != nil {
			log.Printf("[CART-SWEEP] error: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add cron %q: %w", schedule, err)
	}

	log.Printf("[CART-SWEEP] started schedule=%q ttl=%s", schedule, ttl)
	c.Start()
	return c, nil
}
