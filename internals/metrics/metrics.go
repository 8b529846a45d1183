package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Checkout results used as the "result" label.
const (
	ResultSuccess        = "success"
	ResultSeatsExhausted = "seats_exhausted"
	ResultNotFound       = "not_found"
	ResultError          = "error"
)

var (
	CheckoutResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summer_school_checkout_total",
			Help: "Number of checkout attempts by result",
		},
		[]string{"result"},
	)

	CheckoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summer_school_checkout_duration_seconds",
			Help:    "Time taken by the checkout transaction",
			Buckets: prometheus.DefBuckets,
		},
	)

	CartSweepDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "summer_school_cart_sweep_deleted_total",
			Help: "Number of stale cart items removed by the sweeper",
		},
	)
)

var once sync.Once

func Register() {
	once.Do(func() {
		prometheus.MustRegister(CheckoutResults, CheckoutDuration, CartSweepDeleted)
	})
}
