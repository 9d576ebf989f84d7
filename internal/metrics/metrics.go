package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_reservation_actions_total",
		Help: "Reservation lifecycle transitions by action.",
	}, []string{"action"})

	InsufficientStock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_reservation_insufficient_total",
		Help: "Reserve attempts rejected for lack of available stock.",
	})

	ReclaimedHolds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_reservation_reclaimed_total",
		Help: "Expired reservations deleted by the reclaimer.",
	})

	LastSweepSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stock_reservation_last_sweep_size",
		Help: "Rows reclaimed by the most recent sweep.",
	})
)
