package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Reclaimer periodically sweeps expired reservations as a safety net for
// holders who never come back; the hot paths already reap lazily. It runs
// as a background goroutine and stops via its context or Stop.
//
// An interval of 0 disables the loop entirely.
type Reclaimer struct {
	svc      *ReservationService
	interval time.Duration
	logger   zerolog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewReclaimer(svc *ReservationService, interval time.Duration, logger zerolog.Logger) *Reclaimer {
	return &Reclaimer{
		svc:      svc,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start begins the background sweep loop. It sweeps once immediately to
// clear any backlog, then repeats on the configured interval.
func (r *Reclaimer) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info().Msg("reclaimer disabled (interval=0)")
		close(r.done)
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	go r.loop(ctx)

	r.logger.Info().Dur("interval", r.interval).Msg("reclaimer started")
}

// Stop signals the loop to exit and waits for it to finish.
func (r *Reclaimer) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	<-r.done
}

func (r *Reclaimer) loop(ctx context.Context) {
	defer close(r.done)

	r.sweep(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reclaimer) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.svc.CleanupExpired(sweepCtx); err != nil {
		r.logger.Error().Err(err).Msg("sweep failed")
	}
}
