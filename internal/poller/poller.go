// Package poller runs a refresh function on a fixed interval, one call at a
// time.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/facebookgo/clock"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

var (
	ErrInvalidInterval = errors.New("poll interval must be positive")
	ErrNilRefresh      = errors.New("refresh func is required")
	ErrRefreshPanic    = errors.New("refresh panicked")
)

// RefreshFunc is invoked on every accepted tick. The context is cancelled
// when the poller is cancelled.
type RefreshFunc func(ctx context.Context) error

// ErrorHandler receives every error or panic raised by a refresh.
type ErrorHandler func(err error)

type Option func(*Poller)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(p *Poller) { p.clock = c }
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Poller) { p.onError = h }
}

func WithLogger(l zerolog.Logger) Option {
	return func(p *Poller) { p.log = l.With().Str("component", "Poller").Logger() }
}

// WithImmediate runs one refresh at start instead of waiting a full interval.
func WithImmediate() Option {
	return func(p *Poller) { p.immediate = true }
}

// Stats are cumulative counters since Start.
type Stats struct {
	Started  uint64 `json:"started"`
	Dropped  uint64 `json:"dropped"`
	Failed   uint64 `json:"failed"`
	InFlight int32  `json:"in_flight"`
}

// Poller owns one ticker. Ticks that arrive while a refresh is still running
// are dropped, never queued.
type Poller struct {
	interval  time.Duration
	refresh   RefreshFunc
	clock     clock.Clock
	onError   ErrorHandler
	log       zerolog.Logger
	immediate bool

	inflight *semaphore.Weighted
	ctx      context.Context
	cancel   context.CancelFunc
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once

	started atomic.Uint64
	dropped atomic.Uint64
	failed  atomic.Uint64
	running atomic.Int32
}

// Start begins polling until Cancel is called or ctx is done.
func Start(ctx context.Context, interval time.Duration, refresh RefreshFunc, opts ...Option) (*Poller, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if refresh == nil {
		return nil, ErrNilRefresh
	}

	p := &Poller{
		interval: interval,
		refresh:  refresh,
		clock:    clock.New(),
		log:      zerolog.Nop(),
		inflight: semaphore.NewWeighted(1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.onError == nil {
		p.onError = func(err error) {
			p.log.Error().Err(err).Msg("refresh failed")
		}
	}
	p.ctx, p.cancel = context.WithCancel(ctx)

	ticker := p.clock.Ticker(interval)
	if p.immediate {
		p.trigger()
	}
	go p.run(ticker)

	p.log.Info().Dur("interval", interval).Msg("polling started")
	return p, nil
}

func (p *Poller) run(t *clock.Ticker) {
	defer close(p.done)
	defer t.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-p.ctx.Done():
			return
		case <-t.C:
			select {
			case <-p.stop:
				return
			default:
			}
			p.trigger()
		}
	}
}

func (p *Poller) trigger() {
	if !p.inflight.TryAcquire(1) {
		p.dropped.Add(1)
		p.log.Debug().Msg("refresh still running, tick dropped")
		return
	}
	p.started.Add(1)
	p.running.Add(1)

	go func() {
		defer p.inflight.Release(1)
		defer p.running.Add(-1)

		if p.ctx.Err() != nil {
			p.dropped.Add(1)
			return
		}
		if err := p.invoke(); err != nil {
			p.failed.Add(1)
			p.onError(err)
		}
	}()
}

func (p *Poller) invoke() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRefreshPanic, r)
		}
	}()
	return p.refresh(p.ctx)
}

// Cancel stops the ticker, cancels the context of a running refresh and
// waits for it to return. No refresh runs after Cancel returns. Cancel is
// safe to call more than once.
func (p *Poller) Cancel() {
	p.once.Do(func() {
		close(p.stop)
		p.cancel()
	})
	<-p.done

	// The loop has exited, so the only holder of the slot is a refresh
	// goroutine already spawned by the last tick.
	_ = p.inflight.Acquire(context.Background(), 1)
	p.inflight.Release(1)
	p.log.Info().Msg("polling stopped")
}

// Wait blocks until no refresh is running or ctx is done.
func (p *Poller) Wait(ctx context.Context) error {
	if err := p.inflight.Acquire(ctx, 1); err != nil {
		return err
	}
	p.inflight.Release(1)
	return nil
}

// Done is closed once the scheduling loop has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}

func (p *Poller) Stats() Stats {
	return Stats{
		Started:  p.started.Load(),
		Dropped:  p.dropped.Load(),
		Failed:   p.failed.Load(),
		InFlight: p.running.Load(),
	}
}
