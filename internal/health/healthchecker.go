// Package health provides component health checkers and a service-level
// aggregator used to gate startup and feed the health endpoint.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Checker is implemented by component-level checkers (currently the kv
// store; more can join).
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// Pinger is implemented by components that can verify their own
// connectivity. A nil return means healthy.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker wraps a Pinger into a periodic Checker.
type PingChecker struct {
	name         string
	target       Pinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewPingChecker builds a checker that starts unhealthy until its first
// successful probe.
func NewPingChecker(name string, target Pinger, log zerolog.Logger, probeTimeout time.Duration) *PingChecker {
	hc := &PingChecker{name: name, target: target, log: log, probeTimeout: probeTimeout}
	hc.healthy.Store(0)
	return hc
}

func (hc *PingChecker) Name() string { return hc.name }

// IsHealthy returns the cached status without blocking.
func (hc *PingChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// Start probes immediately and then on every tick until ctx is done.
func (hc *PingChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		probeCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if err := hc.target.Ping(probeCtx); err != nil {
			if hc.IsHealthy() {
				hc.log.Error().Err(err).Str("component", hc.name).Msg("health probe failed")
			}
			hc.healthy.Store(0)
			return
		}
		hc.healthy.Store(1)
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

// ServiceHealthChecker aggregates component checkers into a single service
// health flag.
type ServiceHealthChecker struct {
	healthy atomic.Int32
	deps    []Checker
	log     zerolog.Logger
}

func NewServiceHealthChecker(log zerolog.Logger, deps ...Checker) *ServiceHealthChecker {
	h := &ServiceHealthChecker{deps: deps, log: log}
	h.healthy.Store(0)
	return h
}

// IsHealthy returns cached service health.
func (h *ServiceHealthChecker) IsHealthy() bool { return h.healthy.Load() == 1 }

// Start periodically evaluates dependency health and updates the service flag.
func (h *ServiceHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	eval := func() {
		all := true
		for _, c := range h.deps {
			if !c.IsHealthy() {
				all = false
			}
		}
		if all {
			h.healthy.Store(1)
		} else {
			h.healthy.Store(0)
		}
		cur := h.healthy.Load()
		if cur != prev {
			if cur == 1 {
				h.log.Info().Msg("service health: UP")
			} else {
				h.log.Error().Msg("service health: DOWN")
			}
			prev = cur
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}
