// Package pipeline runs an ordered provider chain for one identifier type:
// try each source in priority order, advance on transient failure, stop at
// the first success.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"consulta/internal/registry/providers"
)

// Status is the terminal state of one lookup.
type Status string

const (
	StatusPending    Status = "pending"
	StatusValidating Status = "validating"
	StatusRejected   Status = "rejected"
	StatusResolving  Status = "resolving"
	StatusResolved   Status = "resolved"
	StatusExhausted  Status = "exhausted"
)

// Observer receives one event per provider attempt; used for metrics.
// category is empty on success.
type Observer func(provider string, category providers.Category, elapsed time.Duration)

// Pipeline is the ordered fallback chain for one record type.
type Pipeline[R any] struct {
	chain          []providers.Client[R]
	attemptTimeout time.Duration
	logger         *slog.Logger
	observe        Observer
}

// Option configures a Pipeline.
type Option[R any] func(*Pipeline[R])

func WithLogger[R any](logger *slog.Logger) Option[R] {
	return func(p *Pipeline[R]) {
		p.logger = logger
	}
}

func WithObserver[R any](observe Observer) Option[R] {
	return func(p *Pipeline[R]) {
		p.observe = observe
	}
}

func WithAttemptTimeout[R any](d time.Duration) Option[R] {
	return func(p *Pipeline[R]) {
		p.attemptTimeout = d
	}
}

// New builds a pipeline over the given chain, in priority order.
func New[R any](chain []providers.Client[R], opts ...Option[R]) *Pipeline[R] {
	p := &Pipeline[R]{
		chain:          chain,
		attemptTimeout: 10 * time.Second,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve walks the chain until a provider succeeds. Each attempt gets its
// own timeout so one slow source cannot eat the whole budget. A rate-limited
// source is tripped in cd and skipped for the remainder of that run.
//
// On exhaustion the last non-not-found error wins; if every source agreed
// the record does not exist, not-found is the verdict.
func (p *Pipeline[R]) Resolve(ctx context.Context, id string, cd *Cooldowns) (R, error) {
	var zero R
	var lastErr error
	var lastNotFound error

	for _, client := range p.chain {
		if err := ctx.Err(); err != nil {
			return zero, providers.NewError(providers.CategoryTimeout, client.Name(), "lookup deadline exceeded", err)
		}
		if cd.Active(client.Name()) {
			p.logger.Debug("skipping provider in cooldown", "provider", client.Name())
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.attemptTimeout)
		start := time.Now()
		rec, err := client.Resolve(attemptCtx, id)
		elapsed := time.Since(start)
		cancel()

		if err == nil {
			if p.observe != nil {
				p.observe(client.Name(), "", elapsed)
			}
			return rec, nil
		}

		category := providers.CategoryOf(err)
		if p.observe != nil {
			p.observe(client.Name(), category, elapsed)
		}
		p.logger.Debug("provider attempt failed",
			"provider", client.Name(),
			"category", string(category),
			"retryable", category.Retryable(),
			"elapsed", elapsed,
		)

		switch category {
		case providers.CategoryRateLimited:
			cd.Trip(client.Name())
			lastErr = err
		case providers.CategoryNotFound:
			lastNotFound = err
		default:
			lastErr = err
		}
	}

	if lastErr != nil {
		return zero, lastErr
	}
	if lastNotFound != nil {
		return zero, lastNotFound
	}
	return zero, providers.NewError(providers.CategoryTransport, "pipeline", "no providers available", nil)
}
