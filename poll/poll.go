/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package poll

import (
	"context"
	"time"
)

// Outcome is the result of a bounded poll.
type Outcome int

const (
	// OutcomeTimedOut means the condition never became true within the
	// polling budget. It is the zero value so that an Outcome returned
	// alongside an error never reads as converged.
	OutcomeTimedOut Outcome = iota
	// OutcomeConverged means the probe reported true.
	OutcomeConverged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverged:
		return "converged"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Probe evaluates whether the awaited condition holds right now. Probes
// must be side-effect-free; a typical probe wraps a describe-style call
// plus a status comparison.
type Probe func(ctx context.Context) (bool, error)

// A one-minute budget probed once per second covers table and index
// lifecycle transitions on both emulators and real DynamoDB.
const (
	DefaultTimeout  = 60 * time.Second
	DefaultInterval = time.Second
)

// Options configures a poll.
type Options struct {
	Timeout  time.Duration
	Interval time.Duration
}

// Option is a functional option for configuring a poll.
type Option func(*Options)

// WithTimeout sets the total polling budget.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithInterval sets the delay between probe evaluations.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		o.Interval = d
	}
}

// Until evaluates the probe once per interval until it reports true or the
// deadline elapses.
//
// The probe runs at most once per interval and the poller returns
// immediately when the probe reports true — it never sleeps after a
// success. A probe error aborts the poll and propagates; the Outcome is
// only meaningful when the returned error is nil.
func Until(ctx context.Context, probe Probe, opts ...Option) (Outcome, error) {
	o := Options{Timeout: DefaultTimeout, Interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}

	deadline := time.Now().Add(o.Timeout)
	for {
		ok, err := probe(ctx)
		if err != nil {
			return OutcomeTimedOut, err
		}
		if ok {
			return OutcomeConverged, nil
		}
		if !time.Now().Before(deadline) {
			return OutcomeTimedOut, nil
		}

		select {
		case <-ctx.Done():
			return OutcomeTimedOut, ctx.Err()
		case <-time.After(o.Interval):
		}
	}
}
