/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package drain

import (
	"context"
	"fmt"

	errs "github.com/suparena/ddbcompat/errors"
)

// Page is a single response from a paginated call.
//
// NextKey is the continuation cursor for the following request; More reports
// whether the service indicated that another page remains. More is carried
// separately because the zero value of K is not always distinguishable from
// "no cursor" (a table name cursor is a plain string).
type Page[R, K any] struct {
	Records      []R
	NextKey      K
	More         bool
	Count        int32
	ScannedCount int32
}

// PageFunc issues one request against the paginated service. The first call
// receives the zero value of K; continuation calls receive the NextKey of
// the previous page.
type PageFunc[R, K any] func(ctx context.Context, startKey K) (Page[R, K], error)

// Result is the concatenation, in page order, of every page of a drain.
type Result[R any] struct {
	// Records preserves the order in which pages and within-page records
	// were returned by the service.
	Records []R
	// Count is the sum of the per-page post-filter counts.
	Count int64
	// ScannedCount is the sum of the per-page pre-filter scanned counts.
	ScannedCount int64
	// Pages is the number of requests the drain issued.
	Pages int
}

// Options configures a drain.
type Options struct {
	// MaxPages caps the number of pages a drain may consume. Zero means
	// unbounded, which matches the behavior of a well-behaved service.
	MaxPages int
}

// Option is a functional option for configuring a drain.
type Option func(*Options)

// WithMaxPages caps the number of pages a drain may consume before it fails
// with ErrPageLimit.
func WithMaxPages(n int) Option {
	return func(o *Options) {
		o.MaxPages = n
	}
}

// Drain invokes fn until a page arrives without a continuation cursor and
// returns the accumulated result.
//
// A transport failure from fn aborts the drain immediately; nothing is
// retried and the partial accumulation is discarded.
func Drain[R, K any](ctx context.Context, fn PageFunc[R, K], opts ...Option) (*Result[R], error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result[R]{}
	var startKey K
	for {
		page, err := fn(ctx, startKey)
		if err != nil {
			return nil, err
		}

		res.Records = append(res.Records, page.Records...)
		res.Count += int64(page.Count)
		res.ScannedCount += int64(page.ScannedCount)
		res.Pages++

		if !page.More {
			return res, nil
		}
		if o.MaxPages > 0 && res.Pages >= o.MaxPages {
			return nil, fmt.Errorf("drain consumed %d pages: %w", res.Pages, errs.ErrPageLimit)
		}
		startKey = page.NextKey
	}
}
