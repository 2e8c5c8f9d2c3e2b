/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package drain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/suparena/ddbcompat/errors"
)

// scripted builds a PageFunc that replays a fixed chain of pages, recording
// the start key each call received.
func scripted(pages []Page[string, string], calls *[]string) PageFunc[string, string] {
	i := 0
	return func(ctx context.Context, startKey string) (Page[string, string], error) {
		*calls = append(*calls, startKey)
		p := pages[i]
		i++
		return p, nil
	}
}

func TestDrainSinglePage(t *testing.T) {
	var calls []string
	fn := scripted([]Page[string, string]{
		{Records: []string{"a", "b", "c"}},
	}, &calls)

	res, err := Drain(context.Background(), fn)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, res.Records)
	require.Equal(t, 1, res.Pages)
	require.Len(t, calls, 1)
	require.Equal(t, "", calls[0], "first call must receive the zero start key")
}

func TestDrainFollowsContinuation(t *testing.T) {
	var calls []string
	fn := scripted([]Page[string, string]{
		{Records: []string{"a", "b"}, NextKey: "k1", More: true, Count: 2, ScannedCount: 5},
		{Records: []string{"c"}, NextKey: "k2", More: true, Count: 1, ScannedCount: 4},
		{Records: []string{"d", "e"}, Count: 2, ScannedCount: 2},
	}, &calls)

	res, err := Drain(context.Background(), fn)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, res.Records,
		"records must concatenate in page order")
	require.Equal(t, 3, res.Pages)
	require.Equal(t, int64(5), res.Count)
	require.Equal(t, int64(11), res.ScannedCount)
	require.Equal(t, []string{"", "k1", "k2"}, calls,
		"each continuation call must carry the previous page's cursor")
}

func TestDrainEmptyPages(t *testing.T) {
	// A page may be empty but still carry a continuation cursor.
	var calls []string
	fn := scripted([]Page[string, string]{
		{NextKey: "k1", More: true},
		{Records: []string{"x"}},
	}, &calls)

	res, err := Drain(context.Background(), fn)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, res.Records)
	require.Equal(t, 2, res.Pages)
}

func TestDrainPropagatesTransportFailure(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	fn := func(ctx context.Context, startKey string) (Page[string, string], error) {
		calls++
		if calls == 2 {
			return Page[string, string]{}, boom
		}
		return Page[string, string]{Records: []string{"a"}, NextKey: "k1", More: true}, nil
	}

	res, err := Drain(context.Background(), fn)
	require.ErrorIs(t, err, boom)
	require.Nil(t, res)
	require.Equal(t, 2, calls, "the drain must not retry a failed request")
}

func TestDrainMaxPages(t *testing.T) {
	// An adversarial service that always returns a cursor.
	fn := func(ctx context.Context, startKey string) (Page[string, string], error) {
		return Page[string, string]{Records: []string{"r"}, NextKey: "again", More: true}, nil
	}

	res, err := Drain(context.Background(), fn, WithMaxPages(4))
	require.ErrorIs(t, err, errs.ErrPageLimit)
	require.Nil(t, res)
}

func TestDrainMaxPagesNotHitByFiniteChain(t *testing.T) {
	var calls []string
	fn := scripted([]Page[string, string]{
		{Records: []string{"a"}, NextKey: "k1", More: true},
		{Records: []string{"b"}},
	}, &calls)

	res, err := Drain(context.Background(), fn, WithMaxPages(2))
	require.NoError(t, err, "a chain that ends exactly at the cap must succeed")
	require.Equal(t, 2, res.Pages)
}
