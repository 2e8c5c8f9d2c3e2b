/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	errs "github.com/suparena/ddbcompat/errors"
)

// mockDescriber replays a sequence of table descriptions; once the script is
// exhausted it keeps returning the final entry.
type mockDescriber struct {
	outputs []*dynamodb.DescribeTableOutput
	errs    []error
	calls   int
}

func (m *mockDescriber) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	i := m.calls
	if i >= len(m.outputs) {
		i = len(m.outputs) - 1
	}
	m.calls++
	if m.errs != nil && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	return m.outputs[i], nil
}

func describeWithGSI(index string, status types.IndexStatus) *dynamodb.DescribeTableOutput {
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableStatus: types.TableStatusActive,
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndexDescription{
				{IndexName: aws.String(index), IndexStatus: status},
			},
		},
	}
}

func describeBare(status types.TableStatus) *dynamodb.DescribeTableOutput {
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableStatus: status},
	}
}

func TestGSIActiveProbe(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeWithGSI("statusIndex", types.IndexStatusCreating),
		describeWithGSI("statusIndex", types.IndexStatusActive),
	}}

	probe := GSIActive(mock, "threads", "statusIndex")

	ok, err := probe(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = probe(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGSIActiveIgnoresOtherIndexes(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeWithGSI("otherIndex", types.IndexStatusActive),
	}}

	ok, err := GSIActive(mock, "threads", "statusIndex")(context.Background())
	require.NoError(t, err)
	require.False(t, ok, "an ACTIVE index under a different name must not match")
}

func TestGSIGoneProbe(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeWithGSI("statusIndex", types.IndexStatusDeleting),
		describeBare(types.TableStatusActive),
	}}

	probe := GSIGone(mock, "threads", "statusIndex")

	ok, err := probe(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = probe(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTableActiveProbe(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeBare(types.TableStatusCreating),
		describeBare(types.TableStatusActive),
	}}

	probe := TableActive(mock, "threads")

	ok, err := probe(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = probe(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTableGoneProbe(t *testing.T) {
	mock := &mockDescriber{
		outputs: []*dynamodb.DescribeTableOutput{
			describeBare(types.TableStatusDeleting),
			nil,
		},
		errs: []error{nil, &types.ResourceNotFoundException{}},
	}

	probe := TableGone(mock, "threads")

	ok, err := probe(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = probe(context.Background())
	require.NoError(t, err)
	require.True(t, ok, "ResourceNotFoundException means the table is gone")
}

func TestTableGonePropagatesOtherErrors(t *testing.T) {
	boom := errors.New("internal server error")
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{nil}, errs: []error{boom}}

	_, err := TableGone(mock, "threads")(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestWaitForGSIConverges(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeWithGSI("statusIndex", types.IndexStatusCreating),
		describeWithGSI("statusIndex", types.IndexStatusActive),
	}}

	err := WaitForGSI(context.Background(), mock, "threads", "statusIndex",
		WithTimeout(time.Second), WithInterval(10*time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, 2, mock.calls)
}

func TestWaitForGSITimesOutDistinctly(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeWithGSI("statusIndex", types.IndexStatusCreating),
	}}

	err := WaitForGSI(context.Background(), mock, "threads", "statusIndex",
		WithTimeout(50*time.Millisecond), WithInterval(10*time.Millisecond))
	require.ErrorIs(t, err, errs.ErrConvergeTimeout)

	var cte *errs.ConvergeTimeoutError
	require.ErrorAs(t, err, &cte)
	require.Contains(t, cte.Condition, "statusIndex")
}

func TestWaitForGSIGone(t *testing.T) {
	mock := &mockDescriber{outputs: []*dynamodb.DescribeTableOutput{
		describeWithGSI("statusIndex", types.IndexStatusDeleting),
		describeBare(types.TableStatusActive),
	}}

	err := WaitForGSIGone(context.Background(), mock, "threads", "statusIndex",
		WithTimeout(time.Second), WithInterval(10*time.Millisecond))
	require.NoError(t, err)
}
