/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package poll

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	errs "github.com/suparena/ddbcompat/errors"
)

// DescribeTableAPI is the slice of the DynamoDB client the status probes need.
type DescribeTableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableActive returns a probe that reports whether the table status is ACTIVE.
func TableActive(api DescribeTableAPI, table string) Probe {
	return func(ctx context.Context) (bool, error) {
		out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		if err != nil {
			return false, fmt.Errorf("describe table %q: %w", table, err)
		}
		return out.Table.TableStatus == types.TableStatusActive, nil
	}
}

// TableGone returns a probe that reports whether the table no longer exists.
// A ResourceNotFoundException from DescribeTable means gone; any other
// failure propagates.
func TableGone(api DescribeTableAPI, table string) Probe {
	return func(ctx context.Context) (bool, error) {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		if err != nil {
			var rnf *types.ResourceNotFoundException
			if errors.As(err, &rnf) {
				return true, nil
			}
			return false, fmt.Errorf("describe table %q: %w", table, err)
		}
		return false, nil
	}
}

// GSIActive returns a probe that reports whether the named secondary index
// exists on the table with status ACTIVE.
func GSIActive(api DescribeTableAPI, table, index string) Probe {
	return func(ctx context.Context) (bool, error) {
		out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		if err != nil {
			return false, fmt.Errorf("describe table %q: %w", table, err)
		}
		for _, gsi := range out.Table.GlobalSecondaryIndexes {
			if aws.ToString(gsi.IndexName) == index && gsi.IndexStatus == types.IndexStatusActive {
				return true, nil
			}
		}
		return false, nil
	}
}

// GSIGone returns a probe that reports whether the named secondary index has
// been fully removed from the table.
func GSIGone(api DescribeTableAPI, table, index string) Probe {
	return func(ctx context.Context) (bool, error) {
		out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		if err != nil {
			return false, fmt.Errorf("describe table %q: %w", table, err)
		}
		for _, gsi := range out.Table.GlobalSecondaryIndexes {
			if aws.ToString(gsi.IndexName) == index {
				return false, nil
			}
		}
		return true, nil
	}
}

// WaitForTable blocks until the table is ACTIVE, surfacing a timeout as
// ErrConvergeTimeout.
func WaitForTable(ctx context.Context, api DescribeTableAPI, table string, opts ...Option) error {
	return wait(ctx, TableActive(api, table), fmt.Sprintf("table %q becoming ACTIVE", table), opts...)
}

// WaitForGSI blocks until the named secondary index is ACTIVE on the table,
// surfacing a timeout as ErrConvergeTimeout.
func WaitForGSI(ctx context.Context, api DescribeTableAPI, table, index string, opts ...Option) error {
	return wait(ctx, GSIActive(api, table, index), fmt.Sprintf("GSI %q on table %q becoming ACTIVE", index, table), opts...)
}

// WaitForGSIGone blocks until the named secondary index is fully removed
// from the table, surfacing a timeout as ErrConvergeTimeout.
func WaitForGSIGone(ctx context.Context, api DescribeTableAPI, table, index string, opts ...Option) error {
	return wait(ctx, GSIGone(api, table, index), fmt.Sprintf("GSI %q being removed from table %q", index, table), opts...)
}

func wait(ctx context.Context, probe Probe, condition string, opts ...Option) error {
	o := Options{Timeout: DefaultTimeout, Interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}

	outcome, err := Until(ctx, probe, opts...)
	if err != nil {
		return err
	}
	if outcome != OutcomeConverged {
		return errs.NewConvergeTimeoutError(condition, o.Timeout)
	}
	return nil
}
