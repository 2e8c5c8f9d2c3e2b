/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package checks

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/ddbcompat/drain"
	"github.com/suparena/ddbcompat/fixture"
	"github.com/suparena/ddbcompat/registry"
)

func init() {
	registry.Register(registry.Check{
		Name:        "scan_full",
		Description: "a full table scan returns exactly the stored items",
		Fn: func(ctx context.Context, env *registry.Env) error {
			table, err := env.Tables.Filled(ctx)
			if err != nil {
				return err
			}
			return verifyFullScan(ctx, env.Client, table, fixture.FilledItems())
		},
	})
	registry.Register(registry.Check{
		Name:        "scan_paged",
		Description: "a scan with a small page limit pages through and still returns every item",
		Fn: func(ctx context.Context, env *registry.Env) error {
			table, err := env.Tables.Filled(ctx)
			if err != nil {
				return err
			}
			return verifyPagedScan(ctx, env.Client, table, fixture.FilledItems())
		},
	})
}

// verifyFullScan drains an unbounded scan and compares the result set
// against the expected items.
func verifyFullScan(ctx context.Context, api drain.ScanAPI, table string, expected []fixture.Item) error {
	res, err := drain.Scan(ctx, api, &dynamodb.ScanInput{TableName: aws.String(table)})
	if err != nil {
		return err
	}
	if res.Count != int64(len(expected)) {
		return fmt.Errorf("scan of %s counted %d items, expected %d", table, res.Count, len(expected))
	}
	return compareItems("scan "+table, expected, res.Records)
}

// verifyPagedScan scans with a page limit small enough to force
// multiple round trips, then checks both the pagination shape and the
// final result set.
func verifyPagedScan(ctx context.Context, api drain.ScanAPI, table string, expected []fixture.Item) error {
	const pageLimit = 25
	res, err := drain.Scan(ctx, api, &dynamodb.ScanInput{
		TableName: aws.String(table),
		Limit:     aws.Int32(pageLimit),
	})
	if err != nil {
		return err
	}
	if want := (len(expected) + pageLimit - 1) / pageLimit; res.Pages < want {
		return fmt.Errorf("scan of %s with limit %d used %d pages, expected at least %d",
			table, pageLimit, res.Pages, want)
	}
	if res.ScannedCount != int64(len(expected)) {
		return fmt.Errorf("scan of %s scanned %d items, expected %d", table, res.ScannedCount, len(expected))
	}
	return compareItems("paged scan "+table, expected, res.Records)
}
