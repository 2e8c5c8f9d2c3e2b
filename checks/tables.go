/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package checks

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/ddbcompat"
	"github.com/suparena/ddbcompat/drain"
	"github.com/suparena/ddbcompat/fixture"
	"github.com/suparena/ddbcompat/poll"
	"github.com/suparena/ddbcompat/registry"
)

const lifecycleIndex = "by_attribute"

// indexAPI is the client surface the index lifecycle check needs.
type indexAPI interface {
	fixture.API
	UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error)
}

func init() {
	registry.Register(registry.Check{
		Name:        "list_tables_paged",
		Description: "paginated table listing includes tables the harness created",
		Fn: func(ctx context.Context, env *registry.Env) error {
			name, err := env.Tables.Table(ctx, ddbcompat.TableSS)
			if err != nil {
				return err
			}
			return verifyListTables(ctx, env.Client, name)
		},
	})
	registry.Register(registry.Check{
		Name:        "gsi_lifecycle",
		Description: "a created index converges to active and a deleted index disappears",
		VerySlow:    true,
		Fn: func(ctx context.Context, env *registry.Env) error {
			return verifyIndexLifecycle(ctx, env.Client)
		},
	})
}

// verifyListTables drains ListTables with a one-name page limit so a
// multi-table account is guaranteed to paginate, then checks that the
// given table shows up exactly once.
func verifyListTables(ctx context.Context, api drain.ListTablesAPI, table string) error {
	names, err := drain.ListTables(ctx, api, &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
	if err != nil {
		return err
	}
	seen := 0
	for _, n := range names {
		if n == table {
			seen++
		}
	}
	if seen != 1 {
		return fmt.Errorf("table %s appeared %d times in listing of %d names, expected once",
			table, seen, len(names))
	}
	return nil
}

// verifyIndexLifecycle creates a secondary index on a throwaway table,
// waits for it to become active, deletes it, and waits for it to
// disappear.
func verifyIndexLifecycle(ctx context.Context, api indexAPI, opts ...poll.Option) error {
	return fixture.WithTable(ctx, api, fixture.SchemaSS, func(table string) error {
		_, err := api.UpdateTable(ctx, &dynamodb.UpdateTableInput{
			TableName: aws.String(table),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("attribute"), AttributeType: types.ScalarAttributeTypeS},
			},
			GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{{
				Create: &types.CreateGlobalSecondaryIndexAction{
					IndexName: aws.String(lifecycleIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("attribute"), KeyType: types.KeyTypeHash},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			}},
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", table, err)
		}
		if err := poll.WaitForGSI(ctx, api, table, lifecycleIndex, opts...); err != nil {
			return err
		}

		_, err = api.UpdateTable(ctx, &dynamodb.UpdateTableInput{
			TableName: aws.String(table),
			GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{{
				Delete: &types.DeleteGlobalSecondaryIndexAction{
					IndexName: aws.String(lifecycleIndex),
				},
			}},
		})
		if err != nil {
			return fmt.Errorf("failed to delete index on %s: %w", table, err)
		}
		return poll.WaitForGSIGone(ctx, api, table, lifecycleIndex, opts...)
	})
}
