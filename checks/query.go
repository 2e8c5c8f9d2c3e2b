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

	"github.com/suparena/ddbcompat/drain"
	"github.com/suparena/ddbcompat/fixture"
	"github.com/suparena/ddbcompat/registry"
)

func init() {
	registry.Register(registry.Check{
		Name:        "query_partition",
		Description: "querying a large partition with a page limit returns every item once with consistent counts",
		Fn: func(ctx context.Context, env *registry.Env) error {
			table, err := env.Tables.Filled(ctx)
			if err != nil {
				return err
			}
			return verifyPartitionQuery(ctx, env.Client, table, "long", filledPartition("long"))
		},
	})
	registry.Register(registry.Check{
		Name:        "query_single_item",
		Description: "querying a one-item partition returns exactly that item",
		Fn: func(ctx context.Context, env *registry.Env) error {
			table, err := env.Tables.Filled(ctx)
			if err != nil {
				return err
			}
			return verifyPartitionQuery(ctx, env.Client, table, "hello", filledPartition("hello"))
		},
	})
}

// filledPartition returns the fixture items whose partition key is p.
func filledPartition(p string) []fixture.Item {
	var out []fixture.Item
	for _, it := range fixture.FilledItems() {
		if s, ok := it["p"].(*types.AttributeValueMemberS); ok && s.Value == p {
			out = append(out, it)
		}
	}
	return out
}

// verifyPartitionQuery drains a key-condition query with a small page
// limit and checks items, Count, and ScannedCount against the fixture.
// With no filter expression DynamoDB reports ScannedCount equal to
// Count.
func verifyPartitionQuery(ctx context.Context, api drain.QueryAPI, table, partition string, expected []fixture.Item) error {
	res, err := drain.Query(ctx, api, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("p = :p"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: partition},
		},
		Limit: aws.Int32(30),
	})
	if err != nil {
		return err
	}
	if res.Count != int64(len(expected)) {
		return fmt.Errorf("query p=%q counted %d items, expected %d", partition, res.Count, len(expected))
	}
	if res.ScannedCount != res.Count {
		return fmt.Errorf("query p=%q scanned %d items but counted %d; they must match without a filter",
			partition, res.ScannedCount, res.Count)
	}
	return compareItems(fmt.Sprintf("query %s p=%q", table, partition), expected, res.Records)
}
