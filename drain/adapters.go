/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package drain

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is one raw DynamoDB record.
type Item = map[string]types.AttributeValue

// ScanAPI is the slice of the DynamoDB client the scan drainer needs.
type ScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// QueryAPI is the slice of the DynamoDB client the query drainer needs.
type QueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ListTablesAPI is the slice of the DynamoDB client the table-listing
// drainer needs.
type ListTablesAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

// Scan drains every page of a Scan call. The input's ExclusiveStartKey is
// overwritten on continuation calls, so callers should not set it.
func Scan(ctx context.Context, api ScanAPI, input *dynamodb.ScanInput, opts ...Option) (*Result[Item], error) {
	fn := func(ctx context.Context, startKey Item) (Page[Item, Item], error) {
		if startKey != nil {
			input.ExclusiveStartKey = startKey
		}
		out, err := api.Scan(ctx, input)
		if err != nil {
			return Page[Item, Item]{}, fmt.Errorf("scan page: %w", err)
		}
		return Page[Item, Item]{
			Records:      out.Items,
			NextKey:      out.LastEvaluatedKey,
			More:         out.LastEvaluatedKey != nil,
			Count:        out.Count,
			ScannedCount: out.ScannedCount,
		}, nil
	}
	return Drain(ctx, fn, opts...)
}

// Query drains every page of a Query call. The input's ExclusiveStartKey is
// overwritten on continuation calls, so callers should not set it.
func Query(ctx context.Context, api QueryAPI, input *dynamodb.QueryInput, opts ...Option) (*Result[Item], error) {
	fn := func(ctx context.Context, startKey Item) (Page[Item, Item], error) {
		if startKey != nil {
			input.ExclusiveStartKey = startKey
		}
		out, err := api.Query(ctx, input)
		if err != nil {
			return Page[Item, Item]{}, fmt.Errorf("query page: %w", err)
		}
		return Page[Item, Item]{
			Records:      out.Items,
			NextKey:      out.LastEvaluatedKey,
			More:         out.LastEvaluatedKey != nil,
			Count:        out.Count,
			ScannedCount: out.ScannedCount,
		}, nil
	}
	return Drain(ctx, fn, opts...)
}

// ListTables drains every page of a ListTables call and returns all table
// names. The input's ExclusiveStartTableName is overwritten on continuation
// calls, so callers should not set it.
func ListTables(ctx context.Context, api ListTablesAPI, input *dynamodb.ListTablesInput, opts ...Option) ([]string, error) {
	fn := func(ctx context.Context, startName string) (Page[string, string], error) {
		if startName != "" {
			input.ExclusiveStartTableName = aws.String(startName)
		}
		out, err := api.ListTables(ctx, input)
		if err != nil {
			return Page[string, string]{}, fmt.Errorf("list tables page: %w", err)
		}
		return Page[string, string]{
			Records: out.TableNames,
			NextKey: aws.ToString(out.LastEvaluatedTableName),
			More:    out.LastEvaluatedTableName != nil,
		}, nil
	}

	res, err := Drain(ctx, fn, opts...)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}
