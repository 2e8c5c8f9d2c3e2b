/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixture

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchWriteChunk is the BatchWriteItem request ceiling.
const batchWriteChunk = 25

// Item is a marshaled DynamoDB record.
type Item = map[string]types.AttributeValue

// FilledCount is the number of items FilledItems produces.
const FilledCount = 329

// filledRecord is the marshaling shape of one pre-filled item.
type filledRecord struct {
	P         string `dynamodbav:"p"`
	C         string `dynamodbav:"c"`
	Attribute string `dynamodbav:"attribute,omitempty"`
	Another   string `dynamodbav:"another,omitempty"`
	Str       string `dynamodbav:"str,omitempty"`
}

func mustItem(r filledRecord) Item {
	item, err := attributevalue.MarshalMap(r)
	if err != nil {
		panic(fmt.Sprintf("fixture: failed to marshal record: %v", err))
	}
	return item
}

// FilledItems builds the deterministic data set the read checks assert
// against: 164 items spread across distinct partitions, 164 items
// sharing one long partition with varying payload sizes, and a single
// sentinel item.
func FilledItems() []Item {
	items := make([]Item, 0, FilledCount)
	for i := 0; i < 164; i++ {
		n := strconv.Itoa(i)
		items = append(items, mustItem(filledRecord{
			P:         n,
			C:         n,
			Attribute: strings.Repeat("x", 7),
			Another:   strings.Repeat("y", 16),
		}))
	}
	for i := 0; i < 164; i++ {
		items = append(items, mustItem(filledRecord{
			P:         "long",
			C:         strconv.Itoa(i),
			Attribute: strings.Repeat("x", 1+i%7),
			Another:   strings.Repeat("y", 1+i%16),
		}))
	}
	items = append(items, mustItem(filledRecord{
		P:   "hello",
		C:   "world",
		Str: "and now for something completely different",
	}))
	return items
}

// FillTable writes items into table in BatchWriteItem chunks of 25.
// Unprocessed items are retried until the batch drains.
func FillTable(ctx context.Context, api API, table string, items []Item) error {
	for start := 0; start < len(items); start += batchWriteChunk {
		end := start + batchWriteChunk
		if end > len(items) {
			end = len(items)
		}
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, it := range items[start:end] {
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: it},
			})
		}
		pending := map[string][]types.WriteRequest{table: reqs}
		for len(pending[table]) > 0 {
			out, err := api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return fmt.Errorf("failed to batch write to %s: %w", table, err)
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// CreateFilledTable provisions a string/string table pre-loaded with
// the deterministic data set and returns its name.
func CreateFilledTable(ctx context.Context, api API) (string, error) {
	name := UniqueTableName()
	if err := CreateTable(ctx, api, name, SchemaSS); err != nil {
		return "", err
	}
	if err := FillTable(ctx, api, name, FilledItems()); err != nil {
		_ = DeleteTable(ctx, api, name)
		return "", err
	}
	return name, nil
}
