/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixture

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	created  []*dynamodb.CreateTableInput
	deleted  []string
	batches  []*dynamodb.BatchWriteItemInput
	tables   map[string][]Item
	failPut  error
	failDrop error

	// unprocessedOnce makes the first batch bounce one request back.
	unprocessedOnce bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{tables: map[string][]Item{}}
}

func (f *fakeAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	f.tables[*in.TableName] = nil
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeAPI) DeleteTable(_ context.Context, in *dynamodb.DeleteTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	if f.failDrop != nil {
		return nil, f.failDrop
	}
	f.deleted = append(f.deleted, *in.TableName)
	delete(f.tables, *in.TableName)
	return &dynamodb.DeleteTableOutput{}, nil
}

func (f *fakeAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if _, ok := f.tables[*in.TableName]; !ok {
		return nil, &types.ResourceNotFoundException{}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   in.TableName,
			TableStatus: types.TableStatusActive,
		},
	}, nil
}

func (f *fakeAPI) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if f.failPut != nil {
		return nil, f.failPut
	}
	f.batches = append(f.batches, in)
	out := &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{}}
	for table, reqs := range in.RequestItems {
		if f.unprocessedOnce {
			f.unprocessedOnce = false
			out.UnprocessedItems = map[string][]types.WriteRequest{table: reqs[:1]}
			reqs = reqs[1:]
		}
		for _, r := range reqs {
			f.tables[table] = append(f.tables[table], r.PutRequest.Item)
		}
	}
	return out, nil
}

func TestUniqueTableName(t *testing.T) {
	a := UniqueTableName()
	b := UniqueTableName()
	require.True(t, strings.HasPrefix(a, TableNamePrefix))
	require.NotEqual(t, a, b)
}

func TestRandomStringLength(t *testing.T) {
	s := RandomString(16)
	require.Len(t, s, 16)
	require.Len(t, RandomBytes(32), 32)
}

func TestCreateTableSchema(t *testing.T) {
	api := newFakeAPI()
	require.NoError(t, CreateTable(context.Background(), api, "compat_Test_x", SchemaSN))
	require.Len(t, api.created, 1)

	in := api.created[0]
	require.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	require.Len(t, in.KeySchema, 2)
	require.Equal(t, "p", *in.KeySchema[0].AttributeName)
	require.Equal(t, types.KeyTypeHash, in.KeySchema[0].KeyType)
	require.Equal(t, "c", *in.KeySchema[1].AttributeName)
	require.Equal(t, types.KeyTypeRange, in.KeySchema[1].KeyType)
	require.Equal(t, types.ScalarAttributeTypeN, in.AttributeDefinitions[1].AttributeType)
}

func TestCreateTableHashOnly(t *testing.T) {
	api := newFakeAPI()
	require.NoError(t, CreateTable(context.Background(), api, "compat_Test_h", SchemaB))
	in := api.created[0]
	require.Len(t, in.KeySchema, 1)
	require.Len(t, in.AttributeDefinitions, 1)
	require.Equal(t, types.ScalarAttributeTypeB, in.AttributeDefinitions[0].AttributeType)
}

func TestWithTableCleansUp(t *testing.T) {
	api := newFakeAPI()
	var seen string
	err := WithTable(context.Background(), api, SchemaSS, func(table string) error {
		seen = table
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{seen}, api.deleted)
}

func TestWithTableKeepsRunError(t *testing.T) {
	api := newFakeAPI()
	boom := errors.New("boom")
	err := WithTable(context.Background(), api, SchemaSS, func(string) error { return boom })
	require.ErrorIs(t, err, boom)
	require.Len(t, api.deleted, 1)
}

func TestFilledItemsLayout(t *testing.T) {
	items := FilledItems()
	require.Len(t, items, FilledCount)

	long := 0
	for _, it := range items {
		p := it["p"].(*types.AttributeValueMemberS).Value
		if p == "long" {
			long++
		}
	}
	require.Equal(t, 164, long)

	last := items[len(items)-1]
	require.Equal(t, "hello", last["p"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "world", last["c"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "and now for something completely different",
		last["str"].(*types.AttributeValueMemberS).Value)
}

func TestFillTableChunksAndRetries(t *testing.T) {
	api := newFakeAPI()
	api.unprocessedOnce = true
	api.tables["t"] = nil

	items := FilledItems()
	require.NoError(t, FillTable(context.Background(), api, "t", items))
	require.Len(t, api.tables["t"], len(items))

	// 329 items in chunks of 25 is 14 batches, plus one retry for the
	// bounced request.
	require.Len(t, api.batches, 15)
	require.LessOrEqual(t, len(api.batches[0].RequestItems["t"]), 25)
}

func TestCreateFilledTable(t *testing.T) {
	api := newFakeAPI()
	name, err := CreateFilledTable(context.Background(), api)
	require.NoError(t, err)
	require.Len(t, api.tables[name], FilledCount)
}

func TestCreateFilledTableCleansUpOnFillFailure(t *testing.T) {
	api := newFakeAPI()
	api.failPut = errors.New("throttled")
	_, err := CreateFilledTable(context.Background(), api)
	require.Error(t, err)
	require.Len(t, api.deleted, 1)
}
