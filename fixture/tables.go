/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixture

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/ddbcompat/poll"
)

// KeySchema describes a partition/sort key pair. The attribute names
// are fixed to "p" and "c" across every fixture table; only the types
// vary between schemas.
type KeySchema struct {
	// HashType is the partition key attribute type.
	HashType types.ScalarAttributeType
	// RangeType is the sort key attribute type; empty means the table
	// has no sort key.
	RangeType types.ScalarAttributeType
}

// The schema shapes the checks provision tables with.
var (
	SchemaS  = KeySchema{HashType: types.ScalarAttributeTypeS}
	SchemaSS = KeySchema{HashType: types.ScalarAttributeTypeS, RangeType: types.ScalarAttributeTypeS}
	SchemaB  = KeySchema{HashType: types.ScalarAttributeTypeB}
	SchemaSB = KeySchema{HashType: types.ScalarAttributeTypeS, RangeType: types.ScalarAttributeTypeB}
	SchemaSN = KeySchema{HashType: types.ScalarAttributeTypeS, RangeType: types.ScalarAttributeTypeN}
)

// API is the slice of the DynamoDB client the fixture layer needs.
type API interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// CreateTable provisions a table with the given schema and on-demand
// billing, then waits for it to become active.
func CreateTable(ctx context.Context, api API, name string, schema KeySchema) error {
	keySchema := []types.KeySchemaElement{
		{AttributeName: aws.String("p"), KeyType: types.KeyTypeHash},
	}
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("p"), AttributeType: schema.HashType},
	}
	if schema.RangeType != "" {
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String("c"), KeyType: types.KeyTypeRange,
		})
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String("c"), AttributeType: schema.RangeType,
		})
	}

	_, err := api.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		KeySchema:            keySchema,
		AttributeDefinitions: attrs,
		BillingMode:          types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}
	return poll.WaitForTable(ctx, api, name)
}

// DeleteTable removes a fixture table. Deletion failures are wrapped
// so the caller can log and continue sweeping the rest.
func DeleteTable(ctx context.Context, api API, name string) error {
	_, err := api.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: aws.String(name)})
	if err != nil {
		return fmt.Errorf("failed to delete table %s: %w", name, err)
	}
	return nil
}

// WithTable creates a table, runs fn against it, and deletes the table
// afterwards regardless of fn's outcome.
func WithTable(ctx context.Context, api API, schema KeySchema, fn func(table string) error) error {
	name := UniqueTableName()
	if err := CreateTable(ctx, api, name, schema); err != nil {
		return err
	}
	runErr := fn(name)
	if delErr := DeleteTable(ctx, api, name); delErr != nil && runErr == nil {
		return delErr
	}
	return runErr
}
