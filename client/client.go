/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// New builds a DynamoDB client for the configured endpoint.
//
// Retries are disabled so that every transport failure surfaces exactly
// once; the harness never wants the SDK to mask a flaky endpoint.
func New(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if !cfg.AWS {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	if cfg.ReadTimeoutSeconds > 0 {
		loadOpts = append(loadOpts, config.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		}))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var clientOpts []func(*dynamodb.Options)
	if !cfg.AWS {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, clientOpts...), nil
}
