/*
Package client builds DynamoDB clients aimed at the endpoint under test.

The harness talks to either a local DynamoDB-compatible emulator (the
default, http://localhost:4566) or real AWS. Retries are disabled on every
client: the harness must observe each transport failure exactly once rather
than have the SDK paper over it.

Configuration is resolved from an optional YAML file, a .env file, and
process environment variables:

	cfg, err := client.FromEnv()
	ddb, err := client.New(ctx, cfg)

The package also exposes ManualRequest for wire-level checks that must
bypass SDK marshaling entirely, posting a raw DynamoDB JSON payload with an
X-Amz-Target header.
*/
package client
