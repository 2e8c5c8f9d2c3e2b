/*
Package ddbcompat is a compatibility harness for DynamoDB-style APIs.
It runs a catalog of behavioral checks against an endpoint (a local
emulator by default, real DynamoDB when asked) and reports where the
target diverges from DynamoDB semantics.

The harness is built from a few small pieces:
  - drain exhausts paginated operation results
  - canon reduces items to canonical forms and compares result sets
    as multisets
  - poll waits for asynchronous state (table and index lifecycle)
    to converge
  - fixture provisions and fills test tables
  - registry, runner and checks hold the catalog and execute it

Basic usage:

	cfg, _ := client.FromEnv()
	ddb, _ := client.New(ctx, cfg)
	tables := ddbcompat.NewSharedTables(ddb)
	defer tables.Cleanup(ctx)

	r := runner.New(cfg, ddb, tables, logger.NewDefault())
	report, _ := r.Run(ctx, registry.List())

The command line entry point lives under cmd/ddbcompat.
*/
package ddbcompat
