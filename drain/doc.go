/*
Package drain turns cursor-paginated DynamoDB calls into complete result sets.

A paginated call returns one Page at a time together with an opaque
continuation cursor. Drain repeatedly invokes a PageFunc, appending each
page's records in arrival order and summing the page-level counters, until a
page arrives without a continuation cursor.

The drainer itself never retries: any transport failure aborts the drain and
propagates to the caller. It also never drops or duplicates a record —
duplicates or omissions in a drained result are observations about the
remote service, not artifacts of the drain.

Adapters are provided for the three paginated calls the harness uses:

	result, err := drain.Scan(ctx, client, &dynamodb.ScanInput{
	    TableName: aws.String("compat_Test_17"),
	})
	result, err := drain.Query(ctx, client, queryInput)
	names, err := drain.ListTables(ctx, client, &dynamodb.ListTablesInput{
	    Limit: aws.Int32(100),
	})

By default a drain has no page ceiling; a service that always returns a
cursor makes the drain run until its context is cancelled. WithMaxPages adds
an optional fail-fast cap for misbehaving services.
*/
package drain
