/*
Package checks contains the compatibility check catalog.

Each check exercises one slice of DynamoDB behavior against the target
endpoint: scans and queries are drained through every page and the
results compared to the known fixture contents as multisets, table and
index lifecycle transitions are polled to convergence, and a couple of
wire-level probes bypass the SDK entirely.

Checks register themselves in init(); importing this package (usually
blank-imported from the command) populates the registry.
*/
package checks
