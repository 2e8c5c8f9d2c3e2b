/*
Package registry holds the catalog of compatibility checks.

Checks self-register from init() functions in the checks package:

	registry.Register(registry.Check{
	    Name:        "scan_full",
	    Description: "full table scan returns every stored item",
	    Fn:          scanFull,
	})

The registry is populated during initialization and read-only
afterwards; the runner iterates it in registration order so report
output is stable between runs.
*/
package registry
