/*
Package errors provides semantic error types for the ddbcompat harness.

The package defines the harness failure taxonomy with specific types that can
be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrMismatch        = errors.New("result sets are not equivalent")
	    ErrConvergeTimeout = errors.New("condition did not converge within timeout")
	    ErrPageLimit       = errors.New("page limit exceeded")
	    ErrInvalidConfig   = errors.New("invalid configuration")
	    ErrCheckNotFound   = errors.New("no check registered for name")
	)

A convergence timeout is deliberately a distinct error rather than a boolean:
a caller must be able to tell "checked and still pending at the deadline"
apart from "observed false once".
*/
package errors
