/*
Package poll waits for an asynchronous condition on the remote service to
converge within a bounded wall-clock budget.

Convergence is modeled as a synchronous retry loop with a fixed
inter-attempt delay: the probe is evaluated, and if the condition does not
hold yet the poller sleeps for the interval and tries again until the
deadline. Timeout is a distinct outcome, not a boolean false, so callers can
tell "checked and still pending at the deadline" apart from "observed false
once":

	outcome, err := poll.Until(ctx, poll.GSIActive(client, table, "statusIndex"),
	    poll.WithTimeout(60*time.Second))

The package also provides the DescribeTable-backed probes the harness needs
(table active, table gone, GSI active, GSI gone) and blocking WaitFor
helpers that surface a timeout as ErrConvergeTimeout.
*/
package poll
