/*
Package errors implements the error types used across custody.

Every error returned by a handler should wrap one of the root errors declared
in this package (or registered by an extension with Register). The root error
carries the ABCI code that is returned to the client, so callers can act on
the kind of failure without parsing messages.

Create errors at the point of failure with ErrXyz.New("...") or
Wrap(err, "..."), never as package level variables, so that the stack trace
points to the real origin. Only the innermost wrap records a stack trace.

	%s  prints the error message
	%+v prints the message and the full stack trace

Field errors (see Field) describe a failure bound to a single attribute. The
escrow binding checks rely on them to name the account that did not match.
*/
package errors
