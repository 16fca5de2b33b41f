package escrow

import "github.com/iov-one/custody/errors"

// x/escrow reserves 300 ~ 309.
var (
	// ErrBinding is returned when a presented account does not match the
	// escrow record it is used with.
	ErrBinding = errors.Register(300, "binding mismatch")

	// ErrAuthority is returned when the program cannot prove control of
	// the vault.
	ErrAuthority = errors.Register(301, "program authority")
)
