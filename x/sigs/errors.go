package sigs

import "github.com/iov-one/custody/errors"

// x/sigs reserves 20 ~ 29.
var (
	// ErrInvalidSequence is returned when the signature sequence does not
	// match the expected user sequence value.
	ErrInvalidSequence = errors.Register(20, "invalid sequence number")
)
