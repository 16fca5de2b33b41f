package errors

import (
	"fmt"
)

// SuccessABCICode is the code of every successful ABCI response.
const SuccessABCICode = 0

// Errors without a registered code are reported under one internal code.
// Their text may leak implementation details, so outside of debug mode it
// is replaced.
const (
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of the ABCI response reporting err.
// Debug mode logs the full error, including its stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	}
	return code, err.Error()
}

// ABCIError rebuilds an error from a response code and log, as read back
// by a client. A registered code maps to its error, so ErrDuplicate.Is
// holds for a duplicate escrow reported by the node.
func ABCIError(code uint32, log string) error {
	if e, ok := usedCodes[code]; ok {
		return Wrap(e, log)
	}
	return Wrap(&Error{code: code, desc: "unknown error"}, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode is the code of the first error in the cause chain of err that
// has one.
func abciCode(err error) uint32 {
	for !isNilErr(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return internalABCICode
}
