package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If more than one error is given, a multi error is returned. The result
// matches any root error that one of its members matches (see Error.Is).
func Append(errs ...error) error {
	var flat []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			flat = append(flat, u.Unpack()...)
			continue
		}
		flat = append(flat, e)
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return multiErr(flat)
	}
}

type unpacker interface {
	Unpack() []error
}

type multiErr []error

func (m multiErr) Unpack() []error {
	return m
}

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ABCICode returns the code of the first member so that the client receives
// a meaningful code for the first failure.
func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}
