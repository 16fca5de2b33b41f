package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root kinds. Their codes are part of the ABCI results and must not change.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	ErrMsg          = Register(4, "invalid message")
	ErrModel        = Register(5, "invalid model")
	ErrDuplicate    = Register(6, "duplicate")
	// ErrHuman marks a code path that correct code never reaches.
	ErrHuman     = Register(7, "coding error")
	ErrImmutable = Register(8, "cannot be modified")
	ErrEmpty     = Register(9, "value is empty")
	// ErrState is an escrow or account that is not in the state an
	// operation needs, such as an undersized or foreign owned account.
	ErrState  = Register(10, "invalid state")
	ErrType   = Register(11, "invalid type")
	ErrAmount = Register(12, "invalid amount")
	ErrInput  = Register(13, "invalid input")
	// ErrOverflow is checked arithmetic on lamports, token amounts or
	// sequences leaving its range.
	ErrOverflow = Register(14, "an operation cannot be completed due to value overflow")
	ErrMetadata = Register(15, "invalid metadata")
	ErrDatabase = Register(16, "database")

	// ErrPanic replaces the message of a recovered panic before it reaches
	// a client.
	ErrPanic = Register(111222, "panic")
)

var usedCodes = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: "internal"},
}

// Register declares a root kind. Extensions call it from package variables,
// and a code used twice panics at startup.
func Register(code uint32, description string) *Error {
	if prev, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error code %d already taken by %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	usedCodes[code] = e
	return e
}

// Error is a root kind. Errors created at runtime wrap one so that callers
// and clients can tell failures apart by code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

func (e Error) ABCICode() uint32 {
	return e.code
}

// New is Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, args...))
}

// Is reports whether err is of kind e, looking through wraps and the
// members of a multi error. A nil kind only matches a nil error, typed nil
// pointers included.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	for err != nil {
		if err == e {
			return true
		}
		if multi, ok := err.(unpacker); ok {
			for _, member := range multi.Unpack() {
				if e.Is(member) {
					return true
				}
			}
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap prefixes err with description. The first wrap of an error records
// the stack trace. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrapped{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrapped struct {
	msg    string
	parent error
}

func (w *wrapped) Error() string {
	return w.msg + ": " + w.parent.Error()
}

func (w *wrapped) Cause() error {
	return w.parent
}

// Format adds the innermost stack trace for %+v.
func (w *wrapped) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", w.msg, w.parent)
		return
	}
	fmt.Fprint(s, w.Error())
}

// Recover turns a panic into an ErrPanic stored in *err. Defer it.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace is the outermost trace found along the causes of err.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
