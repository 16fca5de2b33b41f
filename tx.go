package custody

import (
	"reflect"
	"regexp"

	"github.com/iov-one/custody/errors"
)

// Persistent is implemented by everything stored or sent on the wire:
// messages, transactions and the models of every bucket.
type Persistent interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// Msg is one requested state change, such as opening an escrow. It carries
// no authentication, which lives in the enclosing Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler, for example escrow/open.
	// It matches IsValidPath.
	Path() string

	// Validate checks the message on its own, without reading state.
	Validate() error
}

// Tx is a transaction as submitted to the chain: a message together with
// whatever the decorators need, such as signatures.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(raw []byte) (Tx, error)

// IsValidPath reports whether path may route a message.
var IsValidPath = regexp.MustCompile(`^[0-9A-Za-z_\-/]+$`).MatchString

// GetPath is the message path of tx for logs, or (missing) when the message
// cannot be read.
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg stores the message of tx in dst, which must point to a variable
// of the message type, and validates it.
//
//	var msg *escrow.OpenMsg
//	if err := custody.LoadMsg(tx, &msg); err != nil {
//		return err
//	}
func LoadMsg(tx Tx, dst interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "transaction message")
	case msg == nil:
		return errors.Wrap(errors.ErrMsg, "no message")
	}

	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	if want := ptr.Elem().Type(); !reflect.TypeOf(msg).AssignableTo(want) {
		return errors.Wrapf(errors.ErrType, "want %s, got %T", want, msg)
	}
	ptr.Elem().Set(reflect.ValueOf(msg))

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
