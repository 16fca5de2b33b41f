package weavetest

import "github.com/iov-one/custody"

// Tx carries one message to a handler under test. Msg is what GetMsg
// returns, unless Err is set to simulate an undecodable transaction.
type Tx struct {
	Msg custody.Msg
	Err error
}

var _ custody.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (custody.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal returns the bytes of the message, if it has any.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil || tx.Msg == nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

// Unmarshal hands raw to a fresh Msg, keeping it as its serialized form.
func (tx *Tx) Unmarshal(raw []byte) error {
	m := &Msg{}
	if err := m.Unmarshal(raw); err != nil {
		return err
	}
	tx.Msg = m
	return nil
}

// Msg is a message routed to RoutePath. Serialized stands in for its
// encoding. Err, when set, fails decoding, encoding and validation.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ custody.Msg = (*Msg)(nil)

func (m *Msg) Path() string { return m.RoutePath }

func (m *Msg) Validate() error { return m.Err }

func (m *Msg) Marshal() ([]byte, error) { return m.Serialized, m.Err }

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
