package custodyd

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/escrow"
	"github.com/iov-one/custody/x/sigs"
	"github.com/iov-one/custody/x/system"
	"github.com/iov-one/custody/x/token"
)

// Tx carries a single serialized message, the path that selects its type,
// and the signatures authorizing it.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Path       string               `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	Msg        []byte               `protobuf:"bytes,3,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return proto.CompactTextString(tx) }
func (*Tx) ProtoMessage()     {}

// make sure tx fulfills all interfaces
var _ custody.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// msgFactories returns an empty message for every path this application
// routes.
var msgFactories = map[string]func() custody.Msg{}

func registerMsg(fn func() custody.Msg) {
	path := fn().Path()
	if _, ok := msgFactories[path]; ok {
		panic("message path registered twice: " + path)
	}
	msgFactories[path] = fn
}

func init() {
	registerMsg(func() custody.Msg { return &sigs.BumpSequenceMsg{} })
	registerMsg(func() custody.Msg { return &system.TransferMsg{} })
	registerMsg(func() custody.Msg { return &token.CreateMintMsg{} })
	registerMsg(func() custody.Msg { return &token.MintToMsg{} })
	registerMsg(func() custody.Msg { return &token.CreateHoldingMsg{} })
	registerMsg(func() custody.Msg { return &token.TransferMsg{} })
	registerMsg(func() custody.Msg { return &token.CloseHoldingMsg{} })
	registerMsg(func() custody.Msg { return &escrow.OpenMsg{} })
	registerMsg(func() custody.Msg { return &escrow.SettleMsg{} })
	registerMsg(func() custody.Msg { return &escrow.CancelMsg{} })
}

// NewTx wraps given message into an unsigned transaction.
func NewTx(msg custody.Msg) (*Tx, error) {
	if _, ok := msgFactories[msg.Path()]; !ok {
		return nil, errors.Wrapf(errors.ErrType, "unknown message path %q", msg.Path())
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal msg")
	}
	return &Tx{Path: msg.Path(), Msg: raw}, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (custody.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// GetMsg decodes the message according to the transaction path.
func (tx *Tx) GetMsg() (custody.Msg, error) {
	fn, ok := msgFactories[tx.Path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "unknown message path %q", tx.Path)
	}
	msg := fn()
	if err := msg.Unmarshal(tx.Msg); err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return msg, nil
}

// GetSignatures returns the signatures carried by the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign, that is the transaction
// serialized without any signature.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Path: tx.Path, Msg: tx.Msg}
	return unsigned.Marshal()
}
