package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	pathOpenMsg   = "escrow/open"
	pathSettleMsg = "escrow/settle"
	pathCancelMsg = "escrow/cancel"
)

// OpenMsg locks Amount of MintA from the maker holding in a new escrow that
// requests Receive of MintB in exchange.
//
// Escrow and Vault are the addresses the maker expects the record and the
// vault to be created at.
type OpenMsg struct {
	Metadata      *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Maker         custody.Address   `protobuf:"bytes,2,opt,name=maker,proto3,casttype=github.com/iov-one/custody.Address" json:"maker,omitempty"`
	MintA         custody.Address   `protobuf:"bytes,3,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_a,omitempty"`
	MintB         custody.Address   `protobuf:"bytes,4,opt,name=mint_b,json=mintB,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_b,omitempty"`
	MakerHoldingA custody.Address   `protobuf:"bytes,5,opt,name=maker_holding_a,json=makerHoldingA,proto3,casttype=github.com/iov-one/custody.Address" json:"maker_holding_a,omitempty"`
	Escrow        custody.Address   `protobuf:"bytes,6,opt,name=escrow,proto3,casttype=github.com/iov-one/custody.Address" json:"escrow,omitempty"`
	Vault         custody.Address   `protobuf:"bytes,7,opt,name=vault,proto3,casttype=github.com/iov-one/custody.Address" json:"vault,omitempty"`
	Seed          uint64            `protobuf:"varint,8,opt,name=seed,proto3" json:"seed,omitempty"`
	Amount        uint64            `protobuf:"varint,9,opt,name=amount,proto3" json:"amount,omitempty"`
	Receive       uint64            `protobuf:"varint,10,opt,name=receive,proto3" json:"receive,omitempty"`
}

func (m *OpenMsg) Reset()         { *m = OpenMsg{} }
func (m *OpenMsg) String() string { return proto.CompactTextString(m) }
func (*OpenMsg) ProtoMessage()    {}

var _ custody.Msg = (*OpenMsg)(nil)

func (OpenMsg) Path() string {
	return pathOpenMsg
}

func (m *OpenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Maker", m.Maker.Validate())
	errs = errors.AppendField(errs, "MintA", m.MintA.Validate())
	errs = errors.AppendField(errs, "MintB", m.MintB.Validate())
	if m.MintA.Equals(m.MintB) {
		errs = errors.AppendField(errs, "MintB", errors.Wrap(errors.ErrInput, "must differ from MintA"))
	}
	errs = errors.AppendField(errs, "MakerHoldingA", m.MakerHoldingA.Validate())
	errs = errors.AppendField(errs, "Escrow", m.Escrow.Validate())
	errs = errors.AppendField(errs, "Vault", m.Vault.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	if m.Receive == 0 {
		errs = errors.AppendField(errs, "Receive", errors.ErrAmount)
	}
	return errs
}

// SettleMsg completes the exchange. The taker pays the requested amount of
// MintB to the maker and receives the whole vault.
type SettleMsg struct {
	Metadata      *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Taker         custody.Address   `protobuf:"bytes,2,opt,name=taker,proto3,casttype=github.com/iov-one/custody.Address" json:"taker,omitempty"`
	Maker         custody.Address   `protobuf:"bytes,3,opt,name=maker,proto3,casttype=github.com/iov-one/custody.Address" json:"maker,omitempty"`
	MintA         custody.Address   `protobuf:"bytes,4,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_a,omitempty"`
	MintB         custody.Address   `protobuf:"bytes,5,opt,name=mint_b,json=mintB,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_b,omitempty"`
	TakerHoldingA custody.Address   `protobuf:"bytes,6,opt,name=taker_holding_a,json=takerHoldingA,proto3,casttype=github.com/iov-one/custody.Address" json:"taker_holding_a,omitempty"`
	TakerHoldingB custody.Address   `protobuf:"bytes,7,opt,name=taker_holding_b,json=takerHoldingB,proto3,casttype=github.com/iov-one/custody.Address" json:"taker_holding_b,omitempty"`
	MakerHoldingB custody.Address   `protobuf:"bytes,8,opt,name=maker_holding_b,json=makerHoldingB,proto3,casttype=github.com/iov-one/custody.Address" json:"maker_holding_b,omitempty"`
	Escrow        custody.Address   `protobuf:"bytes,9,opt,name=escrow,proto3,casttype=github.com/iov-one/custody.Address" json:"escrow,omitempty"`
	Vault         custody.Address   `protobuf:"bytes,10,opt,name=vault,proto3,casttype=github.com/iov-one/custody.Address" json:"vault,omitempty"`
}

func (m *SettleMsg) Reset()         { *m = SettleMsg{} }
func (m *SettleMsg) String() string { return proto.CompactTextString(m) }
func (*SettleMsg) ProtoMessage()    {}

var _ custody.Msg = (*SettleMsg)(nil)

func (SettleMsg) Path() string {
	return pathSettleMsg
}

func (m *SettleMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Taker", m.Taker.Validate())
	errs = errors.AppendField(errs, "Maker", m.Maker.Validate())
	errs = errors.AppendField(errs, "MintA", m.MintA.Validate())
	errs = errors.AppendField(errs, "MintB", m.MintB.Validate())
	errs = errors.AppendField(errs, "TakerHoldingA", m.TakerHoldingA.Validate())
	errs = errors.AppendField(errs, "TakerHoldingB", m.TakerHoldingB.Validate())
	errs = errors.AppendField(errs, "MakerHoldingB", m.MakerHoldingB.Validate())
	errs = errors.AppendField(errs, "Escrow", m.Escrow.Validate())
	errs = errors.AppendField(errs, "Vault", m.Vault.Validate())
	return errs
}

// CancelMsg returns the vault content to the maker and releases the escrow.
type CancelMsg struct {
	Metadata      *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Maker         custody.Address   `protobuf:"bytes,2,opt,name=maker,proto3,casttype=github.com/iov-one/custody.Address" json:"maker,omitempty"`
	MintA         custody.Address   `protobuf:"bytes,3,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_a,omitempty"`
	MakerHoldingA custody.Address   `protobuf:"bytes,4,opt,name=maker_holding_a,json=makerHoldingA,proto3,casttype=github.com/iov-one/custody.Address" json:"maker_holding_a,omitempty"`
	Escrow        custody.Address   `protobuf:"bytes,5,opt,name=escrow,proto3,casttype=github.com/iov-one/custody.Address" json:"escrow,omitempty"`
	Vault         custody.Address   `protobuf:"bytes,6,opt,name=vault,proto3,casttype=github.com/iov-one/custody.Address" json:"vault,omitempty"`
}

func (m *CancelMsg) Reset()         { *m = CancelMsg{} }
func (m *CancelMsg) String() string { return proto.CompactTextString(m) }
func (*CancelMsg) ProtoMessage()    {}

var _ custody.Msg = (*CancelMsg)(nil)

func (CancelMsg) Path() string {
	return pathCancelMsg
}

func (m *CancelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Maker", m.Maker.Validate())
	errs = errors.AppendField(errs, "MintA", m.MintA.Validate())
	errs = errors.AppendField(errs, "MakerHoldingA", m.MakerHoldingA.Validate())
	errs = errors.AppendField(errs, "Escrow", m.Escrow.Validate())
	errs = errors.AppendField(errs, "Vault", m.Vault.Validate())
	return errs
}
