package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	pathCreateMintMsg    = "token/create_mint"
	pathMintToMsg        = "token/mint_to"
	pathCreateHoldingMsg = "token/create_holding"
	pathTransferMsg      = "token/transfer"
	pathCloseHoldingMsg  = "token/close_holding"
)

// CreateMintMsg allocates a new mint at an address that must sign the
// transaction.
type CreateMintMsg struct {
	Metadata      *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Payer         custody.Address   `protobuf:"bytes,2,opt,name=payer,proto3,casttype=github.com/iov-one/custody.Address" json:"payer,omitempty"`
	Mint          custody.Address   `protobuf:"bytes,3,opt,name=mint,proto3,casttype=github.com/iov-one/custody.Address" json:"mint,omitempty"`
	Decimals      uint32            `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
	MintAuthority custody.Address   `protobuf:"bytes,5,opt,name=mint_authority,json=mintAuthority,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_authority,omitempty"`
}

func (m *CreateMintMsg) Reset()         { *m = CreateMintMsg{} }
func (m *CreateMintMsg) String() string { return proto.CompactTextString(m) }
func (*CreateMintMsg) ProtoMessage()    {}

var _ custody.Msg = (*CreateMintMsg)(nil)

func (CreateMintMsg) Path() string {
	return pathCreateMintMsg
}

func (m *CreateMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Payer", m.Payer.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	if m.Decimals > maxDecimals {
		errs = errors.AppendField(errs, "Decimals", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "MintAuthority", m.MintAuthority.Validate())
	return errs
}

// MintToMsg issues new units of a mint.
type MintToMsg struct {
	Metadata    *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Mint        custody.Address   `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/custody.Address" json:"mint,omitempty"`
	Destination custody.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/custody.Address" json:"destination,omitempty"`
	Amount      uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintToMsg) Reset()         { *m = MintToMsg{} }
func (m *MintToMsg) String() string { return proto.CompactTextString(m) }
func (*MintToMsg) ProtoMessage()    {}

var _ custody.Msg = (*MintToMsg)(nil)

func (MintToMsg) Path() string {
	return pathMintToMsg
}

func (m *MintToMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// CreateHoldingMsg allocates the associated holding of an owner.
type CreateHoldingMsg struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Payer    custody.Address   `protobuf:"bytes,2,opt,name=payer,proto3,casttype=github.com/iov-one/custody.Address" json:"payer,omitempty"`
	Owner    custody.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/custody.Address" json:"owner,omitempty"`
	Mint     custody.Address   `protobuf:"bytes,4,opt,name=mint,proto3,casttype=github.com/iov-one/custody.Address" json:"mint,omitempty"`
	// Idempotent turns an already existing holding into a success.
	Idempotent bool `protobuf:"varint,5,opt,name=idempotent,proto3" json:"idempotent,omitempty"`
}

func (m *CreateHoldingMsg) Reset()         { *m = CreateHoldingMsg{} }
func (m *CreateHoldingMsg) String() string { return proto.CompactTextString(m) }
func (*CreateHoldingMsg) ProtoMessage()    {}

var _ custody.Msg = (*CreateHoldingMsg)(nil)

func (CreateHoldingMsg) Path() string {
	return pathCreateHoldingMsg
}

func (m *CreateHoldingMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Payer", m.Payer.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	return errs
}

// TransferMsg moves an amount between two holdings of the same mint.
type TransferMsg struct {
	Metadata    *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      custody.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/custody.Address" json:"source,omitempty"`
	Destination custody.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/custody.Address" json:"destination,omitempty"`
	Mint        custody.Address   `protobuf:"bytes,4,opt,name=mint,proto3,casttype=github.com/iov-one/custody.Address" json:"mint,omitempty"`
	Amount      uint64            `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Decimals    uint32            `protobuf:"varint,6,opt,name=decimals,proto3" json:"decimals,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

var _ custody.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// CloseHoldingMsg releases an empty holding.
type CloseHoldingMsg struct {
	Metadata    *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Holding     custody.Address   `protobuf:"bytes,2,opt,name=holding,proto3,casttype=github.com/iov-one/custody.Address" json:"holding,omitempty"`
	Destination custody.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/custody.Address" json:"destination,omitempty"`
}

func (m *CloseHoldingMsg) Reset()         { *m = CloseHoldingMsg{} }
func (m *CloseHoldingMsg) String() string { return proto.CompactTextString(m) }
func (*CloseHoldingMsg) ProtoMessage()    {}

var _ custody.Msg = (*CloseHoldingMsg)(nil)

func (CloseHoldingMsg) Path() string {
	return pathCloseHoldingMsg
}

func (m *CloseHoldingMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Holding", m.Holding.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}
