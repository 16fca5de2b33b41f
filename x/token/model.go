package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/derive"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

var (
	// ProgramID owns all mint and holding accounts.
	ProgramID = custody.ProgramID("token")
	// AssociatedProgramID scopes the derivation of holding addresses.
	AssociatedProgramID = custody.ProgramID("associated_token")
)

const (
	// MintSpace is the storage declared for a mint account.
	MintSpace = 82
	// HoldingSpace is the storage declared for a holding account.
	HoldingSpace = 165

	maxDecimals = 18
)

// Mint describes an asset type.
type Mint struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Decimals is the number of base 10 digits to the right of the
	// decimal place. Checked transfers must declare it.
	Decimals uint32 `protobuf:"varint,2,opt,name=decimals,proto3" json:"decimals,omitempty"`
	// Supply is the total amount issued.
	Supply uint64 `protobuf:"varint,3,opt,name=supply,proto3" json:"supply,omitempty"`
	// MintAuthority is allowed to issue new units.
	MintAuthority custody.Address `protobuf:"bytes,4,opt,name=mint_authority,json=mintAuthority,proto3,casttype=github.com/iov-one/custody.Address" json:"mint_authority,omitempty"`
}

func (m *Mint) Reset()         { *m = Mint{} }
func (m *Mint) String() string { return proto.CompactTextString(m) }
func (*Mint) ProtoMessage()    {}

var _ orm.Model = (*Mint)(nil)

func (m *Mint) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Decimals > maxDecimals {
		errs = errors.AppendField(errs, "Decimals", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "MintAuthority", m.MintAuthority.Validate())
	return errs
}

// Holding keeps an amount of a single mint.
type Holding struct {
	Metadata *custody.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Mint     custody.Address   `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/custody.Address" json:"mint,omitempty"`
	// Owner is the authority of this holding.
	Owner  custody.Address `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/custody.Address" json:"owner,omitempty"`
	Amount uint64          `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (h *Holding) Reset()         { *h = Holding{} }
func (h *Holding) String() string { return proto.CompactTextString(h) }
func (*Holding) ProtoMessage()    {}

var _ orm.Model = (*Holding)(nil)

func (h *Holding) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", h.Metadata.Validate())
	errs = errors.AppendField(errs, "Mint", h.Mint.Validate())
	errs = errors.AppendField(errs, "Owner", h.Owner.Validate())
	return errs
}

// NewMintBucket returns a bucket storing mints by their address.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket("mints", &Mint{})
}

// NewHoldingBucket returns a bucket storing holdings by their address,
// indexed by the owner.
func NewHoldingBucket() orm.ModelBucket {
	return orm.NewModelBucket("holdings", &Holding{},
		orm.WithIndex("owner", ownerIndex, false),
	)
}

func ownerIndex(obj orm.Model) ([]byte, error) {
	h, ok := obj.(*Holding)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj)
	}
	return h.Owner, nil
}

// AssociatedAddress returns the address of the holding of given mint that
// belongs to owner.
func AssociatedAddress(owner, mint custody.Address) (custody.Address, error) {
	addr, _, err := derive.FindProgramAddress(associatedSeeds(owner, mint), AssociatedProgramID)
	return addr, err
}

// associatedSigner allows the ledger to act for the associated holding
// address of (owner, mint).
func associatedSigner(owner, mint custody.Address) (*derive.Signer, error) {
	seeds := associatedSeeds(owner, mint)
	_, bump, err := derive.FindProgramAddress(seeds, AssociatedProgramID)
	if err != nil {
		return nil, err
	}
	return derive.NewSigner(seeds, bump, AssociatedProgramID)
}

func associatedSeeds(owner, mint custody.Address) [][]byte {
	return [][]byte{owner, ProgramID, mint}
}
