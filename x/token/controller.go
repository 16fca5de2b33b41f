package token

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/system"
)

// Controller is the asset ledger used by other extensions.
//
// Every operation moving assets out of a holding requires the holding owner
// to be authorized by given authenticator.
type Controller interface {
	// CreateMint allocates a new mint. The mint address and the payer
	// must be authorized.
	CreateMint(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, mint custody.Address, decimals uint32, authority custody.Address) error

	// MintTo issues amount of the mint to the dst holding. The mint
	// authority must be authorized.
	MintTo(ctx custody.Context, db custody.KVStore, auth x.Authenticator, mint, dst custody.Address, amount uint64) error

	// CreateHolding allocates the associated holding of (owner, mint) and
	// returns its address. ErrDuplicate is returned if it exists.
	CreateHolding(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, owner, mint custody.Address) (custody.Address, error)

	// CreateHoldingIdempotent works like CreateHolding but an existing
	// holding of the same owner and mint is not an error.
	CreateHoldingIdempotent(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, owner, mint custody.Address) (custody.Address, error)

	// TransferChecked moves amount from src to dst. Both holdings must be
	// of the given mint and decimals must match the mint declaration.
	TransferChecked(ctx custody.Context, db custody.KVStore, auth x.Authenticator, src, dst, mint custody.Address, amount uint64, decimals uint32) error

	// CloseHolding releases an empty holding and moves its storage
	// deposit to dest.
	CloseHolding(ctx custody.Context, db custody.KVStore, auth x.Authenticator, holding, dest custody.Address) error

	// Holding returns the holding stored at given address.
	Holding(db custody.ReadOnlyKVStore, addr custody.Address) (*Holding, error)

	// Mint returns the mint stored at given address.
	Mint(db custody.ReadOnlyKVStore, addr custody.Address) (*Mint, error)
}

// NewController returns the asset ledger. Storage for mints and holdings is
// allocated using given system controller.
func NewController(sys system.Controller) Controller {
	return controller{
		sys:      sys,
		mints:    NewMintBucket(),
		holdings: NewHoldingBucket(),
	}
}

type controller struct {
	sys      system.Controller
	mints    orm.ModelBucket
	holdings orm.ModelBucket
}

var _ Controller = controller{}

func (c controller) CreateMint(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, mint custody.Address, decimals uint32, authority custody.Address) error {
	m := &Mint{
		Metadata:      &custody.Metadata{Schema: 1},
		Decimals:      decimals,
		MintAuthority: authority,
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if err := c.sys.CreateAccount(ctx, db, auth, payer, mint, MintSpace, ProgramID); err != nil {
		return errors.Wrap(err, "cannot allocate mint")
	}
	if err := c.mints.Put(db, mint, m); err != nil {
		return errors.Wrap(err, "cannot store mint")
	}
	return nil
}

func (c controller) MintTo(ctx custody.Context, db custody.KVStore, auth x.Authenticator, mint, dst custody.Address, amount uint64) error {
	m, err := c.Mint(db, mint)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, m.MintAuthority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	h, err := c.Holding(db, dst)
	if err != nil {
		return err
	}
	if !h.Mint.Equals(mint) {
		return errors.Wrap(errors.ErrInput, "destination mint mismatch")
	}
	if m.Supply+amount < m.Supply || h.Amount+amount < h.Amount {
		return errors.Wrap(errors.ErrOverflow, "supply")
	}
	m.Supply += amount
	h.Amount += amount
	if err := c.mints.Put(db, mint, m); err != nil {
		return errors.Wrap(err, "cannot store mint")
	}
	if err := c.holdings.Put(db, dst, h); err != nil {
		return errors.Wrap(err, "cannot store holding")
	}
	return nil
}

func (c controller) CreateHolding(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, owner, mint custody.Address) (custody.Address, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	if _, err := c.Mint(db, mint); err != nil {
		return nil, err
	}
	signer, err := associatedSigner(owner, mint)
	if err != nil {
		return nil, errors.Wrap(err, "cannot derive holding address")
	}
	addr := signer.Address()

	// The ledger consents to the allocation of the associated address.
	auth = x.ChainAuth(auth, signer)
	if err := c.sys.CreateAccount(ctx, db, auth, payer, addr, HoldingSpace, ProgramID); err != nil {
		return nil, errors.Wrap(err, "cannot allocate holding")
	}
	h := &Holding{
		Metadata: &custody.Metadata{Schema: 1},
		Mint:     mint,
		Owner:    owner,
	}
	if err := c.holdings.Put(db, addr, h); err != nil {
		return nil, errors.Wrap(err, "cannot store holding")
	}
	return addr, nil
}

func (c controller) CreateHoldingIdempotent(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, owner, mint custody.Address) (custody.Address, error) {
	addr, err := AssociatedAddress(owner, mint)
	if err != nil {
		return nil, errors.Wrap(err, "cannot derive holding address")
	}
	h, err := c.Holding(db, addr)
	switch {
	case err == nil:
		if !h.Owner.Equals(owner) || !h.Mint.Equals(mint) {
			return nil, errors.Wrap(errors.ErrState, "holding owned by another account")
		}
		return addr, nil
	case errors.ErrNotFound.Is(err):
		return c.CreateHolding(ctx, db, auth, payer, owner, mint)
	default:
		return nil, err
	}
}

func (c controller) TransferChecked(ctx custody.Context, db custody.KVStore, auth x.Authenticator, src, dst, mint custody.Address, amount uint64, decimals uint32) error {
	m, err := c.Mint(db, mint)
	if err != nil {
		return err
	}
	if m.Decimals != decimals {
		return errors.Wrapf(errors.ErrInput, "decimals mismatch: mint declares %d", m.Decimals)
	}
	from, err := c.Holding(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !from.Mint.Equals(mint) {
		return errors.Wrap(errors.ErrInput, "source mint mismatch")
	}
	if !auth.HasAddress(ctx, from.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "source owner signature missing")
	}
	to, err := c.Holding(db, dst)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !to.Mint.Equals(mint) {
		return errors.Wrap(errors.ErrInput, "destination mint mismatch")
	}
	if from.Amount < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: have %d, need %d", from.Amount, amount)
	}
	if src.Equals(dst) {
		return nil
	}
	if to.Amount+amount < to.Amount {
		return errors.Wrap(errors.ErrOverflow, "destination amount")
	}
	from.Amount -= amount
	to.Amount += amount
	if err := c.holdings.Put(db, src, from); err != nil {
		return errors.Wrap(err, "cannot store source")
	}
	if err := c.holdings.Put(db, dst, to); err != nil {
		return errors.Wrap(err, "cannot store destination")
	}
	return nil
}

func (c controller) CloseHolding(ctx custody.Context, db custody.KVStore, auth x.Authenticator, holding, dest custody.Address) error {
	h, err := c.Holding(db, holding)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, h.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	if h.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "non empty holding: %d", h.Amount)
	}
	signer, err := associatedSigner(h.Owner, h.Mint)
	if err != nil {
		return errors.Wrap(err, "cannot derive holding address")
	}
	if err := c.holdings.Delete(db, holding); err != nil {
		return errors.Wrap(err, "cannot delete holding")
	}
	auth = x.ChainAuth(auth, signer)
	if err := c.sys.CloseAccount(ctx, db, auth, holding, dest); err != nil {
		return errors.Wrap(err, "cannot release holding")
	}
	return nil
}

func (c controller) Holding(db custody.ReadOnlyKVStore, addr custody.Address) (*Holding, error) {
	var h Holding
	if err := c.holdings.One(db, addr, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c controller) Mint(db custody.ReadOnlyKVStore, addr custody.Address) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, addr, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
