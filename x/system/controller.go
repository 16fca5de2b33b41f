package system

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
)

// Controller is the functionality needed by other extensions to allocate
// and release storage, and to move native balance.
type Controller interface {
	// CreateAccount allocates an account of given space at addr, funded
	// with the rent exempt deposit taken from payer. Both the payer and
	// the new address must be authorized. ErrDuplicate is returned if an
	// account already exists at addr.
	CreateAccount(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, addr custody.Address, space uint64, owner custody.Address) error

	// CloseAccount deletes the account at addr and moves its whole
	// balance to dest. The closed address must be authorized.
	CloseAccount(ctx custody.Context, db custody.KVStore, auth x.Authenticator, addr, dest custody.Address) error

	// Transfer moves native balance between two accounts. The source must
	// be authorized. A missing destination is created as a wallet.
	Transfer(ctx custody.Context, db custody.KVStore, auth x.Authenticator, src, dest custody.Address, amount uint64) error

	// Balance returns the native balance of an address, zero if no
	// account exists.
	Balance(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error)

	// Exists returns true if an account is allocated at addr.
	Exists(db custody.ReadOnlyKVStore, addr custody.Address) (bool, error)

	// Account returns the account stored at addr.
	Account(db custody.ReadOnlyKVStore, addr custody.Address) (*Account, error)
}

// NewController returns a controller operating on given bucket.
func NewController(b orm.ModelBucket) Controller {
	return controller{bucket: b}
}

type controller struct {
	bucket orm.ModelBucket
}

var _ Controller = controller{}

func (c controller) CreateAccount(ctx custody.Context, db custody.KVStore, auth x.Authenticator, payer, addr custody.Address, space uint64, owner custody.Address) error {
	if !auth.HasAddress(ctx, payer) {
		return errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrap(errors.ErrUnauthorized, "new account signature missing")
	}

	// A plain wallet holding only transferred lamports is adopted: it is
	// topped up to the deposit and assigned to the new owner.
	acc, err := c.Account(db, addr)
	switch {
	case err == nil:
		if acc.Space != 0 || !acc.Owner.Equals(ProgramID) {
			return errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
		}
	case errors.ErrNotFound.Is(err):
		acc = &Account{Metadata: &custody.Metadata{Schema: 1}}
	default:
		return err
	}

	rent, err := RentExempt(db, space)
	if err != nil {
		return err
	}
	if acc.Lamports < rent {
		if payer.Equals(addr) {
			return errors.Wrapf(errors.ErrAmount, "account %s cannot fund its own deposit", addr)
		}
		if err := c.debit(db, payer, rent-acc.Lamports); err != nil {
			return errors.Wrap(err, "cannot pay storage deposit")
		}
		acc.Lamports = rent
	}
	acc.Owner = owner
	acc.Space = space
	if err := c.bucket.Put(db, addr, acc); err != nil {
		return errors.Wrap(err, "cannot store account")
	}
	return nil
}

func (c controller) CloseAccount(ctx custody.Context, db custody.KVStore, auth x.Authenticator, addr, dest custody.Address) error {
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrap(errors.ErrUnauthorized, "account signature missing")
	}
	if addr.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "cannot close account into itself")
	}
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if err := c.bucket.Delete(db, addr); err != nil {
		return errors.Wrap(err, "cannot delete account")
	}
	if err := c.credit(db, dest, acc.Lamports); err != nil {
		return errors.Wrap(err, "cannot refund deposit")
	}
	return nil
}

func (c controller) Transfer(ctx custody.Context, db custody.KVStore, auth x.Authenticator, src, dest custody.Address, amount uint64) error {
	if !auth.HasAddress(ctx, src) {
		return errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	if err := c.debit(db, src, amount); err != nil {
		return err
	}
	return c.credit(db, dest, amount)
}

func (c controller) Balance(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error) {
	acc, err := c.Account(db, addr)
	switch {
	case err == nil:
		return acc.Lamports, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

func (c controller) Exists(db custody.ReadOnlyKVStore, addr custody.Address) (bool, error) {
	switch err := c.bucket.Has(db, addr); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

func (c controller) Account(db custody.ReadOnlyKVStore, addr custody.Address) (*Account, error) {
	var acc Account
	if err := c.bucket.One(db, addr, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// debit takes amount from an account. A data account cannot go below its
// storage deposit.
func (c controller) debit(db custody.KVStore, addr custody.Address, amount uint64) error {
	acc, err := c.Account(db, addr)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(errors.ErrAmount, "empty account %s", addr)
		}
		return err
	}
	var floor uint64
	if acc.Space > 0 {
		if floor, err = RentExempt(db, acc.Space); err != nil {
			return err
		}
	}
	if acc.Lamports < amount || acc.Lamports-amount < floor {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: have %d, need %d", acc.Lamports, amount)
	}
	acc.Lamports -= amount
	return c.bucket.Put(db, addr, acc)
}

// credit adds amount to an account, creating a wallet if none exists.
func (c controller) credit(db custody.KVStore, addr custody.Address, amount uint64) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	acc, err := c.Account(db, addr)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		acc = &Account{
			Metadata: &custody.Metadata{Schema: 1},
			Owner:    ProgramID,
		}
	default:
		return err
	}
	if acc.Lamports+amount < acc.Lamports {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	acc.Lamports += amount
	return c.bucket.Put(db, addr, acc)
}
