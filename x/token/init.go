package token

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x/system"
)

const optKey = "token"

// GenesisMint declares a mint in the genesis file.
type GenesisMint struct {
	Address   custody.Address `json:"address"`
	Decimals  uint32          `json:"decimals"`
	Authority custody.Address `json:"authority"`
}

// GenesisHolding declares an associated holding with its initial amount.
type GenesisHolding struct {
	Owner  custody.Address `json:"owner"`
	Mint   custody.Address `json:"mint"`
	Amount uint64          `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ custody.Initializer = Initializer{}

// FromGenesis allocates the mints and holdings declared in the genesis file.
// Storage deposits are issued rather than paid, so the system configuration
// must be initialized before.
func (Initializer) FromGenesis(opts custody.Options, params custody.GenesisParams, kv custody.KVStore) error {
	var gen struct {
		Mints    []GenesisMint    `json:"mints"`
		Holdings []GenesisHolding `json:"holdings"`
	}
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}

	accounts := system.NewBucket()
	mints := NewMintBucket()
	holdings := NewHoldingBucket()

	for i, g := range gen.Mints {
		if err := allocate(kv, accounts, g.Address, MintSpace); err != nil {
			return errors.Wrapf(err, "mint #%d", i)
		}
		m := &Mint{
			Metadata:      &custody.Metadata{Schema: 1},
			Decimals:      g.Decimals,
			MintAuthority: g.Authority,
		}
		if err := mints.Put(kv, g.Address, m); err != nil {
			return errors.Wrapf(err, "mint #%d", i)
		}
	}

	for i, g := range gen.Holdings {
		var m Mint
		if err := mints.One(kv, g.Mint, &m); err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
		if m.Supply+g.Amount < m.Supply {
			return errors.Wrapf(errors.ErrOverflow, "holding #%d", i)
		}
		m.Supply += g.Amount
		if err := mints.Put(kv, g.Mint, &m); err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}

		addr, err := AssociatedAddress(g.Owner, g.Mint)
		if err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
		if err := allocate(kv, accounts, addr, HoldingSpace); err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
		h := &Holding{
			Metadata: &custody.Metadata{Schema: 1},
			Mint:     g.Mint,
			Owner:    g.Owner,
			Amount:   g.Amount,
		}
		if err := holdings.Put(kv, addr, h); err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
	}
	return nil
}

func allocate(kv custody.KVStore, accounts orm.ModelBucket, addr custody.Address, space uint64) error {
	if err := accounts.Has(kv, addr); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
	}
	rent, err := system.RentExempt(kv, space)
	if err != nil {
		return err
	}
	acc := &system.Account{
		Metadata: &custody.Metadata{Schema: 1},
		Lamports: rent,
		Owner:    ProgramID,
		Space:    space,
	}
	return accounts.Put(kv, addr, acc)
}
