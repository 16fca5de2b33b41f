package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/derive"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/token"
)

// AuthorizeVault returns the capability to act as the record address, which
// is the vault authority. The address is derived again from the stored
// record. No signer is returned unless the derivation reproduces both the
// record address and the vault owner.
func AuthorizeVault(rec *Record, recordAddr custody.Address, vault *token.Holding) (*derive.Signer, error) {
	if rec.Bump > 255 {
		return nil, errors.Wrapf(ErrAuthority, "invalid bump %d", rec.Bump)
	}
	signer, err := derive.NewSigner(RecordSeeds(rec.Maker, rec.Seed), uint8(rec.Bump), ProgramID)
	if err != nil {
		return nil, errors.Wrapf(ErrAuthority, "cannot derive record address: %s", err)
	}
	if !signer.Address().Equals(recordAddr) {
		return nil, errors.Wrapf(ErrAuthority, "record derives to %s, not %s", signer.Address(), recordAddr)
	}
	if vault == nil || !signer.Address().Equals(vault.Owner) {
		return nil, errors.Wrap(ErrAuthority, "vault is not controlled by the record")
	}
	return signer, nil
}
