package derive

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Signer is the capability to act on behalf of a program address. It
// satisfies the x.Authenticator interface, so it can be passed to any
// controller in place of the transaction signatures.
//
// A Signer cannot be forged: its only constructor re-derives the address.
type Signer struct {
	addr    custody.Address
	program custody.Address
}

// NewSigner re-derives the program address from the seeds and the bump and
// returns a signer for it.
func NewSigner(seeds [][]byte, bump uint8, program custody.Address) (*Signer, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	withBump[len(seeds)] = []byte{bump}

	addr, err := CreateProgramAddress(withBump, program)
	if err != nil {
		return nil, errors.Wrap(err, "cannot derive signer")
	}
	return &Signer{addr: addr, program: program.Clone()}, nil
}

// Address returns the program address this signer acts for.
func (s *Signer) Address() custody.Address {
	return s.addr
}

// Program returns the program that owns the address.
func (s *Signer) Program() custody.Address {
	return s.program
}

// GetAddresses returns the single address this signer authorizes.
func (s *Signer) GetAddresses(custody.Context) []custody.Address {
	if s == nil {
		return nil
	}
	return []custody.Address{s.addr}
}

// HasAddress returns true only for the derived address.
func (s *Signer) HasAddress(_ custody.Context, addr custody.Address) bool {
	return s != nil && s.addr.Equals(addr)
}
