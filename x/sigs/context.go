package sigs

import (
	"context"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x"
)

// signersKey is unexported so only Decorator can vouch for a signer.
type signersKey struct{}

func withSigners(ctx custody.Context, signers []custody.Address) custody.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// Authenticate answers for the signatures verified by Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetAddresses returns the verified signers in signature order, or nil
// when the transaction went through no Decorator.
func (Authenticate) GetAddresses(ctx custody.Context) []custody.Address {
	signers, _ := ctx.Value(signersKey{}).([]custody.Address)
	return signers
}

func (a Authenticate) HasAddress(ctx custody.Context, addr custody.Address) bool {
	for _, signer := range a.GetAddresses(ctx) {
		if signer.Equals(addr) {
			return true
		}
	}
	return false
}
