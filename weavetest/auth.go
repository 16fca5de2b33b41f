package weavetest

import (
	"context"

	"github.com/iov-one/custody"
)

// Auth authorizes a fixed set of addresses, whatever the context.
type Auth struct {
	// Signer is appended to Signers. Most tests need only one.
	Signer  custody.Address
	Signers []custody.Address
}

func (a *Auth) GetAddresses(custody.Context) []custody.Address {
	if a.Signer == nil {
		return a.Signers
	}
	out := make([]custody.Address, 0, len(a.Signers)+1)
	return append(append(out, a.Signers...), a.Signer)
}

func (a *Auth) HasAddress(ctx custody.Context, addr custody.Address) bool {
	return contains(a.GetAddresses(ctx), addr)
}

// CtxAuth authorizes the addresses stored in the context under Key, so
// that a test can change signers between calls.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetAddresses(ctx custody.Context, addrs ...custody.Address) custody.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), addrs)
}

func (a *CtxAuth) GetAddresses(ctx custody.Context) []custody.Address {
	addrs, _ := ctx.Value(ctxAuthKey(a.Key)).([]custody.Address)
	return addrs
}

func (a *CtxAuth) HasAddress(ctx custody.Context, addr custody.Address) bool {
	return contains(a.GetAddresses(ctx), addr)
}

func contains(addrs []custody.Address, addr custody.Address) bool {
	for _, a := range addrs {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}
