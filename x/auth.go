package x

import (
	"github.com/iov-one/custody"
)

// Authenticator reports which addresses authorized the current transaction.
// Handlers receive one in their constructor. Signature checking in x/sigs
// and program derived signers in derive both implement it.
type Authenticator interface {
	GetAddresses(custody.Context) []custody.Address
	HasAddress(custody.Context, custody.Address) bool
}

// ChainAuth authorizes an address when any of auths does.
func ChainAuth(auths ...Authenticator) Authenticator {
	return chain(auths)
}

type chain []Authenticator

// GetAddresses lists the addresses of every member once, in member order.
func (c chain) GetAddresses(ctx custody.Context) []custody.Address {
	var out []custody.Address
	for _, a := range c {
	next:
		for _, addr := range a.GetAddresses(ctx) {
			for _, seen := range out {
				if seen.Equals(addr) {
					continue next
				}
			}
			out = append(out, addr)
		}
	}
	return out
}

func (c chain) HasAddress(ctx custody.Context, addr custody.Address) bool {
	for _, a := range c {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner is the first authorized address, or nil.
func MainSigner(ctx custody.Context, auth Authenticator) custody.Address {
	if addrs := auth.GetAddresses(ctx); len(addrs) > 0 {
		return addrs[0]
	}
	return nil
}
