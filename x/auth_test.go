package x

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/weavetest"
	"github.com/iov-one/custody/weavetest/assert"
)

func TestAuth(t *testing.T) {
	a := weavetest.NewAddress()
	b := weavetest.NewAddress()
	c := weavetest.NewAddress()

	ctx := context.Background()
	maker := &weavetest.CtxAuth{Key: "maker"}
	program := &weavetest.CtxAuth{Key: "program"}
	ctx = maker.SetAddresses(ctx, a, b)
	ctx = program.SetAddresses(ctx, b, c)

	both := ChainAuth(maker, program)

	cases := map[string]struct {
		auth     Authenticator
		signers  []custody.Address
		main     custody.Address
		required []custody.Address
		all      bool
	}{
		"single authenticator": {
			auth:     maker,
			signers:  []custody.Address{a, b},
			main:     a,
			required: []custody.Address{a, b},
			all:      true,
		},
		"chained authenticators dedupe": {
			auth:     both,
			signers:  []custody.Address{a, b, c},
			main:     a,
			required: []custody.Address{a, c},
			all:      true,
		},
		"missing address": {
			auth:     program,
			signers:  []custody.Address{b, c},
			main:     b,
			required: []custody.Address{a, b},
			all:      false,
		},
		"no signers": {
			auth:     &weavetest.CtxAuth{Key: "none"},
			signers:  nil,
			main:     nil,
			required: []custody.Address{a},
			all:      false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.signers, tc.auth.GetAddresses(ctx))
			assert.Equal(t, tc.main, MainSigner(ctx, tc.auth))
			all := true
			for _, r := range tc.required {
				all = all && tc.auth.HasAddress(ctx, r)
			}
			assert.Equal(t, tc.all, all)
		})
	}
}
