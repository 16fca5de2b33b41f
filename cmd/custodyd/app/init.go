package custodyd

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/escrow"
	"github.com/iov-one/custody/x/system"
	"github.com/iov-one/custody/x/token"
)

// Genesis defaults for a development chain.
const (
	DefaultLamportsPerByte = 10
	DefaultAccountOverhead = 128
	DefaultRecordSpace     = 121
	DefaultLamports        = 1000000000
	DefaultMintDecimals    = 6
	DefaultMintSupply      = 1000000000
)

// GenesisState is the app_state of the genesis file.
type GenesisState struct {
	Conf   GenesisConf             `json:"conf"`
	System []system.GenesisAccount `json:"system"`
	Token  GenesisTokens           `json:"token"`
}

// GenesisConf holds the configuration of every program.
type GenesisConf struct {
	System *system.Configuration `json:"system"`
	Escrow *escrow.Configuration `json:"escrow"`
}

// GenesisTokens declares the initial mints and holdings.
type GenesisTokens struct {
	Mints    []token.GenesisMint    `json:"mints"`
	Holdings []token.GenesisHolding `json:"holdings"`
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The account is the authority of two mints
// and holds their whole supply.
//
// An optional argument gives the hex address of the account, otherwise a
// new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr custody.Address
	if len(args) > 0 {
		raw, err := json.Marshal(args[0])
		if err != nil {
			return nil, err
		}
		if err := addr.UnmarshalJSON(raw); err != nil {
			return nil, errors.Wrap(err, "genesis address")
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	state := DevGenesis(addr, custody.ProgramID("mint:a"), custody.ProgramID("mint:b"))
	return json.MarshalIndent(state, "", "  ")
}

// DevGenesis returns a genesis state funding owner with native lamports
// and the whole supply of two mints it is the authority of.
func DevGenesis(owner, mintA, mintB custody.Address) GenesisState {
	meta := &custody.Metadata{Schema: 1}
	return GenesisState{
		Conf: GenesisConf{
			System: &system.Configuration{
				Metadata:        meta,
				LamportsPerByte: DefaultLamportsPerByte,
				AccountOverhead: DefaultAccountOverhead,
			},
			Escrow: &escrow.Configuration{
				Metadata:    meta,
				RecordSpace: DefaultRecordSpace,
			},
		},
		System: []system.GenesisAccount{
			{Address: owner, Lamports: DefaultLamports},
		},
		Token: GenesisTokens{
			Mints: []token.GenesisMint{
				{Address: mintA, Decimals: DefaultMintDecimals, Authority: owner},
				{Address: mintB, Decimals: DefaultMintDecimals, Authority: owner},
			},
			Holdings: []token.GenesisHolding{
				{Owner: owner, Mint: mintA, Amount: DefaultMintSupply},
				{Owner: owner, Mint: mintB, Amount: DefaultMintSupply},
			},
		},
	}
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
func GenerateCoinKey() (custody.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
