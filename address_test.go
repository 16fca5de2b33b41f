package custody

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody/errors"
)

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := ProgramID("test")
	b32, err := addr.Bech32("cust")
	if err != nil {
		t.Fatalf("cannot encode bech32: %s", err)
	}

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr Address
	}{
		"default format is hex": {
			json:     `"` + addr.String() + `"`,
			wantAddr: addr,
		},
		"explicit hex": {
			json:     `"hex:` + addr.String() + `"`,
			wantAddr: addr,
		},
		"bech32": {
			json:     `"bech32:` + b32 + `"`,
			wantAddr: addr,
		},
		"empty value zeroes the address": {
			json:     `""`,
			wantAddr: nil,
		},
		"invalid hex": {
			json:    `"zzzz"`,
			wantErr: errors.ErrInput,
		},
		"too short": {
			json:    `"ABCD"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"base64:AAAA"`,
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %+v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil && !a.Equals(tc.wantAddr) {
				t.Fatalf("want %q address, got %q", tc.wantAddr, a)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := ProgramID("roundtrip")
	raw, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	var got Address
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if !got.Equals(addr) {
		t.Fatalf("want %s, got %s", addr, got)
	}
}

func TestAddressValidate(t *testing.T) {
	if err := Address(nil).Validate(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want empty error, got %v", err)
	}
	if err := Address(make([]byte, 20)).Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
	if err := ProgramID("x").Validate(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestProgramIDIsStable(t *testing.T) {
	if !ProgramID("escrow").Equals(ProgramID("escrow")) {
		t.Fatal("program id must be deterministic")
	}
	if ProgramID("escrow").Equals(ProgramID("token")) {
		t.Fatal("different programs must not share an id")
	}
}

func TestAddressClone(t *testing.T) {
	a := ProgramID("clone")
	c := a.Clone()
	c[0]++
	if a.Equals(c) {
		t.Fatal("clone must not share memory")
	}
	if Address(nil).Clone() != nil {
		t.Fatal("nil clone must be nil")
	}
}

func TestBech32(t *testing.T) {
	// bech32 -e -h tiov 746573742d7061796c6f6164
	const encoded = "tiov1w3jhxapdwpshjmr0v9jqymqq4y"

	got, err := ParseBech32(encoded)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if want := Address("test-payload"); !got.Equals(want) {
		t.Fatalf("want %q, got %q", want, got)
	}
	s, err := got.Bech32("tiov")
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if s != encoded {
		t.Fatalf("want %q, got %q", encoded, s)
	}

	// Last checksum character changed.
	if _, err := ParseBech32("tiov1w3jhxapdwpshjmr0v9jqymqq4z"); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
