package custody

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/custody/errors"
)

// AddressLength is the size of every address: a user address is the raw
// ed25519 public key, a program derived address is a 32 byte digest that
// is not a point on the curve.
const AddressLength = 32

// Address identifies an account. Only user addresses have a private key.
type Address []byte

func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy that shares no memory with a.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}

// String is the upper case hex form, also used in JSON.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON reads "<hex>", "hex:<hex>" or "bech32:<bech32>". An empty
// string leaves a nil address.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(err, "address json")
	}
	format, value := "hex", s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		format, value = s[:i], s[i+1:]
	}
	if value == "" {
		*a = nil
		return nil
	}

	var addr Address
	switch format {
	case "hex":
		b, err := hex.DecodeString(value)
		if err != nil {
			return errors.Wrap(errors.ErrInput, "address hex")
		}
		addr = b
	case "bech32":
		b, err := ParseBech32(value)
		if err != nil {
			return err
		}
		addr = b
	default:
		return errors.ErrType.Newf("address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return err
	}
	*a = addr
	return nil
}

// Bech32 encodes a under the human readable prefix hrp.
func (a Address) Bech32(hrp string) (string, error) {
	groups, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 bits: %s", err)
	}
	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return s, nil
}

// ParseBech32 decodes a bech32 address whatever its prefix. The checksum
// is verified, the length is not.
func ParseBech32(s string) (Address, error) {
	_, groups, err := bech32.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 decode: %s", err)
	}
	raw, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 bits: %s", err)
	}
	return Address(raw), nil
}

func (a Address) Validate() error {
	switch {
	case len(a) == 0:
		return errors.Wrap(errors.ErrEmpty, "address")
	case len(a) != AddressLength:
		return errors.ErrInput.Newf("address of %d bytes", len(a))
	}
	return nil
}

// ProgramID is the identity of the named program. It only scopes address
// derivation and never signs.
func ProgramID(name string) Address {
	h := sha256.Sum256([]byte("program:" + name))
	return h[:]
}
