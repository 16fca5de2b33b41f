package escrow

import (
	"fmt"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/token"
)

// Binding holds the accounts a caller presents together with an escrow
// record. A nil field was not presented and is not checked.
type Binding struct {
	Maker  custody.Address
	MintA  custody.Address
	MintB  custody.Address
	Escrow custody.Address
	Vault  custody.Address
}

// Mismatch names the presented account that does not match the record.
//
// Mismatch is an error that matches ErrBinding and is reported as a field
// error for the mismatched field.
type Mismatch struct {
	Name string
	Want custody.Address
	Got  custody.Address
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("%s: want %s, got %s: %s", m.Name, m.Want, m.Got, ErrBinding)
}

// Cause unwraps to ErrBinding.
func (m *Mismatch) Cause() error {
	return ErrBinding
}

// Field returns the name of the mismatched field.
func (m *Mismatch) Field() string {
	return m.Name
}

func mismatch(name string, want, got custody.Address) *Mismatch {
	if want.Equals(got) {
		return nil
	}
	return &Mismatch{Name: name, Want: want, Got: got}
}

// CheckBinding compares presented accounts with the record stored at
// recordAddr and with its vault. It returns nil if everything matches,
// otherwise the first mismatch found.
func CheckBinding(rec *Record, recordAddr custody.Address, b Binding, vault *token.Holding) *Mismatch {
	presented := []struct {
		name      string
		want, got custody.Address
	}{
		{"Maker", rec.Maker, b.Maker},
		{"MintA", rec.MintA, b.MintA},
		{"MintB", rec.MintB, b.MintB},
		{"Escrow", recordAddr, b.Escrow},
	}
	for _, p := range presented {
		if p.got == nil {
			continue
		}
		if m := mismatch(p.name, p.want, p.got); m != nil {
			return m
		}
	}

	if b.Vault != nil {
		want, err := token.AssociatedAddress(recordAddr, rec.MintA)
		if err != nil {
			return &Mismatch{Name: "Vault", Got: b.Vault}
		}
		if m := mismatch("Vault", want, b.Vault); m != nil {
			return m
		}
	}
	if vault != nil {
		if m := mismatch("Vault.Owner", recordAddr, vault.Owner); m != nil {
			return m
		}
		if m := mismatch("Vault.Mint", rec.MintA, vault.Mint); m != nil {
			return m
		}
	}
	return nil
}
