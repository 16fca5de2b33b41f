package errors

import (
	"reflect"
	"strings"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Shared instances so results can be compared with DeepEqual.
	var (
		makerErr  = Field("Maker", ErrUnauthorized, "signature missing")
		mintAErr  = Field("MintA", ErrInput, "not a mint")
		mintBErr  = Field("MintB", ErrInput, "same as %s", "MintA")
		amountErr = Field("Amount", ErrAmount, "must be positive")
		openErr   = Field("Open", Append(mintAErr, Append(amountErr, ErrState)), "invalid message")
		outerErr  = Field("Amount", amountErr, "offer")
		noMintErr = Field("MintA", ErrEmpty, "")
	)

	cases := map[string]struct {
		err   error
		field string
		want  []error
	}{
		"direct match": {
			err:   makerErr,
			field: "Maker",
			want:  []error{makerErr},
		},
		"matches across a multi error": {
			err:   Append(mintAErr, makerErr, mintBErr),
			field: "Maker",
			want:  []error{makerErr},
		},
		"field holding a multi error": {
			err:   openErr,
			field: "Open",
			want:  []error{openErr},
		},
		"nested inside a field": {
			err:   openErr,
			field: "Amount",
			want:  []error{amountErr},
		},
		"through wrapping": {
			err:   Wrap(Wrap(openErr, "deliver"), "escrow"),
			field: "MintA",
			want:  []error{mintAErr},
		},
		"outer field hides inner one": {
			err:   outerErr,
			field: "Amount",
			want:  []error{outerErr},
		},
		"several matches keep their order": {
			err:   Wrap(Append(Wrap(mintAErr, "a"), Wrap(makerErr, "b"), noMintErr), "check"),
			field: "MintA",
			want:  []error{mintAErr, noMintErr},
		},
		"no field": {
			err:   ErrUnauthorized,
			field: "Maker",
		},
		"other field": {
			err:   Wrap(openErr, "deliver"),
			field: "Taker",
		},
		"nil": {
			field: "Maker",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if !reflect.DeepEqual(tc.want, got) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestField(t *testing.T) {
	if err := Field("Maker", nil, "ignored"); err != nil {
		t.Fatalf("nil error must stay nil, got %v", err)
	}

	err := Field("MintB", ErrInput, "same as %s", "MintA")
	if !ErrInput.Is(err) {
		t.Fatalf("field error must keep its cause: %v", err)
	}
	if msg := err.Error(); !strings.HasPrefix(msg, `field "MintB": same as MintA: `) {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := Field("Maker", ErrEmpty, "").Error(); msg != `field "Maker": `+ErrEmpty.Error() {
		t.Fatalf("unexpected message %q", msg)
	}

	errs := AppendField(nil, "Metadata", nil)
	errs = AppendField(errs, "Decimals", ErrInput)
	if got := FieldErrors(errs, "Decimals"); len(got) != 1 {
		t.Fatalf("want one Decimals error, got %v", got)
	}
	if got := FieldErrors(errs, "Metadata"); len(got) != 0 {
		t.Fatalf("nil field error must be skipped, got %v", got)
	}
}
