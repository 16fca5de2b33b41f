package derive

import (
	"crypto/sha256"

	"github.com/agl/ed25519/edwards25519"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	// MaxSeeds is the maximum number of seeds, including the bump, that
	// can be used to derive an address.
	MaxSeeds = 16

	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32

	// domainMarker separates program addresses from any other sha256
	// digest computed over the same data.
	domainMarker = "ProgramDerivedAddress"
)

var (
	// ErrInvalidSeeds is returned when the seeds cannot be used for
	// derivation.
	ErrInvalidSeeds = errors.Register(200, "invalid seeds")

	// ErrOnCurve is returned when the derived address is a valid public
	// key and therefore cannot be used as a program address.
	ErrOnCurve = errors.Register(201, "address on curve")

	// ErrBumpExhausted is returned when no bump value produces a valid
	// program address. This is a fatal configuration failure.
	ErrBumpExhausted = errors.Register(202, "no valid bump")
)

// CreateProgramAddress returns the program address for given seeds. It fails
// if the seeds are not valid or if the computed address lies on the ed25519
// curve.
func CreateProgramAddress(seeds [][]byte, program custody.Address) (custody.Address, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	if err := program.Validate(); err != nil {
		return nil, errors.Wrap(err, "program")
	}

	h := sha256.New()
	for _, s := range seeds {
		_, _ = h.Write(s)
	}
	_, _ = h.Write(program)
	_, _ = h.Write([]byte(domainMarker))
	addr := h.Sum(nil)

	if IsOnCurve(addr) {
		return nil, errors.Wrapf(ErrOnCurve, "%X", addr)
	}
	return custody.Address(addr), nil
}

// FindProgramAddress searches for the highest bump that, appended to the
// seeds, produces a valid program address. The same seeds and program always
// return the same address and bump.
func FindProgramAddress(seeds [][]byte, program custody.Address) (custody.Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return nil, 0, errors.Wrapf(ErrInvalidSeeds, "%d seeds leave no room for a bump", len(seeds))
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		addr, err := CreateProgramAddress(withBump, program)
		switch {
		case err == nil:
			return addr, uint8(bump), nil
		case ErrOnCurve.Is(err):
			continue
		default:
			return nil, 0, err
		}
	}
	return nil, 0, errors.Wrapf(ErrBumpExhausted, "program %s", program)
}

// IsOnCurve returns true if given bytes decode as a point of the ed25519
// curve, meaning there might exist a private key for it.
func IsOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	var (
		raw   [32]byte
		point edwards25519.ExtendedGroupElement
	)
	copy(raw[:], b)
	return point.FromBytes(&raw)
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return errors.Wrapf(ErrInvalidSeeds, "max %d seeds, got %d", MaxSeeds, len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return errors.Wrapf(ErrInvalidSeeds, "seed %d: max length %d, got %d", i, MaxSeedLength, len(s))
		}
	}
	return nil
}
