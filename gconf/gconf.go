package gconf

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// ReadStore is the part of a KVStore needed to load a configuration.
type ReadStore interface {
	Get(key []byte) ([]byte, error)
}

// Store is the part of a KVStore needed to save a configuration.
type Store interface {
	ReadStore
	Set(key, value []byte) error
}

// ValidMarshaler is a configuration that can be checked and encoded.
type ValidMarshaler interface {
	Validate() error
	Marshal() ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is implemented by the configuration message of every
// extension, such as the rent parameters of x/system.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// key is where the configuration of pkg lives. The _c: prefix keeps it
// apart from every bucket.
func key(pkg string) []byte {
	return append([]byte("_c:"), pkg...)
}

// Save stores src as the configuration of pkg, refusing an invalid one.
func Save(db Store, pkg string, src ValidMarshaler) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s configuration", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "encode %s configuration", pkg)
	}
	return db.Set(key(pkg), raw)
}

// Load decodes the configuration of pkg into dst. It fails with ErrNotFound
// when pkg was never configured.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	raw, err := db.Get(key(pkg))
	switch {
	case err != nil:
		return errors.Wrapf(err, "read %s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "no %s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "decode %s configuration", pkg)
	}
	return nil
}

// InitConfig reads the pkg entry of the genesis "conf" section into conf
// and saves it. A genesis without an entry for pkg is an ErrNotFound.
func InitConfig(db Store, opts custody.Options, pkg string, conf Configuration) error {
	var sections custody.Options
	if err := opts.ReadOptions("conf", &sections); err != nil {
		return errors.Wrap(err, "genesis conf")
	}
	if _, ok := sections[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "genesis has no %s configuration", pkg)
	}
	if err := sections.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "genesis %s configuration", pkg)
	}
	return Save(db, pkg, conf)
}
