/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps its configuration as a single serialized object stored
under the "_c:<package name>" key. Configuration is loaded from the "conf"
section of the genesis file, where every package reads its own entry:

	"conf": {
		"system": {"lamports_per_byte": 10, "account_overhead": 128},
		"escrow": {"record_space": 121}
	}
*/
package gconf
