/*
Package derive computes program addresses: account addresses that are a pure
function of a list of seeds and a program identity, and that are guaranteed to
have no private key.

An address is the sha256 digest of all seeds, the program identity and a fixed
domain marker. A digest that decodes as a valid ed25519 point is rejected, as
somebody could hold the matching private key. FindProgramAddress appends a
single "bump" byte to the seeds and searches from 255 downwards for the first
bump that produces an off-curve digest.

The only way to act on behalf of a program address is a Signer, that can be
created by re-deriving the address from the same seeds and bump.
*/
package derive
