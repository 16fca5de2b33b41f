/*
Package escrow implements a two party asset exchange whose deposit is held
by the program itself.

A maker opens an escrow by locking an amount of asset A in a vault and
declaring how much of asset B is requested in return. The escrow record
lives at a program derived address computed from the maker and a maker
chosen seed, and the vault is the associated holding of that address. No
private key exists for the record address, so the vault can only be
emptied by this program re-deriving the address from the stored record.

A taker settles by sending the requested asset B to the maker and receiving
the whole vault. Alternatively the maker cancels and receives the vault
back. Both operations release the vault and the record, returning all
storage deposits to the maker.
*/
package escrow
