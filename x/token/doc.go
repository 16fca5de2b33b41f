/*
Package token implements a minimal asset ledger: mints describing an asset
type and holdings keeping an amount of a single mint on behalf of an owner.

The owner of a holding is its authority. It can be a user or a program
derived address, in which case the program presents a derive.Signer in
place of a signature. Holdings live at the associated address of the
(owner, mint) pair, so every owner has exactly one holding per mint.
*/
package token
