/*
Package system keeps the native balance of every account together with the
storage deposit that keeps an account alive.

Every persisted entity (a user wallet, a token holding, an escrow record)
has a system account at its address. Creating an account moves the rent
exempt deposit for its declared space from a payer, closing an account
returns the whole balance to a destination of choice. An account address
must consent to its creation and to its closing, which for a program derived
address means the owning program presents a derive.Signer.
*/
package system
