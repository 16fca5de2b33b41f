/*
Package crypto provides the ed25519 keys used to sign custody transactions.

The address of a user is the raw 32 byte public key. Program addresses are
chosen off the curve, so they never collide with a user address.
*/
package crypto
