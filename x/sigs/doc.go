/*
Package sigs authenticates transactions by their ed25519 signatures and keeps
one sequence per key against replays.

A user address is the public key itself. Program derived addresses are never
points on the curve, so no signature can ever authorize one.
*/
package sigs
