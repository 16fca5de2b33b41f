/*
Package x contains the interfaces shared by the custody extensions.

Extensions live in subpackages: system keeps storage deposits, token keeps
mints and holdings, sigs authenticates transaction signers, escrow implements
the conditional exchange and utils provides common decorators.
*/
package x
