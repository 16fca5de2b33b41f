/*
Package utils provides the decorators that every custody application chains
in front of its router: panic recovery, logging, metrics, action tagging and
savepoints.
*/
package utils
