/*
Package weavetest provides test doubles and helpers for testing custody
extensions: authenticators, handlers, decorators, transactions and keys.
*/
package weavetest
