// Package types defines the entity types, Store interface, Config, and
// standard errors for the Keepsake completion ledger.
package types
