// Package common contains shared constants and sentinel errors used across
// gqlblog components.
package common

// SessionIDSize is the number of random bytes behind a session identifier.
const SessionIDSize = 32

// SessionKeyPrefix namespaces session records in the key-value store.
const SessionKeyPrefix = "session:"
