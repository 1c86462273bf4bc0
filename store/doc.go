// Package store caches solve results in a bolthold (bbolt) file, keyed by
// instance fingerprint, variant and solver. Records are encoded with
// json-iterator.
package store
