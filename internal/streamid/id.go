// Package streamid derives a stable numeric identifier for a named stream
// (e.g. a metric name or file path), for use in logs and reports where a
// short fixed-width id reads better than an arbitrary string.
package streamid

import "github.com/cespare/xxhash/v2"

// Of computes the xxHash64 of name.
func Of(name string) uint64 {
	return xxhash.Sum64String(name)
}
