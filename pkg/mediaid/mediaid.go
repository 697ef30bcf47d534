// Package mediaid derives content-addressed media identifiers.
//
// The byte layout fed to the digest is part of the public contract, so
// clients can precompute an identifier before it exists in any catalog:
// the kind byte, the raw URI bytes, a single 0x00 separator, then the raw
// name bytes, hashed with BLAKE2b-256 and lower-case hex encoded to 64
// characters.
package mediaid

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/oakmere/keepsake/pkg/types"
)

// Compute returns the MediaID for the (kind, uri, name) triple. Identical
// triples always produce the same identifier; changing any one field
// produces a different one.
func Compute(kind uint8, uri, name string) types.MediaID {
	buf := make([]byte, 0, 2+len(uri)+len(name))
	buf = append(buf, kind)
	buf = append(buf, uri...)
	buf = append(buf, 0x00)
	buf = append(buf, name...)

	sum := blake2b.Sum256(buf)
	return types.MediaID(hex.EncodeToString(sum[:]))
}
