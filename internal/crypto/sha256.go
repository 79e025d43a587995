// Package crypto implements the digest helpers, the v2 address derivation and
// the request validation rules of the network.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// HexDigest hashes the byte-wise concatenation of parts and returns the
// lowercase hex digest.
func HexDigest(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HexDigestString is HexDigest over UTF-8 encoded strings.
func HexDigestString(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func doubleHexDigest(s string) string {
	return HexDigestString(HexDigestString(s))
}
