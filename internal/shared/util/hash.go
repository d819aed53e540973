package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// IdentityKey derives the placeholder identity key for a profile until real
// authentication is wired in. The same email always yields the same key.
func IdentityKey(email string) string {
	sum := sha256.Sum256([]byte(email))
	return "pending:" + hex.EncodeToString(sum[:])
}
