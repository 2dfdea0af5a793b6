package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key derives a stable key for an encoded sprite from a kind prefix ("png")
// and everything that determines its bytes: mask fingerprint, seed, scale and
// render options. Parts are JSON-encoded before hashing, so struct field
// order matters and map keys are sorted.
func Key(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// Hash is the hex SHA-256 of data; file cache paths shard on its first two
// characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
