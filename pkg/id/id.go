// Package id generates the public identifiers used across the API:
// 32 lowercase hex characters, no separators or prefixes.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
