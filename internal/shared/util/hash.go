package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NamespaceKey returns a storage-safe directory name for an owner identifier.
// Empty owners share the "anonymous" namespace.
func NamespaceKey(owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "anonymous"
	}
	sum := sha256.Sum256([]byte(owner))
	return hex.EncodeToString(sum[:12])
}
