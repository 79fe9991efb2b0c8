package session

import (
	"math/rand"
	"strconv"
)

// GenerateToken produces an opaque external identifier: two independent
// uniform 32-bit draws, each rendered base-32 and concatenated. The result is
// lowercase alphanumeric ASCII, safe in a URL path segment. Collisions are
// accepted as negligible rather than eliminated; the registry's duplicate
// check is the backstop.
func GenerateToken() string {
	a := strconv.FormatUint(uint64(rand.Uint32()), 32)
	b := strconv.FormatUint(uint64(rand.Uint32()), 32)
	return a + b
}
