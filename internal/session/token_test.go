package session

import (
	"strings"
	"testing"
)

func TestGenerateTokenShape(t *testing.T) {
	const urlSafe = "abcdefghijklmnopqrstuvwxyz0123456789"
	for i := 0; i < 1000; i++ {
		tok := GenerateToken()
		if tok == "" {
			t.Fatal("empty token")
		}
		// Two base-32 rendered uint32s: at most 7 digits each.
		if len(tok) > 14 {
			t.Fatalf("token too long: %q", tok)
		}
		for _, r := range tok {
			if !strings.ContainsRune(urlSafe, r) {
				t.Fatalf("token %q contains unsafe rune %q", tok, r)
			}
		}
	}
}

func TestGenerateTokenVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[GenerateToken()] = true
	}
	// Collisions are possible in principle, but 100 duplicates would mean
	// the generator is broken.
	if len(seen) < 90 {
		t.Fatalf("only %d distinct tokens in 100 draws", len(seen))
	}
}
