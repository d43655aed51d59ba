package utils

import (
	"strings"
	"testing"
)

func TestNewResetCodeLengthAndCharset(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code := NewResetCode(length)
		if len(code) != length {
			t.Fatalf("NewResetCode(%d) returned %q, len %d", length, code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(codeCharset, r) {
				t.Fatalf("code %q contains %q, not in charset", code, r)
			}
		}
	}
}

func TestNewResetCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[NewResetCode(6)] = true
	}
	if len(seen) < 2 {
		t.Fatal("20 codes in a row were identical")
	}
}
