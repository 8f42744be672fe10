package utils

import (
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	a, err := ObjectKey("products", "png")
	if err != nil {
		t.Fatalf("ObjectKey: %v", err)
	}
	b, err := ObjectKey("products", "png")
	if err != nil {
		t.Fatalf("ObjectKey: %v", err)
	}
	if a == b {
		t.Fatalf("keys should be unique, both %q", a)
	}
	if !strings.HasPrefix(a, "products/") || !strings.HasSuffix(a, ".png") {
		t.Fatalf("unexpected key shape %q", a)
	}
	// default nanoid length is 21
	if got := len(a) - len("products/") - len(".png"); got != 21 {
		t.Fatalf("expected 21 char id, got %d", got)
	}
}
