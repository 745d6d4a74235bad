package memory

import (
	"context"
	"testing"
)

func TestGetSetRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "balance"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "balance", "120.50"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "balance")
	if err != nil || !ok || v != "120.50" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}

	// replace, not append
	if err := s.Set(ctx, "balance", "0"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, _, _ = s.Get(ctx, "balance")
	if v != "0" || s.Len() != 1 {
		t.Fatalf("replace: v=%q len=%d", v, s.Len())
	}
}
