package common

import (
	"encoding/hex"
	"testing"
)

// ---------- MakeRandHexString ----------

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

// ---------- NewSessionID ----------

func TestNewSessionID_Unique(t *testing.T) {
	a, err := NewSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != SessionIDSize*2 {
		t.Fatalf("expected length %d, got %d", SessionIDSize*2, len(a))
	}
	if a == b {
		t.Fatalf("two session ids are identical: %s", a)
	}
}
