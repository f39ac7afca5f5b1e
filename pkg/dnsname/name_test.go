package dnsname

import (
	"bytes"
	"testing"
)

func TestCanonicalizeAddsTrailingDot(t *testing.T) {
	got, err := Canonicalize("Example.COM")
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if got != "example.com." {
		t.Errorf("got %q, want %q", got, "example.com.")
	}
}

func TestCanonicalizeRoot(t *testing.T) {
	got, err := Canonicalize(".")
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if got != "." {
		t.Errorf("got %q, want %q", got, ".")
	}
}

func TestCanonicalizeRejectsEmpty(t *testing.T) {
	if _, err := Canonicalize(""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestCanonicalizeRejectsLongLabel(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := Canonicalize(string(long) + ".com."); err != ErrLabelTooLong {
		t.Errorf("got %v, want ErrLabelTooLong", err)
	}
}

func TestEqualIgnoresCaseAndTrailingDot(t *testing.T) {
	if !Equal("Example.com.", "example.COM") {
		t.Error("expected names to be equal")
	}
	if Equal("example.com.", "example.net.") {
		t.Error("expected names to differ")
	}
}

func TestEncodeWireRoot(t *testing.T) {
	got, err := EncodeWire(".")
	if err != nil {
		t.Fatalf("EncodeWire failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0}) {
		t.Errorf("got %v, want [0]", got)
	}
}

func TestEncodeWireLabels(t *testing.T) {
	got, err := EncodeWire("a.root-servers.net.")
	if err != nil {
		t.Fatalf("EncodeWire failed: %v", err)
	}
	want := []byte{1, 'a', 12}
	want = append(want, "root-servers"...)
	want = append(want, 3, 'n', 'e', 't', 0)
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
