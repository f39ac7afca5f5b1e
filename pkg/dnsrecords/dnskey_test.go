package dnsrecords

import "testing"

func TestDNSKEYKeyTypeKSK(t *testing.T) {
	r := &DNSKEYRecord{Flags: 257}
	if got := r.KeyType(); got != "KSK" {
		t.Fatalf("KeyType() = %q, want KSK", got)
	}
}

func TestDNSKEYKeyTypeZSK(t *testing.T) {
	r := &DNSKEYRecord{Flags: 256}
	if got := r.KeyType(); got != "ZSK" {
		t.Fatalf("KeyType() = %q, want ZSK", got)
	}
}

func TestDNSKEYKeyTypeRejectsRevokedKey(t *testing.T) {
	r := &DNSKEYRecord{Flags: 385} // ZoneKey | SEP | Revoke
	if got := r.KeyType(); got != "ZSK" {
		t.Fatalf("KeyType() = %q, want ZSK for a revoked SEP/ZoneKey key", got)
	}
}
