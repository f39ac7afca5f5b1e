package rrtype

import "testing"

func TestStringNamed(t *testing.T) {
	if got := DNSKEY.String(); got != "DNSKEY" {
		t.Errorf("got %q, want DNSKEY", got)
	}
}

func TestStringUnknown(t *testing.T) {
	if got := RecordType(1000).String(); got != "type1000" {
		t.Errorf("got %q, want type1000", got)
	}
}

func TestFromTextNamedCaseInsensitive(t *testing.T) {
	got, err := FromText("dnskey")
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	if got != DNSKEY {
		t.Errorf("got %v, want DNSKEY", got)
	}
}

func TestFromTextTypeN(t *testing.T) {
	got, err := FromText("TYPE1000")
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	if got != RecordType(1000) {
		t.Errorf("got %v, want 1000", got)
	}
}

func TestFromTextInvalid(t *testing.T) {
	if _, err := FromText("NOTAREALTYPE"); err == nil {
		t.Fatal("expected error for unrecognised token")
	}
}

func TestUnknownTypeTextIsLowercase(t *testing.T) {
	for _, token := range []string{"type1000", "TYPE1000"} {
		got, err := FromText(token)
		if err != nil {
			t.Fatalf("FromText(%q) failed: %v", token, err)
		}
		if got != RecordType(1000) {
			t.Errorf("FromText(%q) = %v, want 1000", token, got)
		}
	}
	if got := RecordType(1000).String(); got != "type1000" {
		t.Errorf("String() = %q, want type1000", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rt := range []RecordType{A, NS, CNAME, SOA, MX, TXT, AAAA, DS, RRSIG, NSEC, DNSKEY, NSEC3, NSEC3PARAM, CAA} {
		got, err := FromText(rt.String())
		if err != nil {
			t.Fatalf("FromText(%s) failed: %v", rt, err)
		}
		if got != rt {
			t.Errorf("round trip mismatch: %v != %v", got, rt)
		}
	}
}
