package dnsrecords

import (
	"testing"
)

func TestParseARecord(t *testing.T) {
	line := "a.root-servers.net.\t77859\tIN\tA\t198.41.0.4"
	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	a, ok := rec.(*ARecord)
	if !ok {
		t.Fatalf("expected *ARecord, got %T", rec)
	}
	if a.Address.String() != "198.41.0.4" {
		t.Errorf("got address %s, want 198.41.0.4", a.Address)
	}
	if got := a.Emit(); got != line {
		t.Errorf("round trip mismatch: got %q, want %q", got, line)
	}
}

func TestParseUnsupportedClass(t *testing.T) {
	if _, err := Parse("example.com.\t300\tCH\tA\t198.41.0.4"); err == nil {
		t.Fatal("expected error for unsupported class")
	}
}

func TestParseUnknownType(t *testing.T) {
	line := "example.com.\t300\tIN\ttype1000\t\\# 2 abcd"
	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	u, ok := rec.(*UnknownRecord)
	if !ok {
		t.Fatalf("expected *UnknownRecord, got %T", rec)
	}
	if got := u.Emit(); got != line {
		t.Errorf("round trip mismatch: got %q, want %q", got, line)
	}
}

func TestParseUnknownTypeAcceptsUppercasePrefix(t *testing.T) {
	rec, err := Parse("example.com.\t300\tIN\tTYPE1000\t\\# 2 abcd")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if rec.Type() != 1000 {
		t.Errorf("got type %v, want 1000", rec.Type())
	}
	if got := rec.Emit(); got != "example.com.\t300\tIN\ttype1000\t\\# 2 abcd" {
		t.Errorf("Emit = %q, want lowercase type token", got)
	}
}

func TestParseRejectsUnrecognisedMnemonic(t *testing.T) {
	if _, err := Parse("example.com.\t300\tIN\tBOGUS\tx"); err == nil {
		t.Fatal("expected error for unrecognised type mnemonic")
	}
}

func TestTXTRoundTrip(t *testing.T) {
	line := `example.com.	300	IN	TXT	"hello world" "second"`
	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	txt, ok := rec.(*TXTRecord)
	if !ok {
		t.Fatalf("expected *TXTRecord, got %T", rec)
	}
	if len(txt.Strings) != 2 || txt.Strings[0] != "hello world" || txt.Strings[1] != "second" {
		t.Errorf("unexpected strings: %v", txt.Strings)
	}
	if got := txt.Emit(); got != line {
		t.Errorf("round trip mismatch: got %q, want %q", got, line)
	}
}

func TestTXTRejectsForbiddenCharacters(t *testing.T) {
	for _, rdata := range []string{`"has @ sign"`, `"has ( paren"`, `"has \ backslash"`} {
		if _, err := scanCharacterStrings(rdata); err == nil {
			t.Errorf("expected error for rdata %q", rdata)
		}
	}
}

func TestTXTRejectsEmpty(t *testing.T) {
	if _, err := Parse("example.com.\t300\tIN\tTXT\t"); err == nil {
		t.Fatal("expected error for TXT record with no character strings")
	}
}

func TestCAAEmptyValue(t *testing.T) {
	line := `example.com.	300	IN	CAA	0 issue ""`
	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	caa := rec.(*CAARecord)
	if caa.Value != "" {
		t.Errorf("got value %q, want empty", caa.Value)
	}
	if got := caa.Emit(); got != line {
		t.Errorf("round trip mismatch: got %q, want %q", got, line)
	}
}

func TestNSEC3EmitDoubleSpace(t *testing.T) {
	line := "example.com.\t300\tIN\tNSEC3\t1 0 10 -  Q1VSRENVUlNFUg NS SOA"
	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := rec.Emit(); got != line {
		t.Errorf("round trip mismatch: got %q, want %q", got, line)
	}
}

func TestNSEC3PARAMRejectsNonEmptySalt(t *testing.T) {
	if _, err := Parse("example.com.\t300\tIN\tNSEC3PARAM\t1 0 10 ABCD"); err == nil {
		t.Fatal("expected error for non-empty NSEC3PARAM salt")
	}
}

func TestDSRoundTrip(t *testing.T) {
	line := "uminho.pt.\t7200\tIN\tDS\t36028 5 1 DF93A5A17FC9091F076137A6837C61DE997C80D6"
	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ds := rec.(*DSRecord)
	if ds.KeyTag != 36028 || ds.Algorithm != 5 || ds.DigestType != 1 {
		t.Errorf("unexpected DS fields: %+v", ds)
	}
	if got := ds.Emit(); got != line {
		t.Errorf("round trip mismatch: got %q, want %q", got, line)
	}
}
