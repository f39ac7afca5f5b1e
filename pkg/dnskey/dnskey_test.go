package dnskey

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
)

func TestEmitDecodeRoundTrip(t *testing.T) {
	pub := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	rdata := EmitRDATA(257, 8, pub)

	flags, algorithm, key, err := DecodeRDATA(rdata)
	if err != nil {
		t.Fatalf("DecodeRDATA: %v", err)
	}
	if flags != 257 || algorithm != 8 {
		t.Fatalf("flags=%d algorithm=%d, want 257/8", flags, algorithm)
	}
	if string(key) != string(pub) {
		t.Fatalf("public key = %x, want %x", key, pub)
	}
}

func TestDecodeRDATARejectsBadProtocol(t *testing.T) {
	rdata := []byte{0x01, 0x01, 99, 8, 0xAA}
	if _, _, _, err := DecodeRDATA(rdata); err != ErrBadProtocol {
		t.Fatalf("err = %v, want ErrBadProtocol", err)
	}
}

// TestCalculateKeyTagAlgorithm1TailRule exercises the legacy RSA/MD5 rule:
// the tag is the big-endian u16 at offset len-3 of the decoded public key,
// which the RDATA codec preserves at the same offset from the end of the
// full RDATA buffer.
func TestCalculateKeyTagAlgorithm1TailRule(t *testing.T) {
	pub := []byte{0x11, 0x22, 0x33, 0x32, 0xEC, 0x00}
	rdata := EmitRDATA(256, RSAMD5, pub)

	got := CalculateKeyTag(rdata)
	if got != 13036 {
		t.Fatalf("CalculateKeyTag = %d, want 13036", got)
	}
}

// TestCalculateKeyTagSumAndFold checks the default algorithm's reference
// formula directly against a hand-computed expectation for a short RDATA
// buffer.
func TestCalculateKeyTagSumAndFold(t *testing.T) {
	rdata := EmitRDATA(257, 8, []byte{0xAB, 0xCD, 0xEF})
	// flags=0x0101, protocol=3, algorithm=8, pubkey=AB CD EF
	var acc uint32
	for i, b := range rdata {
		if i&1 != 0 {
			acc += uint32(b)
		} else {
			acc += uint32(b) << 8
		}
	}
	acc += (acc >> 16) & 0xFFFF
	want := uint16(acc & 0xFFFF)

	if got := CalculateKeyTag(rdata); got != want {
		t.Fatalf("CalculateKeyTag = %d, want %d", got, want)
	}
}

func TestCalculateDSDigestSHA256(t *testing.T) {
	rdata := EmitRDATA(257, 8, []byte{0x01, 0x02, 0x03})
	digest, err := CalculateDSDigest("example.", rdata, sha256.New())
	if err != nil {
		t.Fatalf("CalculateDSDigest: %v", err)
	}
	if len(digest) != sha256.Size {
		t.Fatalf("digest length = %d, want %d", len(digest), sha256.Size)
	}
}

func TestCalculateDSDigestMatchesManualSHA1(t *testing.T) {
	// The dnsrecords DS round-trip test (record_test.go) uses the uminho.pt
	// digest DF93A5A17FC9091F076137A6837C61DE997C80D6 under SHA1; here we
	// only check that CalculateDSDigest is deterministic and matches a
	// manually computed SHA1 over the same inputs.
	rdata := EmitRDATA(257, 5, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	want := sha1.New()
	wireName, err := dnsname.EncodeWire("uminho.pt.")
	if err != nil {
		t.Fatalf("dnsname.EncodeWire: %v", err)
	}
	want.Write(wireName)
	want.Write(rdata)

	got, err := CalculateDSDigest("uminho.pt.", rdata, sha1.New())
	if err != nil {
		t.Fatalf("CalculateDSDigest: %v", err)
	}
	if hex.EncodeToString(got) != hex.EncodeToString(want.Sum(nil)) {
		t.Fatalf("digest = %x, want %x", got, want.Sum(nil))
	}
}

func TestAlgorithmName(t *testing.T) {
	if AlgorithmName(8) != "RSASHA256" {
		t.Fatalf("AlgorithmName(8) = %q, want RSASHA256", AlgorithmName(8))
	}
	if AlgorithmName(253) != "unknown" {
		t.Fatalf("AlgorithmName(253) = %q, want unknown", AlgorithmName(253))
	}
}

func TestIsKSK(t *testing.T) {
	if !IsKSK(257) {
		t.Fatalf("IsKSK(257) = false, want true")
	}
	if IsKSK(256) {
		t.Fatalf("IsKSK(256) = true, want false")
	}
}

func TestIsKSKRejectsRevokedKey(t *testing.T) {
	if IsKSK(385) {
		t.Fatalf("IsKSK(385) = true, want false for a revoked SEP/ZoneKey key")
	}
}
