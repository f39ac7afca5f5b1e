// Package dnskey implements the DNSKEY RDATA wire codec and the
// cryptographic derivations built on top of it: key-tag calculation and DS
// digest generation. Hash primitives are taken as external collaborators
// (crypto/sha1, crypto/sha256, ...) consumed through the standard
// hash.Hash interface, exactly as the vendored miekg/dns dnssec.go reference
// code does.
package dnskey

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
)

// Zone Key and Secure Entry Point flag bits (RFC 4034 §2.1.1).
const (
	FlagZoneKey = 0x0100
	FlagRevoke  = 0x0080
	FlagSEP     = 0x0001
)

// RSAMD5 is the sole algorithm with a legacy, modulus-derived key tag
// calculation (RFC 4034 Appendix B.1, erratum 193).
const RSAMD5 = 1

// ErrBadProtocol is returned when a DNSKEY RDATA buffer's protocol octet is
// not 3, the only value RFC 4034 allows.
var ErrBadProtocol = errors.New("dnskey: protocol field must be 3")

// ErrTruncatedRDATA is returned when a DNSKEY RDATA buffer is shorter than
// the fixed 4-octet header.
var ErrTruncatedRDATA = errors.New("dnskey: rdata shorter than 4 octets")

// EmitRDATA renders a DNSKEY's wire-format RDATA: flags (u16 BE), protocol
// (u8, always 3), algorithm (u8), and the raw public key bytes.
func EmitRDATA(flags uint16, algorithm uint8, publicKey []byte) []byte {
	buf := make([]byte, 4+len(publicKey))
	binary.BigEndian.PutUint16(buf[0:2], flags)
	buf[2] = 3
	buf[3] = algorithm
	copy(buf[4:], publicKey)
	return buf
}

// DecodeRDATA parses a DNSKEY wire-format RDATA buffer, validating that the
// protocol octet is 3.
func DecodeRDATA(rdata []byte) (flags uint16, algorithm uint8, publicKey []byte, err error) {
	if len(rdata) < 4 {
		return 0, 0, nil, ErrTruncatedRDATA
	}
	if rdata[2] != 3 {
		return 0, 0, nil, ErrBadProtocol
	}
	flags = binary.BigEndian.Uint16(rdata[0:2])
	algorithm = rdata[3]
	publicKey = rdata[4:]
	return flags, algorithm, publicKey, nil
}

// CalculateKeyTag derives a DNSKEY's key tag from its emitted wire RDATA
// (as returned by EmitRDATA). Algorithm 1 (RSA/MD5) uses the deprecated
// modulus-tail rule; every other algorithm sums the RDATA octets, treating
// even-indexed octets as the high byte of a big-endian pair, and folds the
// 32-bit accumulator into 16 bits once.
func CalculateKeyTag(rdata []byte) uint16 {
	if len(rdata) < 4 {
		return 0
	}
	algorithm := rdata[3]
	if algorithm == RSAMD5 {
		if len(rdata) < 7 {
			return 0
		}
		return binary.BigEndian.Uint16(rdata[len(rdata)-3:])
	}
	var acc uint32
	for i, b := range rdata {
		if i&1 != 0 {
			acc += uint32(b)
		} else {
			acc += uint32(b) << 8
		}
	}
	acc += (acc >> 16) & 0xFFFF
	return uint16(acc & 0xFFFF)
}

// CalculateDSDigest derives a DS digest over the canonical, lowercase
// wire-form owner name concatenated with the DNSKEY's wire RDATA, per RFC
// 4509 §2.1. The caller supplies the hash primitive (e.g. sha256.New()).
func CalculateDSDigest(owner string, rdata []byte, h hash.Hash) ([]byte, error) {
	wireName, err := dnsname.EncodeWire(owner)
	if err != nil {
		return nil, fmt.Errorf("dnskey: %v", err)
	}
	h.Reset()
	h.Write(wireName)
	h.Write(rdata)
	return h.Sum(nil), nil
}

// AlgorithmToString maps DNSSEC algorithm identifiers to their IANA
// mnemonics, grounded on the same lookup-table convention used by the
// reference miekg/dns package.
var AlgorithmToString = map[uint8]string{
	1:  "RSAMD5",
	2:  "DH",
	3:  "DSA",
	5:  "RSASHA1",
	6:  "DSA-NSEC3-SHA1",
	7:  "RSASHA1-NSEC3-SHA1",
	8:  "RSASHA256",
	10: "RSASHA512",
	12: "ECC-GOST",
	13: "ECDSAP256SHA256",
	14: "ECDSAP384SHA384",
	15: "ED25519",
	16: "ED448",
}

// AlgorithmName returns the IANA mnemonic for a DNSSEC algorithm
// identifier, or "unknown" if this module does not name it.
func AlgorithmName(algorithm uint8) string {
	if name, ok := AlgorithmToString[algorithm]; ok {
		return name
	}
	return "unknown"
}

// IsKSK reports whether the given flags mark a Key Signing Key: the Zone
// Key and Secure Entry Point bits set (flags == 257 in the common case)
// and the Revoke bit clear. A revoked key never counts as a KSK even
// when ZoneKey and SEP are both set.
func IsKSK(flags uint16) bool {
	return flags&FlagZoneKey != 0 && flags&FlagSEP != 0 && flags&FlagRevoke == 0
}
