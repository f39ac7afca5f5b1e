package dnsrecords

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// DNSKEYRecord carries a zone's public key material. The wire-level codec
// and cryptographic derivations (key tag, DS digest) live in pkg/dnskey;
// this type only handles the record's presentation-format shape.
type DNSKEYRecord struct {
	name      string
	ttl       uint32
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (r *DNSKEYRecord) Type() rrtype.RecordType { return rrtype.DNSKEY }
func (r *DNSKEYRecord) Name() string            { return r.name }
func (r *DNSKEYRecord) TTL() uint32             { return r.ttl }

// KeyType classifies the key from its flag bits: "KSK" when the Secure
// Entry Point and Zone Key bits are set (flags == 257) and the Revoke bit
// is clear, "ZSK" for every other flag value (including flags without the
// Zone Key bit).
func (r *DNSKEYRecord) KeyType() string {
	const zoneKey, sep, revoke = 0x0100, 0x0001, 0x0080
	if r.Flags&zoneKey != 0 && r.Flags&sep != 0 && r.Flags&revoke == 0 {
		return "KSK"
	}
	return "ZSK"
}

func (r *DNSKEYRecord) Emit() string {
	key := wrapEvery(base64.StdEncoding.EncodeToString(r.PublicKey), 56)
	rdata := fmt.Sprintf("%d %d %d %s", r.Flags, r.Protocol, r.Algorithm, key)
	return emitHeader(r.name, r.ttl, "DNSKEY") + "\t" + rdata
}

func (r *DNSKEYRecord) parseLine(line string) (Record, error) {
	if idx := strings.Index(line, " ;"); idx >= 0 {
		line = line[:idx]
	}
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in DNSKEY record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in DNSKEY record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) < 4 {
		return nil, fmt.Errorf("dnsrecords: DNSKEY record expects flags/protocol/algorithm plus a public key")
	}
	flags, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid flags %q in DNSKEY record: %v", parts[0], err)
	}
	protocol, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid protocol %q in DNSKEY record: %v", parts[1], err)
	}
	algorithm, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid algorithm %q in DNSKEY record: %v", parts[2], err)
	}
	key, err := base64.StdEncoding.DecodeString(strings.Join(parts[3:], ""))
	if err != nil {
		return nil, fmt.Errorf("invalid public key in DNSKEY record: %v", err)
	}
	return &DNSKEYRecord{
		name:      owner,
		ttl:       uint32(ttl),
		Flags:     uint16(flags),
		Protocol:  uint8(protocol),
		Algorithm: uint8(algorithm),
		PublicKey: key,
	}, nil
}

// Equal reports whether two DNSKEYRecords are structurally identical.
func (r *DNSKEYRecord) Equal(b *DNSKEYRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.Flags == b.Flags &&
		r.Protocol == b.Protocol && r.Algorithm == b.Algorithm &&
		string(r.PublicKey) == string(b.PublicKey)
}
