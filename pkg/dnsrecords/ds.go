package dnsrecords

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// DSRecord links a child zone's DNSKEY to its parent zone via a digest.
type DSRecord struct {
	name       string
	ttl        uint32
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (r *DSRecord) Type() rrtype.RecordType { return rrtype.DS }
func (r *DSRecord) Name() string            { return r.name }
func (r *DSRecord) TTL() uint32             { return r.ttl }

func (r *DSRecord) Emit() string {
	digest := wrapEvery(strings.ToUpper(hex.EncodeToString(r.Digest)), 56)
	rdata := fmt.Sprintf("%d %d %d %s", r.KeyTag, r.Algorithm, r.DigestType, digest)
	return emitHeader(r.name, r.ttl, "DS") + "\t" + rdata
}

func (r *DSRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in DS record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in DS record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) < 4 {
		return nil, fmt.Errorf("dnsrecords: DS record expects key tag/algorithm/digest type plus a digest")
	}
	keyTag, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid key tag %q in DS record: %v", parts[0], err)
	}
	algorithm, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid algorithm %q in DS record: %v", parts[1], err)
	}
	digestType, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid digest type %q in DS record: %v", parts[2], err)
	}
	digest, err := hex.DecodeString(strings.Join(parts[3:], ""))
	if err != nil {
		return nil, fmt.Errorf("invalid digest in DS record: %v", err)
	}
	return &DSRecord{
		name:       owner,
		ttl:        uint32(ttl),
		KeyTag:     uint16(keyTag),
		Algorithm:  uint8(algorithm),
		DigestType: uint8(digestType),
		Digest:     digest,
	}, nil
}

// Equal reports whether two DSRecords are structurally identical.
func (r *DSRecord) Equal(b *DSRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.KeyTag == b.KeyTag &&
		r.Algorithm == b.Algorithm && r.DigestType == b.DigestType &&
		string(r.Digest) == string(b.Digest)
}
