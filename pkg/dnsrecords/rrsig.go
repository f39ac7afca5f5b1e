package dnsrecords

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// RRSIGRecord carries the DNSSEC signature over an RRset. Expiration and
// Inception are stored as the raw decimal u64 that appears in the
// presentation format; this package performs no calendar conversion. A
// caller accepting YYYYMMDDHHMMSS-style input must convert it beforehand.
type RRSIGRecord struct {
	name        string
	ttl         uint32
	TypeCovered rrtype.RecordType
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint64
	Inception   uint64
	KeyTag      uint16
	SignerName  string
	Signature   []byte
}

func (r *RRSIGRecord) Type() rrtype.RecordType { return rrtype.RRSIG }
func (r *RRSIGRecord) Name() string            { return r.name }
func (r *RRSIGRecord) TTL() uint32             { return r.ttl }

func (r *RRSIGRecord) Emit() string {
	sig := wrapEvery(base64.StdEncoding.EncodeToString(r.Signature), 56)
	rdata := fmt.Sprintf("%s %d %d %d %d %d %d %s %s",
		r.TypeCovered, r.Algorithm, r.Labels, r.OriginalTTL,
		r.Expiration, r.Inception, r.KeyTag, r.SignerName, sig)
	return emitHeader(r.name, r.ttl, "RRSIG") + "\t" + rdata
}

func (r *RRSIGRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in RRSIG record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in RRSIG record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) < 9 {
		return nil, fmt.Errorf("dnsrecords: RRSIG record expects 8 fixed rdata columns plus a signature")
	}

	typeCovered, err := rrtype.FromText(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid type covered %q in RRSIG record: %v", parts[0], err)
	}
	algorithm, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid algorithm %q in RRSIG record: %v", parts[1], err)
	}
	labels, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid labels %q in RRSIG record: %v", parts[2], err)
	}
	originalTTL, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid original TTL %q in RRSIG record: %v", parts[3], err)
	}
	expiration, err := strconv.ParseUint(parts[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid expiration %q in RRSIG record: %v", parts[4], err)
	}
	inception, err := strconv.ParseUint(parts[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid inception %q in RRSIG record: %v", parts[5], err)
	}
	keyTag, err := strconv.ParseUint(parts[6], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid key tag %q in RRSIG record: %v", parts[6], err)
	}
	signerName, err := dnsname.Canonicalize(parts[7])
	if err != nil {
		return nil, fmt.Errorf("invalid signer name %q in RRSIG record: %v", parts[7], err)
	}
	signature, err := base64.StdEncoding.DecodeString(strings.Join(parts[8:], ""))
	if err != nil {
		return nil, fmt.Errorf("invalid signature in RRSIG record: %v", err)
	}

	return &RRSIGRecord{
		name:        owner,
		ttl:         uint32(ttl),
		TypeCovered: typeCovered,
		Algorithm:   uint8(algorithm),
		Labels:      uint8(labels),
		OriginalTTL: uint32(originalTTL),
		Expiration:  expiration,
		Inception:   inception,
		KeyTag:      uint16(keyTag),
		SignerName:  signerName,
		Signature:   signature,
	}, nil
}

// Equal reports whether two RRSIGRecords are structurally identical.
func (r *RRSIGRecord) Equal(b *RRSIGRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.TypeCovered == b.TypeCovered &&
		r.Algorithm == b.Algorithm && r.Labels == b.Labels &&
		r.OriginalTTL == b.OriginalTTL && r.Expiration == b.Expiration &&
		r.Inception == b.Inception && r.KeyTag == b.KeyTag &&
		dnsname.Equal(r.SignerName, b.SignerName) &&
		string(r.Signature) == string(b.Signature)
}
