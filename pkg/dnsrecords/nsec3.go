package dnsrecords

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// NSEC3Record is the hashed-owner-name variant of NSECRecord, preventing
// zone enumeration by walking.
type NSEC3Record struct {
	name                string
	ttl                 uint32
	HashAlgorithm       uint8
	Flags               uint8
	Iterations          uint16
	Salt                []byte
	NextHashedOwnerName string
	Types               []rrtype.RecordType
}

func (r *NSEC3Record) Type() rrtype.RecordType { return rrtype.NSEC3 }
func (r *NSEC3Record) Name() string            { return r.name }
func (r *NSEC3Record) TTL() uint32             { return r.ttl }

// Emit deliberately inserts two spaces between the salt column and the
// next-hashed-owner-name column, matching the master-file convention this
// module reproduces bug-for-bug rather than the single-space general rule.
func (r *NSEC3Record) Emit() string {
	salt := "-"
	if len(r.Salt) > 0 {
		salt = strings.ToUpper(hex.EncodeToString(r.Salt))
	}
	rdata := fmt.Sprintf("%d %d %d %s  %s %s",
		r.HashAlgorithm, r.Flags, r.Iterations, salt, r.NextHashedOwnerName, joinTypes(r.Types))
	return emitHeader(r.name, r.ttl, "NSEC3") + "\t" + rdata
}

func (r *NSEC3Record) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in NSEC3 record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in NSEC3 record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) < 5 {
		return nil, fmt.Errorf("dnsrecords: NSEC3 record expects hash algorithm/flags/iterations/salt/next-hashed-owner-name")
	}
	hashAlg, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid hash algorithm %q in NSEC3 record: %v", parts[0], err)
	}
	flags, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid flags %q in NSEC3 record: %v", parts[1], err)
	}
	iterations, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid iterations %q in NSEC3 record: %v", parts[2], err)
	}
	var salt []byte
	if parts[3] != "-" {
		salt, err = hex.DecodeString(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid salt %q in NSEC3 record: %v", parts[3], err)
		}
	}
	types, err := parseTypes(parts[5:])
	if err != nil {
		return nil, fmt.Errorf("in NSEC3 record: %v", err)
	}
	return &NSEC3Record{
		name:                owner,
		ttl:                 uint32(ttl),
		HashAlgorithm:       uint8(hashAlg),
		Flags:               uint8(flags),
		Iterations:          uint16(iterations),
		Salt:                salt,
		NextHashedOwnerName: parts[4],
		Types:               types,
	}, nil
}

// Equal reports whether two NSEC3Records are structurally identical.
func (r *NSEC3Record) Equal(b *NSEC3Record) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.HashAlgorithm == b.HashAlgorithm &&
		r.Flags == b.Flags && r.Iterations == b.Iterations &&
		string(r.Salt) == string(b.Salt) &&
		strings.EqualFold(r.NextHashedOwnerName, b.NextHashedOwnerName) &&
		typesEqual(r.Types, b.Types)
}

// NSEC3PARAMRecord carries the parameters a zone uses to compute NSEC3
// hashes. Only an absent salt ("-") is supported, matching this module's
// NSEC3PARAM parser: it accepts exactly 8 presentation-format columns and
// rejects any other salt value.
type NSEC3PARAMRecord struct {
	name          string
	ttl           uint32
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
}

func (r *NSEC3PARAMRecord) Type() rrtype.RecordType { return rrtype.NSEC3PARAM }
func (r *NSEC3PARAMRecord) Name() string            { return r.name }
func (r *NSEC3PARAMRecord) TTL() uint32             { return r.ttl }

func (r *NSEC3PARAMRecord) Emit() string {
	rdata := fmt.Sprintf("%d %d %d -", r.HashAlgorithm, r.Flags, r.Iterations)
	return emitHeader(r.name, r.ttl, "NSEC3PARAM") + "\t" + rdata
}

func (r *NSEC3PARAMRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in NSEC3PARAM record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in NSEC3PARAM record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) != 4 {
		return nil, fmt.Errorf("dnsrecords: NSEC3PARAM record requires exactly 8 presentation columns")
	}
	if parts[3] != "-" {
		return nil, fmt.Errorf("dnsrecords: NSEC3PARAM record with a non-empty salt is not implemented")
	}
	hashAlg, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid hash algorithm %q in NSEC3PARAM record: %v", parts[0], err)
	}
	flags, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid flags %q in NSEC3PARAM record: %v", parts[1], err)
	}
	iterations, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid iterations %q in NSEC3PARAM record: %v", parts[2], err)
	}
	return &NSEC3PARAMRecord{
		name:          owner,
		ttl:           uint32(ttl),
		HashAlgorithm: uint8(hashAlg),
		Flags:         uint8(flags),
		Iterations:    uint16(iterations),
	}, nil
}

// Equal reports whether two NSEC3PARAMRecords are structurally identical.
func (r *NSEC3PARAMRecord) Equal(b *NSEC3PARAMRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.HashAlgorithm == b.HashAlgorithm &&
		r.Flags == b.Flags && r.Iterations == b.Iterations
}
