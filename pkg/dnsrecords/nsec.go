package dnsrecords

import (
	"fmt"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// NSECRecord proves the non-existence of a name or type by pointing to the
// next owner name in canonical zone order and listing the types present at
// this owner.
type NSECRecord struct {
	name       string
	ttl        uint32
	NextDomain string
	Types      []rrtype.RecordType
}

func (r *NSECRecord) Type() rrtype.RecordType { return rrtype.NSEC }
func (r *NSECRecord) Name() string            { return r.name }
func (r *NSECRecord) TTL() uint32             { return r.ttl }

func (r *NSECRecord) Emit() string {
	return emitHeader(r.name, r.ttl, "NSEC") + "\t" + r.NextDomain + " " + joinTypes(r.Types)
}

func (r *NSECRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in NSEC record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in NSEC record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) < 1 {
		return nil, fmt.Errorf("dnsrecords: NSEC record expects a next domain name")
	}
	next, err := dnsname.Canonicalize(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid next domain name %q in NSEC record: %v", parts[0], err)
	}
	types, err := parseTypes(parts[1:])
	if err != nil {
		return nil, fmt.Errorf("in NSEC record: %v", err)
	}
	return &NSECRecord{name: owner, ttl: uint32(ttl), NextDomain: next, Types: types}, nil
}

// Equal reports whether two NSECRecords are structurally identical.
func (r *NSECRecord) Equal(b *NSECRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	if r.name != b.name || r.ttl != b.ttl || !dnsname.Equal(r.NextDomain, b.NextDomain) {
		return false
	}
	return typesEqual(r.Types, b.Types)
}

func parseTypes(tokens []string) ([]rrtype.RecordType, error) {
	types := make([]rrtype.RecordType, 0, len(tokens))
	for _, tok := range tokens {
		t, err := rrtype.FromText(tok)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func joinTypes(types []rrtype.RecordType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

func typesEqual(a, b []rrtype.RecordType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
