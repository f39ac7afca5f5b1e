package dnsrecords

import (
	"fmt"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// CNAMERecord aliases an owner name to a canonical target name.
type CNAMERecord struct {
	name   string
	ttl    uint32
	Target string
}

func (r *CNAMERecord) Type() rrtype.RecordType { return rrtype.CNAME }
func (r *CNAMERecord) Name() string            { return r.name }
func (r *CNAMERecord) TTL() uint32             { return r.ttl }

func (r *CNAMERecord) Emit() string {
	return emitHeader(r.name, r.ttl, "CNAME") + "\t" + r.Target
}

func (r *CNAMERecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in CNAME record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in CNAME record", err)
	}
	target, err := dnsname.Canonicalize(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid target %q in CNAME record: %v", rest, err)
	}
	return &CNAMERecord{name: owner, ttl: uint32(ttl), Target: target}, nil
}

// Equal reports whether two CNAMERecords are structurally identical.
func (r *CNAMERecord) Equal(b *CNAMERecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && dnsname.Equal(r.Target, b.Target)
}

// NSRecord delegates authority for the owner name to Nameserver.
type NSRecord struct {
	name       string
	ttl        uint32
	Nameserver string
}

func (r *NSRecord) Type() rrtype.RecordType { return rrtype.NS }
func (r *NSRecord) Name() string            { return r.name }
func (r *NSRecord) TTL() uint32             { return r.ttl }

func (r *NSRecord) Emit() string {
	return emitHeader(r.name, r.ttl, "NS") + "\t" + r.Nameserver
}

func (r *NSRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in NS record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in NS record", err)
	}
	ns, err := dnsname.Canonicalize(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid nameserver %q in NS record: %v", rest, err)
	}
	return &NSRecord{name: owner, ttl: uint32(ttl), Nameserver: ns}, nil
}

// Equal reports whether two NSRecords are structurally identical.
func (r *NSRecord) Equal(b *NSRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && dnsname.Equal(r.Nameserver, b.Nameserver)
}
