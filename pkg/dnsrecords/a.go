package dnsrecords

import (
	"fmt"
	"net"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// ARecord maps an owner name to an IPv4 address.
type ARecord struct {
	name    string
	ttl     uint32
	Address net.IP
}

func (r *ARecord) Type() rrtype.RecordType { return rrtype.A }
func (r *ARecord) Name() string            { return r.name }
func (r *ARecord) TTL() uint32             { return r.ttl }

func (r *ARecord) Emit() string {
	return emitHeader(r.name, r.ttl, "A") + "\t" + r.Address.String()
}

func (r *ARecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in A record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in A record", err)
	}
	addr := net.ParseIP(rest).To4()
	if addr == nil {
		return nil, fmt.Errorf("invalid IPv4 address %q in A record", rest)
	}
	return &ARecord{name: owner, ttl: uint32(ttl), Address: addr}, nil
}

// Equal reports whether two ARecords are structurally identical.
func (r *ARecord) Equal(b *ARecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.Address.Equal(b.Address)
}
