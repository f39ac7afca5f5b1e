package dnsrecords

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// SOARecord marks the start of a zone of authority and carries the zone
// transfer timing parameters.
type SOARecord struct {
	name      string
	ttl       uint32
	PrimaryNS string
	AdminMbox string
	Serial    uint32
	Refresh   uint32
	Retry     uint32
	Expire    uint32
	Minimum   uint32
}

func (r *SOARecord) Type() rrtype.RecordType { return rrtype.SOA }
func (r *SOARecord) Name() string            { return r.name }
func (r *SOARecord) TTL() uint32             { return r.ttl }

func (r *SOARecord) Emit() string {
	rdata := fmt.Sprintf("%s %s %d %d %d %d %d",
		r.PrimaryNS, r.AdminMbox, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
	return emitHeader(r.name, r.ttl, "SOA") + "\t" + rdata
}

func (r *SOARecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in SOA record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in SOA record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) != 7 {
		return nil, fmt.Errorf("dnsrecords: SOA record expects 7 rdata columns, found %d", len(parts))
	}
	primary, err := dnsname.Canonicalize(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid primary nameserver %q in SOA record: %v", parts[0], err)
	}
	mbox, err := dnsname.Canonicalize(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid admin mailbox %q in SOA record: %v", parts[1], err)
	}

	nums := make([]uint32, 5)
	names := []string{"serial", "refresh", "retry", "expire", "minimum"}
	for i, name := range names {
		v, perr := strconv.ParseUint(parts[2+i], 10, 32)
		if perr != nil {
			return nil, fmt.Errorf("invalid %s %q in SOA record: %v", name, parts[2+i], perr)
		}
		nums[i] = uint32(v)
	}

	return &SOARecord{
		name:      owner,
		ttl:       uint32(ttl),
		PrimaryNS: primary,
		AdminMbox: mbox,
		Serial:    nums[0],
		Refresh:   nums[1],
		Retry:     nums[2],
		Expire:    nums[3],
		Minimum:   nums[4],
	}, nil
}

// Equal reports whether two SOARecords are structurally identical.
func (r *SOARecord) Equal(b *SOARecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl &&
		dnsname.Equal(r.PrimaryNS, b.PrimaryNS) &&
		dnsname.Equal(r.AdminMbox, b.AdminMbox) &&
		r.Serial == b.Serial && r.Refresh == b.Refresh &&
		r.Retry == b.Retry && r.Expire == b.Expire && r.Minimum == b.Minimum
}
