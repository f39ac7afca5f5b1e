package dnsrecords

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// CAARecord constrains which certificate authorities may issue certificates
// for the owner name.
type CAARecord struct {
	name  string
	ttl   uint32
	Flags uint8
	Tag   string
	Value string
}

func (r *CAARecord) Type() rrtype.RecordType { return rrtype.CAA }
func (r *CAARecord) Name() string            { return r.name }
func (r *CAARecord) TTL() uint32             { return r.ttl }

func (r *CAARecord) Emit() string {
	value := r.Value
	if value == "" {
		value = `""`
	}
	rdata := fmt.Sprintf("%d %s %s", r.Flags, r.Tag, value)
	return emitHeader(r.name, r.ttl, "CAA") + "\t" + rdata
}

func (r *CAARecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in CAA record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in CAA record", err)
	}
	parts := strings.Fields(rest)
	if len(parts) != 3 {
		return nil, fmt.Errorf("dnsrecords: CAA record expects exactly 3 rdata columns")
	}
	flags, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid flags %q in CAA record: %v", parts[0], err)
	}
	value := parts[2]
	if value == `""` {
		value = ""
	}
	return &CAARecord{name: owner, ttl: uint32(ttl), Flags: uint8(flags), Tag: parts[1], Value: value}, nil
}

// Equal reports whether two CAARecords are structurally identical.
func (r *CAARecord) Equal(b *CAARecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.Flags == b.Flags &&
		r.Tag == b.Tag && r.Value == b.Value
}
