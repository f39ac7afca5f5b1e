package dnsrecords

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// UnknownRecord holds the rdata of a record whose type this module does not
// name, in the generic "\# <len> <hex>" presentation form (RFC 3597).
type UnknownRecord struct {
	name    string
	ttl     uint32
	recType rrtype.RecordType
	RData   []byte
}

func (r *UnknownRecord) Type() rrtype.RecordType { return r.recType }
func (r *UnknownRecord) Name() string            { return r.name }
func (r *UnknownRecord) TTL() uint32             { return r.ttl }

func (r *UnknownRecord) Emit() string {
	rdata := fmt.Sprintf(`\# %d %s`, len(r.RData), hex.EncodeToString(r.RData))
	return emitHeader(r.name, r.ttl, r.recType.String()) + "\t" + rdata
}

func (r *UnknownRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in unknown record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in unknown record", err)
	}
	recType, err := rrtype.FromText(fields[3])
	if err != nil {
		return nil, fmt.Errorf("invalid type %q in unknown record: %v", fields[3], err)
	}
	parts := strings.Fields(rest)
	if len(parts) < 2 || parts[0] != `\#` {
		return nil, fmt.Errorf(`dnsrecords: unknown record rdata must begin with '\#'`)
	}
	length, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid rdata length %q in unknown record: %v", parts[1], err)
	}
	rdata, err := hex.DecodeString(strings.Join(parts[2:], ""))
	if err != nil {
		return nil, fmt.Errorf("invalid rdata hex in unknown record: %v", err)
	}
	if uint64(len(rdata)) != length {
		return nil, fmt.Errorf("dnsrecords: unknown record declares length %d but decoded %d bytes", length, len(rdata))
	}
	return &UnknownRecord{name: owner, ttl: uint32(ttl), recType: recType, RData: rdata}, nil
}

// Equal reports whether two UnknownRecords are structurally identical.
func (r *UnknownRecord) Equal(b *UnknownRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	return r.name == b.name && r.ttl == b.ttl && r.recType == b.recType &&
		string(r.RData) == string(b.RData)
}
