// Package dnsrecords implements the master-file presentation-format parser
// and emitter for DNS resource records: A, CNAME, DNSKEY, DS, NS, NSEC,
// NSEC3, NSEC3PARAM, RRSIG, SOA, TXT, CAA, and an unknown-rdata fallback.
// Every record type follows the same Parse/Emit/Equal trio so that the
// top-level dispatcher in this file can treat them uniformly.
package dnsrecords

import (
	"fmt"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// Record is the common surface every parsed resource record satisfies.
type Record interface {
	// Type reports the record's RecordType.
	Type() rrtype.RecordType
	// Name returns the canonical owner name.
	Name() string
	// TTL returns the record's time-to-live in seconds.
	TTL() uint32
	// Emit renders the record back into presentation format.
	Emit() string
}

// recordParser is implemented by each concrete record type's zero value,
// letting parsersByType dispatch a presentation-format line to the right
// type purely by looking up its RR type mnemonic, with no type switch.
type recordParser interface {
	parseLine(line string) (Record, error)
}

var parsersByType = map[string]recordParser{
	"A":          &ARecord{},
	"CNAME":      &CNAMERecord{},
	"NS":         &NSRecord{},
	"SOA":        &SOARecord{},
	"DNSKEY":     &DNSKEYRecord{},
	"DS":         &DSRecord{},
	"RRSIG":      &RRSIGRecord{},
	"NSEC":       &NSECRecord{},
	"NSEC3":      &NSEC3Record{},
	"NSEC3PARAM": &NSEC3PARAMRecord{},
	"TXT":        &TXTRecord{},
	"CAA":        &CAARecord{},
}

// Parse routes a single presentation-format line to the parser registered
// for its type column, falling back to the unknown-rdata parser for any
// "TYPEnnn"/"typennn" token not present in parsersByType.
func Parse(line string) (Record, error) {
	fields, _, err := splitColumns(line, 4)
	if err != nil {
		return nil, fmt.Errorf("dnsrecords: %v", err)
	}
	class, typeToken := fields[2], fields[3]
	if class != "IN" {
		return nil, fmt.Errorf("dnsrecords: unsupported class %q", class)
	}
	if parser, ok := parsersByType[typeToken]; ok {
		return parser.parseLine(line)
	}
	if strings.HasPrefix(strings.ToUpper(typeToken), "TYPE") {
		return (&UnknownRecord{}).parseLine(line)
	}
	return nil, fmt.Errorf("dnsrecords: unsupported record type %q", typeToken)
}
