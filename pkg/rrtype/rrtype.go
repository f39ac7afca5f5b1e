// Package rrtype implements the RecordType codec: a closed set of named DNS
// resource record type codes plus an open "TYPEnnn" tail for any code this
// module does not name, following the same plain numeric-with-lookup-table
// convention used throughout the wider DNS tooling ecosystem.
package rrtype

import (
	"fmt"
	"strconv"
	"strings"
)

// RecordType is a DNS RR TYPE code. Named constants below cover every type
// this module parses or references; any other value is still a valid
// RecordType and renders as lowercase "typennn".
type RecordType uint16

const (
	A          RecordType = 1
	NS         RecordType = 2
	CNAME      RecordType = 5
	SOA        RecordType = 6
	MX         RecordType = 15
	TXT        RecordType = 16
	AAAA       RecordType = 28
	DS         RecordType = 43
	RRSIG      RecordType = 46
	NSEC       RecordType = 47
	DNSKEY     RecordType = 48
	NSEC3      RecordType = 50
	NSEC3PARAM RecordType = 51
	CAA        RecordType = 257
)

// typeToName is the inverse of nameToType, used by String.
var typeToName = map[RecordType]string{
	A:          "A",
	NS:         "NS",
	CNAME:      "CNAME",
	SOA:        "SOA",
	MX:         "MX",
	TXT:        "TXT",
	AAAA:       "AAAA",
	DS:         "DS",
	RRSIG:      "RRSIG",
	NSEC:       "NSEC",
	DNSKEY:     "DNSKEY",
	NSEC3:      "NSEC3",
	NSEC3PARAM: "NSEC3PARAM",
	CAA:        "CAA",
}

var nameToType = func() map[string]RecordType {
	m := make(map[string]RecordType, len(typeToName))
	for code, name := range typeToName {
		m[name] = code
	}
	return m
}()

// String renders the mnemonic for a named type, or the lowercase
// "typennn" form for anything else.
func (t RecordType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "type" + strconv.FormatUint(uint64(t), 10)
}

// FromText parses a presentation-format type token: a known mnemonic
// (case-insensitively) or a "TYPEnnn"/"typennn" literal.
func FromText(token string) (RecordType, error) {
	upper := strings.ToUpper(token)
	if t, ok := nameToType[upper]; ok {
		return t, nil
	}
	if strings.HasPrefix(upper, "TYPE") {
		n, err := strconv.ParseUint(upper[len("TYPE"):], 10, 16)
		if err == nil {
			return RecordType(n), nil
		}
	}
	return 0, fmt.Errorf("rrtype: unrecognised type token %q", token)
}
