package dnsrecords

import (
	"fmt"
	"strings"

	"github.com/jacksonbarreto/dnssecproto/pkg/dnsname"
	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// TXTRecord holds one or more free-form character strings.
type TXTRecord struct {
	name    string
	ttl     uint32
	Strings []string
}

func (r *TXTRecord) Type() rrtype.RecordType { return rrtype.TXT }
func (r *TXTRecord) Name() string            { return r.name }
func (r *TXTRecord) TTL() uint32             { return r.ttl }

func (r *TXTRecord) Emit() string {
	quoted := make([]string, len(r.Strings))
	for i, s := range r.Strings {
		quoted[i] = `"` + s + `"`
	}
	return emitHeader(r.name, r.ttl, "TXT") + "\t" + strings.Join(quoted, " ")
}

func (r *TXTRecord) parseLine(line string) (Record, error) {
	fields, rest, err := splitColumns(line, 4)
	if err != nil {
		return nil, err
	}
	owner, err := dnsname.Canonicalize(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q in TXT record: %v", fields[0], err)
	}
	ttl, err := dnsname.ParseUint(fields[1], "TTL", 32)
	if err != nil {
		return nil, fmt.Errorf("%v in TXT record", err)
	}
	strs, err := scanCharacterStrings(rest)
	if err != nil {
		return nil, fmt.Errorf("in TXT record: %v", err)
	}
	if len(strs) == 0 {
		return nil, fmt.Errorf("dnsrecords: TXT record has no character strings")
	}
	return &TXTRecord{name: owner, ttl: uint32(ttl), Strings: strs}, nil
}

// Equal reports whether two TXTRecords are structurally identical.
func (r *TXTRecord) Equal(b *TXTRecord) bool {
	if r == nil || b == nil {
		return r == b
	}
	if r.name != b.name || r.ttl != b.ttl || len(r.Strings) != len(b.Strings) {
		return false
	}
	for i := range r.Strings {
		if r.Strings[i] != b.Strings[i] {
			return false
		}
	}
	return true
}

type txtState int

const (
	txtWhitespace txtState = iota
	txtUnquoted
	txtQuoted
)

// scanCharacterStrings tokenizes TXT rdata using the three-state machine
// this module supports: Whitespace, Unquoted and Quoted. It rejects
// non-ASCII bytes and '(', '@', '\\', none of which this module interprets.
func scanCharacterStrings(rdata string) ([]string, error) {
	state := txtWhitespace
	var strs []string
	var buf strings.Builder

	flush := func() {
		strs = append(strs, buf.String())
		buf.Reset()
	}

	for _, r := range rdata {
		if r > 0x7f || r == '(' || r == '@' || r == '\\' {
			return nil, fmt.Errorf("dnsrecords: unsupported character %q in TXT rdata", r)
		}
		switch state {
		case txtWhitespace:
			switch {
			case r == ' ' || r == '\t':
				// stay in Whitespace
			case r == '"':
				state = txtQuoted
			default:
				state = txtUnquoted
				buf.WriteRune(r)
			}
		case txtUnquoted:
			if r == ' ' || r == '\t' {
				flush()
				state = txtWhitespace
			} else {
				buf.WriteRune(r)
			}
		case txtQuoted:
			if r == '"' {
				flush()
				state = txtWhitespace
			} else {
				buf.WriteRune(r)
			}
		}
	}

	switch state {
	case txtQuoted:
		return nil, fmt.Errorf("dnsrecords: unterminated quoted string in TXT rdata")
	case txtUnquoted:
		flush()
	}
	return strs, nil
}
