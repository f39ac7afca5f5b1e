package dnsrecords

import "strings"

// wrapEvery inserts a space every width characters, matching the way DNSKEY
// public keys, DS digests, and RRSIG signatures are folded across a
// presentation-format line.
func wrapEvery(s string, width int) string {
	if len(s) <= width {
		return s
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte(' ')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
