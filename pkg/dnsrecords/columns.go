package dnsrecords

import (
	"fmt"
	"strings"
)

// splitColumns consumes the first n whitespace-separated columns of line and
// returns them along with whatever remains of the line (with leading
// whitespace trimmed). It exists because strings.Fields alone would also
// tokenise quoted TXT character strings that may themselves contain spaces.
func splitColumns(line string, n int) ([]string, string, error) {
	fields := make([]string, 0, n)
	rest := line
	for i := 0; i < n; i++ {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return nil, "", fmt.Errorf("dnsrecords: expected %d columns, found %d", n, i)
		}
		idx := strings.IndexAny(rest, " \t")
		if idx == -1 {
			fields = append(fields, rest)
			rest = ""
		} else {
			fields = append(fields, rest[:idx])
			rest = rest[idx:]
		}
	}
	return fields, strings.TrimLeft(rest, " \t"), nil
}

func emitHeader(owner string, ttl uint32, typeName string) string {
	return fmt.Sprintf("%s\t%d\tIN\t%s", owner, ttl, typeName)
}
