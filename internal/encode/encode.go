// Package encode implements the CloudWatch console's flavor of URL
// percent-encoding: '*' as the escape introducer, a per-mode exemption set
// and lowercase hex pairs.
package encode

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// graphExempt lists the characters left literal in graph mode. The console
// grammar uses them for its own structure.
const graphExempt = "'*()"

const upperhex = "0123456789ABCDEF"

// upperEscape matches a '*' introducer followed by two uppercase-capable
// hex digits. The lowercase pass rewrites every match, including the case
// where a literal exempt '*' happens to precede two such characters.
var upperEscape = regexp.MustCompile(`\*[0-9A-F]{2}`)

// Encode percent-encodes s for a metricsV2 graph fragment. Non-ASCII input
// is escaped per UTF-8 byte after NFC normalization.
//
// Two-phase contract with the math builder: formula text (metric math
// expressions and their labels) is encoded first with encodeFormula true,
// which escapes everything outside the unreserved set, quotes and
// parentheses included, so formula punctuation cannot collide with the
// grammar's own. The assembled tree is then encoded once with encodeFormula
// false, which leaves ' * ( ) literal - including the '*' introducers the
// first phase produced.
//
// Encoding is total: any string in, a valid fragment out.
func Encode(s string, encodeFormula bool) string {
	s = norm.NFC.String(s)
	exempt := graphExempt
	if encodeFormula {
		exempt = ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) || strings.IndexByte(exempt, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('*')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}

	// The console writes escape pairs in lowercase; uppercase works too,
	// but output should match what the console itself produces.
	return upperEscape.ReplaceAllStringFunc(b.String(), strings.ToLower)
}

// unreserved reports whether c never needs escaping (RFC 3986 unreserved).
func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
