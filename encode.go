package urlenc

import (
	"fmt"
	"net/url"
	"strings"
)

// encodingRules rewrite the output of [Encode] into strict RFC 3986
// percent-encoding. The patterns are mutually non-overlapping, but they are
// applied in a fixed order so the result is reproducible.
var encodingRules = [...]struct {
	pattern     string
	replacement string
}{
	{"*", "%2A"},
	{"+", "%20"},
	{"%7E", "~"},
}

// Encode translates s into application/x-www-form-urlencoded format: space
// becomes "+", unreserved characters are preserved, and every other byte of
// the UTF-8 representation is percent-encoded.
func Encode(s string) string {
	return url.QueryEscape(s)
}

// Decode is the inverse of [Encode]. It returns an error if s contains a
// malformed percent escape.
func Decode(s string) (string, error) {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("urlenc: %w", err)
	}
	return decoded, nil
}

// PercentEncode translates s into strict RFC 3986 percent-encoding: space
// becomes "%20", "*" is escaped, and "~" is left literal. It is [Encode]
// followed by the fixed substitution rule set, and is the encoding required
// for OAuth signature base strings among others.
func PercentEncode(s string) string {
	encoded := Encode(s)
	for _, rule := range encodingRules {
		encoded = strings.ReplaceAll(encoded, rule.pattern, rule.replacement)
	}
	return encoded
}
