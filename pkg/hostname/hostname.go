// Package hostname implements syntactic validation and normalization of DNS
// hostnames. The rules are a practical subset of RFC 1123: validation here is
// a noise filter for discovery output, not a resolver.
package hostname

import "strings"

const (
	// maxHostnameLen is the maximum total length of a hostname, excluding the
	// optional trailing dot.
	maxHostnameLen = 253
	// maxLabelLen is the maximum length of a single label between dots.
	maxLabelLen = 63
)

// IsValid reports whether s is a syntactically plausible DNS hostname.
//
// Rules applied:
//   - total length 1..253 characters (a single trailing dot is tolerated)
//   - one or more labels separated by "."
//   - each label is 1..63 characters of [a-zA-Z0-9-]
//   - labels neither start nor end with a hyphen
//
// Underscores, wildcards and empty labels are rejected; discovery output
// containing those is treated as noise by callers.
func IsValid(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if s == "" || len(s) > maxHostnameLen {
		return false
	}

	for _, label := range strings.Split(s, ".") {
		if !validLabel(label) {
			return false
		}
	}

	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > maxLabelLen {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}

	return true
}

// Normalize returns the canonical form of a hostname used for matching:
// lower-cased with surrounding whitespace and a single trailing dot removed.
// The original casing should still be preserved when storing names.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
}

// IsSubdomainOf reports whether host sits under the given root domain. The
// root itself counts: IsSubdomainOf("example.com", "example.com") is true.
// Comparison follows the normalization rules of this package.
func IsSubdomainOf(host, root string) bool {
	host = Normalize(host)
	root = Normalize(root)
	if root == "" {
		return false
	}

	return host == root || strings.HasSuffix(host, "."+root)
}
