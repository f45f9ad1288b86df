package internal

import (
	"bytes"
	"regexp"
)

// privateKeyMarkers are exact byte signatures for PEM/PPK/PGP private key
// headers. They are matched against the raw line bytes so a broken text
// encoding can never hide a hit.
var privateKeyMarkers = [][]byte{
	[]byte("BEGIN RSA PRIVATE KEY"),
	[]byte("BEGIN DSA PRIVATE KEY"),
	[]byte("BEGIN EC PRIVATE KEY"),
	[]byte("BEGIN OPENSSH PRIVATE KEY"),
	[]byte("BEGIN PRIVATE KEY"),
	[]byte("PuTTY-User-Key-File-2"),
	[]byte("BEGIN SSH2 ENCRYPTED PRIVATE KEY"),
	[]byte("BEGIN PGP PRIVATE KEY BLOCK"),
	[]byte("BEGIN ENCRYPTED PRIVATE KEY"),
	[]byte("BEGIN OpenVPN Static key V1"),
}

// hippoRegex is the fixed smoke-test signature. Downstream test suites
// depend on it verbatim.
var hippoRegex = regexp.MustCompile(`(?i)hippo`)

// matchesSignature reports whether a line carries flagged material. The
// exact markers test the raw bytes; the auxiliary regex tests the decoded
// text.
func matchesSignature(raw []byte, decoded string) bool {
	for _, marker := range privateKeyMarkers {
		if bytes.Contains(raw, marker) {
			return true
		}
	}
	return hippoRegex.MatchString(decoded)
}
