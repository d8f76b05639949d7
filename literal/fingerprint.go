package literal

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Separator joins the hash and the literal of a fingerprint.
const Separator = ":"

// Hash returns the hex encoded SHA-256 of the literal.
func Hash(lit string) string {
	sum := sha256.Sum256([]byte(lit))
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns "hash:literal".
func Fingerprint(lit string) string {
	return Hash(lit) + Separator + lit
}

// SplitFingerprint splits a fingerprint into hash and literal. ok is false
// when fp is malformed or the hash does not match the literal.
func SplitFingerprint(fp string) (hash, lit string, ok bool) {
	i := strings.Index(fp, Separator)
	if i != sha256.Size*2 {
		return "", "", false
	}
	hash, lit = fp[:i], fp[i+1:]
	return hash, lit, Hash(lit) == hash
}

// FingerprintOf canonicalizes raw for t and fingerprints the result.
func FingerprintOf(raw interface{}, t Target) (string, error) {
	lit, err := Canonicalize(raw, t)
	if err != nil {
		return "", err
	}
	return Fingerprint(lit), nil
}
