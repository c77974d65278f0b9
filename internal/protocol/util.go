package protocol

import "crypto/rand"

// Copied from crypto/rand.
// TODO: once 1.24 is assured, just use crypto/rand.
const base32alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// NewSessionID returns an opaque session token, stable for the session's
// lifetime. Tokens carry ~128 bits of entropy so they are never reissued in
// practice for the life of the process.
func NewSessionID() string {
	// ⌈log₃₂ 2¹²⁸⌉ = 26 chars
	src := make([]byte, 26)
	rand.Read(src)
	for i := range src {
		src[i] = base32alphabet[src[i]%32]
	}
	return string(src)
}
