package models

import (
	"math/rand"
	"strings"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDLength is the length of generated record identifiers.
const IDLength = 9

// NewID returns a random base36 identifier. Collisions are possible but
// unmanaged; acceptable for a single-tenant deployment with low write volume.
// Display labels like invoice numbers are never derived from these.
func NewID() string {
	var b strings.Builder
	b.Grow(IDLength)
	for i := 0; i < IDLength; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

// NewQuoteNumber returns a four digit quote label for proposals.
func NewQuoteNumber() string {
	digits := "0123456789"
	var b strings.Builder
	b.WriteByte(digits[1+rand.Intn(9)]) // no leading zero
	for i := 0; i < 3; i++ {
		b.WriteByte(digits[rand.Intn(10)])
	}
	return b.String()
}
