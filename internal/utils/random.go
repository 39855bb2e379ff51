package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// SeedOrRandom returns configured unless it is zero, in which case a seed is
// read from crypto/rand.
func SeedOrRandom(configured uint64) (uint64, error) {
	if configured != 0 {
		return configured, nil
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
