// Package hash computes stable fingerprints of optimizer inputs.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/volley/types"
)

// Fingerprint returns a 64-bit digest of a run's inputs.
//
// Two runs with equal matrices, modes and degradation coefficients always
// share a fingerprint, so it can key a result cache and correlate log lines.
// The matrix size is mixed in first so that matrices with the same flattened
// values but different shapes do not collide trivially.
//
// Parameters:
//   - c: Power matrix (any shape)
//   - mode: Attack limits
//   - k: Degradation coefficient
//
// Returns:
//   - uint64: The digest
//
// Example:
//
//	key := hash.Fingerprint(c, types.ModePairs, 2)
func Fingerprint(c types.PowerMatrix, mode types.Mode, k int) uint64 {
	return FingerprintSeed(c, mode, k, 0)
}

// FingerprintSeed is Fingerprint with an explicit hash seed.
func FingerprintSeed(c types.PowerMatrix, mode types.Mode, k int, seed uint64) uint64 {
	buf := make([]byte, 0, 8*(4+len(c)*len(c)+len(c)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(c))) //nolint:gosec
	for _, row := range c {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(row))) //nolint:gosec
		for _, v := range row {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) //nolint:gosec
		}
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(mode.PerPeriod)) //nolint:gosec
	buf = binary.LittleEndian.AppendUint64(buf, uint64(mode.PerTarget)) //nolint:gosec
	buf = binary.LittleEndian.AppendUint64(buf, uint64(k))              //nolint:gosec

	if seed != 0 {
		return xxh3.HashSeed(buf, seed)
	}

	return xxh3.Hash(buf)
}
