package bls

// DecodeParticipationBits decodes the 64-byte sync-committee
// participation bitfield into 512 per-bit flags (spec.md §4.4 step 1).
// Each input byte is the little-endian representation of 8
// participants: for byte b, participant 8k+j is set iff (b>>j)&1==1.
//
// This is the corrected form spec.md §9 calls for: the original
// convert_to_binary stopped at the highest set bit, producing a
// variable-length (and therefore misaligned) result for any byte whose
// top bits were zero. Padding every byte out to 8 bits keeps the zip
// against committee public keys aligned regardless of bit pattern.
func DecodeParticipationBits(bits [64]byte) []uint8 {
	out := make([]uint8, 0, len(bits)*8)
	for _, b := range bits {
		for j := 0; j < 8; j++ {
			out = append(out, (b>>uint(j))&1)
		}
	}
	return out
}

// SyncCommitteeSum counts set participation bits (spec.md §8 scenario 2).
func SyncCommitteeSum(bits []uint8) uint64 {
	var sum uint64
	for _, b := range bits {
		sum += uint64(b)
	}
	return sum
}
