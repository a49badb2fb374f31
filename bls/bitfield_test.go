package bls_test

import (
	"testing"

	"github.com/beacon-bridge/eth2lc/bls"
	"github.com/stretchr/testify/require"
)

// spec.md §8 scenario 1: convert_to_binary([10, 33]).
func TestDecodeParticipationBits_KnownVector(t *testing.T) {
	var raw [64]byte
	raw[0] = 10
	raw[1] = 33

	got := bls.DecodeParticipationBits(raw)

	want := []uint8{0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0}
	require.Equal(t, want, got[:16])

	for i := 16; i < len(got); i++ {
		require.Zerof(t, got[i], "byte %d should decode to all zero bits", i/8)
	}
	require.Len(t, got, 512)
}

// spec.md §8 scenario 2.
func TestSyncCommitteeSum_KnownVector(t *testing.T) {
	bits := []uint8{0, 1, 0, 1, 1, 0, 1, 0, 1}
	require.Equal(t, uint64(5), bls.SyncCommitteeSum(bits))
}
