package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beacon-bridge/eth2lc/store"
	"github.com/beacon-bridge/eth2lc/types"
)

func TestMemStore_PutFinalizedHeaderWritesBothIndexes(t *testing.T) {
	s := store.NewMemStore()
	header := types.BeaconBlockHeader{Slot: 100, BodyRoot: types.Root{0xaa}}

	s.PutFinalizedHeader(header)

	got, ok := s.FinalizedHeader(header.BodyRoot)
	require.True(t, ok)
	require.Equal(t, header, got)

	bodyRoot, ok := s.FinalizedHeaderBodyRootBySlot(header.Slot)
	require.True(t, ok)
	require.Equal(t, header.BodyRoot, bodyRoot)
}

func TestMemStore_GenesisWrittenOnce(t *testing.T) {
	s := store.NewMemStore()
	_, ok := s.Genesis()
	require.False(t, ok)

	s.PutGenesis(types.Genesis{ValidatorsRoot: types.Root{0x01}})
	got, ok := s.Genesis()
	require.True(t, ok)
	require.Equal(t, types.Root{0x01}, got.ValidatorsRoot)
}

func TestMemStore_UnverifiedHeaderLifecycle(t *testing.T) {
	s := store.NewMemStore()
	_, ok := s.UnverifiedHeader(7)
	require.False(t, ok)

	s.PutUnverifiedHeader(7, types.UnverifiedHeader{Period: 3})
	got, ok := s.UnverifiedHeader(7)
	require.True(t, ok)
	require.Equal(t, uint64(3), got.Period)

	s.RemoveUnverifiedHeader(7)
	_, ok = s.UnverifiedHeader(7)
	require.False(t, ok)
}

func TestMemStore_SyncCommitteeMissingIsDistinctFromZeroValue(t *testing.T) {
	s := store.NewMemStore()
	_, ok := s.SyncCommittee(5)
	require.False(t, ok, "an unset period must be reported as missing, not as a zero-value committee")
}
