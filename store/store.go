// Package store defines the persistent state the verifier reads and
// writes. The shape follows the five storage items the original
// pallet declares (FinalizedHeaders, FinalizedHeadersBySlot,
// SyncCommittees, ChainGenesis, UnverifiedHeaders), narrowed to a
// get/put/remove/contains-key interface so a production binding can
// sit directly on a host key-value layer while tests use the in-memory
// implementation in memstore.go.
package store

import "github.com/beacon-bridge/eth2lc/types"

// Store is every piece of state a Verifier reads or writes. All
// methods are expected to be deterministic: replaying the same
// sequence of writes must always reach the same state.
type Store interface {
	FinalizedHeader(bodyRoot types.Root) (types.BeaconBlockHeader, bool)
	PutFinalizedHeader(header types.BeaconBlockHeader)

	FinalizedHeaderBodyRootBySlot(slot uint64) (types.Root, bool)

	SyncCommittee(period uint64) (types.SyncCommittee, bool)
	PutSyncCommittee(period uint64, committee types.SyncCommittee)
	RemoveSyncCommittee(period uint64)

	Genesis() (types.Genesis, bool)
	PutGenesis(genesis types.Genesis)

	UnverifiedHeader(slot uint64) (types.UnverifiedHeader, bool)
	PutUnverifiedHeader(slot uint64, header types.UnverifiedHeader)
	RemoveUnverifiedHeader(slot uint64)
}
