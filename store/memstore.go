package store

import (
	"sync"

	"github.com/beacon-bridge/eth2lc/types"
)

// MemStore is an in-memory Store guarded by a single mutex, the shape
// spec.md §4.5 calls for as a test harness. It is also adequate as the
// backing store for a non-chain embedding of the verifier (anything
// that isn't a substrate runtime, which would bind Store to its own
// storage maps instead).
type MemStore struct {
	mu sync.Mutex

	finalizedHeaders       map[types.Root]types.BeaconBlockHeader
	finalizedHeadersBySlot map[uint64]types.Root
	syncCommittees         map[uint64]types.SyncCommittee
	genesis                *types.Genesis
	unverifiedHeaders      map[uint64]types.UnverifiedHeader
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		finalizedHeaders:       make(map[types.Root]types.BeaconBlockHeader),
		finalizedHeadersBySlot: make(map[uint64]types.Root),
		syncCommittees:         make(map[uint64]types.SyncCommittee),
		unverifiedHeaders:      make(map[uint64]types.UnverifiedHeader),
	}
}

func (s *MemStore) FinalizedHeader(bodyRoot types.Root) (types.BeaconBlockHeader, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.finalizedHeaders[bodyRoot]
	return h, ok
}

// PutFinalizedHeader writes header into both FinalizedHeaders (keyed
// by body_root) and FinalizedHeadersBySlot (keyed by slot), mirroring
// the original store_header's single insertion into both maps.
func (s *MemStore) PutFinalizedHeader(header types.BeaconBlockHeader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizedHeaders[header.BodyRoot] = header
	s.finalizedHeadersBySlot[header.Slot] = header.BodyRoot
}

func (s *MemStore) FinalizedHeaderBodyRootBySlot(slot uint64) (types.Root, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.finalizedHeadersBySlot[slot]
	return r, ok
}

func (s *MemStore) SyncCommittee(period uint64) (types.SyncCommittee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.syncCommittees[period]
	return sc, ok
}

func (s *MemStore) PutSyncCommittee(period uint64, committee types.SyncCommittee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncCommittees[period] = committee
}

func (s *MemStore) RemoveSyncCommittee(period uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.syncCommittees, period)
}

func (s *MemStore) Genesis() (types.Genesis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.genesis == nil {
		return types.Genesis{}, false
	}
	return *s.genesis, true
}

func (s *MemStore) PutGenesis(genesis types.Genesis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := genesis
	s.genesis = &g
}

func (s *MemStore) UnverifiedHeader(slot uint64) (types.UnverifiedHeader, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.unverifiedHeaders[slot]
	return h, ok
}

func (s *MemStore) PutUnverifiedHeader(slot uint64, header types.UnverifiedHeader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unverifiedHeaders[slot] = header
}

func (s *MemStore) RemoveUnverifiedHeader(slot uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.unverifiedHeaders, slot)
}
