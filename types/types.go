// Package types holds the wire and storage types of the Altair
// light-client verifier: beacon headers, sync committees, the
// fork/signing data containers used to derive the BLS signing domain,
// and the three relayer-submitted update payloads. It mirrors the
// storage layout of the pallet this verifier is adapted from, not a
// general-purpose beacon-chain type library.
package types

// Root is a 32-byte SSZ hash-tree-root or merkle-branch sibling.
type Root [32]byte

func (r Root) MarshalJSON() ([]byte, error)     { return marshalFixedHex(r[:]) }
func (r *Root) UnmarshalJSON(data []byte) error { return unmarshalFixedHex(data, r[:]) }

// Domain is the 32-byte BLS signing domain: a 4-byte domain type
// followed by the first 28 bytes of a fork-data-root.
type Domain [32]byte

func (d Domain) MarshalJSON() ([]byte, error)     { return marshalFixedHex(d[:]) }
func (d *Domain) UnmarshalJSON(data []byte) error { return unmarshalFixedHex(data, d[:]) }

// ForkVersion is a 4-byte consensus fork version.
type ForkVersion [4]byte

func (f ForkVersion) MarshalJSON() ([]byte, error)     { return marshalFixedHex(f[:]) }
func (f *ForkVersion) UnmarshalJSON(data []byte) error { return unmarshalFixedHex(data, f[:]) }

// PublicKey is a BLS12-381 G1 point in compressed (48-byte) form.
type PublicKey [48]byte

func (pk PublicKey) MarshalJSON() ([]byte, error)     { return marshalFixedHex(pk[:]) }
func (pk *PublicKey) UnmarshalJSON(data []byte) error { return unmarshalFixedHex(data, pk[:]) }

// Signature is a BLS12-381 G2 point in compressed (96-byte) form.
type Signature [96]byte

func (s Signature) MarshalJSON() ([]byte, error)     { return marshalFixedHex(s[:]) }
func (s *Signature) UnmarshalJSON(data []byte) error { return unmarshalFixedHex(data, s[:]) }

// Spec constants (spec.md §3).
const (
	SlotsPerEpoch                = 32
	EpochsPerSyncCommitteePeriod = 256
	SyncCommitteeSize            = 512

	CurrentSyncCommitteeDepth = 5
	CurrentSyncCommitteeIndex = 22
	NextSyncCommitteeDepth    = 5
	NextSyncCommitteeIndex    = 23
	FinalizedRootDepth        = 6
	FinalizedRootIndex        = 41
)

// DomainSyncCommittee is DOMAIN_SYNC_COMMITTEE = 0x07000000.
var DomainSyncCommittee = [4]byte{0x07, 0x00, 0x00, 0x00}

// GenesisForkVersion is GENESIS_FORK_VERSION = 0x00000000.
var GenesisForkVersion = ForkVersion{0x00, 0x00, 0x00, 0x00}

// ComputePeriod implements compute_period(slot) == slot / 32 / 256 (spec.md §8).
func ComputePeriod(slot uint64) uint64 {
	return slot / SlotsPerEpoch / EpochsPerSyncCommitteePeriod
}

// BeaconBlockHeader is the SSZ container summarising a consensus-layer
// block (spec.md §3).
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    Root
	StateRoot     Root
	BodyRoot      Root
}

// SyncCommittee is the 512-member rotating signing set for one period.
type SyncCommittee struct {
	Pubkeys         [SyncCommitteeSize]PublicKey
	AggregatePubkey PublicKey
}

// SyncAggregate carries the participation bitfield and aggregate
// signature produced by a sync committee over an attested header.
type SyncAggregate struct {
	// SyncCommitteeBits is a 512-bit, little-endian-per-byte bitfield.
	SyncCommitteeBits      [64]byte
	SyncCommitteeSignature Signature
}

// ForkData is hashed to derive the fork-data-root used in
// compute_domain.
type ForkData struct {
	CurrentVersion        ForkVersion
	GenesisValidatorsRoot Root
}

// SigningData is the container BLS signs over: an object root paired
// with the signing domain.
type SigningData struct {
	ObjectRoot Root
	Domain     Domain
}

// Genesis is the chain genesis checkpoint, written by InitialSync. Every
// successful InitialSync call overwrites it; a second call is not
// rejected.
type Genesis struct {
	ValidatorsRoot Root
}

// UnverifiedHeader is a staged update awaiting its BLS signature
// check, keyed by FinalizedHeader.Slot in the store.
type UnverifiedHeader struct {
	AttestedHeader  BeaconBlockHeader
	FinalizedHeader BeaconBlockHeader
	SyncAggregate   SyncAggregate
	ForkVersion     ForkVersion
	Period          uint64
}

// LightClientInitialSync bootstraps trust from a signed checkpoint
// (spec.md §4.1.1).
type LightClientInitialSync struct {
	Header                     BeaconBlockHeader
	CurrentSyncCommittee       SyncCommittee
	CurrentSyncCommitteeBranch []Root
	ValidatorsRoot             Root
}

// LightClientSyncCommitteePeriodUpdate rotates the sync committee and
// stages a finalized header for signature verification (spec.md §4.1.2).
type LightClientSyncCommitteePeriodUpdate struct {
	AttestedHeader          BeaconBlockHeader
	NextSyncCommittee       SyncCommittee
	NextSyncCommitteeBranch []Root
	FinalizedHeader         BeaconBlockHeader
	FinalityBranch          []Root
	SyncAggregate           SyncAggregate
	ForkVersion             ForkVersion
	SyncCommitteePeriod     uint64
}

// LightClientFinalizedHeaderUpdate stages a finalized header without a
// sync-committee rotation (spec.md §4.1.3).
type LightClientFinalizedHeaderUpdate struct {
	AttestedHeader  BeaconBlockHeader
	FinalizedHeader BeaconBlockHeader
	FinalityBranch  []Root
	SyncAggregate   SyncAggregate
	ForkVersion     ForkVersion
}
