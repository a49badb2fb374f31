// Package ssz computes SSZ hash-tree-root for the container shapes the
// light client needs: BeaconBlockHeader, SyncCommittee, ForkData and
// SigningData, plus their scalar/vector/bitvector leaves (spec.md
// §4.3). This is hand-written rather than delegated to a codegen-based
// SSZ library — see DESIGN.md for why — but is cross-checked in tests
// against protolambda/zrnt's own hash-tree-root as an independent
// oracle.
package ssz

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/beacon-bridge/eth2lc/types"
)

// zeroHashes[i] is the root of a fully zeroed subtree of depth i.
var zeroHashes = buildZeroHashes(12)

func buildZeroHashes(levels int) []types.Root {
	zh := make([]types.Root, levels)
	for i := 1; i < levels; i++ {
		zh[i] = hashPair(zh[i-1], zh[i-1])
	}
	return zh
}

func hashPair(a, b types.Root) types.Root {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return sha256.Sum256(buf[:])
}

// merkleize builds a balanced binary tree over leaves, padded with
// zero-hashes up to limit (which must be a power of two), and returns
// the root. This is the one routine every container root in this
// package bottoms out in.
func merkleize(leaves []types.Root, limit int) types.Root {
	if limit == 1 {
		if len(leaves) == 0 {
			return types.Root{}
		}
		return leaves[0]
	}

	nodes := make([]types.Root, limit)
	copy(nodes, leaves)
	for i := len(leaves); i < limit; i++ {
		nodes[i] = zeroHashes[0]
	}

	for width := limit; width > 1; width /= 2 {
		for i := 0; i < width/2; i++ {
			nodes[i] = hashPair(nodes[2*i], nodes[2*i+1])
		}
	}
	return nodes[0]
}

// HashTreeRootUint64 packs a u64 little-endian into a 32-byte leaf.
func HashTreeRootUint64(v uint64) types.Root {
	var r types.Root
	binary.LittleEndian.PutUint64(r[:8], v)
	return r
}

// HashTreeRootBytesN right-pads b (len(b) <= 32) into a 32-byte leaf.
func HashTreeRootBytesN(b []byte) types.Root {
	var r types.Root
	copy(r[:], b)
	return r
}

// HashTreeRootPublicKey merkleizes a 48-byte BLS public key as two
// 32-byte chunks (the second right-padded with zeros).
func HashTreeRootPublicKey(pk types.PublicKey) types.Root {
	chunk0 := types.Root{}
	copy(chunk0[:], pk[:32])
	chunk1 := types.Root{}
	copy(chunk1[:], pk[32:])
	return hashPair(chunk0, chunk1)
}

// HashTreeRootPubkeyVector merkleizes the fixed Vector[PublicKey, 512].
// 512 is already a power of two, so no length-padding is needed.
func HashTreeRootPubkeyVector(pubkeys [types.SyncCommitteeSize]types.PublicKey) types.Root {
	leaves := make([]types.Root, len(pubkeys))
	for i, pk := range pubkeys {
		leaves[i] = HashTreeRootPublicKey(pk)
	}
	return merkleize(leaves, len(pubkeys))
}

// HashTreeRootSyncCommitteeBits merkleizes the 512-bit participation
// bitvector. SSZ packs bits into 32-byte chunks; 512 bits is exactly
// two chunks, so no bit-length mixin applies (that's only required for
// the variable-length BitList form, not this fixed BitVector).
func HashTreeRootSyncCommitteeBits(bits [64]byte) types.Root {
	var c0, c1 types.Root
	copy(c0[:], bits[:32])
	copy(c1[:], bits[32:])
	return merkleize([]types.Root{c0, c1}, 2)
}

// HashTreeRootBeaconBlockHeader merkleizes the 5-field
// BeaconBlockHeader container, padded to 8 leaves.
func HashTreeRootBeaconBlockHeader(h types.BeaconBlockHeader) types.Root {
	leaves := []types.Root{
		HashTreeRootUint64(h.Slot),
		HashTreeRootUint64(h.ProposerIndex),
		h.ParentRoot,
		h.StateRoot,
		h.BodyRoot,
	}
	return merkleize(leaves, 8)
}

// HashTreeRootSyncCommittee merkleizes the 2-field SyncCommittee
// container (pubkeys vector root, aggregate pubkey root).
func HashTreeRootSyncCommittee(sc types.SyncCommittee) types.Root {
	leaves := []types.Root{
		HashTreeRootPubkeyVector(sc.Pubkeys),
		HashTreeRootPublicKey(sc.AggregatePubkey),
	}
	return merkleize(leaves, 2)
}

// HashTreeRootForkData merkleizes ForkData{current_version,
// genesis_validators_root}.
func HashTreeRootForkData(fd types.ForkData) types.Root {
	leaves := []types.Root{
		HashTreeRootBytesN(fd.CurrentVersion[:]),
		fd.GenesisValidatorsRoot,
	}
	return merkleize(leaves, 2)
}

// HashTreeRootSigningData merkleizes SigningData{object_root, domain}.
func HashTreeRootSigningData(sd types.SigningData) types.Root {
	leaves := []types.Root{
		sd.ObjectRoot,
		types.Root(sd.Domain),
	}
	return merkleize(leaves, 2)
}
