// Package merkle verifies generalized-index SSZ merkle branches
// against a root, using SHA-256 as the hashing primitive (spec.md
// §4.2). This is a direct translation of the pallet's
// is_valid_merkle_branch: the index's bits choose left/right
// orientation at each level, bottom-up.
package merkle

import (
	"crypto/sha256"

	"github.com/beacon-bridge/eth2lc/types"
)

// IsValidMerkleBranch reports whether folding leaf up through branch,
// using index's bit i to choose the sibling's side at depth i, yields
// root.
//
// Edge policies (spec.md §4.2): depth == 0 degrades to a direct
// equality check; a branch shorter than depth is rejected rather than
// indexed out of bounds. types.Root is a fixed 32-byte array, so the
// "siblings shorter than 32 bytes fail rather than panic" case the
// original guards against cannot arise here — the type system already
// enforces it.
func IsValidMerkleBranch(leaf types.Root, branch []types.Root, depth, index uint64, root types.Root) bool {
	if depth == 0 {
		return leaf == root
	}
	if uint64(len(branch)) < depth {
		return false
	}

	value := leaf
	for i := uint64(0); i < depth; i++ {
		sibling := branch[i]
		var buf [64]byte
		if (index>>i)&1 == 0 {
			copy(buf[:32], value[:])
			copy(buf[32:], sibling[:])
		} else {
			copy(buf[:32], sibling[:])
			copy(buf[32:], value[:])
		}
		value = sha256.Sum256(buf[:])
	}
	return value == root
}
