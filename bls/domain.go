package bls

import (
	"github.com/beacon-bridge/eth2lc/ssz"
	"github.com/beacon-bridge/eth2lc/types"
)

// ComputeDomain concatenates the 4-byte domain type with the first 28
// bytes of hash_tree_root(ForkData{fork_version, genesis_validators_root})
// (spec.md §4.4 step 4, §3 GLOSSARY "Domain"). A zero ForkVersion
// argument is not special-cased: callers that mean "no fork override"
// pass types.GenesisForkVersion explicitly, matching spec.md §3's
// GENESIS_FORK_VERSION constant (the pallet's own
// Option<ForkVersion>-defaulting is a runtime-dispatch convenience this
// library form doesn't need).
func ComputeDomain(domainType [4]byte, forkVersion types.ForkVersion, genesisValidatorsRoot types.Root) types.Domain {
	forkDataRoot := ssz.HashTreeRootForkData(types.ForkData{
		CurrentVersion:        forkVersion,
		GenesisValidatorsRoot: genesisValidatorsRoot,
	})

	var domain types.Domain
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain
}

// ComputeSigningRoot is hash_tree_root(SigningData{object_root, domain})
// (spec.md §4.4 step 5).
func ComputeSigningRoot(header types.BeaconBlockHeader, domain types.Domain) types.Root {
	headerRoot := ssz.HashTreeRootBeaconBlockHeader(header)
	return ssz.HashTreeRootSigningData(types.SigningData{
		ObjectRoot: headerRoot,
		Domain:     domain,
	})
}
