// Package bls verifies sync-committee aggregate BLS signatures over
// beacon block headers (spec.md §4.4). The pairing arithmetic mirrors
// the teacher's verifySyncAggregate/AggregatePublicKeys functions
// (types/verify_bls_aggr_test.go, types/lightclient.go), generalized
// from a one-shot test helper into the production verification path,
// against a hand-rolled signing root (package ssz) instead of zrnt's.
package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/beacon-bridge/eth2lc/types"
)

const dst = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

// SelectParticipants returns the public keys of committee members
// whose participation bit is set (spec.md §4.4 step 2).
func SelectParticipants(committee types.SyncCommittee, participationBits []uint8) []types.PublicKey {
	selected := make([]types.PublicKey, 0, len(committee.Pubkeys))
	for i, bit := range participationBits {
		if bit == 0 || i >= len(committee.Pubkeys) {
			continue
		}
		selected = append(selected, committee.Pubkeys[i])
	}
	return selected
}

// AggregatePublicKeys sums the given public keys into a single G1
// point. It returns types.ErrInvalidAggregatePublicKeys if any key
// fails to deserialize, and requires at least one key.
func AggregatePublicKeys(pubkeys []types.PublicKey) (bls12381.G1Affine, error) {
	var agg bls12381.G1Affine
	agg.SetInfinity()

	if len(pubkeys) == 0 {
		return agg, types.ErrInvalidAggregatePublicKeys
	}

	for i, pk := range pubkeys {
		var point bls12381.G1Affine
		if _, err := point.SetBytes(pk[:]); err != nil {
			return agg, fmt.Errorf("%w: pubkey %d: %v", types.ErrInvalidAggregatePublicKeys, i, err)
		}
		agg.Add(&agg, &point)
	}
	return agg, nil
}

// VerifySignedHeader checks that signature is a valid aggregate BLS
// signature by committee over header's signing root under domain
// (spec.md §4.4 steps 3-5). It does not interpret the participation
// bitfield or enforce a minimum-participant threshold; callers run
// DecodeParticipationBits and SyncCommitteeSum first and reject low
// participation before calling this.
func VerifySignedHeader(
	committee types.SyncCommittee,
	participationBits []uint8,
	header types.BeaconBlockHeader,
	domain types.Domain,
	signature types.Signature,
) error {
	participants := SelectParticipants(committee, participationBits)

	aggPubkey, err := AggregatePublicKeys(participants)
	if err != nil {
		return err
	}

	var sigPoint bls12381.G2Affine
	if _, err := sigPoint.SetBytes(signature[:]); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidSignaturePoint, err)
	}

	signingRoot := ComputeSigningRoot(header, domain)

	messageHash, err := bls12381.HashToG2(signingRoot[:], []byte(dst))
	if err != nil {
		return fmt.Errorf("%w: hash-to-curve: %v", types.ErrInvalidSignature, err)
	}

	_, _, g1Gen, _ := bls12381.Generators()
	var negG1 bls12381.G1Affine
	negG1.Neg(&g1Gen)

	valid, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{aggPubkey, negG1},
		[]bls12381.G2Affine{messageHash, sigPoint},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrSignatureVerificationFailed, err)
	}
	if !valid {
		return types.ErrSignatureVerificationFailed
	}
	return nil
}
