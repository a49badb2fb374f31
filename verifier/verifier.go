// Package verifier implements the four light-client update operations
// against a store.Store, translating the original pallet's
// #[transactional] dispatch calls (original_source's
// process_initial_sync / process_sync_committee_period_update /
// process_finalized_header / verify_and_store_finalized_header) into
// Go functions that validate fully before writing anything, so a
// caller never observes partial state on failure.
package verifier

import (
	"github.com/beacon-bridge/eth2lc/bls"
	"github.com/beacon-bridge/eth2lc/merkle"
	"github.com/beacon-bridge/eth2lc/ssz"
	"github.com/beacon-bridge/eth2lc/store"
	"github.com/beacon-bridge/eth2lc/types"
)

// Verifier runs the update processor (spec.md §4.1) against a Store
// under a Config. It holds no state of its own beyond those two
// collaborators: every operation is a pure function of its input and
// the current store contents.
type Verifier struct {
	store store.Store
	cfg   types.Config
}

// New returns a Verifier backed by store s and configuration cfg.
func New(s store.Store, cfg types.Config) *Verifier {
	return &Verifier{store: s, cfg: cfg}
}

// InitialSync bootstraps trust from a signed checkpoint (§4.1.1). This
// is the root of trust for everything the verifier later accepts:
// callers embedding this library are responsible for restricting who
// may invoke it, the same open point the original leaves to its
// runtime's governance origin (see DESIGN.md). A second successful call
// overwrites the stored genesis, committee and header, so callers are
// also responsible for invoking it at most once.
func (v *Verifier) InitialSync(sync types.LightClientInitialSync) error {
	Logger.Trace().Str("target", target).Msg("received initial sync, starting processing")

	if err := v.processInitialSync(sync); err != nil {
		Logger.Error().Str("target", target).Err(err).Msg("initial sync failed")
		return err
	}

	Logger.Trace().Str("target", target).Msg("initial sync processing succeeded")
	return nil
}

func (v *Verifier) processInitialSync(sync types.LightClientInitialSync) error {
	if err := v.verifySyncCommitteeBranch(
		sync.CurrentSyncCommittee,
		sync.CurrentSyncCommitteeBranch,
		sync.Header.StateRoot,
		types.CurrentSyncCommitteeDepth,
		types.CurrentSyncCommitteeIndex,
	); err != nil {
		return err
	}

	period := types.ComputePeriod(sync.Header.Slot)
	v.store.PutSyncCommittee(period, sync.CurrentSyncCommittee)
	v.store.PutFinalizedHeader(sync.Header)
	v.store.PutGenesis(types.Genesis{ValidatorsRoot: sync.ValidatorsRoot})
	return nil
}

// SyncCommitteePeriodUpdate rotates the sync committee and stages a
// finalized header for later signature verification (§4.1.2).
// Signature checking is deferred to ImportFinalizedHeader so that this
// call's weight stays bounded and the update can be re-used once the
// signing committee becomes known.
func (v *Verifier) SyncCommitteePeriodUpdate(update types.LightClientSyncCommitteePeriodUpdate) error {
	Logger.Trace().Str("target", target).Uint64("period", update.SyncCommitteePeriod).
		Msg("received sync committee update, applying")

	if err := v.processSyncCommitteePeriodUpdate(update); err != nil {
		Logger.Error().Str("target", target).Err(err).Msg("sync committee period update failed")
		return err
	}

	Logger.Trace().Str("target", target).Uint64("period", update.SyncCommitteePeriod).
		Msg("sync committee period update succeeded")
	return nil
}

func (v *Verifier) processSyncCommitteePeriodUpdate(update types.LightClientSyncCommitteePeriodUpdate) error {
	if err := v.verifySyncCommitteeBranch(
		update.NextSyncCommittee,
		update.NextSyncCommitteeBranch,
		update.FinalizedHeader.StateRoot,
		types.NextSyncCommitteeDepth,
		types.NextSyncCommitteeIndex,
	); err != nil {
		return err
	}

	if err := v.verifyFinalityBranch(
		update.FinalizedHeader,
		update.FinalityBranch,
		update.AttestedHeader.StateRoot,
	); err != nil {
		return err
	}

	currentPeriod := types.ComputePeriod(update.AttestedHeader.Slot)
	v.store.PutSyncCommittee(currentPeriod+1, update.NextSyncCommittee)

	slot := update.FinalizedHeader.Slot
	v.store.PutUnverifiedHeader(slot, types.UnverifiedHeader{
		AttestedHeader:  update.AttestedHeader,
		FinalizedHeader: update.FinalizedHeader,
		SyncAggregate:   update.SyncAggregate,
		ForkVersion:     update.ForkVersion,
		Period:          currentPeriod,
	})
	return nil
}

// FinalizedHeaderUpdate is like SyncCommitteePeriodUpdate but without
// a committee rotation: it only checks the finality branch and stages
// the header (§4.1.3).
func (v *Verifier) FinalizedHeaderUpdate(update types.LightClientFinalizedHeaderUpdate) error {
	slot := update.FinalizedHeader.Slot
	Logger.Trace().Str("target", target).Uint64("slot", slot).
		Msg("received finalized header update, processing")

	if err := v.processFinalizedHeaderUpdate(update); err != nil {
		Logger.Error().Str("target", target).Err(err).Msg("finalized header update failed")
		return err
	}

	Logger.Trace().Str("target", target).Uint64("slot", slot).
		Msg("finalized header processing succeeded")
	return nil
}

func (v *Verifier) processFinalizedHeaderUpdate(update types.LightClientFinalizedHeaderUpdate) error {
	if err := v.verifyFinalityBranch(
		update.FinalizedHeader,
		update.FinalityBranch,
		update.AttestedHeader.StateRoot,
	); err != nil {
		return err
	}

	currentPeriod := types.ComputePeriod(update.AttestedHeader.Slot)
	slot := update.FinalizedHeader.Slot
	v.store.PutUnverifiedHeader(slot, types.UnverifiedHeader{
		AttestedHeader:  update.AttestedHeader,
		FinalizedHeader: update.FinalizedHeader,
		SyncAggregate:   update.SyncAggregate,
		ForkVersion:     update.ForkVersion,
		Period:          currentPeriod,
	})
	return nil
}

// ImportFinalizedHeader verifies the staged header's BLS signature and,
// on success, commits it as finalized (§4.1.4). On failure the staged
// entry is left in place so a later retry (or a later-arriving sync
// committee) can still complete the import.
func (v *Verifier) ImportFinalizedHeader(slot uint64) error {
	Logger.Trace().Str("target", target).Uint64("slot", slot).
		Msg("verifying finalized header signature")

	if err := v.verifyAndStoreFinalizedHeader(slot); err != nil {
		Logger.Error().Str("target", target).Err(err).Msg("header signature could not be verified and stored")
		return err
	}

	Logger.Trace().Str("target", target).Uint64("slot", slot).Msg("importing finalized header succeeded")
	return nil
}

func (v *Verifier) verifyAndStoreFinalizedHeader(slot uint64) error {
	unverified, ok := v.store.UnverifiedHeader(slot)
	if !ok {
		return types.ErrUnverifiedHeaderNotFound
	}

	committee, ok := v.store.SyncCommittee(unverified.Period)
	if !ok {
		return types.ErrSyncCommitteeMissing
	}

	genesis, _ := v.store.Genesis()

	if err := v.verifySignedHeader(
		unverified.SyncAggregate,
		committee,
		unverified.ForkVersion,
		unverified.AttestedHeader,
		genesis.ValidatorsRoot,
	); err != nil {
		return err
	}

	Logger.Trace().Str("target", target).Msg("storing finalized, verified header")
	v.store.PutFinalizedHeader(unverified.FinalizedHeader)
	v.store.RemoveUnverifiedHeader(slot)
	return nil
}

// verifySignedHeader runs spec.md §4.4 end to end: decode the
// participation bitfield, enforce the configured minimum, compute the
// signing domain and root, and invoke BLS aggregate verification.
func (v *Verifier) verifySignedHeader(
	aggregate types.SyncAggregate,
	committee types.SyncCommittee,
	forkVersion types.ForkVersion,
	header types.BeaconBlockHeader,
	validatorsRoot types.Root,
) error {
	participationBits := bls.DecodeParticipationBits(aggregate.SyncCommitteeBits)

	if bls.SyncCommitteeSum(participationBits) < v.cfg.MinSyncCommitteeParticipants {
		return types.ErrInsufficientSyncCommitteeParticipants
	}

	domain := bls.ComputeDomain(types.DomainSyncCommittee, forkVersion, validatorsRoot)

	return bls.VerifySignedHeader(
		committee,
		participationBits,
		header,
		domain,
		aggregate.SyncCommitteeSignature,
	)
}

func (v *Verifier) verifySyncCommitteeBranch(
	committee types.SyncCommittee,
	branch []types.Root,
	stateRoot types.Root,
	depth, index uint64,
) error {
	root := ssz.HashTreeRootSyncCommittee(committee)
	if !merkle.IsValidMerkleBranch(root, branch, depth, index, stateRoot) {
		return types.ErrInvalidSyncCommitteeMerkleProof
	}
	return nil
}

func (v *Verifier) verifyFinalityBranch(
	header types.BeaconBlockHeader,
	branch []types.Root,
	attestedStateRoot types.Root,
) error {
	leaf := ssz.HashTreeRootBeaconBlockHeader(header)
	if !merkle.IsValidMerkleBranch(leaf, branch, types.FinalizedRootDepth, types.FinalizedRootIndex, attestedStateRoot) {
		return types.ErrInvalidHeaderMerkleProof
	}
	return nil
}

// PruneSyncCommittees removes every stored committee older than
// currentPeriod by more than the configured margin (§9 open question:
// sync-committee pruning is left unimplemented by the original; this
// repo resolves it as an explicit, caller-invoked operation rather than
// automatic on-write pruning, so callers can choose when to pay the
// cost).
func (v *Verifier) PruneSyncCommittees(currentPeriod uint64) {
	margin := v.cfg.SyncCommitteePruneMargin
	if margin == 0 || currentPeriod <= margin {
		return
	}
	cutoff := currentPeriod - margin
	for period := uint64(0); period < cutoff; period++ {
		v.store.RemoveSyncCommittee(period)
	}
}
