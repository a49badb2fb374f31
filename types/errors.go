package types

import "errors"

// The exhaustive error surface of spec.md §6. Every verifier operation
// returns one of these (wrapped with errors.Is-compatible context via
// fmt.Errorf("...: %w", ...) at the call site, never a new sentinel).
var (
	ErrAncientHeader                         = errors.New("ethlc: ancient header")
	ErrSkippedSyncCommitteePeriod            = errors.New("ethlc: skipped sync committee period")
	ErrSyncCommitteeMissing                  = errors.New("ethlc: sync committee missing")
	ErrInsufficientSyncCommitteeParticipants = errors.New("ethlc: insufficient sync committee participants")
	ErrInvalidSyncCommitteeSignature         = errors.New("ethlc: invalid sync committee signature")
	ErrInvalidHeaderMerkleProof              = errors.New("ethlc: invalid header merkle proof")
	ErrInvalidSyncCommitteeMerkleProof       = errors.New("ethlc: invalid sync committee merkle proof")
	ErrInvalidSignature                      = errors.New("ethlc: invalid signature")
	ErrInvalidSignaturePoint                 = errors.New("ethlc: invalid signature point")
	ErrInvalidAggregatePublicKeys            = errors.New("ethlc: invalid aggregate public keys")
	ErrInvalidHash                           = errors.New("ethlc: invalid hash")
	ErrSignatureVerificationFailed           = errors.New("ethlc: signature verification failed")
	ErrNoBranchExpected                      = errors.New("ethlc: no branch expected")
	ErrUnverifiedHeaderNotFound              = errors.New("ethlc: unverified header not found")
	ErrUnknown                               = errors.New("ethlc: unknown error")
)
