// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"context"

	"github.com/luxfi/ids"
)

// PVFValidator re-executes a candidate to determine whether the local
// validator considers it valid. It is the coordinator's sole entry point
// into the parachain-validation-function sandbox, which lives entirely
// outside this module's scope.
type PVFValidator interface {
	Validate(ctx context.Context, req ParticipationRequest) (valid bool, err error)
}

// ApprovalVotingSender fetches the approval-checker votes the approval
// subsystem already holds for a candidate, so they can be folded into a
// dispute's tally instead of requiring every approval checker to also
// cast an explicit dispute vote.
type ApprovalVotingSender interface {
	GetApprovalSignaturesForCandidate(ctx context.Context, hash CandidateHash) ([]SignedDisputeStatement, error)
}

// ChainSelectionSender asks chain selection to revert away from a chain
// that included a candidate now concluded invalid.
type ChainSelectionSender interface {
	RevertBlocks(ctx context.Context, blocks []BlockRef) error
}

// DisputeDistributionSender gossips dispute votes to peers: the local
// validator's own statement once cast, and the full statement set for a
// candidate the first time it becomes disputed at all.
type DisputeDistributionSender interface {
	SendDisputeStatement(ctx context.Context, stmt SignedDisputeStatement) error
	SendDispute(ctx context.Context, hash CandidateHash, statements []SignedDisputeStatement) error
}

// Keystore signs a dispute statement with the local validator's key, the
// way the original coordinator's issue_local_statement path does through
// its keystore collaborator.
type Keystore interface {
	NodeID() ids.NodeID
	Sign(ctx context.Context, payload []byte) ([]byte, error)
}
