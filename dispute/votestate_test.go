// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func testSessionInfo() *SessionInfo {
	keys := make(map[ValidatorIndex]ValidatorPublicKey, 4)
	validators := make([]ids.NodeID, 4)
	for i := 0; i < 4; i++ {
		keys[ValidatorIndex(i)] = ValidatorPublicKey{Bytes: []byte{byte(i)}}
		validators[i] = ids.NodeID{byte(i)}
	}
	return &SessionInfo{
		Session:                0,
		Validators:             validators,
		ValidatorPublicKeys:    keys,
		ApprovalThreshold:      2,
		SupermajorityThreshold: 3,
	}
}

func TestImportStatementsFreshImport(t *testing.T) {
	info := testSessionInfo()
	receipt := CandidateReceipt{CandidateHash: ids.ID{1}, RelayParent: ids.ID{9}}
	stmts := []SignedDisputeStatement{
		{Statement: ValidStatement(ExplicitValid), CandidateHash: receipt.CandidateHash, ValidatorIndex: 0},
		{Statement: InvalidStatement(ExplicitInvalid), CandidateHash: receipt.CandidateHash, ValidatorIndex: 1},
	}

	result := ImportStatements(DefaultConfig(), AlwaysValid{}, info, nil, receipt, stmts)

	require.True(t, result.VoteStateChanged)
	require.Equal(t, 1, result.ImportedValidVotes)
	require.Equal(t, 1, result.ImportedInvalidVotes)
	require.True(t, result.IsFreshlyConfirmed, "two distinct voters should cross the approval threshold of 2")
	require.False(t, result.ConclusionChanged)
	require.Len(t, result.NewState.Valid, 1)
	require.Len(t, result.NewState.Invalid, 1)
}

func TestImportStatementsIdempotent(t *testing.T) {
	info := testSessionInfo()
	receipt := CandidateReceipt{CandidateHash: ids.ID{2}}
	stmt := SignedDisputeStatement{Statement: ValidStatement(ExplicitValid), CandidateHash: receipt.CandidateHash, ValidatorIndex: 0}

	first := ImportStatements(DefaultConfig(), AlwaysValid{}, info, nil, receipt, []SignedDisputeStatement{stmt})
	second := ImportStatements(DefaultConfig(), AlwaysValid{}, info, first.NewState, receipt, []SignedDisputeStatement{stmt})

	require.False(t, second.VoteStateChanged, "importing the same vote twice must be a no-op")
	require.Equal(t, 0, second.ImportedValidVotes)
}

func TestImportStatementsConcludesInvalid(t *testing.T) {
	info := testSessionInfo()
	receipt := CandidateReceipt{CandidateHash: ids.ID{3}}
	var stmts []SignedDisputeStatement
	for i := 0; i < 3; i++ {
		stmts = append(stmts, SignedDisputeStatement{
			Statement:      InvalidStatement(ExplicitInvalid),
			CandidateHash:  receipt.CandidateHash,
			ValidatorIndex: ValidatorIndex(i),
		})
	}

	result := ImportStatements(DefaultConfig(), AlwaysValid{}, info, nil, receipt, stmts)

	require.True(t, result.ConclusionChanged)
	require.Equal(t, ConcludedInvalid, result.NewStatus)
}

func TestImportStatementsCommutative(t *testing.T) {
	info := testSessionInfo()
	receipt := CandidateReceipt{CandidateHash: ids.ID{4}}
	a := SignedDisputeStatement{Statement: ValidStatement(ExplicitValid), CandidateHash: receipt.CandidateHash, ValidatorIndex: 0}
	b := SignedDisputeStatement{Statement: InvalidStatement(ExplicitInvalid), CandidateHash: receipt.CandidateHash, ValidatorIndex: 1}

	forward := ImportStatements(DefaultConfig(), AlwaysValid{}, info, nil, receipt, []SignedDisputeStatement{a, b})
	backward := ImportStatements(DefaultConfig(), AlwaysValid{}, info, nil, receipt, []SignedDisputeStatement{b, a})

	require.Equal(t, forward.NewState.Valid, backward.NewState.Valid)
	require.Equal(t, forward.NewState.Invalid, backward.NewState.Invalid)
}

func TestImportStatementsApprovalFoldingGuardedOff(t *testing.T) {
	info := testSessionInfo()
	receipt := CandidateReceipt{CandidateHash: ids.ID{5}}
	stmt := SignedDisputeStatement{Statement: ValidStatement(ApprovalChecked), CandidateHash: receipt.CandidateHash, ValidatorIndex: 0}

	cfg := DefaultConfig()
	require.False(t, cfg.ApprovalVoteFoldingEnabled)

	result := ImportStatements(cfg, AlwaysValid{}, info, nil, receipt, []SignedDisputeStatement{stmt})
	require.False(t, result.VoteStateChanged, "approval votes must not count toward the tally while folding is disabled")

	cfg.ApprovalVoteFoldingEnabled = true
	enabled := ImportStatements(cfg, AlwaysValid{}, info, nil, receipt, []SignedDisputeStatement{stmt})
	require.True(t, enabled.VoteStateChanged, "enabling the guard must let approval votes count")
}

func TestImportStatementsPostConcludedIsMonotonic(t *testing.T) {
	info := testSessionInfo()
	receipt := CandidateReceipt{CandidateHash: ids.ID{6}}

	var invalid []SignedDisputeStatement
	for i := 0; i < 3; i++ {
		invalid = append(invalid, SignedDisputeStatement{
			Statement:      InvalidStatement(ExplicitInvalid),
			CandidateHash:  receipt.CandidateHash,
			ValidatorIndex: ValidatorIndex(i),
		})
	}
	concludedInvalid := ImportStatements(DefaultConfig(), AlwaysValid{}, info, nil, receipt, invalid)
	require.Equal(t, ConcludedInvalid, concludedInvalid.NewStatus)

	// Validators 1 and 2 equivocate by also voting valid, joined by a
	// fourth validator (3), so the valid side also crosses the
	// supermajority threshold.
	var valid []SignedDisputeStatement
	for i := 1; i <= 3; i++ {
		valid = append(valid, SignedDisputeStatement{
			Statement:      ValidStatement(ExplicitValid),
			CandidateHash:  receipt.CandidateHash,
			ValidatorIndex: ValidatorIndex(i),
		})
	}
	postConcluded := ImportStatements(DefaultConfig(), AlwaysValid{}, info, concludedInvalid.NewState, receipt, valid)

	require.True(t, postConcluded.ConclusionChanged)
	require.Equal(t, PostConcluded, postConcluded.NewStatus, "once both sides cross supermajority, status must move forward to PostConcluded, never back to ConcludedValid")
}

// AlwaysValid is a SignatureChecker that accepts every statement.
type AlwaysValid struct{}

func (AlwaysValid) Verify(SignedDisputeStatement, ValidatorPublicKey) bool { return true }
