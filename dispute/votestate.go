// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

// SignatureChecker verifies a single signed dispute statement against a
// validator's public key. Verification is delegated rather than inlined
// so the votestate engine stays a pure function over CandidateVotes,
// independent of the concrete signature scheme.
type SignatureChecker interface {
	Verify(stmt SignedDisputeStatement, key ValidatorPublicKey) bool
}

// ImportResult is what importing one batch of signed statements for a
// single candidate produced.
type ImportResult struct {
	// NewState is the candidate's vote set after the import.
	NewState *CandidateVotes

	// VoteStateChanged is true if NewState differs from the state the
	// caller passed in (any new vote, on either side).
	VoteStateChanged bool

	// IsFreshlyConfirmed is true the first time this candidate's votes
	// cross the local-participation confirmation threshold.
	IsFreshlyConfirmed bool

	// IsFreshlyDisputed is true the first time any vote is recorded for
	// this candidate at all (existing was nil before this import).
	IsFreshlyDisputed bool

	// ConclusionChanged is true the first time this candidate's votes
	// cross a concluding threshold, or the first time they cross the
	// opposing threshold after already concluding the other way (a
	// transition into PostConcluded, which an import that carries both
	// sides across at once also reaches directly); NewStatus carries the
	// verdict.
	// DisputeStatus only ever moves forward: Active/ConfirmedActive ->
	// ConcludedValid|ConcludedInvalid -> PostConcluded, never backwards
	// and never between ConcludedValid and ConcludedInvalid directly.
	ConclusionChanged bool
	NewStatus         DisputeStatus

	// ImportedInvalidVotes/ImportedValidVotes count how many statements
	// from the input batch were newly recorded (not already present).
	ImportedInvalidVotes int
	ImportedValidVotes   int
}

// ImportStatements folds a batch of signed statements for one candidate
// into its existing vote set (nil if none exists yet, in which case
// receipt seeds a fresh CandidateVotes), verifying each statement's
// signature and evaluating confirmation/conclusion thresholds against
// info. It never mutates the CandidateVotes passed in; it returns a new
// one via ImportResult.NewState.
func ImportStatements(
	cfg Config,
	checker SignatureChecker,
	info *SessionInfo,
	existing *CandidateVotes,
	receipt CandidateReceipt,
	statements []SignedDisputeStatement,
) ImportResult {
	var votes *CandidateVotes
	if existing != nil {
		votes = cloneCandidateVotes(existing)
	} else {
		votes = newCandidateVotes(receipt)
	}

	wasConcludedValid := tallyValid(votes, info) >= info.SupermajorityThreshold
	wasConcludedInvalid := tallyInvalid(votes, info) >= info.SupermajorityThreshold
	wasConfirmed := isConfirmed(votes, info)
	wasDisputed := existing != nil && (len(existing.Valid)+len(existing.Invalid)) > 0

	result := ImportResult{}

	for _, stmt := range statements {
		if stmt.CandidateHash != votes.CandidateReceipt.CandidateHash {
			continue
		}
		key, ok := info.ValidatorPublicKeyFor(stmt.ValidatorIndex)
		if !ok {
			continue
		}
		if !checker.Verify(stmt, key) {
			continue
		}

		if stmt.Statement.Valid {
			kind := stmt.Statement.ValidKind
			if kind == ApprovalChecked && !cfg.ApprovalVoteFoldingEnabled {
				// Approval-vote folding stays wired but inert: an approval
				// vote never counts toward a dispute's tally unless the
				// feature is explicitly enabled.
				continue
			}
			if _, already := votes.Valid[stmt.ValidatorIndex]; already {
				continue
			}
			votes.Valid[stmt.ValidatorIndex] = ValidVote{Kind: kind, Signature: stmt.Signature}
			result.ImportedValidVotes++
			result.VoteStateChanged = true
		} else {
			if _, already := votes.Invalid[stmt.ValidatorIndex]; already {
				continue
			}
			votes.Invalid[stmt.ValidatorIndex] = InvalidVote{Kind: stmt.Statement.InvalidKind, Signature: stmt.Signature}
			result.ImportedInvalidVotes++
			result.VoteStateChanged = true
		}
	}

	result.NewState = votes

	if !wasDisputed && (len(votes.Valid)+len(votes.Invalid)) > 0 {
		result.IsFreshlyDisputed = true
	}

	nowConfirmed := isConfirmed(votes, info)
	if nowConfirmed && !wasConfirmed {
		result.IsFreshlyConfirmed = true
	}

	nowConcludedValid := tallyValid(votes, info) >= info.SupermajorityThreshold
	nowConcludedInvalid := tallyInvalid(votes, info) >= info.SupermajorityThreshold

	switch {
	case nowConcludedInvalid && nowConcludedValid:
		// Both sides crossed the supermajority threshold: some validator
		// equivocated. Monotonic, regardless of which side concluded first.
		result.NewStatus = PostConcluded
		if !wasConcludedInvalid || !wasConcludedValid {
			result.ConclusionChanged = true
		}
	case nowConcludedInvalid:
		result.NewStatus = ConcludedInvalid
		if !wasConcludedInvalid {
			result.ConclusionChanged = true
		}
	case nowConcludedValid:
		result.NewStatus = ConcludedValid
		if !wasConcludedValid {
			result.ConclusionChanged = true
		}
	case nowConfirmed:
		result.NewStatus = ConfirmedActive
	default:
		result.NewStatus = Active
	}

	return result
}

func tallyValid(v *CandidateVotes, info *SessionInfo) int {
	return len(v.Valid)
}

func tallyInvalid(v *CandidateVotes, info *SessionInfo) int {
	return len(v.Invalid)
}

// isConfirmed reports whether the total distinct voting validators on
// either side of the dispute has crossed the session's approval
// (local-participation) threshold.
func isConfirmed(v *CandidateVotes, info *SessionInfo) bool {
	return len(v.Valid)+len(v.Invalid) >= info.ApprovalThreshold
}

func cloneCandidateVotes(v *CandidateVotes) *CandidateVotes {
	clone := &CandidateVotes{
		CandidateReceipt: v.CandidateReceipt,
		Valid:            make(map[ValidatorIndex]ValidVote, len(v.Valid)),
		Invalid:          make(map[ValidatorIndex]InvalidVote, len(v.Invalid)),
	}
	for k, val := range v.Valid {
		clone.Valid[k] = val
	}
	for k, val := range v.Invalid {
		clone.Invalid[k] = val
	}
	return clone
}

// ValidatorPublicKeyFor is a convenience accessor mirrored onto
// SessionInfo so vote-state logic can stay free of map-access details.
func (info *SessionInfo) ValidatorPublicKeyFor(idx ValidatorIndex) (ValidatorPublicKey, bool) {
	key, ok := info.ValidatorPublicKeys[idx]
	return key, ok
}
