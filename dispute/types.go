// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package dispute implements the dispute-coordinator subsystem: the
// long-running per-validator service that observes disputes over
// parachain candidate validity, persists votes, decides when the local
// validator must re-execute a candidate, drives chain-selection
// reversion for concluded-invalid candidates, and hands outgoing votes
// to the gossip layer.
package dispute

import (
	"fmt"
	"time"

	"github.com/luxfi/ids"
)

// SessionIndex identifies a validator-set session.
type SessionIndex uint32

// CandidateHash is the opaque identity of a parachain candidate.
type CandidateHash = ids.ID

// ValidatorIndex is a validator's position within a session's validator set.
type ValidatorIndex uint32

// Timestamp is a Unix-second wall-clock reading, kept as its own type so
// call sites never confuse it with a block height or session index.
type Timestamp int64

// ValidStatementKind distinguishes the ways a validator can vouch for a
// candidate's validity.
type ValidStatementKind uint8

const (
	// ExplicitValid is an explicit "I re-executed this and it is valid" vote.
	ExplicitValid ValidStatementKind = iota
	// BackingSeconded is a backing "seconded" statement folded into a dispute vote.
	BackingSeconded
	// BackingValid is a backing "valid" statement folded into a dispute vote.
	BackingValid
	// ApprovalChecked is an approval-checker vote, folded into a dispute vote
	// only when approval-vote folding is enabled (see Config).
	ApprovalChecked
)

// InvalidStatementKind distinguishes the ways a validator can denounce a
// candidate's validity. There is presently one kind, kept as its own type
// for symmetry with ValidStatementKind and forward compatibility.
type InvalidStatementKind uint8

// ExplicitInvalid is the sole invalid-vote kind: an explicit "I
// re-executed this and it is invalid" statement.
const ExplicitInvalid InvalidStatementKind = 0

// DisputeStatement is a tagged union over valid/invalid statement kinds,
// mirroring the two-variant enum the original coordinator imports.
type DisputeStatement struct {
	Valid   bool
	ValidKind   ValidStatementKind
	InvalidKind InvalidStatementKind
}

// ValidStatement builds an explicit valid dispute statement of the given kind.
func ValidStatement(kind ValidStatementKind) DisputeStatement {
	return DisputeStatement{Valid: true, ValidKind: kind}
}

// InvalidStatement builds an explicit invalid dispute statement of the given kind.
func InvalidStatement(kind InvalidStatementKind) DisputeStatement {
	return DisputeStatement{Valid: false, InvalidKind: kind}
}

func (s DisputeStatement) String() string {
	if s.Valid {
		return fmt.Sprintf("valid(%d)", s.ValidKind)
	}
	return fmt.Sprintf("invalid(%d)", s.InvalidKind)
}

// SignedDisputeStatement is one validator's signed vote on one candidate.
type SignedDisputeStatement struct {
	Statement      DisputeStatement
	CandidateHash  CandidateHash
	Session        SessionIndex
	ValidatorIndex ValidatorIndex
	ValidatorID    ids.NodeID
	Signature      []byte
}

// CandidateReceipt carries the data needed to resolve a relay parent and
// (eventually) re-execute a candidate. The coordinator treats it as an
// opaque payload beyond the relay-parent field it reads.
type CandidateReceipt struct {
	CandidateHash CandidateHash
	RelayParent   ids.ID
	Descriptor    []byte
}

// MaybeCandidateReceipt mirrors the original coordinator's two ways of
// learning about a candidate: a full receipt when one has been seen
// (Provides), or a bare assumption that a receipt was already recorded
// earlier for this hash (AssumeBackingVotePresent, used when importing
// on-chain dispute-statement sets where only a hash is available).
type MaybeCandidateReceipt struct {
	Receipt *CandidateReceipt
	// AssumeBackingVotePresent is true when Receipt is nil and the caller
	// asserts that a receipt was already recorded for this candidate hash
	// by a prior import.
	AssumeBackingVotePresent bool
}

// CandidateVotes is a candidate's full imported vote set, keyed by
// validator index within each side.
type CandidateVotes struct {
	CandidateReceipt CandidateReceipt
	Valid            map[ValidatorIndex]ValidVote
	Invalid          map[ValidatorIndex]InvalidVote
}

// ValidVote is one validator's valid-side vote.
type ValidVote struct {
	Kind      ValidStatementKind
	Signature []byte
}

// InvalidVote is one validator's invalid-side vote.
type InvalidVote struct {
	Kind      InvalidStatementKind
	Signature []byte
}

func newCandidateVotes(receipt CandidateReceipt) *CandidateVotes {
	return &CandidateVotes{
		CandidateReceipt: receipt,
		Valid:            make(map[ValidatorIndex]ValidVote),
		Invalid:          make(map[ValidatorIndex]InvalidVote),
	}
}

// DisputeStatus is the lifecycle state of a dispute over one candidate.
type DisputeStatus uint8

const (
	// Active means the dispute has votes on both sides but has not yet
	// crossed a concluding threshold.
	Active DisputeStatus = iota
	// ConcludedValid means the dispute crossed the supermajority-valid
	// threshold.
	ConcludedValid
	// ConcludedInvalid means the dispute crossed the supermajority-invalid
	// threshold.
	ConcludedInvalid
	// ConfirmedActive means the dispute is active and has been confirmed
	// (crossed the local-participation threshold).
	ConfirmedActive
	// PostConcluded means votes crossed the supermajority threshold on
	// both sides — some validator equivocated. It follows ConcludedValid
	// or ConcludedInvalid once the opposing side also crosses, or is
	// reached directly when a single import carries both sides across;
	// DisputeStatus never transitions out of it.
	PostConcluded
)

func (s DisputeStatus) String() string {
	switch s {
	case ConcludedValid:
		return "concluded-valid"
	case ConcludedInvalid:
		return "concluded-invalid"
	case ConfirmedActive:
		return "confirmed-active"
	case PostConcluded:
		return "post-concluded"
	default:
		return "active"
	}
}

// Concluded reports whether the dispute reached a final verdict.
func (s DisputeStatus) Concluded() bool {
	return s == ConcludedValid || s == ConcludedInvalid || s == PostConcluded
}

// DisputeEntry is one row of the recent-disputes index.
type DisputeEntry struct {
	Session       SessionIndex
	CandidateHash CandidateHash
	Status        DisputeStatus
}

// RecentDisputes is the ordered, deduplicated index of every dispute the
// local node has observed votes for, newest last.
type RecentDisputes struct {
	order   []disputeKey
	entries map[disputeKey]DisputeStatus
}

type disputeKey struct {
	Session       SessionIndex
	CandidateHash CandidateHash
}

// NewRecentDisputes returns an empty recent-disputes index.
func NewRecentDisputes() *RecentDisputes {
	return &RecentDisputes{entries: make(map[disputeKey]DisputeStatus)}
}

// Set records or updates the status for a (session, candidate) dispute.
func (r *RecentDisputes) Set(session SessionIndex, hash CandidateHash, status DisputeStatus) {
	key := disputeKey{session, hash}
	if _, ok := r.entries[key]; !ok {
		r.order = append(r.order, key)
	}
	r.entries[key] = status
}

// Get returns the status for a (session, candidate) dispute, if known.
func (r *RecentDisputes) Get(session SessionIndex, hash CandidateHash) (DisputeStatus, bool) {
	s, ok := r.entries[disputeKey{session, hash}]
	return s, ok
}

// Entries returns every recorded dispute in insertion order.
func (r *RecentDisputes) Entries() []DisputeEntry {
	out := make([]DisputeEntry, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, DisputeEntry{Session: k.Session, CandidateHash: k.CandidateHash, Status: r.entries[k]})
	}
	return out
}

// SessionInfo carries the per-session data the coordinator needs to
// verify votes and evaluate thresholds, sourced from the runtime-info
// collaborator.
type SessionInfo struct {
	Session                SessionIndex
	Validators             []ids.NodeID
	ValidatorPublicKeys    map[ValidatorIndex]ValidatorPublicKey
	ApprovalThreshold      int // votes required to confirm a dispute is being actively checked
	SupermajorityThreshold int // votes required to conclude a dispute
}

// ValidatorPublicKey is the narrow signature-verification key shape the
// coordinator needs; concrete key material is supplied by the runtime
// collaborator and verified through a SignatureChecker.
type ValidatorPublicKey struct {
	Bytes []byte
}

// BlockRef identifies one block in the relay chain, by height and hash.
type BlockRef struct {
	Number uint64
	Hash   ids.ID
}

// CandidateComparator orders two candidates by their block height for
// chain-reversion purposes; used by the undisputed-chain resolver.
type CandidateComparator func(a, b CandidateHash) int

// now is overridable in tests; production callers use time.Now().
var now = func() Timestamp { return Timestamp(time.Now().Unix()) }
