// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package disputetest provides hand-written in-memory fakes for every
// collaborator interface the dispute coordinator depends on, in the same
// style as the module's other *test packages (validators/validatorstest,
// uptime/uptimemock).
package disputetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/luxfi/consensus/dispute"
	"github.com/luxfi/ids"
)

// MemoryBackend is an in-memory dispute.Backend, good enough to exercise
// the coordinator end to end without a real database handle.
type MemoryBackend struct {
	mu              sync.Mutex
	earliestSession dispute.SessionIndex
	haveEarliest    bool
	recentDisputes  map[string]dispute.DisputeEntry
	order           []string
	candidateVotes  map[string]*dispute.CandidateVotes
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		recentDisputes: make(map[string]dispute.DisputeEntry),
		candidateVotes: make(map[string]*dispute.CandidateVotes),
	}
}

func votesKey(session dispute.SessionIndex, hash dispute.CandidateHash) string {
	return fmt.Sprintf("%d/%s", session, hash)
}

func disputeKeyStr(session dispute.SessionIndex, hash dispute.CandidateHash) string {
	return votesKey(session, hash)
}

func (b *MemoryBackend) LoadEarliestSession() (dispute.SessionIndex, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.haveEarliest {
		return 0, dispute.ErrNoEarliestSession
	}
	return b.earliestSession, nil
}

func (b *MemoryBackend) LoadRecentDisputes() (*dispute.RecentDisputes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rd := dispute.NewRecentDisputes()
	for _, k := range b.order {
		e := b.recentDisputes[k]
		rd.Set(e.Session, e.CandidateHash, e.Status)
	}
	return rd, nil
}

func (b *MemoryBackend) LoadCandidateVotes(session dispute.SessionIndex, hash dispute.CandidateHash) (*dispute.CandidateVotes, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.candidateVotes[votesKey(session, hash)], nil
}

func (b *MemoryBackend) Write(ops []dispute.WriteOp) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	// The fake does not attempt to decode the real wire rows a KVBackend
	// would write; callers that need Write to round-trip through this
	// fake should use SetCandidateVotes/SetRecentDispute directly instead.
	_ = ops
	return nil
}

// SetEarliestSession seeds the backend's earliest-session row directly,
// bypassing the WriteOp encoding KVBackend would use.
func (b *MemoryBackend) SetEarliestSession(s dispute.SessionIndex) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.earliestSession = s
	b.haveEarliest = true
}

// SetCandidateVotes seeds a candidate's vote set directly.
func (b *MemoryBackend) SetCandidateVotes(session dispute.SessionIndex, hash dispute.CandidateHash, votes *dispute.CandidateVotes) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.candidateVotes[votesKey(session, hash)] = votes
}

// SetRecentDispute seeds a dispute entry directly.
func (b *MemoryBackend) SetRecentDispute(session dispute.SessionIndex, hash dispute.CandidateHash, status dispute.DisputeStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := disputeKeyStr(session, hash)
	if _, ok := b.recentDisputes[k]; !ok {
		b.order = append(b.order, k)
	}
	b.recentDisputes[k] = dispute.DisputeEntry{Session: session, CandidateHash: hash, Status: status}
}

// AlwaysValidChecker is a dispute.SignatureChecker that accepts every
// statement, for tests that only care about import bookkeeping.
type AlwaysValidChecker struct{}

func (AlwaysValidChecker) Verify(dispute.SignedDisputeStatement, dispute.ValidatorPublicKey) bool {
	return true
}

// StaticSessionInfo is a dispute.SessionInfoProvider returning a fixed
// SessionInfo regardless of session or relay parent.
type StaticSessionInfo struct {
	Info *dispute.SessionInfo
}

func (s StaticSessionInfo) SessionInfo(_ context.Context, _ ids.ID, _ dispute.SessionIndex) (*dispute.SessionInfo, error) {
	return s.Info, nil
}

// FixedKeystore is a dispute.Keystore that signs by returning the
// payload unchanged, good enough for tests that don't verify signatures.
type FixedKeystore struct {
	ID ids.NodeID
}

func (k FixedKeystore) NodeID() ids.NodeID { return k.ID }

func (k FixedKeystore) Sign(_ context.Context, payload []byte) ([]byte, error) {
	return payload, nil
}

// ScriptedPVF is a dispute.PVFValidator that returns a pre-programmed
// verdict for every candidate it is asked to validate.
type ScriptedPVF struct {
	Valid bool
	Err   error
}

func (p ScriptedPVF) Validate(_ context.Context, _ dispute.ParticipationRequest) (bool, error) {
	return p.Valid, p.Err
}

// RecordingApprovalVoting records every signature fetch it's asked for
// and returns a pre-programmed set of approval statements for each hash.
type RecordingApprovalVoting struct {
	mu       sync.Mutex
	Fetched  []dispute.CandidateHash
	Statements map[dispute.CandidateHash][]dispute.SignedDisputeStatement
}

func (r *RecordingApprovalVoting) GetApprovalSignaturesForCandidate(_ context.Context, hash dispute.CandidateHash) ([]dispute.SignedDisputeStatement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Fetched = append(r.Fetched, hash)
	return r.Statements[hash], nil
}

// RecordingChainSelection records every revert request it receives.
type RecordingChainSelection struct {
	mu       sync.Mutex
	Reverted [][]dispute.BlockRef
}

func (r *RecordingChainSelection) RevertBlocks(_ context.Context, blocks []dispute.BlockRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reverted = append(r.Reverted, blocks)
	return nil
}

// RecordingDistribution records every statement it's asked to gossip and
// every freshly-disputed candidate it's asked to broadcast.
type RecordingDistribution struct {
	mu        sync.Mutex
	Sent      []dispute.SignedDisputeStatement
	Disputes  []dispute.CandidateHash
}

func (r *RecordingDistribution) SendDisputeStatement(_ context.Context, stmt dispute.SignedDisputeStatement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent = append(r.Sent, stmt)
	return nil
}

func (r *RecordingDistribution) SendDispute(_ context.Context, hash dispute.CandidateHash, _ []dispute.SignedDisputeStatement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Disputes = append(r.Disputes, hash)
	return nil
}
