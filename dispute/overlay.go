// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

// OverlayedBackend buffers reads (read-through to the wrapped Backend,
// cached afterwards) and writes (held in memory until IntoWriteOps is
// called) so that one inbound message's worth of mutations can be
// committed atomically, or discarded entirely if handling the message
// fails partway through.
type OverlayedBackend struct {
	backend Backend

	earliestSession      *SessionIndex
	recentDisputes       *RecentDisputes
	recentDisputesDirty  bool
	candidateVotes       map[candidateKey]*candidateVotesEntry
}

type candidateKey struct {
	Session SessionIndex
	Hash    CandidateHash
}

type candidateVotesEntry struct {
	votes   *CandidateVotes // nil means deleted
	loaded  bool
	dirty   bool
}

// NewOverlayedBackend wraps backend with a write-buffering overlay.
func NewOverlayedBackend(backend Backend) *OverlayedBackend {
	return &OverlayedBackend{
		backend:        backend,
		candidateVotes: make(map[candidateKey]*candidateVotesEntry),
	}
}

// EarliestSession returns the earliest session for which state is
// retained, reading through to the backend on first access.
func (o *OverlayedBackend) EarliestSession() (SessionIndex, error) {
	if o.earliestSession != nil {
		return *o.earliestSession, nil
	}
	s, err := o.backend.LoadEarliestSession()
	if err != nil {
		return 0, err
	}
	o.earliestSession = &s
	return s, nil
}

// SetEarliestSession overwrites the earliest retained session.
func (o *OverlayedBackend) SetEarliestSession(s SessionIndex) {
	o.earliestSession = &s
}

// RecentDisputes returns the recent-disputes index, reading through to
// the backend on first access. The returned pointer is shared by the
// overlay; mutate it and call MarkRecentDisputesDirty to persist changes.
func (o *OverlayedBackend) RecentDisputes() (*RecentDisputes, error) {
	if o.recentDisputes != nil {
		return o.recentDisputes, nil
	}
	rd, err := o.backend.LoadRecentDisputes()
	if err != nil {
		return nil, err
	}
	o.recentDisputes = rd
	return rd, nil
}

// MarkRecentDisputesDirty flags the recent-disputes index for persistence
// on the next IntoWriteOps.
func (o *OverlayedBackend) MarkRecentDisputesDirty() {
	o.recentDisputesDirty = true
}

// CandidateVotes returns the vote set for (session, hash), reading
// through to the backend on first access for this overlay's lifetime.
func (o *OverlayedBackend) CandidateVotes(session SessionIndex, hash CandidateHash) (*CandidateVotes, error) {
	key := candidateKey{session, hash}
	if entry, ok := o.candidateVotes[key]; ok {
		return entry.votes, nil
	}
	votes, err := o.backend.LoadCandidateVotes(session, hash)
	if err != nil {
		return nil, err
	}
	o.candidateVotes[key] = &candidateVotesEntry{votes: votes, loaded: true}
	return votes, nil
}

// SetCandidateVotes stages a vote-set write for (session, hash).
func (o *OverlayedBackend) SetCandidateVotes(session SessionIndex, hash CandidateHash, votes *CandidateVotes) {
	key := candidateKey{session, hash}
	o.candidateVotes[key] = &candidateVotesEntry{votes: votes, loaded: true, dirty: true}
}

// IsEmpty reports whether the overlay holds no pending writes.
func (o *OverlayedBackend) IsEmpty() bool {
	if o.earliestSession != nil || o.recentDisputesDirty {
		return false
	}
	for _, entry := range o.candidateVotes {
		if entry.dirty {
			return false
		}
	}
	return true
}

// IntoWriteOps drains the overlay's pending mutations into a batch of
// WriteOps suitable for Backend.Write, and clears the dirty markers (the
// read-through cache is kept, since the backend now reflects it; a
// staged earliest session is dropped and re-read on next access).
func (o *OverlayedBackend) IntoWriteOps() ([]WriteOp, error) {
	var ops []WriteOp

	if o.earliestSession != nil {
		ops = append(ops, WriteOp{Key: earliestSessionKey, Value: encodeEarliestSession(*o.earliestSession)})
		o.earliestSession = nil
	}

	if o.recentDisputesDirty {
		raw, err := encodeRecentDisputes(o.recentDisputes)
		if err != nil {
			return nil, err
		}
		ops = append(ops, WriteOp{Key: []byte{prefixRecentDisputes}, Value: raw})
		o.recentDisputesDirty = false
	}

	for key, entry := range o.candidateVotes {
		if !entry.dirty {
			continue
		}
		if entry.votes == nil {
			ops = append(ops, WriteOp{Key: candidateVotesKey(key.Session, key.Hash), Value: nil})
		} else {
			raw, err := encodeCandidateVotes(entry.votes)
			if err != nil {
				return nil, err
			}
			ops = append(ops, WriteOp{Key: candidateVotesKey(key.Session, key.Hash), Value: raw})
		}
		entry.dirty = false
	}

	return ops, nil
}

// Flush is a convenience wrapper that drains the overlay and writes the
// result straight through to the backend.
func (o *OverlayedBackend) Flush() error {
	ops, err := o.IntoWriteOps()
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}
	return o.backend.Write(ops)
}
