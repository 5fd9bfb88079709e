// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/luxfi/consensus/codec"
	"github.com/luxfi/database"
)

// Three logical columns, namespaced by key prefix within a single
// database.Database handle.
const (
	prefixEarliestSession byte = iota
	prefixRecentDisputes
	prefixCandidateVotes
)

var earliestSessionKey = []byte{prefixEarliestSession}

// ErrNoEarliestSession is returned by Backend.LoadEarliestSession when no
// session has ever been recorded.
var ErrNoEarliestSession = errors.New("dispute: no earliest session recorded")

// WriteOp is one pending row mutation, produced by an OverlayedBackend
// and applied atomically by Backend.Write.
type WriteOp struct {
	Key    []byte
	Value  []byte // nil means delete
}

// Backend is the storage contract the coordinator depends on. It is
// intentionally narrow: three loads plus one atomic batch write, matching
// the three-column schema in the design (earliest session, recent
// disputes, candidate votes).
type Backend interface {
	LoadEarliestSession() (SessionIndex, error)
	LoadRecentDisputes() (*RecentDisputes, error)
	LoadCandidateVotes(session SessionIndex, hash CandidateHash) (*CandidateVotes, error)
	Write(ops []WriteOp) error
}

// KVBackend implements Backend over a github.com/luxfi/database.Database
// handle, the same storage dependency the rest of the module threads
// through as an opaque dbManager/SharedMemory handle.
type KVBackend struct {
	db database.Database
}

// NewKVBackend wraps db as a dispute Backend.
func NewKVBackend(db database.Database) *KVBackend {
	return &KVBackend{db: db}
}

func (b *KVBackend) LoadEarliestSession() (SessionIndex, error) {
	raw, err := b.db.Get(earliestSessionKey)
	if errors.Is(err, database.ErrNotFound) {
		return 0, ErrNoEarliestSession
	}
	if err != nil {
		return 0, fmt.Errorf("dispute: load earliest session: %w", err)
	}
	if len(raw) != 4 {
		return 0, fmt.Errorf("dispute: corrupt earliest-session row (len %d)", len(raw))
	}
	return SessionIndex(binary.BigEndian.Uint32(raw)), nil
}

func (b *KVBackend) LoadRecentDisputes() (*RecentDisputes, error) {
	raw, err := b.db.Get([]byte{prefixRecentDisputes})
	if errors.Is(err, database.ErrNotFound) {
		return NewRecentDisputes(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("dispute: load recent disputes: %w", err)
	}

	var rows []DisputeEntry
	if _, err := codec.Codec.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("dispute: decode recent disputes: %w", err)
	}
	rd := NewRecentDisputes()
	for _, row := range rows {
		rd.Set(row.Session, row.CandidateHash, row.Status)
	}
	return rd, nil
}

func (b *KVBackend) LoadCandidateVotes(session SessionIndex, hash CandidateHash) (*CandidateVotes, error) {
	raw, err := b.db.Get(candidateVotesKey(session, hash))
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dispute: load candidate votes: %w", err)
	}
	votes := &CandidateVotes{}
	if _, err := codec.Codec.Unmarshal(raw, votes); err != nil {
		return nil, fmt.Errorf("dispute: decode candidate votes: %w", err)
	}
	return votes, nil
}

func (b *KVBackend) Write(ops []WriteOp) error {
	batch := b.db.NewBatch()
	for _, op := range ops {
		var err error
		if op.Value == nil {
			err = batch.Delete(op.Key)
		} else {
			err = batch.Put(op.Key, op.Value)
		}
		if err != nil {
			return fmt.Errorf("dispute: backend write: %w", err)
		}
	}
	if err := batch.Write(); err != nil {
		return fmt.Errorf("dispute: backend write: %w", err)
	}
	return nil
}

func candidateVotesKey(session SessionIndex, hash CandidateHash) []byte {
	key := make([]byte, 1+4+len(hash))
	key[0] = prefixCandidateVotes
	binary.BigEndian.PutUint32(key[1:5], uint32(session))
	copy(key[5:], hash[:])
	return key
}

func encodeEarliestSession(s SessionIndex) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(s))
	return buf
}

func encodeRecentDisputes(rd *RecentDisputes) ([]byte, error) {
	return codec.Codec.Marshal(codec.CurrentVersion, rd.Entries())
}

func encodeCandidateVotes(v *CandidateVotes) ([]byte, error) {
	return codec.Codec.Marshal(codec.CurrentVersion, v)
}
