// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"context"
	"fmt"

	"github.com/luxfi/ids"
)

// SessionInfoProvider resolves session information from the runtime, the
// way the original coordinator asks the relay-chain runtime API for a
// session's validator set and thresholds. It is supplied by the
// coordinator's owner; the dispute module never talks to a runtime
// directly.
type SessionInfoProvider interface {
	SessionInfo(ctx context.Context, relayParent ids.ID, session SessionIndex) (*SessionInfo, error)
}

// RuntimeInfo memoizes SessionInfo lookups so that importing many votes
// for the same session does not repeatedly hit the runtime collaborator.
type RuntimeInfo struct {
	provider SessionInfoProvider
	cache    map[SessionIndex]*SessionInfo
}

// NewRuntimeInfo returns a runtime-info cache backed by provider.
func NewRuntimeInfo(provider SessionInfoProvider) *RuntimeInfo {
	return &RuntimeInfo{
		provider: provider,
		cache:    make(map[SessionIndex]*SessionInfo),
	}
}

// Get returns the SessionInfo for session, reading through to the
// provider (anchored at relayParent) on a cache miss.
func (r *RuntimeInfo) Get(ctx context.Context, relayParent ids.ID, session SessionIndex) (*SessionInfo, error) {
	if info, ok := r.cache[session]; ok {
		return info, nil
	}
	info, err := r.provider.SessionInfo(ctx, relayParent, session)
	if err != nil {
		return nil, fmt.Errorf("dispute: fetch session info for session %d: %w", session, err)
	}
	r.cache[session] = info
	return info, nil
}

// Prune drops every cached session older than earliest, called once the
// session window advances past it.
func (r *RuntimeInfo) Prune(earliest SessionIndex) {
	for session := range r.cache {
		if session < earliest {
			delete(r.cache, session)
		}
	}
}

// ValidatorNodeID returns the NodeID for a validator index within a
// session, or false if the index is out of range.
func (info *SessionInfo) ValidatorNodeID(idx ValidatorIndex) (ids.NodeID, bool) {
	if int(idx) < 0 || int(idx) >= len(info.Validators) {
		return ids.NodeID{}, false
	}
	return info.Validators[idx], true
}
