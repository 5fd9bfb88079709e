// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

// SpamSlots bounds how many unconfirmed disputes a single validator may
// occupy per session, so that a validator cannot force the local node to
// participate in arbitrarily many bogus disputes. It is dual-indexed:
// count tracks how many unconfirmed disputes a (session, validator) pair
// currently occupies, and seen deduplicates so that the same validator
// voting on the same unconfirmed candidate twice only ever costs one slot.
type SpamSlots struct {
	limit int
	count map[spamCountKey]int
	seen  map[spamSeenKey]struct{}
}

type spamCountKey struct {
	Session   SessionIndex
	Validator ValidatorIndex
}

type spamSeenKey struct {
	Session       SessionIndex
	CandidateHash CandidateHash
	Validator     ValidatorIndex
}

// NewSpamSlots returns a spam-slot tracker that rejects a validator's
// vote on a new unconfirmed candidate once it already occupies limit
// slots in that session.
func NewSpamSlots(limit int) *SpamSlots {
	return &SpamSlots{
		limit: limit,
		count: make(map[spamCountKey]int),
		seen:  make(map[spamSeenKey]struct{}),
	}
}

// AddUnconfirmed attempts to charge validator a slot for voting on an
// unconfirmed dispute over hash in session. It reports false, charging
// nothing, if the validator is already at its slot limit for this
// session and this is a vote on a candidate it has not voted on before.
func (s *SpamSlots) AddUnconfirmed(session SessionIndex, hash CandidateHash, validator ValidatorIndex) bool {
	seenKey := spamSeenKey{session, hash, validator}
	if _, already := s.seen[seenKey]; already {
		return true
	}

	countKey := spamCountKey{session, validator}
	if s.count[countKey] >= s.limit {
		return false
	}

	s.seen[seenKey] = struct{}{}
	s.count[countKey]++
	return true
}

// ClearCandidate drops every validator's spam-slot charge for hash in
// session, called once the dispute is confirmed (crosses the local
// participation threshold) or the candidate is seen backed/included
// on-chain.
func (s *SpamSlots) ClearCandidate(session SessionIndex, hash CandidateHash) {
	for key := range s.seen {
		if key.Session == session && key.CandidateHash == hash {
			delete(s.seen, key)
			countKey := spamCountKey{key.Session, key.Validator}
			if s.count[countKey] > 0 {
				s.count[countKey]--
			}
			if s.count[countKey] == 0 {
				delete(s.count, countKey)
			}
		}
	}
}

// PruneSession drops every slot charge for sessions older than earliest.
func (s *SpamSlots) PruneSession(earliest SessionIndex) {
	for key := range s.count {
		if key.Session < earliest {
			delete(s.count, key)
		}
	}
	for key := range s.seen {
		if key.Session < earliest {
			delete(s.seen, key)
		}
	}
}

// Occupied returns how many slots validator currently occupies in
// session, for tests and diagnostics.
func (s *SpamSlots) Occupied(session SessionIndex, validator ValidatorIndex) int {
	return s.count[spamCountKey{session, validator}]
}
