// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"errors"
	"time"
)

// Error variables for configuration validation.
var (
	ErrInvalidSessionWindow    = errors.New("dispute: session window must be >= 1")
	ErrInvalidBacklogBatch     = errors.New("dispute: chain-import backlog batch size must be >= 1")
	ErrInvalidParticipationPool = errors.New("dispute: participation worker pool size must be >= 1")
	ErrInvalidSpamSlotLimit    = errors.New("dispute: spam slot limit must be >= 1")
)

// Config holds the tunables of the dispute coordinator.
type Config struct {
	// SessionWindow (W) is the number of trailing sessions for which
	// session info and spam slots are retained.
	SessionWindow SessionIndex

	// ChainImportBacklogBatch (B) bounds how many queued OnChainVotes
	// batches are drained from the backlog per drain; a drain runs on
	// every active-leaves update and on every OnChainVotes message.
	ChainImportBacklogBatch int

	// ParticipationWorkers (P) is the size of the bounded worker pool
	// that re-executes candidates for local participation.
	ParticipationWorkers int

	// SpamSlotLimit is the maximum number of unconfirmed disputes a
	// single (session, validator) pair may occupy before further
	// statements from that validator are rejected as spam.
	SpamSlotLimit int

	// ParticipationTimeout is carried in the configuration but not read
	// by the participation worker: a PVF re-execution runs until the
	// PVFValidator returns or the coordinator's context is cancelled.
	ParticipationTimeout time.Duration

	// ApprovalVoteFoldingEnabled controls whether approval-checker votes
	// are folded into dispute votes during import. Kept present and
	// wired but defaulted off.
	ApprovalVoteFoldingEnabled bool

	// VerifyScrapedSignatures, when enabled, checks the signature of every
	// backing vote scraped from on-chain data before it is imported; a vote
	// that fails is skipped and does not clear the candidate's spam slots.
	// Scraped on-chain dispute statements are not pre-checked. Either way,
	// the import path verifies each statement through the SignatureChecker.
	VerifyScrapedSignatures bool
}

// DefaultConfig returns the coordinator's default configuration.
func DefaultConfig() Config {
	return Config{
		SessionWindow:              6,
		ChainImportBacklogBatch:    8,
		ParticipationWorkers:       3,
		SpamSlotLimit:              10,
		ParticipationTimeout:       2 * time.Minute,
		ApprovalVoteFoldingEnabled: false,
		VerifyScrapedSignatures:    false,
	}
}

// Valid reports whether the configuration's numeric fields are sane.
func (c Config) Valid() error {
	if c.SessionWindow < 1 {
		return ErrInvalidSessionWindow
	}
	if c.ChainImportBacklogBatch < 1 {
		return ErrInvalidBacklogBatch
	}
	if c.ParticipationWorkers < 1 {
		return ErrInvalidParticipationPool
	}
	if c.SpamSlotLimit < 1 {
		return ErrInvalidSpamSlotLimit
	}
	return nil
}
