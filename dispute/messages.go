// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import "github.com/luxfi/ids"

// Message is the sum type of every request the coordinator's overseer
// channel carries. Exactly one of the typed fields is non-nil.
type Message struct {
	ImportStatements    *ImportStatementsMsg
	RecentDisputes      *RecentDisputesMsg
	ActiveDisputes      *ActiveDisputesMsg
	QueryCandidateVotes *QueryCandidateVotesMsg
	IssueLocalStatement *IssueLocalStatementMsg
	DetermineUndisputed *DetermineUndisputedMsg
	ActiveLeavesUpdate  *ActiveLeavesUpdateMsg
	BlockFinalized      *BlockFinalizedMsg
	OnChainVotes        *OnChainVotesMsg
}

// ImportStatementsMsg asks the coordinator to import a batch of signed
// statements for one candidate, replying on Confirm once the votes are
// durably recorded (or immediately, for anything but a fresh valid
// import — see Coordinator.handleImportStatements).
type ImportStatementsMsg struct {
	Session       SessionIndex
	CandidateHash CandidateHash
	Candidate     MaybeCandidateReceipt
	Statements    []SignedDisputeStatement
	Confirm       chan<- ImportStatementsOutcome
}

// ImportStatementsOutcome reports how an ImportStatementsMsg was handled.
type ImportStatementsOutcome struct {
	Valid bool
	Err   error
}

// RecentDisputesMsg asks for the full recent-disputes index.
type RecentDisputesMsg struct {
	Reply chan<- []DisputeEntry
}

// ActiveDisputesMsg asks for disputes that have not yet concluded.
type ActiveDisputesMsg struct {
	Reply chan<- []DisputeEntry
}

// QueryCandidateVotesMsg asks for one candidate's full vote set.
type QueryCandidateVotesMsg struct {
	Session       SessionIndex
	CandidateHash CandidateHash
	Reply         chan<- *CandidateVotes
}

// IssueLocalStatementMsg asks the coordinator to cast and gossip the
// local validator's own vote on a candidate.
type IssueLocalStatementMsg struct {
	Session       SessionIndex
	CandidateHash CandidateHash
	Candidate     CandidateReceipt
	Valid         bool
	Reply         chan<- error
}

// DetermineUndisputedMsg asks for the longest dispute-free prefix of chain.
type DetermineUndisputedMsg struct {
	Session SessionIndex
	Base    BlockRef
	Chain   []ChainBlock
	Reply   chan<- BlockRef
}

// ActiveLeavesUpdateMsg notifies the coordinator of a change to the set
// of active leaves, carrying the backed/included candidates scraped from
// each newly active block.
type ActiveLeavesUpdateMsg struct {
	Activated []ActiveLeavesUpdate
	Session   SessionIndex
	RelayParent ids.ID
}

// BlockFinalizedMsg notifies the coordinator that a block finalized, so
// scraper and session-window state below it can be pruned.
type BlockFinalizedMsg struct {
	Block BlockRef
}

// OnChainVotesMsg carries backing votes and already-concluded disputes
// scraped from a block's on-chain data, to be folded into the import
// path the same way gossiped statements are.
type OnChainVotesMsg struct {
	Session       SessionIndex
	RelayParent   ids.ID
	BackingVotes  []ScrapedBackingVote
	OnChainDisputes []ScrapedDispute
}

// ScrapedBackingVote is one backing statement read from a block's
// inclusion data, treated as a vote for the dispute import path.
type ScrapedBackingVote struct {
	CandidateHash CandidateHash
	Candidate     CandidateReceipt
	Statement     SignedDisputeStatement
}

// ScrapedDispute is one already-concluded dispute read from a block's
// on-chain dispute-statement-set storage.
type ScrapedDispute struct {
	CandidateHash CandidateHash
	Statements    []SignedDisputeStatement
}
