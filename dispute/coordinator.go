// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/consensus/utils/wrappers"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"go.uber.org/zap"
)

// ErrSessionTooAncient is returned when a statement arrives for a
// session older than the coordinator's retained window.
var ErrSessionTooAncient = errors.New("dispute: session outside retained window")

// ErrNoCandidateReceipt is returned when a statement would need to open
// a brand-new vote record but carries no candidate receipt to seed it.
var ErrNoCandidateReceipt = errors.New("dispute: statement carries no candidate receipt and none is on record")

// ErrSpamRejected is returned when every invalid-side statement in an
// import was rejected for exhausting its voter's spam slots, leaving
// nothing legitimate behind to record.
var ErrSpamRejected = errors.New("dispute: import rejected, all invalid votes looked like spam")

// Coordinator is the dispute coordinator's Initialized event loop: it
// owns every in-memory collaborator, multiplexes inbound requests and
// participation results, and drives the backend overlay's commit cycle
// one inbound message at a time.
type Coordinator struct {
	cfg     Config
	log     log.Logger
	metrics *Metrics

	backend       Backend
	scraper       *ChainScraper
	runtimeInfo   *RuntimeInfo
	sessionWindow *SessionWindow
	spamSlots     *SpamSlots
	participation *Worker
	checker       SignatureChecker
	keystore      Keystore

	approvalSender ApprovalVotingSender
	chainSelection ChainSelectionSender
	distribution   DisputeDistributionSender

	recentDisputes *RecentDisputes

	inbox   chan Message
	backlog []OnChainVotesMsg
}

// Collaborators bundles every external dependency the coordinator needs,
// supplied by its owner (the overseer).
type Collaborators struct {
	SessionInfo    SessionInfoProvider
	SignatureCheck SignatureChecker
	Keystore       Keystore
	PVF            PVFValidator
	ApprovalVoting ApprovalVotingSender
	ChainSelection ChainSelectionSender
	Distribution   DisputeDistributionSender
}

// NewCoordinator constructs a Coordinator. recentDisputes is read once
// from backend at startup, by the caller's call to Bootstrap before the
// first Run. The earliest-retained session is not read from backend: the
// session window starts empty and is filled by active-leaves updates.
func NewCoordinator(cfg Config, backend Backend, collab Collaborators, logger log.Logger, reg *Metrics) *Coordinator {
	runtimeInfo := NewRuntimeInfo(collab.SessionInfo)
	spamSlots := NewSpamSlots(cfg.SpamSlotLimit)
	return &Coordinator{
		cfg:            cfg,
		log:            logger,
		metrics:        reg,
		backend:        backend,
		scraper:        NewChainScraper(),
		runtimeInfo:    runtimeInfo,
		sessionWindow:  NewSessionWindow(cfg.SessionWindow, runtimeInfo, spamSlots),
		spamSlots:      spamSlots,
		participation:  NewWorker(collab.PVF, cfg.ParticipationWorkers, logger, reg),
		checker:        collab.SignatureCheck,
		keystore:       collab.Keystore,
		approvalSender: collab.ApprovalVoting,
		chainSelection: collab.ChainSelection,
		distribution:   collab.Distribution,
		recentDisputes: NewRecentDisputes(),
		inbox:          make(chan Message, 1),
	}
}

// Inbox returns the channel the coordinator's owner posts Messages to.
func (c *Coordinator) Inbox() chan<- Message {
	return c.inbox
}

// Bootstrap loads persisted recent-disputes state and queues priority
// participation for every dispute, confirmed or not, that had not
// concluded when the node last shut down and still has a stored vote
// record, mirroring the original coordinator's
// InitialData replay: recovered participations are queued before
// anything else is processed.
func (c *Coordinator) Bootstrap(ctx context.Context) error {
	rd, err := c.backend.LoadRecentDisputes()
	if err != nil {
		return fatal(fmt.Errorf("bootstrap: load recent disputes: %w", err))
	}
	c.recentDisputes = rd

	for _, entry := range rd.Entries() {
		if entry.Status.Concluded() {
			continue
		}
		votes, err := c.backend.LoadCandidateVotes(entry.Session, entry.CandidateHash)
		if err != nil {
			return fatal(fmt.Errorf("bootstrap: load candidate votes: %w", err))
		}
		if votes == nil {
			continue
		}
		c.participation.Enqueue(ctx, ParticipationRequest{
			Session:          entry.Session,
			CandidateHash:    entry.CandidateHash,
			CandidateReceipt: votes.CandidateReceipt,
		}, Priority)
	}
	return nil
}

// Run drives the event loop until ctx is cancelled or a fatal error
// occurs processing an inbound message. It multiplexes the overseer
// inbox and the participation worker's result channel fairly, the way
// the original coordinator's MuxedMessage select does.
func (c *Coordinator) Run(ctx context.Context) error {
	results := c.participation.Results()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-c.inbox:
			if err := c.handleIncoming(ctx, msg); err != nil {
				var fe *FatalError
				if errors.As(err, &fe) {
					return fe
				}
				var je *JfyiError
				if errors.As(err, &je) {
					c.log.Warn("dispute coordinator: non-fatal error handling message", zap.Error(je))
					continue
				}
				return fatal(err)
			}
		case res := <-results:
			if err := c.handleParticipationResult(ctx, res); err != nil {
				return fatal(err)
			}
		}
	}
}

func (c *Coordinator) handleIncoming(ctx context.Context, msg Message) error {
	switch {
	case msg.ImportStatements != nil:
		return c.handleImportStatements(ctx, msg.ImportStatements)
	case msg.RecentDisputes != nil:
		msg.RecentDisputes.Reply <- c.recentDisputes.Entries()
		return nil
	case msg.ActiveDisputes != nil:
		var active []DisputeEntry
		for _, e := range c.recentDisputes.Entries() {
			if !e.Status.Concluded() {
				active = append(active, e)
			}
		}
		msg.ActiveDisputes.Reply <- active
		return nil
	case msg.QueryCandidateVotes != nil:
		votes, err := c.backend.LoadCandidateVotes(msg.QueryCandidateVotes.Session, msg.QueryCandidateVotes.CandidateHash)
		msg.QueryCandidateVotes.Reply <- votes
		if err != nil {
			return jfyi(err)
		}
		return nil
	case msg.IssueLocalStatement != nil:
		err := c.issueLocalStatement(ctx, msg.IssueLocalStatement)
		msg.IssueLocalStatement.Reply <- err
		if err != nil {
			return jfyi(err)
		}
		return nil
	case msg.DetermineUndisputed != nil:
		d := msg.DetermineUndisputed
		d.Reply <- DetermineUndisputedChain(d.Base, d.Chain, c.recentDisputes, d.Session)
		return nil
	case msg.ActiveLeavesUpdate != nil:
		return c.processActiveLeavesUpdate(ctx, msg.ActiveLeavesUpdate)
	case msg.BlockFinalized != nil:
		c.scraper.ProcessFinalizedBlock(msg.BlockFinalized.Block)
		return nil
	case msg.OnChainVotes != nil:
		c.backlog = append(c.backlog, *msg.OnChainVotes)
		return c.processChainImportBacklog(ctx)
	default:
		return jfyi(fmt.Errorf("dispute: empty message"))
	}
}

// handleImportStatements is the central import path (spec.md's 12-step
// ImportStatements algorithm): resolve the candidate receipt, enforce the
// session-retention window, enforce spam slots for unconfirmed disputes,
// fold the statements through the pure vote-state engine, persist the
// result, and react to any confirmation/conclusion transition.
func (c *Coordinator) handleImportStatements(ctx context.Context, msg *ImportStatementsMsg) error {
	outcome, err := c.importStatements(ctx, msg.Session, msg.CandidateHash, msg.Candidate, msg.Statements)
	msg.Confirm <- outcome
	if err != nil {
		return jfyi(err)
	}
	return nil
}

func (c *Coordinator) importStatements(
	ctx context.Context,
	session SessionIndex,
	hash CandidateHash,
	maybeReceipt MaybeCandidateReceipt,
	statements []SignedDisputeStatement,
) (ImportStatementsOutcome, error) {
	if c.sessionIsAncient(session) {
		return ImportStatementsOutcome{Valid: false, Err: ErrSessionTooAncient}, nil
	}

	overlay := NewOverlayedBackend(c.backend)
	overlay.recentDisputes = c.recentDisputes

	existing, err := overlay.CandidateVotes(session, hash)
	if err != nil {
		return ImportStatementsOutcome{}, err
	}

	var receipt CandidateReceipt
	switch {
	case maybeReceipt.Receipt != nil:
		receipt = *maybeReceipt.Receipt
	case existing != nil:
		receipt = existing.CandidateReceipt
	case maybeReceipt.AssumeBackingVotePresent:
		return ImportStatementsOutcome{Valid: false, Err: ErrNoCandidateReceipt}, nil
	default:
		return ImportStatementsOutcome{Valid: false, Err: ErrNoCandidateReceipt}, nil
	}

	info, err := c.runtimeInfo.Get(ctx, receipt.RelayParent, session)
	if err != nil {
		return ImportStatementsOutcome{}, err
	}

	// A candidate is potential spam only while it is unconfirmed, not
	// already tracked as disputed, and not yet seen backed or included
	// on-chain — any of those facts is independent evidence the dispute
	// is real, so spam slots no longer apply to it.
	alreadyConfirmed := existing != nil && isConfirmed(existing, info)
	_, isDisputedBefore := c.recentDisputes.Get(session, hash)
	isIncluded := c.scraper.IsCandidateIncludedAnywhere(hash)
	isBacked := c.scraper.IsCandidateBackedAnywhere(hash)
	potentialSpam := !alreadyConfirmed && !isDisputedBefore && !isIncluded && !isBacked

	filtered, rejectImport := c.filterSpam(session, hash, statements, potentialSpam)
	if rejectImport {
		return ImportStatementsOutcome{Valid: false, Err: ErrSpamRejected}, nil
	}
	statements = filtered
	if !potentialSpam {
		c.spamSlots.ClearCandidate(session, hash)
	}

	if c.cfg.ApprovalVoteFoldingEnabled && c.approvalSender != nil {
		approvals, err := c.approvalSender.GetApprovalSignaturesForCandidate(ctx, hash)
		if err != nil {
			c.log.Warn("approval signature fetch failed", zap.Stringer("candidateHash", hash), zap.Error(err))
		} else {
			statements = append(statements, approvals...)
		}
	}

	result := ImportStatements(c.cfg, c.checker, info, existing, receipt, statements)
	if c.metrics != nil {
		c.metrics.votesImported.Add(float64(result.ImportedValidVotes + result.ImportedInvalidVotes))
	}

	if result.VoteStateChanged {
		overlay.SetCandidateVotes(session, hash, result.NewState)
	}

	if result.VoteStateChanged && len(result.NewState.Invalid) > 0 {
		if _, ok := c.recentDisputes.Get(session, hash); !ok {
			c.recentDisputes.Set(session, hash, Active)
			overlay.MarkRecentDisputesDirty()
		}
	}

	if result.IsFreshlyDisputed && c.distribution != nil {
		if err := c.distribution.SendDispute(ctx, hash, statements); err != nil {
			c.log.Warn("dispute broadcast failed", zap.Stringer("candidateHash", hash), zap.Error(err))
		}
	}

	if result.IsFreshlyConfirmed {
		c.spamSlots.ClearCandidate(session, hash)
		c.recentDisputes.Set(session, hash, ConfirmedActive)
		overlay.MarkRecentDisputesDirty()
	}

	// Queue local participation whenever the candidate is genuinely
	// disputed (it carries an invalid vote), the local validator has not
	// yet cast its own vote, and the dispute isn't itself potential spam
	// — independent of whether this import happened to freshly confirm
	// it. Candidates already included on-chain jump the priority queue.
	if result.VoteStateChanged && len(result.NewState.Invalid) > 0 && !potentialSpam {
		if idx, ok := localValidatorIndex(info, c.keystore.NodeID()); ok {
			_, votedValid := result.NewState.Valid[idx]
			_, votedInvalid := result.NewState.Invalid[idx]
			if !votedValid && !votedInvalid {
				prio := BestEffort
				if isIncluded {
					prio = Priority
				}
				c.participation.Enqueue(ctx, ParticipationRequest{Session: session, CandidateHash: hash, CandidateReceipt: receipt}, prio)
			}
		}
	}

	if result.ConclusionChanged {
		c.recentDisputes.Set(session, hash, result.NewStatus)
		overlay.MarkRecentDisputesDirty()
		c.participation.Clear(hash)
		if c.metrics != nil {
			c.metrics.observeConcluded(result.NewStatus)
		}
		if result.NewStatus == ConcludedInvalid && c.chainSelection != nil {
			blocks := c.scraper.BlocksIncluding(hash)
			if len(blocks) > 0 {
				if err := c.chainSelection.RevertBlocks(ctx, blocks); err != nil {
					c.log.Warn("chain reversion failed", zap.Stringer("candidateHash", hash), zap.Error(err))
				}
			}
		}
	}

	if err := overlay.Flush(); err != nil {
		return ImportStatementsOutcome{}, err
	}

	return ImportStatementsOutcome{Valid: true}, nil
}

// filterSpam charges a spam slot against every invalid-side statement in
// the batch when potentialSpam is true (valid-side statements — backing
// or approval votes folded into a dispute — never count as spam, since
// only a denunciation can manufacture a bogus dispute). It reports
// rejectImport = true when potentialSpam was true, the batch contained
// at least one invalid statement, and every one of them was rejected for
// exhausting its voter's slots — the caller must then drop the whole
// import rather than record a partial, spam-diluted vote set.
func (c *Coordinator) filterSpam(session SessionIndex, hash CandidateHash, statements []SignedDisputeStatement, potentialSpam bool) (filtered []SignedDisputeStatement, rejectImport bool) {
	if !potentialSpam {
		return statements, false
	}
	filtered = statements[:0:0]
	var totalInvalid, rejectedInvalid int
	for _, stmt := range statements {
		if stmt.Statement.Valid {
			filtered = append(filtered, stmt)
			continue
		}
		totalInvalid++
		if c.spamSlots.AddUnconfirmed(session, hash, stmt.ValidatorIndex) {
			filtered = append(filtered, stmt)
		} else {
			rejectedInvalid++
			if c.metrics != nil {
				c.metrics.votesRejectedSpam.Inc()
			}
		}
	}
	rejectImport = totalInvalid > 0 && rejectedInvalid == totalInvalid
	return filtered, rejectImport
}

func (c *Coordinator) sessionIsAncient(session SessionIndex) bool {
	return session < c.sessionWindow.EarliestSession()
}

func (c *Coordinator) issueLocalStatement(ctx context.Context, msg *IssueLocalStatementMsg) error {
	payload := append(append([]byte(nil), msg.CandidateHash[:]...), byte(msg.Session))
	sig, err := c.keystore.Sign(ctx, payload)
	if err != nil {
		return fmt.Errorf("dispute: sign local statement: %w", err)
	}

	var statement DisputeStatement
	if msg.Valid {
		statement = ValidStatement(ExplicitValid)
	} else {
		statement = InvalidStatement(ExplicitInvalid)
	}

	info, err := c.runtimeInfo.Get(ctx, msg.Candidate.RelayParent, msg.Session)
	if err != nil {
		return fmt.Errorf("dispute: resolve session for local statement: %w", err)
	}
	idx, ok := localValidatorIndex(info, c.keystore.NodeID())
	if !ok {
		return fmt.Errorf("dispute: local node is not a validator in session %d", msg.Session)
	}

	signed := SignedDisputeStatement{
		Statement:      statement,
		CandidateHash:  msg.CandidateHash,
		Session:        msg.Session,
		ValidatorIndex: idx,
		ValidatorID:    c.keystore.NodeID(),
		Signature:      sig,
	}

	outcome, err := c.importStatements(ctx, msg.Session, msg.CandidateHash, MaybeCandidateReceipt{Receipt: &msg.Candidate}, []SignedDisputeStatement{signed})
	if err != nil {
		return err
	}
	if outcome.Err != nil {
		return outcome.Err
	}

	if c.distribution != nil {
		if err := c.distribution.SendDisputeStatement(ctx, signed); err != nil {
			return fmt.Errorf("dispute: gossip local statement: %w", err)
		}
	}
	return nil
}

func localValidatorIndex(info *SessionInfo, nodeID ids.NodeID) (ValidatorIndex, bool) {
	for i, v := range info.Validators {
		if v == nodeID {
			return ValidatorIndex(i), true
		}
	}
	return 0, false
}

func (c *Coordinator) processActiveLeavesUpdate(ctx context.Context, msg *ActiveLeavesUpdateMsg) error {
	for _, update := range msg.Activated {
		c.scraper.ProcessActiveLeavesUpdate(update)
		// A candidate just seen included is worth re-executing urgently:
		// bump any queued best-effort participation for it to priority.
		for _, hash := range update.Included {
			c.participation.Promote(hash)
		}
	}
	if err := c.sessionWindow.Observe(ctx, msg.RelayParent, msg.Session); err != nil {
		return fmt.Errorf("dispute: warm session window: %w", err)
	}
	// Drop any queued participation whose session has aged out of the
	// retained window; it will never gain a caller to report back to.
	c.participation.ClearSessionsBefore(c.sessionWindow.EarliestSession())
	return c.processChainImportBacklog(ctx)
}

// processChainImportBacklog drains up to cfg.ChainImportBacklogBatch
// queued on-chain vote batches per call, bounding how much work one
// active-leaves-update tick can push onto the loop.
func (c *Coordinator) processChainImportBacklog(ctx context.Context) error {
	var errs wrappers.Errs
	n := c.cfg.ChainImportBacklogBatch
	if n > len(c.backlog) {
		n = len(c.backlog)
	}
	batch := c.backlog[:n]
	c.backlog = c.backlog[n:]

	for _, votes := range batch {
		errs.Add(c.processOnChainVotes(ctx, votes))
	}
	return collectErrs(&errs)
}

// processOnChainVotes imports scraped backing votes first (which, as a
// side effect, clears spam slots for every candidate it touches — a
// candidate simply being backed on-chain proves it was not spam) and
// then imports already-concluded on-chain disputes through the same
// path gossiped statements use.
func (c *Coordinator) processOnChainVotes(ctx context.Context, votes OnChainVotesMsg) error {
	for _, bv := range votes.BackingVotes {
		if c.cfg.VerifyScrapedSignatures {
			info, err := c.runtimeInfo.Get(ctx, votes.RelayParent, votes.Session)
			if err != nil {
				return err
			}
			key, ok := info.ValidatorPublicKeyFor(bv.Statement.ValidatorIndex)
			if !ok || !c.checker.Verify(bv.Statement, key) {
				continue
			}
		}
		if _, err := c.importStatements(ctx, votes.Session, bv.CandidateHash, MaybeCandidateReceipt{Receipt: &bv.Candidate}, []SignedDisputeStatement{bv.Statement}); err != nil {
			return err
		}
		c.spamSlots.ClearCandidate(votes.Session, bv.CandidateHash)
	}

	for _, od := range votes.OnChainDisputes {
		if _, err := c.importStatements(ctx, votes.Session, od.CandidateHash, MaybeCandidateReceipt{AssumeBackingVotePresent: true}, od.Statements); err != nil {
			return err
		}
	}

	return nil
}

func (c *Coordinator) handleParticipationResult(ctx context.Context, res ParticipationStatement) error {
	if res.Err != nil {
		c.log.Warn("participation result carried an error", zap.Stringer("candidateHash", res.CandidateHash), zap.Error(res.Err))
		return nil
	}

	votes, err := c.backend.LoadCandidateVotes(res.Session, res.CandidateHash)
	if err != nil {
		return err
	}
	if votes == nil {
		return nil
	}

	info, err := c.runtimeInfo.Get(ctx, votes.CandidateReceipt.RelayParent, res.Session)
	if err != nil {
		return err
	}
	idx, ok := localValidatorIndex(info, c.keystore.NodeID())
	if !ok {
		return nil
	}
	if _, alreadyVoted := votes.Valid[idx]; alreadyVoted {
		return nil
	}
	if _, alreadyVoted := votes.Invalid[idx]; alreadyVoted {
		return nil
	}

	return c.issueLocalStatement(ctx, &IssueLocalStatementMsg{
		Session:       res.Session,
		CandidateHash: res.CandidateHash,
		Candidate:     votes.CandidateReceipt,
		Valid:         res.Valid,
		Reply:         make(chan error, 1),
	})
}
