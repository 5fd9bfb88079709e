// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"context"
	"sync"

	"github.com/luxfi/consensus/utils/linked"
	"github.com/luxfi/log"
	"go.uber.org/zap"
)

// ParticipationPriority distinguishes candidates the local node must
// re-execute urgently (the candidate is already included on-chain, or the
// request was recovered at startup) from ones it participates in on a
// best-effort basis.
type ParticipationPriority uint8

const (
	// BestEffort participation is drained only once the priority queue is empty.
	BestEffort ParticipationPriority = iota
	// Priority participation is drained first.
	Priority
)

// ParticipationRequest is one candidate queued for local re-execution.
type ParticipationRequest struct {
	Session          SessionIndex
	CandidateHash    CandidateHash
	CandidateReceipt CandidateReceipt
}

// ParticipationStatement is what a completed participation reports back
// to the coordinator's event loop.
type ParticipationStatement struct {
	Session       SessionIndex
	CandidateHash CandidateHash
	Valid         bool
	Err           error
}

// ParticipationQueue holds pending participation requests in two
// insertion-ordered, deduplicated queues (priority and best-effort),
// draining priority first.
type ParticipationQueue struct {
	priority   *linked.Hashmap[CandidateHash, ParticipationRequest]
	bestEffort *linked.Hashmap[CandidateHash, ParticipationRequest]
}

// NewParticipationQueue returns an empty participation queue.
func NewParticipationQueue() *ParticipationQueue {
	return &ParticipationQueue{
		priority:   linked.NewHashmap[CandidateHash, ParticipationRequest](),
		bestEffort: linked.NewHashmap[CandidateHash, ParticipationRequest](),
	}
}

// Enqueue adds req at the given priority. A request already queued at a
// lower priority is promoted; one already at or above the requested
// priority is left in place (a queued request is never demoted or
// duplicated).
func (q *ParticipationQueue) Enqueue(req ParticipationRequest, prio ParticipationPriority) {
	if _, ok := q.priority.Get(req.CandidateHash); ok {
		return
	}
	if prio == Priority {
		q.bestEffort.Delete(req.CandidateHash)
		q.priority.Put(req.CandidateHash, req)
		return
	}
	if _, ok := q.bestEffort.Get(req.CandidateHash); ok {
		return
	}
	q.bestEffort.Put(req.CandidateHash, req)
}

// Dequeue removes and returns the oldest priority-queue entry, falling
// back to the oldest best-effort entry. It reports false if both are empty.
func (q *ParticipationQueue) Dequeue() (ParticipationRequest, bool) {
	if hash, req, ok := q.priority.OldestEntry(); ok {
		q.priority.Delete(hash)
		return req, true
	}
	if hash, req, ok := q.bestEffort.OldestEntry(); ok {
		q.bestEffort.Delete(hash)
		return req, true
	}
	return ParticipationRequest{}, false
}

// Len returns the total number of queued requests across both queues.
func (q *ParticipationQueue) Len() int {
	return q.priority.Len() + q.bestEffort.Len()
}

// Clear drops every queued request for hash from both queues, called
// when a dispute concludes before it was ever dequeued.
func (q *ParticipationQueue) Clear(hash CandidateHash) {
	q.priority.Delete(hash)
	q.bestEffort.Delete(hash)
}

// Promote moves hash from the best-effort queue to the priority queue, if
// present, called once chain scraping sees its candidate included.
func (q *ParticipationQueue) Promote(hash CandidateHash) {
	if req, ok := q.bestEffort.Get(hash); ok {
		q.bestEffort.Delete(hash)
		q.priority.Put(hash, req)
	}
}

// ClearSessionsBefore drops every queued request whose session predates
// earliest from both queues, called once the session window advances past it.
func (q *ParticipationQueue) ClearSessionsBefore(earliest SessionIndex) {
	clearStale(q.priority, earliest)
	clearStale(q.bestEffort, earliest)
}

func clearStale(h *linked.Hashmap[CandidateHash, ParticipationRequest], earliest SessionIndex) {
	var stale []CandidateHash
	h.Iterate(func(hash CandidateHash, req ParticipationRequest) bool {
		if req.Session < earliest {
			stale = append(stale, hash)
		}
		return true
	})
	for _, hash := range stale {
		h.Delete(hash)
	}
}

// Worker drains a ParticipationQueue through a bounded pool of
// goroutines, dispatching each request to a PVFValidator and reporting
// results back to the owning event loop over a channel buffered to the
// pool size. Enqueue never blocks; a finished request whose result does
// not fit in the buffer waits, holding its pool slot, until the event
// loop receives.
type Worker struct {
	validator PVFValidator
	log       log.Logger
	metrics   *Metrics
	results   chan ParticipationStatement

	mu    sync.Mutex
	queue *ParticipationQueue
	sem   chan struct{}
}

// NewWorker returns a participation worker pool of the given size.
func NewWorker(validator PVFValidator, poolSize int, logger log.Logger, metrics *Metrics) *Worker {
	return &Worker{
		validator: validator,
		log:       logger,
		metrics:   metrics,
		// Buffered to the pool size; once the buffer is full, a drainOne
		// send waits until the event loop receives a result.
		results: make(chan ParticipationStatement, poolSize),
		queue:   NewParticipationQueue(),
		sem:     make(chan struct{}, poolSize),
	}
}

// Results returns the channel participation outcomes are delivered on.
func (w *Worker) Results() <-chan ParticipationStatement {
	return w.results
}

// Enqueue adds req to the worker's queue and immediately spawns a
// goroutine to process it once a pool slot is free.
func (w *Worker) Enqueue(ctx context.Context, req ParticipationRequest, prio ParticipationPriority) {
	w.mu.Lock()
	w.queue.Enqueue(req, prio)
	w.mu.Unlock()
	if w.metrics != nil {
		w.metrics.participationsQueued.Inc()
	}
	go w.drainOne(ctx)
}

// Clear removes hash from the queue, called once its dispute concludes.
func (w *Worker) Clear(hash CandidateHash) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue.Clear(hash)
}

// Promote bumps hash from best-effort to priority, called once chain
// scraping sees its candidate included on-chain.
func (w *Worker) Promote(hash CandidateHash) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue.Promote(hash)
}

// ClearSessionsBefore drops every queued request whose session has left
// the retained session window.
func (w *Worker) ClearSessionsBefore(earliest SessionIndex) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue.ClearSessionsBefore(earliest)
}

func (w *Worker) drainOne(ctx context.Context) {
	w.sem <- struct{}{}
	defer func() { <-w.sem }()

	w.mu.Lock()
	req, ok := w.queue.Dequeue()
	w.mu.Unlock()
	if !ok {
		return
	}

	valid, err := w.validator.Validate(ctx, req)
	stmt := ParticipationStatement{Session: req.Session, CandidateHash: req.CandidateHash, Valid: valid, Err: err}

	if err != nil {
		w.log.Warn("participation failed",
			zap.Stringer("candidateHash", req.CandidateHash),
			zap.Uint32("session", uint32(req.Session)),
			zap.Error(err),
		)
		w.observeDone("error")
	} else {
		w.observeDone(resultLabel(valid))
	}

	w.results <- stmt
}

func (w *Worker) observeDone(outcome string) {
	if w.metrics != nil {
		w.metrics.observeParticipationDone(outcome)
	}
}

func resultLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
