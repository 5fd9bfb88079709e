// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.

/*
Package consensus implements the Snowman-family consensus primitives used
across the validator node: n-ary, binary and unary sampling consensus, the
vote-counting Bag type, and the parameter/health contracts that the rest of
the module builds on.

# Dispute Coordinator

The dispute subsystem, rooted at github.com/luxfi/consensus/dispute, is the
long-running per-validator service that observes disputes over parachain
candidate validity, persists votes, decides when the local validator must
re-execute a candidate, drives chain-selection reversion for concluded
disputes, and hands outgoing votes to the gossip layer. See the package
comment in dispute/types.go and DESIGN.md for the design notes.

# Architecture

  - core/        Core interfaces and types shared by every engine
  - engine/      Engine scaffolding (VM adapters, mocks, test doubles)
  - poll/        Early-termination poll sets used by sampling consensus
  - quorum/      Threshold-set helpers (static/dynamic/tree quorums)
  - validators/  Validator-set and validator-state lookups
  - dispute/     The dispute-coordinator subsystem
*/
package consensus
