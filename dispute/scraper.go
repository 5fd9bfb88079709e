// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"github.com/luxfi/consensus/utils/set"
	"github.com/luxfi/ids"
)

// ChainScraper tracks, for every block on the known active-leaves
// fragment of the relay chain, which candidates were backed and which
// were included, and keeps reverse indices from candidate to the blocks
// that backed/included it so a concluded-invalid candidate can be mapped
// back to every block that needs reverting, and so finalization can prune
// superseded blocks without the caller maintaining its own height index.
type ChainScraper struct {
	backed   map[ids.ID]set.Set[CandidateHash]
	included map[ids.ID]set.Set[CandidateHash]
	// backedIn/includedIn map a candidate to every block that backed/included it.
	backedIn   map[CandidateHash][]BlockRef
	includedIn map[CandidateHash][]BlockRef

	// heights tracks the height of every block the scraper still holds
	// state for, so ProcessFinalizedBlock can prune everything at or
	// below the newly finalized height without external help.
	heights map[ids.ID]uint64

	lastFinalizedHeight uint64
}

// NewChainScraper returns an empty chain scraper.
func NewChainScraper() *ChainScraper {
	return &ChainScraper{
		backed:     make(map[ids.ID]set.Set[CandidateHash]),
		included:   make(map[ids.ID]set.Set[CandidateHash]),
		backedIn:   make(map[CandidateHash][]BlockRef),
		includedIn: make(map[CandidateHash][]BlockRef),
		heights:    make(map[ids.ID]uint64),
	}
}

// ActiveLeavesUpdate describes one new leaf becoming active, with the
// candidates it backed and included.
type ActiveLeavesUpdate struct {
	Block    BlockRef
	Backed   []CandidateHash
	Included []CandidateHash
}

// ProcessActiveLeavesUpdate records the candidates a newly active block
// backed and included.
func (c *ChainScraper) ProcessActiveLeavesUpdate(update ActiveLeavesUpdate) {
	backedSet := set.NewSet[CandidateHash](len(update.Backed))
	backedSet.Add(update.Backed...)
	c.backed[update.Block.Hash] = backedSet

	includedSet := set.NewSet[CandidateHash](len(update.Included))
	includedSet.Add(update.Included...)
	c.included[update.Block.Hash] = includedSet

	for _, h := range update.Backed {
		c.backedIn[h] = append(c.backedIn[h], update.Block)
	}
	for _, h := range update.Included {
		c.includedIn[h] = append(c.includedIn[h], update.Block)
	}

	c.heights[update.Block.Hash] = update.Block.Number
}

// IsCandidateBacked reports whether hash was backed in block.
func (c *ChainScraper) IsCandidateBacked(block ids.ID, hash CandidateHash) bool {
	backed := c.backed[block]
	return backed.Contains(hash)
}

// IsCandidateIncluded reports whether hash was included in block.
func (c *ChainScraper) IsCandidateIncluded(block ids.ID, hash CandidateHash) bool {
	included := c.included[block]
	return included.Contains(hash)
}

// IsCandidateBackedAnywhere reports whether hash was backed in any
// currently tracked block, regardless of which one.
func (c *ChainScraper) IsCandidateBackedAnywhere(hash CandidateHash) bool {
	return len(c.backedIn[hash]) > 0
}

// IsCandidateIncludedAnywhere reports whether hash was included in any
// currently tracked block, regardless of which one.
func (c *ChainScraper) IsCandidateIncludedAnywhere(hash CandidateHash) bool {
	return len(c.includedIn[hash]) > 0
}

// BlocksIncluding returns every known block that included hash.
func (c *ChainScraper) BlocksIncluding(hash CandidateHash) []BlockRef {
	return append([]BlockRef(nil), c.includedIn[hash]...)
}

// ProcessFinalizedBlock prunes scraper state for every tracked block at or
// below the newly finalized height, since reversion can never target an
// already-finalized block.
func (c *ChainScraper) ProcessFinalizedBlock(finalized BlockRef) {
	if c.lastFinalizedHeight != 0 && finalized.Number <= c.lastFinalizedHeight {
		return
	}
	c.lastFinalizedHeight = finalized.Number

	var superseded []ids.ID
	for block, height := range c.heights {
		if height <= finalized.Number {
			superseded = append(superseded, block)
		}
	}
	for _, block := range superseded {
		c.pruneBlock(block)
	}
}

// PruneBlock removes all scraper state for a single block, and drops the
// block from every candidate's inclusion/backing list.
func (c *ChainScraper) PruneBlock(block ids.ID) {
	c.pruneBlock(block)
}

func (c *ChainScraper) pruneBlock(block ids.ID) {
	delete(c.backed, block)
	delete(c.included, block)
	delete(c.heights, block)
	pruneRefs := func(index map[CandidateHash][]BlockRef) {
		for hash, refs := range index {
			filtered := refs[:0]
			for _, r := range refs {
				if r.Hash != block {
					filtered = append(filtered, r)
				}
			}
			if len(filtered) == 0 {
				delete(index, hash)
			} else {
				index[hash] = filtered
			}
		}
	}
	pruneRefs(c.backedIn)
	pruneRefs(c.includedIn)
}
