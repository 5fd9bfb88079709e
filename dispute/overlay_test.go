// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute_test

import (
	"testing"

	"github.com/luxfi/consensus/dispute"
	"github.com/luxfi/consensus/dispute/disputetest"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestOverlayReadThrough(t *testing.T) {
	backend := disputetest.NewMemoryBackend()
	backend.SetEarliestSession(3)

	overlay := dispute.NewOverlayedBackend(backend)
	session, err := overlay.EarliestSession()
	require.NoError(t, err)
	require.Equal(t, dispute.SessionIndex(3), session)
}

func TestOverlayIsEmptyUntilWrite(t *testing.T) {
	backend := disputetest.NewMemoryBackend()
	overlay := dispute.NewOverlayedBackend(backend)

	require.True(t, overlay.IsEmpty())

	overlay.SetEarliestSession(5)
	require.False(t, overlay.IsEmpty())
}

func TestOverlayIntoWriteOpsDrains(t *testing.T) {
	backend := disputetest.NewMemoryBackend()
	overlay := dispute.NewOverlayedBackend(backend)

	overlay.SetEarliestSession(7)
	votes := &dispute.CandidateVotes{
		CandidateReceipt: dispute.CandidateReceipt{CandidateHash: ids.ID{1}},
		Valid:            map[dispute.ValidatorIndex]dispute.ValidVote{},
		Invalid:          map[dispute.ValidatorIndex]dispute.InvalidVote{},
	}
	overlay.SetCandidateVotes(1, ids.ID{1}, votes)

	ops, err := overlay.IntoWriteOps()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.True(t, overlay.IsEmpty(), "draining IntoWriteOps must clear dirty markers")

	ops2, err := overlay.IntoWriteOps()
	require.NoError(t, err)
	require.Empty(t, ops2)
}
