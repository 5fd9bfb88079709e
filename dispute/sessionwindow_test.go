// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"context"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

type staticInfoProvider struct {
	calls []SessionIndex
}

func (p *staticInfoProvider) SessionInfo(_ context.Context, _ ids.ID, session SessionIndex) (*SessionInfo, error) {
	p.calls = append(p.calls, session)
	return &SessionInfo{Session: session}, nil
}

func TestSessionWindowWarmsGapOnFirstObserve(t *testing.T) {
	provider := &staticInfoProvider{}
	runtime := NewRuntimeInfo(provider)
	spam := NewSpamSlots(10)
	window := NewSessionWindow(3, runtime, spam)

	require.NoError(t, window.Observe(context.Background(), ids.ID{1}, 5))

	require.ElementsMatch(t, []SessionIndex{3, 4, 5}, provider.calls, "a fresh window of width 3 must warm the trailing 3 sessions")
	require.Equal(t, SessionIndex(3), window.EarliestSession())
}

func TestSessionWindowAdvancesIncrementally(t *testing.T) {
	provider := &staticInfoProvider{}
	runtime := NewRuntimeInfo(provider)
	spam := NewSpamSlots(10)
	window := NewSessionWindow(3, runtime, spam)

	require.NoError(t, window.Observe(context.Background(), ids.ID{1}, 5))
	provider.calls = nil

	require.NoError(t, window.Observe(context.Background(), ids.ID{1}, 6))

	require.Equal(t, []SessionIndex{6}, provider.calls, "advancing by one session must only warm the new session")
	require.Equal(t, SessionIndex(4), window.EarliestSession())
}

func TestSessionWindowIgnoresStaleSession(t *testing.T) {
	provider := &staticInfoProvider{}
	runtime := NewRuntimeInfo(provider)
	spam := NewSpamSlots(10)
	window := NewSessionWindow(3, runtime, spam)

	require.NoError(t, window.Observe(context.Background(), ids.ID{1}, 5))
	provider.calls = nil

	require.NoError(t, window.Observe(context.Background(), ids.ID{1}, 2))

	require.Empty(t, provider.calls, "a session at or below the highest seen must not re-warm anything")
}
