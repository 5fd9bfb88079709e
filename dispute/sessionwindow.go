// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"context"

	"github.com/luxfi/ids"
)

// SessionWindow tracks the highest session the coordinator has observed
// and keeps the runtime-info cache warmed for a trailing window of W
// sessions, pruning spam slots and cached session info as the window
// advances.
type SessionWindow struct {
	width           SessionIndex
	highestSeen     SessionIndex
	haveHighestSeen bool

	runtime *RuntimeInfo
	spam    *SpamSlots
}

// NewSessionWindow returns a session window of the given width (W).
func NewSessionWindow(width SessionIndex, runtime *RuntimeInfo, spam *SpamSlots) *SessionWindow {
	return &SessionWindow{width: width, runtime: runtime, spam: spam}
}

// EarliestSession returns the lowest session index still inside the window.
func (w *SessionWindow) EarliestSession() SessionIndex {
	if !w.haveHighestSeen || w.highestSeen < w.width-1 {
		return 0
	}
	return w.highestSeen - (w.width - 1)
}

// Observe updates the window's notion of the highest seen session and
// warms the runtime-info cache for every session in [lowerBound,
// session]. Only the first observation covers the whole trailing window;
// after that lowerBound is highestSeen+1, so a jump of several sessions
// fetches every session in between. A failed fetch returns the error and
// leaves highestSeen unchanged, so the next call retries from the same
// lowerBound. No record of gaps in the cache is kept, and lowerBound
// never widens back to the start of the window after the first call.
func (w *SessionWindow) Observe(ctx context.Context, relayParent ids.ID, session SessionIndex) error {
	if w.haveHighestSeen && session <= w.highestSeen {
		return nil
	}

	lowerBound := session
	if w.haveHighestSeen {
		lowerBound = w.highestSeen + 1
	} else if session >= w.width {
		lowerBound = session - (w.width - 1)
	} else {
		lowerBound = 0
	}

	for s := lowerBound; s <= session; s++ {
		if _, err := w.runtime.Get(ctx, relayParent, s); err != nil {
			return err
		}
	}

	w.highestSeen = session
	w.haveHighestSeen = true

	w.runtime.Prune(w.EarliestSession())
	w.spam.PruneSession(w.EarliestSession())
	return nil
}
