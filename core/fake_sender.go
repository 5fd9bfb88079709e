// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"github.com/luxfi/warp"
)

// FakeSender is a type alias for compatibility
type FakeSender = warp.FakeSender
