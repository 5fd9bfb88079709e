// Copyright (C) 2019-2024, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consensustest

import "github.com/luxfi/consensus/choices"

// Accepted is a test status for accepted blocks
var Accepted = choices.Accepted

// Rejected is a test status for rejected blocks
var Rejected = choices.Rejected

// Processing is a test status for processing blocks
var Processing = choices.Processing