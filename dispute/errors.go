// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import (
	"fmt"

	"github.com/luxfi/consensus/utils/wrappers"
)

// FatalError signals that the coordinator's event loop cannot continue
// and must be restarted by its owner. It wraps the underlying cause.
type FatalError struct {
	Cause error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("dispute coordinator: fatal: %v", e.Cause)
}

func (e *FatalError) Unwrap() error {
	return e.Cause
}

func fatal(cause error) *FatalError {
	return &FatalError{Cause: cause}
}

// JfyiError ("just for your information") is logged and otherwise
// swallowed: the message that produced it is still considered handled
// and any overlay mutations already buffered for it are flushed.
type JfyiError struct {
	Cause error
}

func (e *JfyiError) Error() string {
	return fmt.Sprintf("dispute coordinator: %v", e.Cause)
}

func (e *JfyiError) Unwrap() error {
	return e.Cause
}

func jfyi(cause error) *JfyiError {
	return &JfyiError{Cause: cause}
}

// collectErrs drains a backlog-processing loop's accumulated errors into
// a single error, or nil if none occurred.
func collectErrs(errs *wrappers.Errs) error {
	if errs.Errored() {
		return errs.Err()
	}
	return nil
}
