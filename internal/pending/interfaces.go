// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pending

import "context"

// SlotInterface holds at most one pending organization code.
type SlotInterface interface {
	// Get returns the held code, empty when there is none.
	Get(context.Context) (string, error)
	// Set replaces the held code.
	Set(context.Context, string) error
	// CompareAndClear empties the slot only if it still holds the given code.
	CompareAndClear(context.Context, string) (bool, error)
}
