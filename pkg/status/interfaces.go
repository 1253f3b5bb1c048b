// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
)

// PingerInterface reports whether a backing dependency is reachable.
type PingerInterface interface {
	Ping(context.Context) error
}
