// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"

	"github.com/canonical/access-service/internal/logging"
)

// LoggerNotifier writes notifications to the service log. The HTTP API
// returns notifications in its responses, this keeps a trace server side.
type LoggerNotifier struct {
	logger logging.LoggerInterface
}

func (n *LoggerNotifier) Notify(_ context.Context, notification Notification) {
	switch notification.Severity {
	case SeverityError:
		n.logger.Warnf("notification %q: %s", notification.Title, notification.Description)
	default:
		n.logger.Debugf("notification %q: %s", notification.Title, notification.Description)
	}
}

func NewLoggerNotifier(logger logging.LoggerInterface) *LoggerNotifier {
	n := new(LoggerNotifier)
	n.logger = logger

	return n
}
