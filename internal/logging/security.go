// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventSystemStartup  = "sys_startup"
	securityEventSystemShutdown = "sys_shutdown"
	securityEventAuthzSuccess   = "authz_success"
	securityEventAuthzFailure   = "authz_failure"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("type", "security"), zap.String("event", securityEventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("type", "security"), zap.String("event", securityEventSystemShutdown))
}

// AuthzSuccess logs a granted access decision for userID on resource.
func (s *SecurityLogger) AuthzSuccess(userID, resource string) {
	s.l.Info(
		"authorization granted",
		zap.String("type", "security"),
		zap.String("event", securityEventAuthzSuccess+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

// AuthzFailure logs a denied access decision for userID on resource.
func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization denied",
		zap.String("type", "security"),
		zap.String("event", securityEventAuthzFailure+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}
