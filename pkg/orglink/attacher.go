// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orglink

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/notify"
	"github.com/canonical/access-service/internal/pending"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/internal/types"
)

var _ AttacherInterface = (*Attacher)(nil)

var errAttachFailed = errors.New("attach failed")

var (
	linkDetected = notify.Notification{
		Title:       "Organization link detected",
		Description: "Sign in to join your organization.",
		Severity:    notify.SeverityInfo,
	}
	orgNotFound = notify.Notification{
		Title:       "Organization not found",
		Description: "Please verify the invite link and try again.",
		Severity:    notify.SeverityError,
	}
	joinFailed = notify.Notification{
		Title:       "Error joining organization",
		Description: "Something went wrong, please use the invite link again.",
		Severity:    notify.SeverityError,
	}
)

func joined(org *types.Organization) notify.Notification {
	return notify.Notification{
		Title:       "Joined organization",
		Description: fmt.Sprintf("You now have full access through %s.", org.Name),
		Severity:    notify.SeveritySuccess,
	}
}

// Outcome is the result of one attach call.
type Outcome struct {
	State        State                `json:"state"`
	Code         string               `json:"code,omitempty"`
	Organization *types.Organization  `json:"organization,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// Attacher links profiles to the organization of a pending invite code.
// Concurrent attaches of the same user and code share a single run.
type Attacher struct {
	storage  StorageInterface
	txs      TxRunnerInterface
	notifier notify.NotifierInterface
	inflight singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Capture stores the code carried by u, replacing any pending one, and
// returns u without the code parameter. The boolean is false when u carries
// no code.
func (a *Attacher) Capture(ctx context.Context, slot pending.SlotInterface, u *url.URL) (*url.URL, bool, error) {
	ctx, span := a.tracer.Start(ctx, "orglink.Attacher.Capture")
	defer span.End()

	if !u.Query().Has(CodeParam) {
		return u, false, nil
	}

	stripped := stripCode(u)

	code := strings.TrimSpace(u.Query().Get(CodeParam))
	if code == "" {
		return stripped, false, nil
	}

	if err := slot.Set(ctx, code); err != nil {
		return u, false, fmt.Errorf("failed to store pending organization code: %w", err)
	}

	a.logger.Debugf("captured organization code %s", code)
	a.notifier.Notify(ctx, linkDetected)

	return stripped, true, nil
}

// Attach consumes the pending code of slot for the given session. Without a
// pending code the outcome is Idle, without a session it is CodeCaptured and
// the code stays pending. The run claims the code first, a caller finding it
// already consumed gets Idle. Every other outcome clears the code.
func (a *Attacher) Attach(ctx context.Context, slot pending.SlotInterface, s *session.Session) (*Outcome, error) {
	ctx, span := a.tracer.Start(ctx, "orglink.Attacher.Attach")
	defer span.End()

	code, err := slot.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending organization code: %w", err)
	}

	if code == "" {
		return &Outcome{State: Idle}, nil
	}

	if s == nil || s.UserID == "" {
		return &Outcome{State: CodeCaptured, Code: code}, nil
	}

	v, err, shared := a.inflight.Do(s.UserID+"\x00"+code, func() (interface{}, error) {
		// shared by every waiter, so it must not end with the first caller
		ctx := context.WithoutCancel(ctx)

		// a caller that read the code before an earlier run cleared it finds nothing to claim
		claimed, err := slot.CompareAndClear(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to claim pending organization code: %w", err)
		}

		if !claimed {
			a.logger.Debugf("code %s for user %s already consumed", code, s.UserID)
			return &Outcome{State: Idle}, nil
		}

		outcome := a.attachTx(ctx, s.UserID, code)

		if err := a.monitor.IncrementAttachOutcome(map[string]string{"state": outcome.State.String()}); err != nil {
			a.logger.Debugf("failed to record attach outcome: %v", err)
		}

		if outcome.Notification != nil {
			a.notifier.Notify(ctx, *outcome.Notification)
		}

		return outcome, nil
	})

	if err != nil {
		return nil, err
	}

	if shared {
		a.logger.Debugf("attach of code %s for user %s shared with a concurrent call", code, s.UserID)
	}

	outcome := *v.(*Outcome)

	// callers sharing the run hold their own slot, only the captured code is
	// cleared so a newer capture survives
	if outcome.State.Terminal() {
		if _, err := slot.CompareAndClear(ctx, code); err != nil {
			a.logger.Errorf("failed to clear pending organization code: %v", err)
		}
	}

	return &outcome, nil
}

// OnSessionEstablished returns a session handler attaching the pending code
// of slot once per sign in.
func (a *Attacher) OnSessionEstablished(slot pending.SlotInterface) session.Handler {
	return func(ctx context.Context, e session.Event) {
		if e.Type != session.Established {
			return
		}

		if _, err := a.Attach(ctx, slot, e.Session); err != nil {
			a.logger.Errorf("failed to attach pending organization code: %v", err)
		}
	}
}

// attachTx runs attach in its own transaction, committed before the outcome
// is handed to the callers sharing the run.
func (a *Attacher) attachTx(ctx context.Context, userID, code string) *Outcome {
	if a.txs == nil {
		return a.attach(ctx, userID, code)
	}

	var outcome *Outcome

	err := a.txs.WithTx(ctx, func(txCtx context.Context) error {
		outcome = a.attach(txCtx, userID, code)
		if outcome.State == AttachFailed {
			return errAttachFailed
		}
		return nil
	})

	if err == nil || errors.Is(err, errAttachFailed) {
		return outcome
	}

	a.logger.Errorf("failed to commit organization link of user %s: %v", userID, err)

	failed := &Outcome{State: AttachFailed, Code: code, Notification: &joinFailed}
	if outcome != nil {
		failed.Organization = outcome.Organization
	}

	return failed
}

func (a *Attacher) attach(ctx context.Context, userID, code string) *Outcome {
	ctx, span := a.tracer.Start(ctx, "orglink.Attacher.attach")
	defer span.End()

	a.logger.Debugf("user %s %s with code %s", userID, Attaching, code)

	org, err := a.storage.GetOrganizationByCode(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		a.logger.Infof("no organization for code %s", code)
		return &Outcome{State: OrgNotFound, Code: code, Notification: &orgNotFound}
	}

	if err != nil {
		a.logger.Errorf("failed to look up organization by code %s: %v", code, err)
		return &Outcome{State: AttachFailed, Code: code, Notification: &joinFailed}
	}

	failed := &Outcome{State: AttachFailed, Code: code, Organization: org, Notification: &joinFailed}

	profile, err := a.storage.GetProfileByUserID(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to read profile of user %s: %v", userID, err)
		return failed
	}

	if profile.InOrganization(org.ID) {
		a.logger.Debugf("user %s already belongs to organization %s", userID, org.ID)
	} else if err := a.storage.SetProfileOrganization(ctx, userID, org.ID); err != nil {
		a.logger.Errorf("failed to link user %s to organization %s: %v", userID, org.ID, err)
		return failed
	}

	a.logger.Security().AuthzSuccess(userID, "organization:"+org.ID)

	n := joined(org)
	return &Outcome{State: Attached, Code: code, Organization: org, Notification: &n}
}

func NewAttacher(
	storage StorageInterface,
	txs TxRunnerInterface,
	notifier notify.NotifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Attacher {
	a := new(Attacher)
	a.storage = storage
	a.txs = txs
	a.notifier = notifier

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
