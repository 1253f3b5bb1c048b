// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orglink

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/access-service/internal/http/types"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/notify"
	"github.com/canonical/access-service/internal/pending"
	"github.com/canonical/access-service/internal/session"
)

// AttachRequest optionally carries a code to capture before attaching.
type AttachRequest struct {
	Code string `json:"code" validate:"omitempty,max=128,printascii"`
}

// PendingResponse describes the pending code held by the caller.
type PendingResponse struct {
	Pending      bool                 `json:"pending"`
	Code         string               `json:"code,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

type API struct {
	attacher     AttacherInterface
	validator    *validator.Validate
	cookieSecure bool

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/org-link", a.handlePending)
	mux.Post("/api/v0/org-link/attach", a.handleAttach)
}

// CaptureMiddleware stores the code of any GET request carrying one and
// redirects to the same path on this host without it.
func (a *API) CaptureMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !r.URL.Query().Has(CodeParam) {
			next.ServeHTTP(w, r)
			return
		}

		slot := pending.NewCookieSlot(w, r, a.cookieSecure)

		stripped, _, err := a.attacher.Capture(r.Context(), slot, r.URL)
		if err != nil {
			a.logger.Errorf("failed to capture organization code: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		http.Redirect(w, r, localRedirect(stripped), http.StatusSeeOther)
	})
}

func (a *API) handlePending(w http.ResponseWriter, r *http.Request) {
	slot := pending.NewCookieSlot(w, r, a.cookieSecure)

	code, err := slot.Get(r.Context())
	if err != nil {
		a.logger.Errorf("failed to read pending organization code: %v", err)
		_ = types.WriteError(w, http.StatusBadRequest, "Invalid pending organization code")
		return
	}

	resp := PendingResponse{Pending: code != "", Code: code}
	if resp.Pending {
		detected := linkDetected
		resp.Notification = &detected
	}

	_ = types.WriteResponse(w, http.StatusOK, resp, "Pending organization code")
}

func (a *API) handleAttach(w http.ResponseWriter, r *http.Request) {
	var req AttachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = types.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "Invalid organization code")
		return
	}

	slot := pending.NewCookieSlot(w, r, a.cookieSecure)

	if req.Code != "" {
		if err := slot.Set(r.Context(), req.Code); err != nil {
			a.logger.Errorf("failed to store pending organization code: %v", err)
			_ = types.WriteError(w, http.StatusInternalServerError, "Failed to store organization code")
			return
		}
	}

	sess, _ := session.FromContext(r.Context())

	outcome, err := a.attacher.Attach(r.Context(), slot, sess)
	if err != nil {
		a.logger.Errorf("failed to attach organization: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "Failed to attach organization")
		return
	}

	_ = types.WriteResponse(w, http.StatusOK, outcome, "Organization link "+outcome.State.String())
}

func NewAPI(attacher AttacherInterface, validate *validator.Validate, cookieSecure bool, logger logging.LoggerInterface) *API {
	return &API{
		attacher:     attacher,
		validator:    validate,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}
