// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgadmin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/access-service/internal/http/types"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/session"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/org-admin", a.handleOrgAdmin)
}

func (a *API) handleOrgAdmin(w http.ResponseWriter, r *http.Request) {
	var email string
	if sess, ok := session.FromContext(r.Context()); ok {
		email = sess.Email
	}

	result, err := a.service.Resolve(r.Context(), email)
	if err != nil {
		if result == nil {
			result = new(Result)
		}

		_ = types.WriteResponse(w, http.StatusInternalServerError, result, "Failed to resolve organization admin")
		return
	}

	if result.IsOrgAdmin {
		a.logger.Security().AuthzSuccess(email, "org-admin")
	}

	if err := types.WriteResponse(w, http.StatusOK, result, "Organization admin status"); err != nil {
		a.logger.Errorf("failed to write organization admin status: %v", err)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
