// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

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
	mux.Get("/api/v0/access", a.handleStatus)
}

func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	// an anonymous request resolves to the all false status
	sess, _ := session.FromContext(r.Context())

	status := a.service.Resolve(r.Context(), sess)

	if err := types.WriteResponse(w, http.StatusOK, status, "Access status"); err != nil {
		a.logger.Errorf("failed to write access status: %v", err)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
