// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/access-service/internal/logging"
)

type API struct {
	service   ServiceInterface
	validator *validator.Validate
	secret    string
	logger    logging.LoggerInterface
}

func NewAPI(service ServiceInterface, validate *validator.Validate, secret string, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: validate,
		secret:    secret,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/webhooks", func(r chi.Router) {
		r.Use(a.requireSecret)
		r.Post("/registration", a.registration)
		r.Post("/access-token", a.accessToken)
	})
}

// requireSecret checks the shared bearer secret when one is configured.
func (a *API) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) != 1 {
			a.logger.Security().AuthzFailure("webhook", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("Failed to decode registration webhook: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	a.logger.Debugf("Received registration webhook for identity %s", identity.ID)

	if err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email); err != nil {
		a.logger.Errorf("Failed to handle registration: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) accessToken(w http.ResponseWriter, r *http.Request) {
	var req AccessTokenHookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Errorf("Failed to decode access token hook: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validator.Struct(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := a.service.HandleAccessTokenHook(r.Context(), &req)
	if err != nil {
		a.logger.Errorf("Failed to handle access token hook: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("Failed to encode access token hook response: %v", err)
	}
}
