// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/access-service/internal/http/types"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/internal/version"
)

const (
	okValue          = "ok"
	unavailableValue = "unavailable"
)

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	rr := Status{Status: okValue, BuildInfo: buildInfo()}

	_ = types.WriteResponse(w, http.StatusOK, rr, "")
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	info := buildInfo()
	if info == nil {
		info = &BuildInfo{Version: version.Version}
	}

	_ = types.WriteResponse(w, http.StatusOK, info, "")
}

// ready reports whether the database can serve requests.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if a.db == nil {
		_ = types.WriteResponse(w, http.StatusOK, Status{Status: okValue}, "")
		return
	}

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		_ = types.WriteResponse(w, http.StatusServiceUnavailable, Status{Status: unavailableValue}, "database is not reachable")
		return
	}

	_ = types.WriteResponse(w, http.StatusOK, Status{Status: okValue}, "")
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	buildInfo := new(BuildInfo)
	buildInfo.Name = info.Main.Path
	buildInfo.Version = version.Version

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			buildInfo.CommitHash = setting.Value
		}
	}

	return buildInfo
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
