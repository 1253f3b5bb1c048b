// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime        *prometheus.HistogramVec
	dependencyAvailable *prometheus.GaugeVec
	attachOutcomes      *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailable == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailable.With(tags).Set(value)

	return nil
}

// IncrementAttachOutcome counts a terminal organization attach, labelled by state
func (m *Monitor) IncrementAttachOutcome(tags map[string]string) error {
	if m.attachOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.attachOutcomes.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("metric %s already registered: %v", "http_response_time_seconds", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencyAvailable); err != nil {
		m.logger.Debugf("metric %s already registered: %v", "dependency_available", err)
	}
}

func (m *Monitor) registerCounters() {
	m.attachOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "org_link_attach_total",
			Help:        "terminal organization attach attempts by outcome",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"state"},
	)

	if err := prometheus.Register(m.attachOutcomes); err != nil {
		m.logger.Debugf("metric %s already registered: %v", "org_link_attach_total", err)
	}
}

// NewMonitor creates a prometheus backed monitor and registers its collectors
// on the default registry.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
