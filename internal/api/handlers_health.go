// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"net/http"
)

// HealthLive reports process liveness. It carries no dependency checks
// so orchestrators can distinguish a hung process from a degraded one.
func (router *Router) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "ok"})
}

// HealthReady runs the configured readiness probes. Any failing probe
// makes the whole endpoint report 503 with per-component status.
func (router *Router) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	components := make(map[string]string, len(router.checks))
	healthy := true
	for _, check := range router.checks {
		if err := check.Probe(r.Context()); err != nil {
			components[check.Name] = "down: " + err.Error()
			healthy = false
			continue
		}
		components[check.Name] = "up"
	}

	if !healthy {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeUnavailable,
			"one or more components are not ready",
			map[string]interface{}{"components": components})
		return
	}

	rw.Success(map[string]interface{}{
		"status":     "ready",
		"components": components,
	})
}
