// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package api exposes the aggregation services over HTTP.
//
// Routing uses Chi with a global middleware stack (request ID, real IP,
// panic recovery, CORS) and per-group rate limiting. Every endpoint
// writes the models.APIResponse envelope through ResponseWriter, so
// clients always get the same shape on success and failure.
package api
