// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

import json "github.com/goccy/go-json"

// jsonUnmarshal keeps the custom unmarshalers on the same JSON
// implementation the rest of the service uses.
func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
