// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	User     string          `validate:"required,max=8"`
	Category string          `validate:"required,oneof=movies music"`
	Items    map[string]bool `validate:"required,min=1"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(&sampleRequest{
		User:     "alice",
		Category: "movies",
		Items:    map[string]bool{"550": true},
	})
	assert.Nil(t, err)
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Category: "movies", Items: map[string]bool{"1": true}})

	require.NotNil(t, err)
	require.Len(t, err.Fields(), 1)
	assert.Equal(t, "User", err.Fields()[0].Field)
	assert.Equal(t, "User is required", err.Error())
}

func TestValidateStructOneof(t *testing.T) {
	err := ValidateStruct(&sampleRequest{
		User:     "alice",
		Category: "podcasts",
		Items:    map[string]bool{"1": true},
	})

	require.NotNil(t, err)
	assert.Equal(t, "Category must be one of: movies music", err.Error())
}

func TestValidateStructCollectsMultiple(t *testing.T) {
	err := ValidateStruct(&sampleRequest{User: "much-too-long-name"})

	require.NotNil(t, err)
	assert.Len(t, err.Fields(), 3)

	details := err.Details()
	fields, ok := details["fields"].([]map[string]interface{})
	require.True(t, ok)
	assert.Len(t, fields, 3)
}

func TestValidateStructStringMax(t *testing.T) {
	err := ValidateStruct(&sampleRequest{
		User:     "much-too-long-name",
		Category: "music",
		Items:    map[string]bool{"1": true},
	})

	require.NotNil(t, err)
	assert.Equal(t, "User must be at most 8 characters", err.Error())
}
