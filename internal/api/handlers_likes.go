// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/validation"
)

// likesRequest carries the validated request parameters. Items is only
// set on PUT; false flags remove a like without deleting history.
type likesRequest struct {
	User     string          `validate:"required,max=64,printascii"`
	Category string          `validate:"required,oneof=movies tvseries games books musicArtists musicAlbums musicTracks teams players"`
	Items    map[string]bool `validate:"omitempty,max=500"`
}

const maxLikesBodyBytes = 64 << 10

func likesParams(rw *ResponseWriter, r *http.Request) (likesRequest, bool) {
	req := likesRequest{
		User:     r.URL.Query().Get("user"),
		Category: chi.URLParam(r, "category"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, verr.Error(), verr.Details())
		return likesRequest{}, false
	}
	return req, true
}

// LikesGet returns a user's likes document for one category.
func (router *Router) LikesGet(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, ok := likesParams(rw, r)
	if !ok {
		return
	}

	doc, err := router.services.Likes.Get(req.User, req.Category)
	if err != nil {
		rw.InternalError("likes store read failed")
		return
	}

	rw.Success(doc)
}

// LikesPut merges like flags into a user's category document and
// returns the merged result.
func (router *Router) LikesPut(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, ok := likesParams(rw, r)
	if !ok {
		return
	}

	var body struct {
		Items map[string]bool `json:"items"`
	}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLikesBodyBytes))
	if err := decoder.Decode(&body); err != nil {
		rw.BadRequest("invalid request body: " + err.Error())
		return
	}
	if len(body.Items) == 0 {
		rw.BadRequest("items must not be empty")
		return
	}

	req.Items = body.Items
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, verr.Error(), verr.Details())
		return
	}

	doc, err := router.services.Likes.SetItems(req.User, req.Category, req.Items)
	if err != nil {
		rw.InternalError("likes store write failed")
		return
	}

	rw.Success(doc)
}
