// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"net/http"

	"github.com/medleyhq/medley/internal/models"
	"github.com/medleyhq/medley/internal/news"
	"github.com/medleyhq/medley/internal/newsstore"
)

var validNewsTags = map[string]bool{
	news.TagTop:    true,
	news.TagGames:  true,
	news.TagSports: true,
	news.TagMusic:  true,
	news.TagMedia:  true,
	"football":     true,
	"cricket":      true,
	"tennis":       true,
	"basketball":   true,
}

// News returns cached articles for a topic tag. Articles are served
// from the local store, which the background refresher keeps warm, so
// this endpoint never blocks on the upstream news API.
func (router *Router) News(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	tag := r.URL.Query().Get("tag")
	if tag == "" {
		tag = news.TagTop
	}
	if !validNewsTags[tag] {
		rw.BadRequest("unknown news tag: " + tag)
		return
	}

	router.writeArticles(rw, tag)
}

// NewsTop returns the cached top-headlines feed.
func (router *Router) NewsTop(w http.ResponseWriter, r *http.Request) {
	router.writeArticles(NewResponseWriter(w, r), news.TagTop)
}

func (router *Router) writeArticles(rw *ResponseWriter, tag string) {
	articles, err := router.services.News.ByTag(tag)
	if err != nil {
		rw.InternalError("news cache read failed")
		return
	}

	articles = newsstore.DedupTitles(articles)
	if articles == nil {
		articles = []models.Article{}
	}

	rw.SuccessCached(map[string]interface{}{
		"tag":      tag,
		"articles": articles,
		"count":    len(articles),
	})
}
