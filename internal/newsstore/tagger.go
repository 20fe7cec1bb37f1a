// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package newsstore

import (
	"strings"

	"github.com/medleyhq/medley/internal/models"
)

// sportKeywords maps a sport sub-tag to the title/description keywords
// that indicate it. Matching is best effort; an article that mentions
// nothing recognizable just keeps its topic tag.
var sportKeywords = map[string][]string{
	"cricket":    {"cricket", "odi", "t20", "test match", "ipl", "wicket"},
	"football":   {"football", "soccer", "premier league", "la liga", "champions league", "fifa", "uefa"},
	"tennis":     {"tennis", "wimbledon", "grand slam", "atp", "wta"},
	"basketball": {"basketball", "nba"},
}

// TagSports appends sport sub-tags to articles based on keyword
// matches so the sports feed can be narrowed per sport.
func TagSports(articles []models.Article) []models.Article {
	for i := range articles {
		haystack := strings.ToLower(articles[i].Title + " " + articles[i].Description)
		for subTag, keywords := range sportKeywords {
			if hasTag(articles[i].Tags, subTag) {
				continue
			}
			for _, keyword := range keywords {
				if strings.Contains(haystack, keyword) {
					articles[i].Tags = append(articles[i].Tags, subTag)
					break
				}
			}
		}
	}
	return articles
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
