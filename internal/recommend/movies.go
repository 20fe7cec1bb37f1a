// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/likes"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
	"github.com/medleyhq/medley/internal/models"
	"github.com/medleyhq/medley/internal/sources"
)

// discoverSortOrders are the orderings queried per genre. Multiple
// orderings widen the candidate pool beyond what any single ranking
// surfaces.
var discoverSortOrders = []string{
	"popularity.desc",
	"release_date.desc",
	"vote_average.desc",
}

const (
	// discoverPagesPerSort bounds pages fetched per genre and ordering.
	discoverPagesPerSort = 5
	// shortPageThreshold ends a page loop early: a page under this size
	// means the ordering is exhausted.
	shortPageThreshold = 15
	// discoverVoteCountFloor filters barely-rated noise from discover.
	discoverVoteCountFloor = 5
	// fallbackVoteCountFloor is stricter because the fallback ranks by
	// rating alone.
	fallbackVoteCountFloor = 20
)

// MovieCatalog is the TMDB surface the movie scorer needs.
type MovieCatalog interface {
	MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error)
	Discover(ctx context.Context, params sources.DiscoverParams) ([]models.Movie, error)
}

// LikesReader reads liked item IDs per user and category.
type LikesReader interface {
	LikedIDs(userID, category string) ([]string, error)
}

// MovieScorer produces personalized movie recommendations.
type MovieScorer struct {
	catalog MovieCatalog
	likes   LikesReader
	cfg     *config.RecommendConfig

	// now is swappable for tests.
	now func() time.Time
}

// NewMovieScorer creates a movie scorer.
func NewMovieScorer(catalog MovieCatalog, likesReader LikesReader, cfg *config.RecommendConfig) *MovieScorer {
	return &MovieScorer{
		catalog: catalog,
		likes:   likesReader,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Recommend returns up to ResultSize movies tailored to the user's
// liked movies, or the fallback feed when no profile can be built.
// userID may be empty for anonymous users.
func (s *MovieScorer) Recommend(ctx context.Context, userID string) ([]models.Movie, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendDuration.WithLabelValues("movies").Observe(time.Since(start).Seconds())
	}()

	topGenres := s.profileGenres(ctx, userID)
	if len(topGenres) == 0 {
		return s.fallback(ctx, "no_profile")
	}

	candidates := s.discoverByGenres(ctx, topGenres)
	picked := s.rank(candidates)
	if len(picked) == 0 {
		return s.fallback(ctx, "empty_result")
	}

	logging.Debug().Str("user", userID).Ints("genres", topGenres).Int("results", len(picked)).Msg("Movie recommendations built")
	return picked, nil
}

// profileGenres derives the user's top genres from liked movies.
// Returns nil whenever a profile cannot be built; every failure mode
// collapses into the fallback path.
func (s *MovieScorer) profileGenres(ctx context.Context, userID string) []int {
	if userID == "" {
		return nil
	}

	likedIDs, err := s.likes.LikedIDs(userID, likes.CategoryMovies)
	if err != nil {
		logging.Warn().Str("user", userID).Err(err).Msg("Failed to read liked movies")
		return nil
	}
	if len(likedIDs) == 0 {
		return nil
	}

	// Sorted numeric order makes the fan-out, and with it the
	// first-discovered tie-break below, deterministic.
	movieIDs := make([]int, 0, len(likedIDs))
	for _, raw := range likedIDs {
		id, err := strconv.Atoi(raw)
		if err != nil {
			logging.Debug().Str("id", raw).Msg("Skipping non-numeric liked movie id")
			continue
		}
		movieIDs = append(movieIDs, id)
	}
	sort.Ints(movieIDs)
	if len(movieIDs) > s.cfg.MaxLikedDetails {
		movieIDs = movieIDs[:s.cfg.MaxLikedDetails]
	}

	// Concurrent details fan-out; failed fetches leave nil slots.
	details := make([]*models.MovieDetails, len(movieIDs))
	var wg sync.WaitGroup
	for i, id := range movieIDs {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			d, err := s.catalog.MovieDetails(ctx, id)
			if err != nil {
				logging.Debug().Int("movie_id", id).Err(err).Msg("Skipping liked movie, details fetch failed")
				return
			}
			details[i] = d
		}(i, id)
	}
	wg.Wait()

	// Count genre occurrences, remembering discovery order for ties.
	counts := map[int]int{}
	firstSeen := map[int]int{}
	order := 0
	for _, d := range details {
		if d == nil {
			continue
		}
		genreIDs := make([]int, 0, len(d.Genres))
		for _, g := range d.Genres {
			genreIDs = append(genreIDs, g.ID)
		}
		if len(genreIDs) == 0 {
			genreIDs = d.GenreIDs
		}
		for _, id := range genreIDs {
			if _, ok := firstSeen[id]; !ok {
				firstSeen[id] = order
				order++
			}
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	genres := make([]int, 0, len(counts))
	for id := range counts {
		genres = append(genres, id)
	}
	sort.Slice(genres, func(i, j int) bool {
		if counts[genres[i]] != counts[genres[j]] {
			return counts[genres[i]] > counts[genres[j]]
		}
		return firstSeen[genres[i]] < firstSeen[genres[j]]
	})
	if len(genres) > s.cfg.TopMovieGenres {
		genres = genres[:s.cfg.TopMovieGenres]
	}
	return genres
}

// discoverByGenres pulls recent releases for each profile genre across
// all sort orders. Individual page failures are skipped.
func (s *MovieScorer) discoverByGenres(ctx context.Context, genres []int) []models.Movie {
	gte, lte := s.releaseWindow()
	languages := joinLanguages(s.cfg.Languages)

	var all []models.Movie
	for _, genre := range genres {
		for _, sortBy := range discoverSortOrders {
			for page := 1; page <= discoverPagesPerSort; page++ {
				if ctx.Err() != nil {
					return all
				}
				results, err := s.catalog.Discover(ctx, sources.DiscoverParams{
					SortBy:           sortBy,
					Page:             page,
					WithGenres:       strconv.Itoa(genre),
					VoteCountGTE:     discoverVoteCountFloor,
					OriginalLanguage: languages,
					ReleaseDateGTE:   gte,
					ReleaseDateLTE:   lte,
				})
				if err != nil {
					logging.Debug().Int("genre", genre).Str("sort", sortBy).Int("page", page).Err(err).Msg("Discover page failed, continuing")
					break
				}
				all = append(all, results...)
				if len(results) < shortPageThreshold {
					break
				}
			}
		}
	}
	return all
}

// rank deduplicates by movie ID, keeps well-rated entries, and returns
// the top slice by rating. The sort is stable so equal ratings keep
// first-discovered order.
func (s *MovieScorer) rank(candidates []models.Movie) []models.Movie {
	seen := make(map[int]struct{}, len(candidates))
	unique := make([]models.Movie, 0, len(candidates))
	for _, m := range candidates {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		if m.VoteAverage > s.cfg.MinRating {
			unique = append(unique, m)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].VoteAverage > unique[j].VoteAverage
	})
	if len(unique) > s.cfg.ResultSize {
		unique = unique[:s.cfg.ResultSize]
	}
	return unique
}

// fallback serves a non-personalized feed of recent highly-rated
// releases across a wider language set.
func (s *MovieScorer) fallback(ctx context.Context, reason string) ([]models.Movie, error) {
	metrics.RecommendFallbacks.WithLabelValues("movies", reason).Inc()
	logging.Debug().Str("reason", reason).Msg("Serving fallback movie recommendations")

	gte, lte := s.releaseWindow()
	languages := joinLanguages(s.cfg.FallbackLanguages)

	var all []models.Movie
	for page := 1; page <= discoverPagesPerSort; page++ {
		if ctx.Err() != nil {
			break
		}
		results, err := s.catalog.Discover(ctx, sources.DiscoverParams{
			SortBy:           "vote_average.desc",
			Page:             page,
			VoteCountGTE:     fallbackVoteCountFloor,
			OriginalLanguage: languages,
			ReleaseDateGTE:   gte,
			ReleaseDateLTE:   lte,
		})
		if err != nil {
			logging.Debug().Int("page", page).Err(err).Msg("Fallback discover page failed, continuing")
			break
		}
		all = append(all, results...)
		if len(results) < shortPageThreshold {
			break
		}
	}

	seen := make(map[int]struct{}, len(all))
	unique := make([]models.Movie, 0, len(all))
	for _, m := range all {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		if m.VoteAverage > s.cfg.MinRating {
			unique = append(unique, m)
		}
	}
	if len(unique) > s.cfg.FallbackResultSize {
		unique = unique[:s.cfg.FallbackResultSize]
	}
	if len(unique) == 0 {
		return nil, fmt.Errorf("movie recommendations unavailable: fallback returned nothing")
	}
	return unique, nil
}

func (s *MovieScorer) releaseWindow() (gte, lte string) {
	now := s.now().UTC()
	return now.Add(-s.cfg.ReleaseWindow).Format("2006-01-02"), now.Format("2006-01-02")
}

func joinLanguages(langs []string) string {
	out := ""
	for i, l := range langs {
		if i > 0 {
			out += "|"
		}
		out += l
	}
	return out
}
