// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medleyhq/medley/internal/models"
)

type fakeMovieSource struct {
	nowPlayingCalls int
	err             error
}

func (f *fakeMovieSource) Search(_ context.Context, query string) ([]models.Movie, error) {
	return []models.Movie{{Title: query}}, f.err
}

func (f *fakeMovieSource) NowPlaying(context.Context) ([]models.Movie, error) {
	f.nowPlayingCalls++
	return []models.Movie{{ID: 1}}, f.err
}

func (f *fakeMovieSource) Upcoming(context.Context) ([]models.Movie, error) {
	return []models.Movie{{ID: 2}}, f.err
}

func (f *fakeMovieSource) TopRated(context.Context) ([]models.Movie, error) {
	return []models.Movie{{ID: 3}}, f.err
}

func (f *fakeMovieSource) MovieDetails(_ context.Context, id int) (*models.MovieDetails, error) {
	d := &models.MovieDetails{}
	d.ID = id
	return d, f.err
}

func TestMoviesListCached(t *testing.T) {
	source := &fakeMovieSource{}
	movies := NewMovies(source)
	t.Cleanup(movies.Close)
	ctx := context.Background()

	first, err := movies.NowPlaying(ctx)
	require.NoError(t, err)
	second, err := movies.NowPlaying(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.nowPlayingCalls)
}

func TestMoviesListErrorNotCached(t *testing.T) {
	source := &fakeMovieSource{err: errors.New("upstream down")}
	movies := NewMovies(source)
	t.Cleanup(movies.Close)
	ctx := context.Background()

	_, err := movies.NowPlaying(ctx)
	require.Error(t, err)

	source.err = nil
	got, err := movies.NowPlaying(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, 2, source.nowPlayingCalls)
}

type fakeTVSource struct {
	popularCalls int
	err          error
}

func (f *fakeTVSource) PopularTV(context.Context) ([]models.TVSeries, error) {
	f.popularCalls++
	return []models.TVSeries{{ID: 10}}, f.err
}

func (f *fakeTVSource) TopRatedTV(context.Context) ([]models.TVSeries, error) {
	return []models.TVSeries{{ID: 11}}, f.err
}

func (f *fakeTVSource) SearchTV(_ context.Context, query string) ([]models.TVSeries, error) {
	return []models.TVSeries{{Name: query}}, f.err
}

func (f *fakeTVSource) TVDetails(_ context.Context, id int) (*models.TVSeriesDetails, error) {
	d := &models.TVSeriesDetails{}
	d.ID = id
	return d, f.err
}

func TestTVListCached(t *testing.T) {
	source := &fakeTVSource{}
	tv := NewTV(source)
	t.Cleanup(tv.Close)
	ctx := context.Background()

	first, err := tv.Popular(ctx)
	require.NoError(t, err)
	second, err := tv.Popular(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.popularCalls)
}

func TestTVDetailsPassthrough(t *testing.T) {
	tv := NewTV(&fakeTVSource{})
	t.Cleanup(tv.Close)

	details, err := tv.Details(context.Background(), 1396)
	require.NoError(t, err)
	assert.Equal(t, 1396, details.ID)
}

type fakeMusicSource struct {
	artistsErr  error
	artistCalls int
}

func (f *fakeMusicSource) TagTopArtists(_ context.Context, tag string, limit int) ([]models.Artist, error) {
	f.artistCalls++
	if f.artistsErr != nil {
		return nil, f.artistsErr
	}
	return []models.Artist{{Name: tag + " artist"}}, nil
}

func (f *fakeMusicSource) TagTopTracks(_ context.Context, tag string, limit int) ([]models.Track, error) {
	return []models.Track{{Name: tag + " track"}}, nil
}

func (f *fakeMusicSource) TagTopAlbums(_ context.Context, tag string, limit int) ([]models.Album, error) {
	return []models.Album{{Name: tag + " album"}}, nil
}

func (f *fakeMusicSource) SearchTracks(_ context.Context, query string) ([]models.Track, error) {
	return []models.Track{{Name: query}}, nil
}

func (f *fakeMusicSource) ArtistInfo(_ context.Context, artist string) (*models.Artist, error) {
	if artist == "" {
		return nil, errors.New("artist required")
	}
	return &models.Artist{Name: artist}, nil
}

type fakePortraits struct {
	urls map[string]string
}

func (f *fakePortraits) PageImage(_ context.Context, title string) string {
	return f.urls[title]
}

func TestMusicGenreShelf(t *testing.T) {
	music := NewMusic(&fakeMusicSource{}, &fakePortraits{})
	t.Cleanup(music.Close)

	content, err := music.Genre(context.Background(), "jazz")
	require.NoError(t, err)
	assert.Equal(t, "jazz", content.Genre)
	require.Len(t, content.Artists, 1)
	require.Len(t, content.Tracks, 1)
	require.Len(t, content.Albums, 1)
	assert.Equal(t, "jazz artist", content.Artists[0].Name)
}

func TestMusicGenreShelfCached(t *testing.T) {
	source := &fakeMusicSource{}
	music := NewMusic(source, &fakePortraits{})
	t.Cleanup(music.Close)

	ctx := context.Background()
	_, err := music.Genre(ctx, "jazz")
	require.NoError(t, err)
	_, err = music.Genre(ctx, "jazz")
	require.NoError(t, err)
	assert.Equal(t, 1, source.artistCalls)

	// A different genre maps to a different key.
	_, err = music.Genre(ctx, "rock")
	require.NoError(t, err)
	assert.Equal(t, 2, source.artistCalls)
}

func TestMusicGenreSectionFailureFailsShelf(t *testing.T) {
	music := NewMusic(&fakeMusicSource{artistsErr: errors.New("timeout")}, &fakePortraits{})
	t.Cleanup(music.Close)

	_, err := music.Genre(context.Background(), "jazz")
	require.Error(t, err)

	_, err = music.Genre(context.Background(), "")
	require.Error(t, err)
}

func TestMusicArtistPortrait(t *testing.T) {
	music := NewMusic(&fakeMusicSource{}, &fakePortraits{
		urls: map[string]string{"Miles Davis": "https://img/miles.jpg"},
	})
	t.Cleanup(music.Close)

	profile, err := music.Artist(context.Background(), "Miles Davis")
	require.NoError(t, err)
	assert.Equal(t, "https://img/miles.jpg", profile.ImageURL)

	profile, err = music.Artist(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Empty(t, profile.ImageURL)
}
