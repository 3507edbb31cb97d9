package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leebrouse/cinelist/internal/data"
	"github.com/leebrouse/cinelist/internal/jsonlog"
)

func newTestApplication(t *testing.T, seed []data.SeedEntry) *application {
	t.Helper()

	models := data.NewModels(nil)
	if err := models.Movies.Load(seed); err != nil {
		t.Fatal(err)
	}

	var cfg config
	cfg.env = "testing"
	cfg.limiter.enable = false

	return &application{
		config: cfg,
		logger: jsonlog.New(io.Discard, jsonlog.LevelOff),
		models: models,
	}
}

func (app *application) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	app.router().ServeHTTP(rr, req)
	return rr
}

func decodeMovies(t *testing.T, rr *httptest.ResponseRecorder) []data.Movie {
	t.Helper()

	var movies []data.Movie
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &movies))
	return movies
}

func movieIDs(movies []data.Movie) []int64 {
	ids := []int64{}
	for _, movie := range movies {
		ids = append(ids, movie.ID)
	}
	return ids
}

func TestPopularMoviesEndpoint(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	rr := app.get(t, "/api/movies/popular")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	movies := decodeMovies(t, rr)
	assert.Equal(t, []int64{1, 2, 3, 4}, movieIDs(movies))
	for _, movie := range movies {
		assert.True(t, movie.IsPopular)
	}
}

func TestMoviesByGenreEndpoint(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	tests := []struct {
		name    string
		path    string
		wantIDs []int64
	}{
		{"comedy", "/api/movies/genre/Comedy", []int64{5, 6}},
		{"action", "/api/movies/genre/Action", []int64{3, 7, 8}},
		{"absent genre", "/api/movies/genre/Horror", []int64{}},
		{"lowercase does not match", "/api/movies/genre/comedy", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := app.get(t, tt.path)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantIDs, movieIDs(decodeMovies(t, rr)))
		})
	}
}

func TestMoviesByGenreURLDecoding(t *testing.T) {
	seed := append(data.DefaultSeed(), data.SeedEntry{
		Title:     "Blade Runner",
		Genre:     "Science Fiction",
		IsPopular: true,
	})
	app := newTestApplication(t, seed)

	rr := app.get(t, "/api/movies/genre/Science%20Fiction")

	require.Equal(t, http.StatusOK, rr.Code)
	movies := decodeMovies(t, rr)
	require.Len(t, movies, 1)
	assert.Equal(t, "Blade Runner", movies[0].Title)
	assert.Equal(t, int64(9), movies[0].ID)
}

func TestEmptyResultIsJSONArray(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	rr := app.get(t, "/api/movies/genre/Horror")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestMovieJSONShape(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	rr := app.get(t, "/api/movies/genre/Drama")

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	assert.Equal(t, map[string]any{
		"id":        float64(1),
		"title":     "The Shawshank Redemption",
		"genre":     "Drama",
		"isPopular": true,
	}, raw[0])
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	rr := app.get(t, "/api/movies")

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies/popular", nil)
	app.router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
