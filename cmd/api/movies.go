package main

import "net/http"

// Both catalog handlers answer 200 with a bare JSON array. An empty result
// is a normal response, never an error.

func (app *application) popularMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.models.Movies.Popular()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, movies, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) moviesByGenreHandler(w http.ResponseWriter, r *http.Request) {
	genre := app.readGenreParam(r)

	movies, err := app.models.Movies.ByGenre(genre)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, movies, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
