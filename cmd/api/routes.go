package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) router() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthcheckHandler)

	// read-only catalog endpoints
	router.HandlerFunc(http.MethodGet, "/api/movies/popular", app.popularMoviesHandler)
	router.HandlerFunc(http.MethodGet, "/api/movies/genre/:genre", app.moviesByGenreHandler)

	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	return app.metrics(app.recoverPanic(app.enableCORS(app.ratelimited(router))))
}
