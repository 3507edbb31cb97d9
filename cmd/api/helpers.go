package main

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

// readGenreParam pulls the :genre path segment out of the request. The
// router hands it over already URL-decoded; no case normalization happens.
func (app *application) readGenreParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("genre")
}

// writeJSON serializes data to the response. The catalog handlers pass a
// bare slice; error helpers pass an envelope.
func (app *application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}
