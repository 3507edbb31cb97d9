package data

import (
	"database/sql"
	"errors"
)

var (
	// ErrAlreadyLoaded is returned when Load is called on a store that
	// already holds records. Loading is a startup-only operation.
	ErrAlreadyLoaded = errors.New("movie store already loaded")
)

// MovieStore is the read-only catalog behind the API. Load runs exactly once
// at startup, before the server accepts requests; every other method is a
// pure read over the loaded snapshot.
type MovieStore interface {
	Load(seed []SeedEntry) error
	All() ([]Movie, error)
	Popular() ([]Movie, error)
	ByGenre(genre string) ([]Movie, error)
}

type Models struct {
	Movies MovieStore
}

// NewModels picks the Postgres-backed store when a connection pool is
// supplied and the in-memory store otherwise.
func NewModels(db *sql.DB) Models {
	if db != nil {
		return Models{
			Movies: MovieModel{DB: db},
		}
	}
	return Models{
		Movies: &MemoryMovieModel{},
	}
}
