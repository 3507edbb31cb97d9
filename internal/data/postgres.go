package data

import (
	"context"
	"database/sql"
	"time"
)

// MovieModel is the Postgres-backed catalog store. The table is created on
// boot by Load; ORDER BY id keeps every read in insertion order.
type MovieModel struct {
	DB *sql.DB
}

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id bigserial PRIMARY KEY,
    title text NOT NULL,
    genre text NOT NULL,
    is_popular boolean NOT NULL
)`

func (m MovieModel) Load(seed []SeedEntry) error {
	if err := validateSeed(seed); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createMoviesTable); err != nil {
		return err
	}

	// a non-empty table means a previous process already seeded it
	var count int
	err = tx.QueryRowContext(ctx, "SELECT count(*) FROM movies").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyLoaded
	}

	stmt := `
		INSERT INTO movies (title, genre, is_popular)
		VALUES ($1, $2, $3)`

	for _, entry := range seed {
		_, err := tx.ExecContext(ctx, stmt, entry.Title, entry.Genre, entry.IsPopular)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (m MovieModel) All() ([]Movie, error) {
	stmt := `
		SELECT id, title, genre, is_popular
		FROM movies
		ORDER BY id`

	return m.query(stmt)
}

func (m MovieModel) Popular() ([]Movie, error) {
	stmt := `
		SELECT id, title, genre, is_popular
		FROM movies
		WHERE is_popular = true
		ORDER BY id`

	return m.query(stmt)
}

func (m MovieModel) ByGenre(genre string) ([]Movie, error) {
	// exact match, no case folding
	stmt := `
		SELECT id, title, genre, is_popular
		FROM movies
		WHERE genre = $1
		ORDER BY id`

	return m.query(stmt, genre)
}

func (m MovieModel) query(stmt string, args ...any) ([]Movie, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []Movie{}

	for rows.Next() {
		var movie Movie
		err := rows.Scan(&movie.ID, &movie.Title, &movie.Genre, &movie.IsPopular)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}
