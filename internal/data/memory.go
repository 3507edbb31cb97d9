package data

import "sync"

// MemoryMovieModel keeps the catalog in a plain slice. After Load the slice
// is never written again, so the read methods need no locking; the mutex
// only guards against a second Load.
type MemoryMovieModel struct {
	mu     sync.Mutex
	loaded bool
	movies []Movie
}

func (m *MemoryMovieModel) Load(seed []SeedEntry) error {
	if err := validateSeed(seed); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return ErrAlreadyLoaded
	}

	movies := make([]Movie, 0, len(seed))
	for i, entry := range seed {
		movies = append(movies, Movie{
			ID:        int64(i + 1),
			Title:     entry.Title,
			Genre:     entry.Genre,
			IsPopular: entry.IsPopular,
		})
	}

	m.movies = movies
	m.loaded = true

	return nil
}

func (m *MemoryMovieModel) All() ([]Movie, error) {
	out := make([]Movie, len(m.movies))
	copy(out, m.movies)
	return out, nil
}

func (m *MemoryMovieModel) Popular() ([]Movie, error) {
	// empty results must stay non-nil so they marshal as [] and not null
	out := []Movie{}
	for _, movie := range m.movies {
		if movie.IsPopular {
			out = append(out, movie)
		}
	}
	return out, nil
}

func (m *MemoryMovieModel) ByGenre(genre string) ([]Movie, error) {
	out := []Movie{}
	for _, movie := range m.movies {
		if movie.Genre == genre {
			out = append(out, movie)
		}
	}
	return out, nil
}
