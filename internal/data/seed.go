package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/leebrouse/cinelist/internal/validator"
)

// SeedEntry is one row of bootstrap data. The JSON tags match the wire
// shape of Movie so a seed file reads the same as an API response minus ids.
type SeedEntry struct {
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	IsPopular bool   `json:"isPopular"`
}

func ValidateSeedEntry(v *validator.Validator, entry SeedEntry) {
	v.Check(entry.Title != "", "title", "must be provided")
	v.Check(entry.Genre != "", "genre", "must be provided")
}

// validateSeed rejects the whole seed on the first malformed entry. A bad
// seed must stop the process before it serves traffic.
func validateSeed(seed []SeedEntry) error {
	for i, entry := range seed {
		v := validator.New()
		if ValidateSeedEntry(v, entry); !v.Valid() {
			return fmt.Errorf("seed entry %d: %v", i+1, v.Errors)
		}
	}
	return nil
}

// DefaultSeed returns the built-in catalog used when no seed file is given.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{Title: "The Shawshank Redemption", Genre: "Drama", IsPopular: true},
		{Title: "The Godfather", Genre: "Crime", IsPopular: true},
		{Title: "The Dark Knight", Genre: "Action", IsPopular: true},
		{Title: "Pulp Fiction", Genre: "Crime", IsPopular: true},
		{Title: "The Hangover", Genre: "Comedy", IsPopular: false},
		{Title: "Superbad", Genre: "Comedy", IsPopular: false},
		{Title: "Mad Max: Fury Road", Genre: "Action", IsPopular: false},
		{Title: "Die Hard", Genre: "Action", IsPopular: false},
	}
}

// LoadSeedFile reads an ordered JSON array of seed entries from disk.
func LoadSeedFile(path string) ([]SeedEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()

	var seed []SeedEntry
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return seed, nil
}
