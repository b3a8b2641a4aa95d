package store

import (
	"context"

	"petfinder/crawlworker/internal/scraper"
)

// PetStore accumulates Pet records across crawl runs, deduplicated by id.
// Merging is last-write-wins on id collision.
type PetStore interface {
	// AddPets merges pets into the store, overwriting entries with the same id
	AddPets(ctx context.Context, pets []scraper.Pet) error

	// GetPets returns all stored pets
	GetPets(ctx context.Context) ([]scraper.Pet, error)

	// Clear removes all stored pets
	Clear(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
