package store

import (
	"context"
	"sync"

	"petfinder/crawlworker/internal/scraper"
)

// MemoryStore implements PetStore in memory, for tests and local development
type MemoryStore struct {
	mu   sync.RWMutex
	pets map[string]scraper.Pet
}

// NewMemoryStore creates an empty in-memory pet store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pets: make(map[string]scraper.Pet),
	}
}

// AddPets merges pets into the map, overwriting entries with the same id
func (s *MemoryStore) AddPets(_ context.Context, pets []scraper.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pet := range pets {
		s.pets[pet.ID] = pet
	}
	return nil
}

// GetPets returns all stored pets
func (s *MemoryStore) GetPets(_ context.Context) ([]scraper.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pets := make([]scraper.Pet, 0, len(s.pets))
	for _, pet := range s.pets {
		pets = append(pets, pet)
	}
	return pets, nil
}

// Clear removes all stored pets
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = make(map[string]scraper.Pet)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
