package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"petfinder/crawlworker/internal/scraper"
)

// RedisStore implements PetStore on a Redis hash keyed by pet id,
// which makes the merge idempotent and last-write-wins
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a new Redis-backed pet store
func NewRedisStore(addr string, db int, key string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisStore{
		client: client,
		key:    key,
	}
}

// AddPets merges pets into the hash, one field per pet id
func (s *RedisStore) AddPets(ctx context.Context, pets []scraper.Pet) error {
	if len(pets) == 0 {
		return nil
	}

	values := make(map[string]interface{}, len(pets))
	for _, pet := range pets {
		data, err := json.Marshal(pet)
		if err != nil {
			return fmt.Errorf("failed to marshal pet %s: %w", pet.ID, err)
		}
		values[pet.ID] = data
	}

	return s.client.HSet(ctx, s.key, values).Err()
}

// GetPets returns all stored pets
func (s *RedisStore) GetPets(ctx context.Context) ([]scraper.Pet, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}

	pets := make([]scraper.Pet, 0, len(fields))
	for id, data := range fields {
		var pet scraper.Pet
		if err := json.Unmarshal([]byte(data), &pet); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pet %s: %w", id, err)
		}
		pets = append(pets, pet)
	}

	return pets, nil
}

// Clear removes the whole hash
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
