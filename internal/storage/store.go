// Package storage is the mentor's persistence adapter: a flat
// key-value contract with pluggable backends. The mentor core never
// assumes a storage technology, only get/set/remove by string key.
package storage

import (
	"errors"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	apperrors "github.com/ranilsonsilva664-collab/meu-controle-ia/internal/errors"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
)

// Store is the narrow key-value contract the mentor core depends on.
// Get returns ok=false when the key is absent.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// gormStore persists entries in the mentor_kv table.
type gormStore struct {
	db *gorm.DB
}

// NewGorm returns a Store backed by the mentor_kv table.
func NewGorm(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.ErrStateUnavailable, err)
	}
	return entry.Value, true, nil
}

func (s *gormStore) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	if err := s.db.Save(&entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStateUnavailable, err)
	}
	return nil
}

func (s *gormStore) Remove(key string) error {
	if err := s.db.Delete(&models.KVEntry{}, "key = ?", key).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStateUnavailable, err)
	}
	return nil
}

// memoryStore keeps entries in process memory. Used by tests and as a
// fallback when no database is configured.
type memoryStore struct {
	cache *gocache.Cache
}

// NewMemory returns an in-memory Store. Entries never expire.
func NewMemory() Store {
	return &memoryStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (s *memoryStore) Get(key string) (string, bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	return raw.(string), true, nil
}

func (s *memoryStore) Set(key, value string) error {
	s.cache.Set(key, value, gocache.NoExpiration)
	return nil
}

func (s *memoryStore) Remove(key string) error {
	s.cache.Delete(key)
	return nil
}
