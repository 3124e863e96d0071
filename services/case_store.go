package services

import (
	"encoding/json"
	"fmt"
	"log"

	"justice_lab_go/models"
)

// MaxCachedCases caps the case cache; oldest by generation time are
// evicted first
const MaxCachedCases = 80

// CaseStore persists generated cases keyed by case id so they survive
// reloads and can be fetched from other screens
type CaseStore struct {
	kv KVStore
}

// NewCaseStore creates a case store over the given key-value layer
func NewCaseStore(kv KVStore) *CaseStore {
	return &CaseStore{kv: kv}
}

// readCache loads the full cache map; storage or decode problems yield
// an empty cache, never an error surfaced to generation
func (s *CaseStore) readCache() map[string]models.Case {
	cache := make(map[string]models.Case)
	value, ok, err := s.kv.Get(KeyCases)
	if err != nil {
		log.Printf("[WARNING] Failed to read case cache: %v", err)
		return cache
	}
	if !ok {
		return cache
	}
	if err := json.Unmarshal([]byte(value), &cache); err != nil {
		log.Printf("[WARNING] Corrupt case cache, starting fresh: %v", err)
		return make(map[string]models.Case)
	}
	return cache
}

func (s *CaseStore) writeCache(cache map[string]models.Case) error {
	payload, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("failed to encode case cache: %w", err)
	}
	return s.kv.Set(KeyCases, string(payload))
}

// SaveCase upserts a case into the cache, evicting the oldest entries by
// generation time when over the cap
func (s *CaseStore) SaveCase(c *models.Case) error {
	if c == nil || c.CaseID == "" {
		return fmt.Errorf("case has no id")
	}
	cache := s.readCache()
	cache[c.CaseID] = *c

	for len(cache) > MaxCachedCases {
		oldestID := ""
		for id, cached := range cache {
			if oldestID == "" || cached.Meta.GeneratedAt.Before(cache[oldestID].Meta.GeneratedAt) {
				oldestID = id
			}
		}
		delete(cache, oldestID)
	}
	return s.writeCache(cache)
}

// GetCaseByID fetches a cached case; the bool reports presence
func (s *CaseStore) GetCaseByID(caseID string) (*models.Case, bool) {
	cache := s.readCache()
	c, ok := cache[caseID]
	if !ok {
		return nil, false
	}
	return &c, true
}

// DeleteCase removes one case from the cache
func (s *CaseStore) DeleteCase(caseID string) error {
	cache := s.readCache()
	if _, ok := cache[caseID]; !ok {
		return nil
	}
	delete(cache, caseID)
	return s.writeCache(cache)
}

// Count returns the number of cached cases
func (s *CaseStore) Count() int {
	return len(s.readCache())
}
