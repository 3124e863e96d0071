package services

import (
	"errors"
	"log"
	"sync"

	"justice_lab_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persisted blob keys owned by the engine
const (
	KeyRuns      = "justicelab.runs"
	KeyStats     = "justicelab.stats"
	KeyActiveRun = "justicelab.active_run"
	KeyCases     = "justicelab.cases"
)

// probeKey is written and deleted once at startup to detect a usable
// durable store
const probeKey = "justicelab.__probe__"

// KVStore is the flat key-value persistence layer behind the run and
// case stores
type KVStore interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(key string) error
}

// NewKVStore selects the durable backend when the probe round-trip
// succeeds, otherwise degrades to an in-memory store for the session
func NewKVStore(gdb *gorm.DB) KVStore {
	if gdb != nil {
		store := &GormKV{db: gdb}
		if err := store.Set(probeKey, "ok"); err == nil {
			if err := store.Delete(probeKey); err == nil {
				log.Println("Justice Lab store established (durable key-value)")
				return store
			}
		}
		log.Printf("[WARNING] Durable store probe failed. Falling back to in-memory store; data is lost on restart.")
	} else {
		log.Printf("[WARNING] No database available. Using in-memory store; data is lost on restart.")
	}
	return NewMemoryKV()
}

// GormKV is the durable backend over the storage_blobs table
type GormKV struct {
	db *gorm.DB
}

func (s *GormKV) Get(key string) (string, bool, error) {
	var blob models.StorageBlob
	err := s.db.First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return blob.Value, true, nil
}

func (s *GormKV) Set(key string, value string) error {
	blob := models.StorageBlob{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

func (s *GormKV) Delete(key string) error {
	return s.db.Delete(&models.StorageBlob{}, "key = ?", key).Error
}

// MemoryKV is the in-memory fallback backend
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (s *MemoryKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryKV) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
