// Package score keeps one best-score integer per plugin mode. Storage goes
// through quasilyte/gdata under the llizardgui app name; every failure is a
// warning, never an error the caller has to handle — a host without storage
// simply plays without records.
package score

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// Store is the interface plugins record against. Submit reports whether v
// beat the previous best.
type Store interface {
	Best(mode string) int
	Submit(mode string, v int) bool
}

const blobName = "scores"

// DiskStore persists bests as a single JSON blob via gdata.
type DiskStore struct {
	mu    sync.Mutex
	m     *gdata.Manager
	bests map[string]int
}

// Open initializes score persistence and loads any existing blob.
func Open() (*DiskStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: "llizardgui"})
	if err != nil {
		log.Printf("Warning: could not initialize score storage: %v", err)
		return nil, err
	}

	s := &DiskStore{m: m, bests: map[string]int{}}

	data, err := m.LoadItem(blobName)
	if err != nil {
		log.Printf("Warning: could not load scores: %v", err)
		return s, nil
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.bests); err != nil {
			log.Printf("Warning: could not parse scores, starting fresh: %v", err)
			s.bests = map[string]int{}
		}
	}
	return s, nil
}

func (s *DiskStore) Best(mode string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bests[mode]
}

func (s *DiskStore) Submit(mode string, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v <= s.bests[mode] {
		return false
	}
	s.bests[mode] = v

	data, err := json.Marshal(s.bests)
	if err != nil {
		log.Printf("Warning: could not serialize scores: %v", err)
		return true
	}
	if err := s.m.SaveItem(blobName, data); err != nil {
		log.Printf("Warning: could not save scores: %v", err)
	}
	return true
}

// MemStore is the in-memory fallback used in tests and on hosts where
// gdata.Open failed.
type MemStore struct {
	mu    sync.Mutex
	bests map[string]int
}

func NewMemStore() *MemStore {
	return &MemStore{bests: map[string]int{}}
}

func (s *MemStore) Best(mode string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bests[mode]
}

func (s *MemStore) Submit(mode string, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v <= s.bests[mode] {
		return false
	}
	s.bests[mode] = v
	return true
}
