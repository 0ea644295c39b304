package election

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-process ElectionStore. Every call holds its lock, which is what makes it safe to share a
// Registry between goroutines.
type MemoryStore struct {
	mu        sync.RWMutex
	elections map[string]*Registry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{elections: map[string]*Registry{}}
}

// GetElections returns the IDs of every stored election, sorted.
func (ms *MemoryStore) GetElections() []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := make([]string, 0, len(ms.elections))
	for electionID := range ms.elections {
		result = append(result, electionID)
	}
	sort.Strings(result)
	return result
}

// GetElection returns the stored Registry. Callers that mutate it directly bypass the store's lock.
func (ms *MemoryStore) GetElection(electionID string) (*Registry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.get(electionID)
}

func (ms *MemoryStore) CreateElection(electionID string, candidates []Candidate) (*Registry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.elections[electionID]; exists {
		return nil, fmt.Errorf("election %s: %w", electionID, ErrElectionExists)
	}
	registry := NewRegistry(candidates)
	ms.elections[electionID] = registry
	return registry, nil
}

func (ms *MemoryStore) RemoveElection(electionID string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.elections, electionID)
}

func (ms *MemoryStore) RegisterVoter(electionID string, voter *Voter) (bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	registry, err := ms.get(electionID)
	if err != nil {
		return false, err
	}
	return registry.RegisterVoter(voter), nil
}

func (ms *MemoryStore) CastVote(electionID, voterID, candidateID string) (*Receipt, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	registry, err := ms.get(electionID)
	if err != nil {
		return nil, err
	}
	return registry.CastVote(voterID, candidateID)
}

func (ms *MemoryStore) Results(electionID string, cmp Comparator) ([]CandidateResult, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	registry, err := ms.get(electionID)
	if err != nil {
		return nil, err
	}
	return registry.Results(cmp), nil
}

func (ms *MemoryStore) Winner(electionID string) (*CandidateResult, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	registry, err := ms.get(electionID)
	if err != nil {
		return nil, err
	}
	return registry.Winner(), nil
}

// get must be called with ms.mu held.
func (ms *MemoryStore) get(electionID string) (*Registry, error) {
	registry, found := ms.elections[electionID]
	if !found {
		return nil, fmt.Errorf("no election with id %s: %w", electionID, ErrElectionNotFound)
	}
	return registry, nil
}
