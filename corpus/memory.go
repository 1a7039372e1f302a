package corpus

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// memoryStore 인메모리. 다른 백엔드와 같게 인코딩된 바이트를 보관한다
type memoryStore struct {
	mu   sync.RWMutex
	data map[uint64][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[uint64][]byte)}
}

func (s *memoryStore) Put(c Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[c.Round] = encodeCase(c)
	return nil
}

func (s *memoryStore) Get(round uint64) (Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[round]
	if !ok {
		return Case{}, errors.Wrapf(ErrNotFound, "round %d", round)
	}
	return decodeCase(round, v)
}

func (s *memoryStore) Rounds() ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rounds := make([]uint64, 0, len(s.data))
	for r := range s.data {
		rounds = append(rounds, r)
	}
	slices.Sort(rounds)
	return rounds, nil
}

func (s *memoryStore) Close() error {
	return nil
}
