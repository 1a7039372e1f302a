package corpus

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebbleStore(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(c Case) error {
	return s.db.Set(roundKey(c.Round), encodeCase(c), pebble.Sync)
}

func (s *pebbleStore) Get(round uint64) (Case, error) {
	v, closer, err := s.db.Get(roundKey(round))
	if errors.Is(err, pebble.ErrNotFound) {
		return Case{}, errors.Wrapf(ErrNotFound, "round %d", round)
	}
	if err != nil {
		return Case{}, err
	}
	defer closer.Close()
	return decodeCase(round, v)
}

func (s *pebbleStore) Rounds() (rounds []uint64, err error) {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.CombineErrors(err, it.Close())
	}()

	for it.First(); it.Valid(); it.Next() {
		r, err := keyRound(it.Key())
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
