package corpus

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

type badgerStore struct {
	db *badger.DB
}

func openBadgerStore(dir string) (*badgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Put(c Case) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(roundKey(c.Round), encodeCase(c))
	})
}

func (s *badgerStore) Get(round uint64) (Case, error) {
	var c Case
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(roundKey(round))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "round %d", round)
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			c, err = decodeCase(round, v)
			return err
		})
	})
	return c, err
}

func (s *badgerStore) Rounds() ([]uint64, error) {
	var rounds []uint64
	err := s.db.View(func(txn *badger.Txn) error {
		// 키만 필요하므로 값 프리페치 끔
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			r, err := keyRound(it.Item().Key())
			if err != nil {
				return err
			}
			rounds = append(rounds, r)
		}
		return nil
	})
	return rounds, err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
