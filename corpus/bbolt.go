package corpus

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

type bboltStore struct {
	db *bbolt.DB
}

func openBboltStore(path string) (*bboltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &bboltStore{db: db}, nil
}

func (s *bboltStore) Put(c Case) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(roundKey(c.Round), encodeCase(c))
	})
}

func (s *bboltStore) Get(round uint64) (Case, error) {
	var c Case
	err := s.db.View(func(tx *bbolt.Tx) error {
		// Get 결과는 트랜잭션 안에서만 유효. decodeCase 가 복사한다
		v := tx.Bucket([]byte(bucketName)).Get(roundKey(round))
		if v == nil {
			return errors.Wrapf(ErrNotFound, "round %d", round)
		}
		var err error
		c, err = decodeCase(round, v)
		return err
	})
	return c, err
}

func (s *bboltStore) Rounds() ([]uint64, error) {
	var rounds []uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			r, err := keyRound(k)
			if err != nil {
				return err
			}
			rounds = append(rounds, r)
		}
		return nil
	})
	return rounds, err
}

func (s *bboltStore) Close() error {
	return s.db.Close()
}
