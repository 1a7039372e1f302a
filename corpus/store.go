// Package corpus 벤치마크 입력 케이스를 KV 저장소에 보관해서 다시 재생할 수 있게 한다.
package corpus

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

var (
	ErrNotFound       = errors.New("corpus: case not found")
	ErrCorrupt        = errors.New("corpus: corrupt record")
	ErrUnknownBackend = errors.New("corpus: unknown backend")
)

// Backend 저장소 종류
type Backend string

const (
	Memory Backend = "memory"
	Bbolt  Backend = "bbolt"
	Badger Backend = "badger"
	Pebble Backend = "pebble"
)

// Backends 지원하는 전체 목록
var Backends = []Backend{Memory, Bbolt, Badger, Pebble}

const bucketName = "cases"

// Case 한 라운드의 입력과 기대 결과 요약
type Case struct {
	Round       uint64
	Seed        uint64
	Values      []int64
	Triplets    int    // 서로 다른 Triplet 수
	Fingerprint uint64 // zerosum.Fingerprint
}

// Store 라운드 번호를 키로 Case 를 저장
type Store interface {
	Put(c Case) error
	Get(round uint64) (Case, error)
	// Rounds 오름차순
	Rounds() ([]uint64, error)
	Close() error
}

// Open path 는 bbolt 면 파일, badger/pebble 이면 디렉터리. memory 는 무시
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case Memory:
		return newMemoryStore(), nil
	case Bbolt:
		return openBboltStore(path)
	case Badger:
		return openBadgerStore(path)
	case Pebble:
		return openPebbleStore(path)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", string(backend))
}

// roundKey 빅엔디안이라 키 순서 == 라운드 순서
func roundKey(round uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, round)
	return key
}

func keyRound(key []byte) (uint64, error) {
	if len(key) != 8 {
		return 0, errors.Wrapf(ErrCorrupt, "key length %d", len(key))
	}
	return binary.BigEndian.Uint64(key), nil
}
