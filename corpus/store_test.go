package corpus

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, backend Backend) Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), string(backend))
	if backend == Bbolt {
		path += ".db"
	}
	s, err := Open(backend, path)
	require.NoError(t, err)
	return s
}

func TestStore(t *testing.T) {
	cases := []Case{
		{Round: 2, Seed: 42, Values: []int64{-1, 0, 1, 2, -1, -4}, Triplets: 2, Fingerprint: 0xdeadbeef},
		{Round: 0, Seed: 1774478, Values: []int64{math.MinInt64, math.MaxInt64, 0}, Triplets: 0, Fingerprint: 1},
		{Round: 1 << 40, Seed: 0, Values: []int64{}, Triplets: 0},
	}

	for _, backend := range Backends {
		t.Run(string(backend), func(t *testing.T) {
			s := openTestStore(t, backend)
			defer func() {
				assert.NoError(t, s.Close())
			}()

			for _, c := range cases {
				require.NoError(t, s.Put(c))
			}

			for _, want := range cases {
				got, err := s.Get(want.Round)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			rounds, err := s.Rounds()
			require.NoError(t, err)
			assert.Equal(t, []uint64{0, 2, 1 << 40}, rounds)

			_, err = s.Get(7)
			assert.ErrorIs(t, err, ErrNotFound)

			// 덮어쓰기
			updated := cases[0]
			updated.Values = []int64{0, 0, 0}
			updated.Triplets = 1
			require.NoError(t, s.Put(updated))
			got, err := s.Get(updated.Round)
			require.NoError(t, err)
			assert.Equal(t, updated, got)
		})
	}
}

func TestStore_Reopen(t *testing.T) {
	for _, backend := range []Backend{Bbolt, Badger, Pebble} {
		t.Run(string(backend), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "corpus")
			want := Case{Round: 9, Seed: 3, Values: []int64{5, -5, 0}, Triplets: 1, Fingerprint: 77}

			s, err := Open(backend, path)
			require.NoError(t, err)
			require.NoError(t, s.Put(want))
			require.NoError(t, s.Close())

			s, err = Open(backend, path)
			require.NoError(t, err)
			defer s.Close()

			got, err := s.Get(want.Round)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Backend("leveldb"), t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestDecodeCase_Corrupt(t *testing.T) {
	good := encodeCase(Case{Seed: 1, Values: []int64{1, 2, 3}, Triplets: 0, Fingerprint: 5})

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "truncated", data: good[:len(good)-1]},
		{name: "trailing", data: append(append([]byte{}, good...), 0)},
		{name: "huge count", data: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCase(0, tt.data)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestKeyOrder(t *testing.T) {
	assert.Less(t, string(roundKey(255)), string(roundKey(256)))

	r, err := keyRound(roundKey(12345))
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), r)

	_, err = keyRound([]byte{1, 2})
	assert.ErrorIs(t, err, ErrCorrupt)
}
