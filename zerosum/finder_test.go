package zerosum

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 1774478

func randomValues(r *rand.Rand, n int, b Bounds) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = b.Min + r.Int64N(b.Max-b.Min)
	}
	return values
}

func TestFind(t *testing.T) {
	type args struct {
		values []int64
	}
	tests := []struct {
		name string
		args args
		want []Triplet[int64]
	}{
		{
			name: "mixed",
			args: args{values: []int64{-1, 0, 1, 2, -1, -4}},
			want: []Triplet[int64]{{-1, -1, 2}, {-1, 0, 1}},
		},
		{
			name: "zeros",
			args: args{values: []int64{0, 0, 0, 0}},
			want: []Triplet[int64]{{0, 0, 0}},
		},
		{
			name: "no solution",
			args: args{values: []int64{1, 2, 3}},
		},
		{
			name: "empty",
			args: args{values: nil},
		},
		{
			name: "single",
			args: args{values: []int64{0}},
		},
		{
			name: "two zeros",
			args: args{values: []int64{0, 0}},
		},
		{
			name: "pair only",
			args: args{values: []int64{-2, 1}},
		},
		{
			name: "single copy of right",
			args: args{values: []int64{-2, 1, 3}},
		},
		{
			name: "two zeros and a one",
			args: args{values: []int64{0, 0, 1}},
		},
		{
			name: "doubled right",
			args: args{values: []int64{-2, 1, 1}},
			want: []Triplet[int64]{{-2, 1, 1}},
		},
		{
			name: "doubled left",
			args: args{values: []int64{-1, 2, -1, 5}},
			want: []Triplet[int64]{{-1, -1, 2}},
		},
		{
			name: "domain edges",
			args: args{values: []int64{-3000, 1500, 1500, 2999, -2999, 0}},
			want: []Triplet[int64]{{-3000, 1500, 1500}, {-2999, 0, 2999}},
		},
		{
			name: "many duplicates",
			args: args{values: []int64{3, -3, 0, 0, 3, -3, 0, -6, 6, 3}},
			want: []Triplet[int64]{{-6, 0, 6}, {-6, 3, 3}, {-3, -3, 6}, {-3, 0, 3}, {0, 0, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindZeroSumTriplets(tt.args.values)
			require.NoError(t, err)
			if diff := cmp.Diff(SortTriplets(tt.want), SortTriplets(got)); diff != "" {
				t.Errorf("FindZeroSumTriplets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFind_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(testSeed, 1))
	finder, err := NewFinder[int64]()
	require.NoError(t, err)

	for range 20 {
		values := randomValues(r, 300+r.IntN(300), finder.Bounds())

		got, err := finder.Find(values)
		require.NoError(t, err)
		for _, tr := range got {
			assert.True(t, tr.Sorted(), "%v not sorted", tr)
			assert.True(t, tr.ZeroSum(), "%v does not sum to zero", tr)
		}
		assert.Len(t, Distinct(got), len(got), "duplicate triplets")

		again, err := finder.Find(values)
		require.NoError(t, err)
		assert.Equal(t, Fingerprint(got), Fingerprint(again))
	}
}

func TestFind_MatchesBruteForce(t *testing.T) {
	rounds := 100
	if testing.Short() {
		rounds = 10
	}
	r := rand.New(rand.NewPCG(testSeed, 0))
	b := DefaultBounds()

	for i := range rounds {
		values := randomValues(r, 250+r.IntN(250), b)

		want, err := BruteForce(values)
		require.NoError(t, err)
		got, err := FindZeroSumTriplets(values)
		require.NoError(t, err)

		if diff := cmp.Diff(Distinct(want), Distinct(got)); diff != "" {
			t.Fatalf("round %d: Find() and BruteForce() differ (-brute +find):\n%s", i, diff)
		}
	}
}

// 좁은 구간에서는 중복이 많아 개수 검사 분기를 모두 지난다
func TestFind_NarrowBoundsMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(testSeed, 2))
	b := Bounds{Min: -10, Max: 10}
	finder, err := NewFinder[int64](WithBounds(b))
	require.NoError(t, err)

	for i := range 500 {
		values := randomValues(r, r.IntN(40), b)

		got, err := finder.Find(values)
		require.NoError(t, err)

		want, err := BruteForce(values)
		if len(values) < 3 {
			require.ErrorIs(t, err, ErrInsufficientInput)
			assert.Empty(t, got)
			continue
		}
		require.NoError(t, err)
		if diff := cmp.Diff(Distinct(want), Distinct(got)); diff != "" {
			t.Fatalf("round %d %v: (-brute +find):\n%s", i, values, diff)
		}
	}
}

func TestFind_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		values  []int64
		wantMsg string
	}{
		{
			name:    "upper bound is exclusive",
			values:  []int64{0, 1, 3000, -1, 4000},
			wantMsg: "values[2] = 3000",
		},
		{
			name:    "below min",
			values:  []int64{-3001},
			wantMsg: "values[0] = -3001",
		},
		{
			name:    "extreme",
			values:  []int64{1, -1, 0, math.MinInt64},
			wantMsg: "values[3]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindZeroSumTriplets(tt.values)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, got)
		})
	}
}

func TestFind_Parallel(t *testing.T) {
	r := rand.New(rand.NewPCG(testSeed, 3))
	b := Bounds{Min: -200, Max: 200}

	sequential, err := NewFinder[int64](WithBounds(b))
	require.NoError(t, err)
	parallel, err := NewFinder[int64](WithBounds(b), WithWorkers(4), WithParallelThreshold(1))
	require.NoError(t, err)

	for _, n := range []int{1, 3, 7, 1000, 4099} {
		values := randomValues(r, n, b)

		want, err := sequential.Find(values)
		require.NoError(t, err)
		got, err := parallel.Find(values)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	t.Run("reports lowest index", func(t *testing.T) {
		values := randomValues(r, 100, b)
		values[10] = 500
		values[90] = -500

		_, err := parallel.Find(values)
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Contains(t, err.Error(), "values[10] = 500")
	})
}

func TestFinder_SharedAcrossGoroutines(t *testing.T) {
	r := rand.New(rand.NewPCG(testSeed, 4))
	b := Bounds{Min: -100, Max: 100}

	sequential, err := NewFinder[int64](WithBounds(b))
	require.NoError(t, err)
	parallel, err := NewFinder[int64](WithBounds(b), WithWorkers(3), WithParallelThreshold(1))
	require.NoError(t, err)

	inputs := make([][]int64, 16)
	wants := make([][]Triplet[int64], len(inputs))
	for i := range inputs {
		inputs[i] = randomValues(r, 200+37*i, b)
		wants[i], err = BruteForce(inputs[i])
		require.NoError(t, err)
	}
	bad := randomValues(r, 50, b)
	bad[7] = b.Max

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(inputs))
	for _, finder := range []*Finder[int64]{sequential, parallel} {
		for i := range inputs {
			wg.Add(2)
			go func() {
				defer wg.Done()
				got, err := finder.Find(inputs[i])
				if err != nil {
					errs <- err
					return
				}
				if diff := cmp.Diff(Distinct(wants[i]), Distinct(got)); diff != "" {
					errs <- errors.Newf("input %d workers %d (-brute +find):\n%s", i, finder.workers, diff)
				}
			}()
			// 실패하는 호출이 섞여도 다른 호출에 영향이 없어야 한다
			go func() {
				defer wg.Done()
				if _, err := finder.Find(bad); !errors.Is(err, ErrOutOfRange) {
					errs <- errors.Newf("workers %d: got %v, want out of range", finder.workers, err)
				}
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNewFinder_InvalidBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
	}{
		{name: "empty", bounds: Bounds{Min: 5, Max: 5}},
		{name: "inverted", bounds: Bounds{Min: 10, Max: -10}},
		{name: "too wide", bounds: Bounds{Min: 0, Max: MaxRange + 1}},
		{name: "too large", bounds: Bounds{Min: math.MaxInt64 - 10, Max: math.MaxInt64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFinder[int64](WithBounds(tt.bounds))
			require.ErrorIs(t, err, ErrInvalidBounds)

			_, err = Find([]int64{0, 0, 0}, WithBounds(tt.bounds))
			require.ErrorIs(t, err, ErrInvalidBounds)
		})
	}
}

func TestFind_Int8(t *testing.T) {
	values := []int8{-100, 50, 50, 99, -99, 0}

	got, err := Find(values, WithBounds(Bounds{Min: -100, Max: 100}))
	require.NoError(t, err)
	assert.Equal(t, []Triplet[int8]{{-100, 50, 50}, {-99, 0, 99}}, SortTriplets(got))

	want, err := BruteForce(values)
	require.NoError(t, err)
	assert.Equal(t, Distinct(want), Distinct(got))
}

func TestTable_Compact(t *testing.T) {
	tb := newTable(Bounds{Min: -3, Max: 3})
	require.NoError(t, countInto(tb, []int{2, -3, 2, 0, -3, 2}, 0))

	assert.Equal(t, []uniqueValue{{value: -3, count: 2}, {value: 0, count: 1}, {value: 2, count: 3}}, tb.compact())
	assert.Equal(t, 3, tb.count(2))
	assert.Zero(t, tb.count(1))
	assert.Zero(t, tb.count(3))
	assert.Zero(t, tb.count(-100))
}
