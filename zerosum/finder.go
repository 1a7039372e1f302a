// Package zerosum 유계 정수 구간에서 합이 0인 세 수(3SUM)를 모두 찾는다.
//
// 값 구간 [Min, Max) 을 미리 알고 있으므로 비교 정렬 대신 카운팅 테이블로
// 정렬과 존재 확인을 함께 처리한다. 공간 비용은 호출당 O(Max-Min).
package zerosum

import "golang.org/x/exp/constraints"

type config struct {
	bounds    Bounds
	workers   int
	threshold int
}

// Option Finder 설정
type Option func(c *config)

// WithBounds 값 구간 지정. 기본값은 DefaultBounds()
func WithBounds(b Bounds) Option {
	return func(c *config) {
		c.bounds = b
	}
}

// WithWorkers 카운팅 패스 병렬 워커 수. 1 이하면 순차 처리
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithParallelThreshold 병렬 카운팅을 시작할 최소 입력 길이. 0이면 구간 크기로 결정
func WithParallelThreshold(n int) Option {
	return func(c *config) {
		c.threshold = n
	}
}

// Finder 유계 구간 3SUM 탐색기. 생성 후 바뀌지 않으므로 여러 고루틴에서 공유해도 된다.
type Finder[T constraints.Signed] struct {
	config
}

// NewFinder 옵션 적용 후 구간을 검증
func NewFinder[T constraints.Signed](opts ...Option) (*Finder[T], error) {
	f := &Finder[T]{
		config: config{
			bounds:  DefaultBounds(),
			workers: 1,
		},
	}
	for _, opt := range opts {
		opt(&f.config)
	}
	if err := f.bounds.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Bounds 설정된 값 구간
func (f *Finder[T]) Bounds() Bounds {
	return f.bounds
}

// Find values 에서 합이 0인 서로 다른 세 수 조합을 모두 반환한다.
// 각 Triplet 은 오름차순이고 같은 Triplet 은 두 번 나오지 않는다. 결과 순서는 정해져 있지 않다.
// 구간 밖의 값이 있으면 가장 앞 인덱스에 대해 ErrOutOfRange 를 감싼 에러를 반환한다.
func (f *Finder[T]) Find(values []T) ([]Triplet[T], error) {
	t, err := f.count(values)
	if err != nil {
		return nil, err
	}
	return pairScan[T](t, t.compact()), nil
}

func (f *Finder[T]) count(values []T) (*table, error) {
	threshold := f.threshold
	if threshold <= 0 {
		threshold = parallelThreshold(f.bounds.Range())
	}
	if f.workers > 1 && len(values) >= threshold {
		return countParallel(values, f.bounds, f.workers)
	}
	t := newTable(f.bounds)
	if err := countInto(t, values, 0); err != nil {
		return nil, err
	}
	return t, nil
}

// pairScan left 는 앞에서, right 는 끝에서 left 까지 내려오며 세 번째 값을 테이블에서 찾는다.
// left <= needed <= right 인 경우만 보므로 각 조합은 정확히 한 번 발견된다.
func pairScan[T constraints.Signed](t *table, unique []uniqueValue) []Triplet[T] {
	var result []Triplet[T]
	emit := func(a, b, c int64) {
		result = append(result, Triplet[T]{T(a), T(b), T(c)})
	}

	for l := range unique {
		left := unique[l]
		for r := len(unique) - 1; r >= l; r-- {
			right := unique[r]
			needed := -left.value - right.value

			// right 가 작아질수록 needed 는 커지므로 이 left 에 대해서는 더 이상 해가 없음
			if needed > right.value {
				break
			}
			if needed < left.value {
				continue
			}

			//* 세 번째 값이 포인터 값과 같으면 존재는 확인됨. 개수만 보면 된다
			switch {
			case needed == left.value && needed == right.value:
				if left.count >= 3 {
					emit(needed, needed, needed)
				}
			case needed == left.value:
				if left.count >= 2 {
					emit(left.value, left.value, right.value)
				}
			case needed == right.value:
				if right.count >= 2 {
					emit(left.value, right.value, right.value)
				}
			case t.count(needed) > 0:
				emit(left.value, needed, right.value)
			}
		}
	}

	return result
}

// Find NewFinder + Find 한 번 호출
func Find[T constraints.Signed](values []T, opts ...Option) ([]Triplet[T], error) {
	f, err := NewFinder[T](opts...)
	if err != nil {
		return nil, err
	}
	return f.Find(values)
}

// FindZeroSumTriplets 기본 구간 [-3000, 3000) 에서 Find
func FindZeroSumTriplets(values []int64) ([]Triplet[int64], error) {
	return Find(values)
}
