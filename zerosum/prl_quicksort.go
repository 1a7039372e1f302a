package zerosum

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// parallelSortRuns sortRuns 의 병렬판. 분할 양쪽을 고루틴으로 나누되
// 호출마다 만든 workers 칸짜리 세마포어가 비어 있을 때만 새로 띄운다.
func parallelSortRuns[T constraints.Signed](values []T, workers int) []valueRun[T] {
	arr := make([]T, len(values))
	copy(arr, values)
	if workers < 2 {
		return appendSortedRuns(nil, arr)
	}

	s := runSorter[T]{
		sem:       make(chan struct{}, workers),
		threshold: sequentialThreshold(len(arr)),
	}
	return s.sort(arr, workers)
}

type runSorter[T constraints.Signed] struct {
	sem       chan struct{}
	threshold int
}

func (s *runSorter[T]) sort(arr []T, depth int) []valueRun[T] {
	if depth <= 1 || len(arr) <= max(s.threshold, insertionCutoff) {
		return appendSortedRuns(nil, arr)
	}

	lt, gt := partition3Way(arr)
	parts := [2][]T{arr[:lt], arr[gt+1:]}
	var sorted [2][]valueRun[T]

	var wg sync.WaitGroup
	wg.Add(len(parts))
	for i, part := range parts {
		go func() {
			defer wg.Done()

			select {
			case s.sem <- struct{}{}:
				defer func() { <-s.sem }()
				sorted[i] = s.sort(part, depth/2)
			default:
				sorted[i] = appendSortedRuns(nil, part)
			}
		}()
	}
	wg.Wait()

	runs := make([]valueRun[T], 0, len(sorted[0])+1+len(sorted[1]))
	runs = append(runs, sorted[0]...)
	runs = append(runs, valueRun[T]{value: arr[lt], count: gt - lt + 1})
	return append(runs, sorted[1]...)
}

// sequentialThreshold 이 크기 이하 조각은 순차로 정렬
func sequentialThreshold(totalSize int) int {
	switch {
	case totalSize < 1000:
		return totalSize
	case totalSize < 10000:
		return 300
	case totalSize < 100000:
		return 800
	default:
		return 1500
	}
}
