package zerosum

import (
	"runtime"

	"golang.org/x/exp/constraints"
)

// parallelSortMin 이 길이 이상이면 병렬 정렬
const parallelSortMin = 1 << 14

// SortedTwoPointer 비교 정렬 + 투 포인터로 푸는 기준 구현. 값 구간 제약이 없다.
// 정렬 비용 O(n log n), 탐색은 서로 다른 값 u 개에 대해 O(u^2).
// 벤치마크 비교군과 테스트의 두 번째 오라클로 쓴다.
// |v| <= MaxMagnitude 인 입력에서 정확하다.
func SortedTwoPointer[T constraints.Signed](values []T) []Triplet[T] {
	var runs []valueRun[T]
	if len(values) >= parallelSortMin {
		runs = parallelSortRuns(values, runtime.NumCPU())
	} else {
		runs = sortRuns(values)
	}
	return scanRuns(runs)
}

// scanRuns a <= b <= c 를 run 인덱스 i <= j <= k 로 고르고 j, k 를 양끝에서 좁힌다.
// 같은 run 을 여러 번 쓰려면 그만큼 개수가 있어야 한다.
func scanRuns[T constraints.Signed](runs []valueRun[T]) []Triplet[T] {
	var result []Triplet[T]
	for i, a := range runs {
		j, k := i, len(runs)-1
		for j <= k {
			sum := int64(a.value) + int64(runs[j].value) + int64(runs[k].value)
			switch {
			case sum < 0:
				j++
			case sum > 0:
				k--
			default:
				if enoughCopies(runs, i, j, k) {
					result = append(result, Triplet[T]{a.value, runs[j].value, runs[k].value})
				}
				j++
				k--
			}
		}
	}
	return result
}

// enoughCopies i <= j <= k 일 때 겹치는 run 의 개수 조건
func enoughCopies[T constraints.Signed](runs []valueRun[T], i, j, k int) bool {
	switch {
	case i == k:
		return runs[i].count >= 3
	case i == j:
		return runs[i].count >= 2
	case j == k:
		return runs[j].count >= 2
	default:
		return true
	}
}
