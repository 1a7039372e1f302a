package zerosum

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// BruteForce 모든 인덱스 조합 i<j<k 를 확인하는 O(n^3) 구현. Find 검증용.
// 합이 0이면 정렬된 Triplet 을 내보내며, 같은 값 조합이 여러 인덱스에서 나오면 그만큼 반복된다.
// 값 구간 제약이 없고 합은 오버플로 없이 계산한다.
func BruteForce[T constraints.Signed](values []T) ([]Triplet[T], error) {
	n := len(values)
	if n < 3 {
		return nil, errors.Wrapf(ErrInsufficientInput, "got %d", n)
	}

	var result []Triplet[T]
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if sumsToZero(int64(values[i]), int64(values[j]), int64(values[k])) {
					result = append(result, newTriplet(values[i], values[j], values[k]))
				}
			}
		}
	}
	return result, nil
}
