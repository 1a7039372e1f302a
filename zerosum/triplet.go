package zerosum

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Triplet 정렬된 세 값 (a <= b <= c)
type Triplet[T constraints.Signed] [3]T

func newTriplet[T constraints.Signed](a, b, c T) Triplet[T] {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Triplet[T]{a, b, c}
}

// Sorted a <= b <= c 인지
func (t Triplet[T]) Sorted() bool {
	return t[0] <= t[1] && t[1] <= t[2]
}

// ZeroSum 오버플로 없이 합이 0인지 확인
func (t Triplet[T]) ZeroSum() bool {
	return sumsToZero(int64(t[0]), int64(t[1]), int64(t[2]))
}

// Less 사전순 비교
func (t Triplet[T]) Less(o Triplet[T]) bool {
	for i := range t {
		if t[i] != o[i] {
			return t[i] < o[i]
		}
	}
	return false
}

// sumsToZero 128비트 부호 확장 덧셈. int64 극값에서도 정확함
func sumsToZero(a, b, c int64) bool {
	lo, carry := bits.Add64(uint64(a), uint64(b), 0)
	hi, _ := bits.Add64(uint64(a>>63), uint64(b>>63), carry)
	lo, carry = bits.Add64(lo, uint64(c), 0)
	hi, _ = bits.Add64(hi, uint64(c>>63), carry)
	return lo == 0 && hi == 0
}

// Distinct 정렬 후 중복 제거한 새 슬라이스. 입력은 건드리지 않음
func Distinct[T constraints.Signed](triplets []Triplet[T]) []Triplet[T] {
	sorted := SortTriplets(triplets)
	if len(sorted) < 2 {
		return sorted
	}
	j := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[j] == sorted[i] {
			continue
		}
		j++
		sorted[j] = sorted[i]
	}
	return sorted[:j+1]
}

// Fingerprint 결과 집합의 해시. 순서와 중복 횟수에 무관함
func Fingerprint[T constraints.Signed](triplets []Triplet[T]) uint64 {
	d := xxhash.New()
	var buf [24]byte
	for _, t := range Distinct(triplets) {
		for i, v := range t {
			binary.BigEndian.PutUint64(buf[i*8:], uint64(int64(v)))
		}
		d.Write(buf[:])
	}
	return d.Sum64()
}
