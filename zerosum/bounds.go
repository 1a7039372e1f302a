package zerosum

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultMin, DefaultMax 기본 값 범위 [-3000, 3000)
	DefaultMin int64 = -3000
	DefaultMax int64 = 3000

	// MaxRange 카운팅 테이블 슬롯 수 상한 (16M)
	MaxRange = 1 << 24
	// MaxMagnitude 경계의 절댓값 상한. -l-r 계산이 int64 안에서 정확하도록 함
	MaxMagnitude int64 = 1 << 60
)

// Bounds 반열린 구간 [Min, Max). 한 번의 Find 호출은 Max-Min 개의 카운터를 사용한다.
type Bounds struct {
	Min int64
	Max int64
}

// DefaultBounds [-3000, 3000)
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMin, Max: DefaultMax}
}

// Range 테이블 크기
func (b Bounds) Range() int {
	return int(b.Max - b.Min)
}

// Contains v가 [Min, Max) 안에 있는지
func (b Bounds) Contains(v int64) bool {
	return v >= b.Min && v < b.Max
}

// Validate 테이블을 만들 수 있는 구간인지 확인
func (b Bounds) Validate() error {
	switch {
	case b.Min >= b.Max:
		return errors.Wrapf(ErrInvalidBounds, "empty interval %s", b)
	case b.Min < -MaxMagnitude || b.Max > MaxMagnitude:
		return errors.Wrapf(ErrInvalidBounds, "%s exceeds magnitude %d", b, MaxMagnitude)
	case b.Max-b.Min > MaxRange:
		return errors.Wrapf(ErrInvalidBounds, "%s spans more than %d values", b, MaxRange)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d)", b.Min, b.Max)
}
