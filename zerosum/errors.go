package zerosum

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange 입력 값이 Bounds 밖에 있음
	ErrOutOfRange = errors.New("zerosum: value out of supported range")
	// ErrInsufficientInput 세 개 미만의 값으로는 인덱스 조합을 만들 수 없음
	ErrInsufficientInput = errors.New("zerosum: at least 3 values required")
	// ErrInvalidBounds Min >= Max 이거나 테이블이 너무 큰 경우
	ErrInvalidBounds = errors.New("zerosum: invalid bounds")
)

func outOfRange(index int, value int64, b Bounds) error {
	return errors.Wrapf(ErrOutOfRange, "values[%d] = %d not in %s", index, value, b)
}
