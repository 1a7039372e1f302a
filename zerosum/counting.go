package zerosum

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// countInto 범위 검사 후 카운트. offset 은 에러 메시지용 원래 인덱스
func countInto[T constraints.Signed](t *table, values []T, offset int) error {
	b := t.bounds
	for i, v := range values {
		x := int64(v)
		if !b.Contains(x) {
			return outOfRange(offset+i, x, b)
		}
		t.counts[x-b.Min]++
	}
	return nil
}

// countParallel 입력을 workers 개의 서로소 청크로 나눠 각자 테이블에 세고 합산.
// 결과와 에러는 순차 카운트와 같다 (가장 앞 인덱스의 에러를 보고).
func countParallel[T constraints.Signed](values []T, b Bounds, workers int) (*table, error) {
	if len(values) == 0 || workers < 2 {
		t := newTable(b)
		if err := countInto(t, values, 0); err != nil {
			return nil, err
		}
		return t, nil
	}
	chunkSize := (len(values) + workers - 1) / workers
	numChunks := (len(values) + chunkSize - 1) / chunkSize

	parts := make([]*table, numChunks)
	errs := make([]error, numChunks)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := range numChunks {
		start := w * chunkSize
		end := min(start+chunkSize, len(values))
		parts[w] = newTable(b)
		g.Go(func() error {
			errs[w] = countInto(parts[w], values[start:end], start)
			return errs[w]
		})
	}
	// 어느 청크가 먼저 실패했는지가 아니라 청크 순서로 에러를 고른다
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := parts[0]
	for _, part := range parts[1:] {
		merged.add(part)
	}
	return merged, nil
}

// parallelThreshold 병렬 카운팅을 시작할 입력 크기.
// 합산 비용이 workers*range 이므로 range 가 클수록 높게 잡는다.
func parallelThreshold(rangeSize int) int {
	switch {
	case rangeSize < 1<<12:
		return 1 << 15
	case rangeSize < 1<<16:
		return 1 << 17
	default:
		return 1 << 19
	}
}
