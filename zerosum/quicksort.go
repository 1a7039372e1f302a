package zerosum

import "golang.org/x/exp/constraints"

// insertionCutoff 이 길이 이하 구간은 삽입정렬 후 run 으로 접는다
const insertionCutoff = 16

// valueRun 정렬된 입력에서 같은 값이 이어지는 구간
type valueRun[T constraints.Signed] struct {
	value T
	count int
}

// sortRuns 입력을 정렬해 오름차순 (값, 개수) 목록으로 돌려준다. values 는 건드리지 않음
func sortRuns[T constraints.Signed](values []T) []valueRun[T] {
	arr := make([]T, len(values))
	copy(arr, values)
	return appendSortedRuns(nil, arr)
}

// appendSortedRuns arr 를 제자리에서 3-way 분할하며 run 을 순서대로 붙인다.
// 피벗과 같은 구간 [lt..gt] 은 다시 볼 필요 없이 그대로 run 하나가 된다.
func appendSortedRuns[T constraints.Signed](runs []valueRun[T], arr []T) []valueRun[T] {
	for len(arr) > insertionCutoff {
		lt, gt := partition3Way(arr)
		runs = appendSortedRuns(runs, arr[:lt])
		runs = append(runs, valueRun[T]{value: arr[lt], count: gt - lt + 1})
		// 오른쪽은 반복으로
		arr = arr[gt+1:]
	}
	insertionSort(arr)
	return appendRunsOf(runs, arr)
}

// appendRunsOf 정렬된 조각의 이웃한 같은 값을 run 으로 합침.
// 서로 다른 분할 조각은 값이 겹치지 않으므로 runs 의 마지막과는 합치지 않는다.
func appendRunsOf[T constraints.Signed](runs []valueRun[T], sorted []T) []valueRun[T] {
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		runs = append(runs, valueRun[T]{value: sorted[i], count: j - i})
		i = j
	}
	return runs
}

// partition3Way arr[:lt] < pivot, arr[lt:gt+1] == pivot, arr[gt+1:] > pivot
func partition3Way[T constraints.Signed](arr []T) (lt, gt int) {
	last := len(arr) - 1
	pivot := medianOfThree(arr[0], arr[last/2], arr[last])

	lt, gt = 0, last
	for i := 0; i <= gt; {
		switch {
		case arr[i] < pivot:
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		case arr[i] > pivot:
			arr[i], arr[gt] = arr[gt], arr[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

func medianOfThree[T constraints.Signed](a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	return max(a, b)
}

func insertionSort[T constraints.Signed](arr []T) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
