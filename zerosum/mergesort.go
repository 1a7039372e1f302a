package zerosum

import "golang.org/x/exp/constraints"

// SortTriplets 사전순 머지소트. 새 슬라이스를 반환하고 입력은 그대로 둠
func SortTriplets[T constraints.Signed](triplets []Triplet[T]) []Triplet[T] {
	result := make([]Triplet[T], len(triplets))
	copy(result, triplets)
	return mergeSort(result)
}

func mergeSort[T constraints.Signed](arr []Triplet[T]) []Triplet[T] {
	if len(arr) <= 1 {
		return arr
	}

	// 작은 배열은 삽입정렬 사용
	if len(arr) <= 16 {
		insertionSortTriplets(arr)
		return arr
	}

	mid := len(arr) / 2
	left := mergeSort(arr[:mid])
	right := mergeSort(arr[mid:])

	return merge(left, right)
}

// merge 안정 병합 (같으면 왼쪽 먼저)
func merge[T constraints.Signed](left, right []Triplet[T]) []Triplet[T] {
	result := make([]Triplet[T], 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if !right[j].Less(left[i]) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	// 남은 요소들 한 번에 추가
	if i < len(left) {
		result = append(result, left[i:]...)
	}
	if j < len(right) {
		result = append(result, right[j:]...)
	}

	return result
}

func insertionSortTriplets[T constraints.Signed](arr []Triplet[T]) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && key.Less(arr[j]) {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
