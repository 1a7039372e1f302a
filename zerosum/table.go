package zerosum

// table 유계 멤버십 테이블.
// counts[v-Min] 은 v의 출현 횟수. 카운팅 정렬과 O(1) 존재 확인을 겸한다.
// 카운팅 패스가 끝난 뒤에는 읽기 전용.
type table struct {
	bounds Bounds
	counts []int
}

func newTable(b Bounds) *table {
	return &table{
		bounds: b,
		counts: make([]int, b.Range()),
	}
}

// count 범위 밖의 값은 0
func (t *table) count(v int64) int {
	if !t.bounds.Contains(v) {
		return 0
	}
	return t.counts[v-t.bounds.Min]
}

// add 같은 Bounds 의 다른 테이블을 합산
func (t *table) add(other *table) {
	for i, c := range other.counts {
		t.counts[i] += c
	}
}

type uniqueValue struct {
	value int64
	count int
}

// compact O(range) 한 번의 스캔으로 오름차순 (값, 개수) 목록 생성
func (t *table) compact() []uniqueValue {
	var unique []uniqueValue
	for i, c := range t.counts {
		if c > 0 {
			unique = append(unique, uniqueValue{value: int64(i) + t.bounds.Min, count: c})
		}
	}
	return unique
}
