package corpus

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// encodeCase 레이아웃: uvarint(seed) uvarint(triplets) uint64(fingerprint) uvarint(n) varint(values)*n.
// Round 는 키에 들어 있으므로 값에는 넣지 않는다.
func encodeCase(c Case) []byte {
	buf := make([]byte, 0, 3*binary.MaxVarintLen64+8+len(c.Values)*3)
	buf = binary.AppendUvarint(buf, c.Seed)
	buf = binary.AppendUvarint(buf, uint64(c.Triplets))
	buf = binary.BigEndian.AppendUint64(buf, c.Fingerprint)
	buf = binary.AppendUvarint(buf, uint64(len(c.Values)))
	for _, v := range c.Values {
		buf = binary.AppendVarint(buf, v)
	}
	return buf
}

func decodeCase(round uint64, data []byte) (Case, error) {
	c := Case{Round: round}
	d := decoder{data: data}

	c.Seed = d.uvarint()
	c.Triplets = int(d.uvarint())
	c.Fingerprint = d.fixed64()
	n := d.uvarint()
	if d.err == nil && n > uint64(len(d.data)) {
		// 값 하나는 최소 1바이트
		d.err = errors.Newf("%d values in %d bytes", n, len(d.data))
	}
	if d.err == nil {
		c.Values = make([]int64, n)
		for i := range c.Values {
			c.Values[i] = d.varint()
		}
	}
	if d.err == nil && len(d.data) != 0 {
		d.err = errors.Newf("%d trailing bytes", len(d.data))
	}
	if d.err != nil {
		return Case{}, errors.Wrapf(ErrCorrupt, "round %d: %v", round, d.err)
	}
	return c, nil
}

// decoder 첫 에러 이후의 읽기는 모두 0을 반환
type decoder struct {
	data []byte
	err  error
}

func (d *decoder) uvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.data)
	if n <= 0 {
		d.err = errors.New("bad uvarint")
		return 0
	}
	d.data = d.data[n:]
	return v
}

func (d *decoder) varint() int64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Varint(d.data)
	if n <= 0 {
		d.err = errors.New("bad varint")
		return 0
	}
	d.data = d.data[n:]
	return v
}

func (d *decoder) fixed64() uint64 {
	if d.err != nil {
		return 0
	}
	if len(d.data) < 8 {
		d.err = errors.New("short fingerprint")
		return 0
	}
	v := binary.BigEndian.Uint64(d.data)
	d.data = d.data[8:]
	return v
}
