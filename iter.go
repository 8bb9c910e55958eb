package aht

// Iterator walks all (key, value) pairs of a Table in bucket-index order,
// then insertion order within each bucket. It is not resilient to
// concurrent mutation of the table it was created from: mutating the
// table while an Iterator is live is undefined and must be avoided by the
// caller.
type Iterator struct {
	t         *Table
	bucket    int
	off       int
	started   bool
	exhausted bool
}

// NewIterator returns an iterator over t, positioned before the first
// record. Call Next to advance to each record in turn.
func NewIterator(t *Table) *Iterator {
	return &Iterator{t: t}
}

// seekBucket advances to the first non-empty bucket at or after the
// current one, positioning at its first record.
func (it *Iterator) seekBucket() bool {
	for it.bucket < len(it.t.buckets) {
		if b := it.t.buckets[it.bucket]; len(b) > 0 && b[0] != 0 {
			it.off = 0
			return true
		}
		it.bucket++
	}
	it.exhausted = true
	return false
}

// Next advances the iterator to the next record and reports whether one
// exists. It must be called before the first Key/Value access.
func (it *Iterator) Next() bool {
	if it.exhausted {
		return false
	}
	if !it.started {
		it.started = true
		return it.seekBucket()
	}

	b := it.t.buckets[it.bucket]
	_, _, _, next := decodeAt(b, it.off)
	if next < len(b) && b[next] != 0 {
		it.off = next
		return true
	}

	it.bucket++
	return it.seekBucket()
}

// Key returns the key of the current record. Valid only after a call to
// Next that returned true.
func (it *Iterator) Key() []byte {
	if it.exhausted || !it.started {
		return nil
	}
	b := it.t.buckets[it.bucket]
	klen, keyOff, _, _ := decodeAt(b, it.off)
	return b[keyOff : keyOff+klen]
}

// Value returns a handle to the current record's value field. Valid only
// after a call to Next that returned true.
func (it *Iterator) Value() Value {
	if it.exhausted || !it.started {
		return Value{}
	}
	b := it.t.buckets[it.bucket]
	_, _, valOff, _ := decodeAt(b, it.off)
	return Value{buf: b, off: valOff}
}
