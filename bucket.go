package aht

import "bytes"

// A bucket is the byte buffer associated with one hash-table index: a
// sequence of slot records followed by a single 0x00 terminator byte, or
// nil if no record has ever hashed to this index.

// bucketFind scans bucket b for key, in insertion order, and returns the
// offset of its value field on a hit.
func bucketFind(b, key []byte) (valOff int, ok bool) {
	off := 0
	klen := len(key)
	for off < len(b) && b[off] != 0 {
		k, keyOff, v, next := decodeAt(b, off)
		if k == klen && bytes.Equal(b[keyOff:keyOff+k], key) {
			return v, true
		}
		off = next
	}
	return 0, false
}

// bucketCreate allocates a new, terminated bucket holding a single record
// for key, and returns it along with the offset of the record's value
// field.
func bucketCreate(key []byte) (b []byte, valOff int) {
	size := recordSize(len(key))
	b = make([]byte, size+1) // +1 terminator, left as the zero byte
	_, valOff = encode(b, 0, key)
	return b, valOff
}

// bucketAppend grows bucket b by one record for key, preserving the
// existing records and re-emitting the terminator at the new end. It
// returns the new bucket and the offset of the new record's value field.
// b is not modified in place.
func bucketAppend(b, key []byte) (nb []byte, valOff int) {
	used := len(b) - 1 // bytes before the old terminator
	size := recordSize(len(key))
	nb = make([]byte, len(b)+size)
	copy(nb, b[:used])
	_, valOff = encode(nb, used, key)
	return nb, valOff
}
