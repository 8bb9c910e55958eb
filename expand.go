package aht

import "encoding/binary"

// expand doubles the bucket count and rehashes every stored record. It
// runs in two passes over the existing records: a sizing pass that
// computes each destination bucket's exact byte size, and a placement
// pass that appends each record to its destination using a per-bucket
// write cursor, with no rescanning and no per-record reallocation.
func (t *Table) expand() {
	newN := t.n * 2

	sizes := make([]int, newN)
	for _, bucket := range t.buckets {
		off := 0
		for off < len(bucket) && bucket[off] != 0 {
			klen, keyOff, _, next := decodeAt(bucket, off)
			key := bucket[keyOff : keyOff+klen]
			dst := int(t.hasher(key)) % newN
			sizes[dst] += recordSize(klen)
			off = next
		}
	}

	newBuckets := make([][]byte, newN)
	for b, size := range sizes {
		if size > 0 {
			newBuckets[b] = make([]byte, size+1) // trailing byte is the 0x00 terminator
		}
	}

	cursors := make([]int, newN)
	placed := 0
	for _, bucket := range t.buckets {
		off := 0
		for off < len(bucket) && bucket[off] != 0 {
			klen, keyOff, valOff, next := decodeAt(bucket, off)
			key := bucket[keyOff : keyOff+klen]
			val := binary.LittleEndian.Uint64(bucket[valOff : valOff+valueSize])

			dst := int(t.hasher(key)) % newN
			cur, newValOff := encode(newBuckets[dst], cursors[dst], key)
			binary.LittleEndian.PutUint64(newBuckets[dst][newValOff:newValOff+valueSize], val)
			cursors[dst] = cur

			placed++
			off = next
		}
	}

	if placed != t.m {
		panic("aht: expansion placed a different number of records than were stored")
	}

	t.buckets = newBuckets
	t.n = newN
	t.maxM = int(maxLoadFactor * float64(newN))
}
