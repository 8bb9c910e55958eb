package aht

import "encoding/binary"

// initialN is the bucket count a freshly created table starts with.
const initialN = 8

// maxLoadFactor is the M/N ratio at or above which the next call to Get
// triggers an expansion, before the key is looked up.
const maxLoadFactor = 5.0

// Table is an array hash table: a fixed-length array of buckets, each a
// contiguous byte buffer of packed (keylen, key, value) records, dispatched
// by hash(key) mod N. It is the leaf-level bucket structure of a hat-trie;
// used alone it is a cache-friendly, single-threaded, string-keyed map with
// a high load factor.
//
// Table is not safe for concurrent use. Value handles returned by Get and
// TryGet are borrowed references into a bucket and are invalidated by any
// subsequent call to Get with a new key, Clear, or an expansion.
type Table struct {
	buckets [][]byte
	n       int
	m       int
	maxM    int
	hasher  Hasher

	// flag, c0, c1 are opaque metadata the embedding trie uses; the core
	// never reads or interprets them.
	flag byte
	c0   byte
	c1   byte
}

// New returns an empty table with the default initial bucket count and
// the default hash function.
func New() *Table {
	return NewN(initialN, nil)
}

// NewN returns an empty table with n initial buckets, using hasher for
// bucket dispatch. If hasher is nil, DefaultHasher is used. n is clamped
// to at least 1.
func NewN(n int, hasher Hasher) *Table {
	if n < 1 {
		n = 1
	}
	if hasher == nil {
		hasher = DefaultHasher
	}
	return &Table{
		buckets: make([][]byte, n),
		n:       n,
		hasher:  hasher,
		maxM:    int(maxLoadFactor * float64(n)),
	}
}

// Len returns the number of stored (key, value) pairs.
func (t *Table) Len() int { return t.m }

// BucketBytes returns the total size, in bytes, of every allocated bucket
// buffer, including terminators. It is a diagnostic for measuring storage
// overhead; the core itself never needs this figure.
func (t *Table) BucketBytes() int {
	total := 0
	for _, b := range t.buckets {
		total += len(b)
	}
	return total
}

// Flag returns the opaque per-table flag byte.
func (t *Table) Flag() byte { return t.flag }

// SetFlag sets the opaque per-table flag byte.
func (t *Table) SetFlag(f byte) { t.flag = f }

// Context returns the two opaque per-table context bytes.
func (t *Table) Context() (c0, c1 byte) { return t.c0, t.c1 }

// SetContext sets the two opaque per-table context bytes.
func (t *Table) SetContext(c0, c1 byte) { t.c0, t.c1 = c0, c1 }

// Clear frees all buckets and resets the table to its initial empty state:
// the default initial bucket count and no records. The hasher and the
// flag/context metadata bytes are kept.
func (t *Table) Clear() {
	t.buckets = make([][]byte, initialN)
	t.n = initialN
	t.m = 0
	t.maxM = int(maxLoadFactor * float64(initialN))
}

// Close releases the table's buckets. Table owns no OS resources, so
// Close exists only to give callers a symmetric create/close pair; a
// Table is safe to simply drop without calling Close.
func (t *Table) Close() error {
	t.buckets = nil
	t.n = 0
	t.m = 0
	t.maxM = 0
	return nil
}

// Clone returns a deep copy of t: every bucket buffer is duplicated, so
// the clone and the original have fully independent lifetimes. (The
// C original this table is ported from shares bucket pointers between a
// table and its clone via a shallow copy, which corrupts both on free;
// this port deliberately does not reproduce that hazard.)
func (t *Table) Clone() *Table {
	nb := make([][]byte, len(t.buckets))
	for i, b := range t.buckets {
		if b == nil {
			continue
		}
		cb := make([]byte, len(b))
		copy(cb, b)
		nb[i] = cb
	}
	return &Table{
		buckets: nb,
		n:       t.n,
		m:       t.m,
		maxM:    t.maxM,
		hasher:  t.hasher,
		flag:    t.flag,
		c0:      t.c0,
		c1:      t.c1,
	}
}

// Value is a handle to the value field of a stored record. It is valid
// until the next mutation of the Table that produced it.
type Value struct {
	buf []byte
	off int
}

// Get returns the current value.
func (v Value) Get() uint64 {
	return binary.LittleEndian.Uint64(v.buf[v.off : v.off+valueSize])
}

// Set overwrites the value in place.
func (v Value) Set(x uint64) {
	binary.LittleEndian.PutUint64(v.buf[v.off:v.off+valueSize], x)
}

// Get returns a handle to the value associated with key, inserting a
// zero-valued record for key if it is absent. It returns ErrZeroLengthKey
// or ErrOversizeKey if key cannot be represented.
func (t *Table) Get(key []byte) (Value, error) {
	if err := validateKey(key); err != nil {
		return Value{}, err
	}

	if t.m >= t.maxM {
		t.expand()
	}

	b := int(t.hasher(key)) % t.n
	bucket := t.buckets[b]

	if len(bucket) == 0 {
		nb, valOff := bucketCreate(key)
		t.buckets[b] = nb
		t.m++
		return Value{buf: t.buckets[b], off: valOff}, nil
	}

	if valOff, ok := bucketFind(bucket, key); ok {
		return Value{buf: bucket, off: valOff}, nil
	}

	nb, valOff := bucketAppend(bucket, key)
	t.buckets[b] = nb
	t.m++
	return Value{buf: t.buckets[b], off: valOff}, nil
}

// TryGet returns a handle to the value associated with key without
// mutating the table. ok is false if key is absent; err is non-nil only
// if key itself cannot be represented.
func (t *Table) TryGet(key []byte) (val Value, ok bool, err error) {
	if err = validateKey(key); err != nil {
		return Value{}, false, err
	}

	b := int(t.hasher(key)) % t.n
	bucket := t.buckets[b]
	if len(bucket) == 0 {
		return Value{}, false, nil
	}

	valOff, found := bucketFind(bucket, key)
	if !found {
		return Value{}, false, nil
	}
	return Value{buf: bucket, off: valOff}, true, nil
}
