/*
Package aht provides an array hash table: an associative container mapping
arbitrary byte-string keys, including keys containing embedded zero bytes,
to fixed-width uint64 values.

An aht.Table is the leaf-level bucket structure of a hat-trie, but stands
alone as a cache-friendly, string-keyed map that tolerates very high load
factors by packing each bucket's records into a single contiguous byte
buffer instead of a chain of heap-allocated entries.

Basic usage:

	import "github.com/theflywheel/aht"

	t := aht.New()
	defer t.Close()

	v, err := t.Get([]byte("hello"))
	if err != nil {
		log.Fatal(err)
	}
	v.Set(42)

	if v2, ok, err := t.TryGet([]byte("hello")); err == nil && ok {
		fmt.Println(v2.Get()) // 42
	}

Features:

  - Arbitrary byte-string keys, 1 to 32767 bytes, including embedded zero
    bytes
  - Fixed-width uint64 values, mutated in place through a returned Value
    handle
  - Automatic resizing when the load factor (M/N) would exceed 5.0
  - Pluggable Hasher; defaults to xxHash
  - Single-threaded by design: no locking, no concurrency support

Implementation Details:

Each bucket is a contiguous byte buffer holding a sequence of
(length-prefix, key, value) records terminated by a single 0x00 byte. Keys
shorter than 128 bytes use a one-byte length prefix; longer keys use a
two-byte prefix with the high bit set. Lookups scan a bucket linearly;
insertion appends a record by reallocating the bucket to its new exact
size. When the table's size M reaches 5xN, the bucket array is doubled in
a two-pass rehash: a sizing pass computes each new bucket's exact byte
length, then a placement pass appends every record into its destination
bucket without ever rescanning or overflowing.

Table is not safe for concurrent use, and a Value handle returned from Get
or TryGet is only valid until the next mutation of the table it came from.
*/
package aht
