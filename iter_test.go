package aht

import (
	"bytes"
	"fmt"
	"testing"
)

// TestIteratorLongKey covers scenario S3: a 128-byte key round-trips and
// is visible to the iterator with the correct length.
func TestIteratorLongKey(t *testing.T) {
	table := New()
	defer table.Close()

	key := bytes.Repeat([]byte("x"), 128)
	v, err := table.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	v.Set(7)

	v2, ok, err := table.TryGet(key)
	if err != nil || !ok {
		t.Fatalf("TryGet: ok=%v err=%v", ok, err)
	}
	if got := v2.Get(); got != 7 {
		t.Errorf("TryGet = %d, want 7", got)
	}

	it := NewIterator(table)
	if !it.Next() {
		t.Fatalf("iterator yielded no records")
	}
	if got := len(it.Key()); got != 128 {
		t.Errorf("iterator key length = %d, want 128", got)
	}
	if it.Next() {
		t.Errorf("iterator yielded more than one record")
	}
}

// TestIteratorCountConsistency covers property 2: size(T) equals the
// number of records a full traversal yields, and equals the number of
// distinct keys inserted.
func TestIteratorCountConsistency(t *testing.T) {
	table := New()
	defer table.Close()

	const n = 300
	for i := 0; i < n; i++ {
		key := []byte(fmt.Sprintf("iter-%d", i))
		if _, err := table.Get(key); err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
	}

	it := NewIterator(table)
	count := 0
	seen := make(map[string]bool, n)
	for it.Next() {
		seen[string(it.Key())] = true
		count++
	}

	if count != n {
		t.Errorf("iterated %d records, want %d", count, n)
	}
	if got := table.Len(); got != n {
		t.Errorf("Len() = %d, want %d", got, n)
	}
	if len(seen) != n {
		t.Errorf("iterator visited %d distinct keys, want %d", len(seen), n)
	}
}

// TestIteratorEmptyTable checks that a fresh table's iterator yields
// nothing and Key/Value are safe to call (returning zero values) before
// and after exhaustion.
func TestIteratorEmptyTable(t *testing.T) {
	table := New()
	defer table.Close()

	it := NewIterator(table)
	if it.Key() != nil {
		t.Errorf("Key() before Next = %v, want nil", it.Key())
	}
	if it.Next() {
		t.Fatalf("Next() on empty table returned true")
	}
	if it.Key() != nil {
		t.Errorf("Key() after exhaustion = %v, want nil", it.Key())
	}
	if v := it.Value(); v.buf != nil {
		t.Errorf("Value() after exhaustion is not the zero Value")
	}
}

// TestIteratorOrder checks that traversal visits buckets in ascending
// index order and, within a bucket, in insertion order.
func TestIteratorOrder(t *testing.T) {
	constant := func([]byte) uint32 { return 0 }
	table := NewN(8, constant)
	defer table.Close()

	want := []string{"first", "second", "third"}
	for _, k := range want {
		if _, err := table.Get([]byte(k)); err != nil {
			t.Fatalf("Get(%q): %v", k, err)
		}
	}

	it := NewIterator(table)
	var got []string
	for it.Next() {
		got = append(got, string(it.Key()))
	}

	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
