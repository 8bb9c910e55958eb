package aht

import (
	"fmt"
	"math/rand"
	"testing"
)

// TestCloneIndependence covers scenario S5 with the open-ownership hazard
// from the design notes resolved in favor of a deep copy: cloning then
// closing the original must not affect the clone's ability to answer
// lookups.
func TestCloneIndependence(t *testing.T) {
	table := New()
	defer table.Close()

	const n = 1000
	rng := rand.New(rand.NewSource(1))

	keys := make([][]byte, n)
	vals := make([]uint64, n)
	for i := 0; i < n; i++ {
		key := []byte(fmt.Sprintf("clone-%d-%d", i, rng.Int63()))
		keys[i] = key
		vals[i] = rng.Uint64()

		v, err := table.Get(key)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		v.Set(vals[i])
	}

	clone := table.Clone()
	table.Close() // original released; clone must remain usable

	if got := clone.Len(); got != n {
		t.Fatalf("clone.Len() = %d, want %d", got, n)
	}

	for i := 0; i < n; i++ {
		v, ok, err := clone.TryGet(keys[i])
		if err != nil || !ok {
			t.Fatalf("clone.TryGet(%d): ok=%v err=%v", i, ok, err)
		}
		if got := v.Get(); got != vals[i] {
			t.Errorf("clone.TryGet(%d) = %d, want %d", i, got, vals[i])
		}
	}
}

// TestCloneDoesNotAliasBuckets checks that mutating the clone does not
// affect the original, and vice versa, because bucket buffers are
// deep-copied rather than shared.
func TestCloneDoesNotAliasBuckets(t *testing.T) {
	table := New()
	defer table.Close()

	v, err := table.Get([]byte("shared"))
	if err != nil {
		t.Fatal(err)
	}
	v.Set(1)

	clone := table.Clone()
	defer clone.Close()

	cv, ok, err := clone.TryGet([]byte("shared"))
	if err != nil || !ok {
		t.Fatalf("clone.TryGet: ok=%v err=%v", ok, err)
	}
	cv.Set(2)

	ov, ok, err := table.TryGet([]byte("shared"))
	if err != nil || !ok {
		t.Fatalf("table.TryGet: ok=%v err=%v", ok, err)
	}
	if got := ov.Get(); got != 1 {
		t.Errorf("original value changed via clone mutation: got %d, want 1", got)
	}

	cv2, _, _ := clone.TryGet([]byte("shared"))
	if got := cv2.Get(); got != 2 {
		t.Errorf("clone value = %d, want 2", got)
	}
}

// TestCloneMetadataPreserved checks that the opaque flag/context bytes
// survive a clone unchanged, per the table's metadata contract.
func TestCloneMetadataPreserved(t *testing.T) {
	table := New()
	defer table.Close()

	table.SetFlag(0xAB)
	table.SetContext('x', 'y')

	clone := table.Clone()
	defer clone.Close()

	if got := clone.Flag(); got != 0xAB {
		t.Errorf("clone.Flag() = %#x, want 0xab", got)
	}
	c0, c1 := clone.Context()
	if c0 != 'x' || c1 != 'y' {
		t.Errorf("clone.Context() = (%c, %c), want (x, y)", c0, c1)
	}
}
