// Package aht_test benchmarks the array hash table with variable-length
// keys, exercising both the one-byte and two-byte length-prefix encoding
// paths in the same run.
//
// It measures:
//   - Insertion performance with keys spanning the prefix-size boundary
//   - Lookup performance, validating every retrieved value
//   - Storage efficiency (bytes per key-value pair)
package aht_test

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"runtime"
	"testing"
	"time"

	"github.com/theflywheel/aht"
)

// generateKey returns a random byte string of length n, used to produce
// keys on both sides of the 128-byte length-prefix boundary.
func generateKey(n int) []byte {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(err)
		}
		result[i] = charset[idx.Int64()]
	}
	return result
}

// BenchmarkVariableLengthKeys evaluates insert/lookup throughput when keys
// range from 8 to 300 bytes, crossing the one/two-byte prefix boundary at
// 128 bytes.
func BenchmarkVariableLengthKeys(b *testing.B) {
	fmt.Printf("BenchmarkVariableLengthKeys started execution, b.N = %d\n", b.N)
	b.N = 1
	b.ResetTimer()
	b.StopTimer()

	const numKeys = 50_000
	lengths := []int{8, 16, 64, 127, 128, 129, 255, 300}

	keys := make([][]byte, numKeys)
	for i := range keys {
		l := lengths[i%len(lengths)]
		keys[i] = generateKey(l)
	}

	table := aht.New()
	defer table.Close()

	metrics := BenchmarkMetrics{
		Name:       "VariableLengthKeys",
		Category:   "scale",
		Operations: numKeys,
		Metrics:    make(map[string]float64),
	}

	runtime.GC()

	b.StartTimer()
	writeStart := time.Now()

	for i, key := range keys {
		v, err := table.Get(key)
		if err != nil {
			b.Fatalf("Failed to insert key %d (len=%d): %v", i, len(key), err)
		}
		v.Set(uint64(i))
	}

	b.StopTimer()
	writeTime := time.Since(writeStart)
	insertionRate := float64(numKeys) / writeTime.Seconds()
	b.Logf("Inserted %d variable-length keys in %v (%.2f keys/sec)", numKeys, writeTime, insertionRate)
	metrics.Metrics["insertion_rate"] = insertionRate

	b.StartTimer()
	readStart := time.Now()

	for i, key := range keys {
		v, ok, err := table.TryGet(key)
		if err != nil || !ok {
			b.Fatalf("Key %d (len=%d) not found: err=%v", i, len(key), err)
		}
		if got := v.Get(); got != uint64(i) {
			b.Fatalf("Value mismatch for key %d: expected %d, got %d", i, i, got)
		}
	}

	b.StopTimer()
	readTime := time.Since(readStart)
	lookupRate := float64(numKeys) / readTime.Seconds()
	b.Logf("Validated %d keys in %v (%.2f lookups/sec)", numKeys, readTime, lookupRate)
	metrics.Metrics["lookup_rate"] = lookupRate

	bytesUsed := table.BucketBytes()
	metrics.Metrics["bytes_per_key"] = float64(bytesUsed) / float64(numKeys)

	for k, v := range getMemoryStats() {
		metrics.Metrics["memory_mb_"+k] = v
	}

	metrics.NsPerOp = float64(writeTime.Nanoseconds() + readTime.Nanoseconds())
	metrics.BytesPerOp = bytesUsed

	if err := saveBenchmarkResult(metrics, "latest.json"); err != nil {
		b.Logf("Failed to save benchmark result to latest.json: %v", err)
	}

	b.Logf("BenchmarkVariableLengthKeys completed successfully")
}
