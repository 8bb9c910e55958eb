package benchhelpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"runtime"
)

// GetMemoryUsage returns the current memory usage of the process in human-readable form
func GetMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("%.2f MB", float64(m.Alloc)/(1024*1024))
}

// GenerateKey creates a random alphanumeric key of the given length, for
// driving benchmarks across the one-byte/two-byte length-prefix boundary.
func GenerateKey(length int) []byte {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(err)
		}
		result[i] = charset[n.Int64()]
	}
	return result
}
