package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/aht"
)

func main() {
	t := aht.New()
	defer t.Close()

	fmt.Println("Array hash table created")

	// Insert some data
	for i := 0; i < 10; i++ {
		key := []byte(fmt.Sprintf("k%02d", i))

		v, err := t.Get(key)
		if err != nil {
			log.Fatalf("Failed to insert key %q: %v", key, err)
		}
		v.Set(uint64(i * 100))
	}

	fmt.Printf("Inserted %d key-value pairs\n", t.Len())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := []byte(fmt.Sprintf("k%02d", i))

		v, found, err := t.TryGet(key)
		if err != nil {
			log.Fatalf("Failed to look up key %q: %v", key, err)
		}
		if found {
			fmt.Printf("Key %s => Value %d\n", key, v.Get())
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value through its handle
	v, err := t.Get([]byte("k02"))
	if err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}
	v.Set(999)

	// Verify the update
	if v2, found, err := t.TryGet([]byte("k02")); err == nil && found {
		fmt.Printf("Updated key k02 => Value %d\n", v2.Get())
	}

	// Walk every stored pair
	it := aht.NewIterator(t)
	count := 0
	for it.Next() {
		count++
	}
	fmt.Printf("Iterator visited %d records\n", count)

	fmt.Println("Example completed successfully")
}
