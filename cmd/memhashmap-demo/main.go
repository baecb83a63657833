package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/gostonefire/memhashmap"
)

// Point - Example of an arbitrary fixed size struct used as key
type Point struct {
	X, Y int32
}

func (P Point) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[:4], uint32(P.X))
	binary.LittleEndian.PutUint32(b[4:], uint32(P.Y))
	return b
}

func main() {
	mhm, _, err := memhashmap.NewMemHashMap(0, 0, nil)
	if err != nil {
		log.Fatalf("failed to initialize hash map: %v", err)
	}
	defer mhm.Close()

	// Insert int -> float64
	keyInt := make([]byte, 4)
	binary.LittleEndian.PutUint32(keyInt, 42)
	valFloat := make([]byte, 8)
	binary.LittleEndian.PutUint64(valFloat, math.Float64bits(3.14159))
	if err = mhm.Set(keyInt, valFloat); err != nil {
		log.Fatal(err)
	}

	// Insert string -> string
	if err = mhm.Set([]byte("hello"), []byte("world")); err != nil {
		log.Fatal(err)
	}

	// Insert custom struct as key
	p := Point{X: 10, Y: 20}
	if err = mhm.Set(p.Bytes(), []byte("a point")); err != nil {
		log.Fatal(err)
	}

	// Lookup int -> float64
	value, err := mhm.Get(keyInt)
	if err == nil {
		retrieved := math.Float64frombits(binary.LittleEndian.Uint64(value))
		fmt.Printf("Retrieved value for key %d is %f\n", 42, retrieved)
	}

	// Lookup string -> string
	value, err = mhm.Get([]byte("hello"))
	if err == nil {
		fmt.Printf("Retrieved value for key %q is %q\n", "hello", string(value))
	}

	// Remove int -> float64
	removed, err := mhm.Delete(keyInt)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Removed key %d: %t\n", 42, removed)
}
