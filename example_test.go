package compacthash_test

import (
	"fmt"

	"go.dw1.io/compacthash"
)

func ExampleSum64WithSeed() {
	fmt.Printf("%016x\n", compacthash.Sum64WithSeed([]byte("hello world"), 12345))
	// Output: 41c96fbb5bf6b6eb
}

func ExampleHasher() {
	h := compacthash.NewWithSeed(12345)
	h.Write([]byte("hello "))
	h.Write([]byte("world"))
	fmt.Printf("%016x\n", h.Sum64())
	// Output: 41c96fbb5bf6b6eb
}

func ExampleSumMany() {
	for _, w := range compacthash.SumMany([]byte("hello world"), 4, 12345) {
		fmt.Printf("%016x\n", w)
	}
	// Output:
	// 35f3c9754f242722
	// 6dabab0d64e055e2
	// 70df3ad73c350177
	// 20ac1bc21ce47de4
}
