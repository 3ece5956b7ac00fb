package main

import (
	"fmt"

	"github.com/aglyzov/go-tst/tst"
)

func main() {
	m := tst.New()
	m.Set("cat", 1)
	m.Set("car", 2)
	m.Set("cap", 3)
	m.Set("cup", 4)
	m.Set("dog", 5)
	m.Set("dogma", 6)

	fmt.Printf("len=%v\n", m.Len())

	fmt.Println("--- traversal (prefixes come after their extensions)")
	m.ForEach(func(key string, val interface{}) {
		fmt.Printf("%s = %v\n", key, val)
	})

	fmt.Println("--- partial match ca.")
	for _, kv := range m.PartialMatch("ca.") {
		fmt.Printf("%s = %v\n", kv.Key, kv.Val)
	}

	fmt.Println("--- near search cip, d=1")
	for _, kv := range m.NearSearch("cip", 1) {
		fmt.Printf("%s = %v\n", kv.Key, kv.Val)
	}

	m.Del("dog")
	fmt.Printf("after del: len=%v keys=%q\n", m.Len(), m.Keys())
}
