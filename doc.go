/*
Package chaintable provides a generic hash table with a fixed number of
slots and separate chaining for collision resolution.

A Table maps keys of any comparable type to comparable values. Its slot
count is chosen once, at construction, and is always a power of two; the
table never grows or rehashes, so chains get longer as more keys are stored.

Basic usage:

	import "github.com/theflywheel/chaintable"

	// 2 slots; the requested count is rounded up to a power of two
	marks, err := chaintable.New[string, int](chaintable.WithSlots(2))
	if err != nil {
		log.Fatal(err)
	}

	marks.Put("Ivana", 2)
	marks.Put("Kristina", 5)
	marks.Put("Ivana", 5) // updates, size stays 2

	if grade, ok := marks.Get("Ivana"); ok {
		fmt.Println("Ivana:", grade)
	}

	marks.Remove("Kristina")
	fmt.Print(marks) // one line per non-empty slot

Features:

  - Slot count rounded up to the next power of two (default 16)
  - Insert-or-update semantics, keys are never duplicated
  - Missing keys are reported through return values, never errors
  - Nil keys (nil pointers, interfaces, maps, channels, funcs) are ignored
  - String keys hashed with xxHash by default, XXH3 or maphash on request
  - Other comparable keys hashed with maphash.Comparable

Implementation Details:

The table is a slice of chain heads. A key lives in slot
hash(key) & (capacity-1). New keys are appended to the tail of their
slot's chain; removal splices a single node out by rewriting exactly one
link, either the slot head or the next pointer of the previous node.

Table is not safe for concurrent use. Guard it with a mutex if several
goroutines share it.
*/
package chaintable
