package chaintable

import (
	"strconv"
	"strings"
)

// Table is a hash table of fixed capacity that resolves collisions by
// chaining entries in singly linked lists, one list per slot.
//
// The zero value is not usable; create tables with New or MustNew.
// A Table must not be used from more than one goroutine at a time.
type Table[K comparable, V comparable] struct {
	slots []*entry[K, V]
	mask  uint64
	size  int
	hash  hashFn[K]
}

// New creates a table with DefaultSlots slots unless WithSlots says otherwise
func New[K comparable, V comparable](opts ...Option) (*Table[K, V], error) {
	options, err := newTableOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Table[K, V]{
		slots: make([]*entry[K, V], options.slots),
		mask:  uint64(options.slots - 1),
		hash:  newHashFn[K](options.hash),
	}, nil
}

// MustNew is like New but panics if an option is invalid
func MustNew[K comparable, V comparable](opts ...Option) *Table[K, V] {
	t, err := New[K, V](opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// slotIndex returns hash(key) mod capacity. The capacity is a power of two,
// so the modulo is a mask of the low bits.
func (t *Table[K, V]) slotIndex(key K) int {
	return int(t.hash(key) & t.mask)
}

// Put stores value under key, replacing the value of an existing entry.
// A nil key is ignored.
func (t *Table[K, V]) Put(key K, value V) {
	if isNil(key) {
		return
	}

	idx := t.slotIndex(key)
	head := t.slots[idx]
	if head == nil {
		t.slots[idx] = newEntry(key, value)
		t.size++
		return
	}

	n := head
	for n.key != key && n.next != nil {
		n = n.next
	}

	if n.key == key {
		n.value = value
		return
	}

	n.next = newEntry(key, value)
	t.size++
}

// Get returns the value stored under key, and whether it was found
func (t *Table[K, V]) Get(key K) (value V, found bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	return value, false
}

// ContainsKey reports whether key is stored in the table
func (t *Table[K, V]) ContainsKey(key K) bool {
	return t.find(key) != nil
}

func (t *Table[K, V]) find(key K) *entry[K, V] {
	if isNil(key) {
		return nil
	}

	for n := t.slots[t.slotIndex(key)]; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// ContainsValue reports whether any entry holds value. Values have no
// position in the table, so every chain is scanned.
func (t *Table[K, V]) ContainsValue(value V) bool {
	for _, n := range t.slots {
		for ; n != nil; n = n.next {
			if n.value == value {
				return true
			}
		}
	}
	return false
}

// Remove deletes the entry stored under key. Removing a nil or missing key
// does nothing.
func (t *Table[K, V]) Remove(key K) {
	if isNil(key) {
		return
	}

	idx := t.slotIndex(key)
	n := t.slots[idx]
	if n == nil {
		return
	}

	if n.key == key {
		t.slots[idx] = n.next
		n.next = nil
		t.size--
		return
	}

	for n.next != nil && n.next.key != key {
		n = n.next
	}

	if removed := n.next; removed != nil {
		n.next = removed.next
		removed.next = nil
		t.size--
	}
}

// Size returns the number of entries stored in the table
func (t *Table[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the table holds no entries
func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Capacity returns the number of slots. It never changes after New.
func (t *Table[K, V]) Capacity() int {
	return len(t.slots)
}

// String renders one line per non-empty slot, in slot order:
//
//	3) (Ivana : 5) -> (Jasna : 2)
//
// It is meant for debugging and can not be parsed back.
func (t *Table[K, V]) String() string {
	var sb strings.Builder
	for i, head := range t.slots {
		if head == nil {
			continue
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(") ")
		sb.WriteString(head.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
