package chaintable

import (
	"fmt"
	"reflect"
	"strings"
)

// entry is one node of a slot's chain. The key never changes once the
// entry is linked; the value is overwritten in place on update.
type entry[K comparable, V comparable] struct {
	key   K
	value V
	next  *entry[K, V]
}

func newEntry[K comparable, V comparable](key K, value V) *entry[K, V] {
	return &entry[K, V]{key: key, value: value}
}

// String renders this entry and every entry after it in the chain
func (e *entry[K, V]) String() string {
	var sb strings.Builder
	for n := e; n != nil; n = n.next {
		if n != e {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "(%v : %v)", n.key, n.value)
	}
	return sb.String()
}

// isNil reports whether key is an absent key: a nil interface, pointer,
// map, channel or func.
func isNil[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
