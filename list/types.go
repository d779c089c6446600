package list

import (
	"fmt"
	"reflect"
	"unsafe"
)

var hookType = reflect.TypeOf(Hook{})

// _type records where the Hook field lives inside the element type of a
// list, so that element pointers and link records can be converted both
// ways with simple pointer arithmetic.
type _type struct {
	vtype  reflect.Type
	offset uintptr
}

func (t *_type) known() bool {
	return t.vtype != nil
}

func (t *_type) nodeOf(elem unsafe.Pointer) *node {
	return (*node)(unsafe.Pointer(uintptr(elem) + t.offset))
}

func (t *_type) valueOf(n *node) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(n)) - t.offset)
}

func typeOf(rt reflect.Type) _type {
	if rt.Kind() != reflect.Struct {
		panic(fmt.Errorf("%s: only struct types can embed a list.Hook and be used as element in an intrusive list", rt))
	}
	t, ok := makeType(rt)
	if !ok {
		panic(fmt.Errorf("%s: type contains no list.Hook field and therefore cannot be used as element in an intrusive list", rt))
	}
	t.vtype = rt
	return t
}

func makeType(rt reflect.Type) (_type, bool) {
	n := rt.NumField()

	for i := 0; i < n; i++ {
		f := rt.Field(i)

		if f.Type == hookType {
			return _type{offset: f.Offset}, true
		}

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if t, ok := makeType(f.Type); ok {
				t.offset += f.Offset
				return t, true
			}
		}
	}

	return _type{}, false
}
