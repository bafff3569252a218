/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"reflect"
	"unsafe"
)

// Typed value operations of a field. Implemented by ops[T], where T is
// field value type (element type for array fields).
type valueOps interface {
	typ() reflect.Type
	zero() any
	accept(v any) (any, bool)
	equal(a, b any) bool

	// raw storage, p points to value
	load(p unsafe.Pointer) any
	store(p unsafe.Pointer, v any)
	// raw array storage, p points to [n]T or to []T
	elem(p unsafe.Pointer, slice bool, n, i int) (unsafe.Pointer, bool)

	// reflection
	box(rv reflect.Value) any
	unbox(v any) reflect.Value

	// closures for generated accessors
	loader(p unsafe.Pointer) func() any
	storer(p unsafe.Pointer) func(any)
	elemLoader(p unsafe.Pointer, slice bool, n int) func(int) (any, bool)
	elemStorer(p unsafe.Pointer, slice bool, n int) func(int, any) bool
	bindGetter(fn any) func() any
	bindSetter(fn any) func(any)
	bindGetterAt(fn any) func(int) any
	bindSetterAt(fn any) func(int, any)
}

type ops[T any] struct {
	object bool
}

func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

func (ops[T]) typ() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (ops[T]) zero() any {
	var z T
	return z
}

func (o ops[T]) accept(v any) (any, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	if v == nil && o.object {
		return o.zero(), true
	}
	return nil, false
}

func (o ops[T]) equal(a, b any) bool {
	if o.object {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func (ops[T]) load(p unsafe.Pointer) any { return *(*T)(p) }

func (ops[T]) store(p unsafe.Pointer, v any) { *(*T)(p) = as[T](v) }

func (ops[T]) elem(p unsafe.Pointer, slice bool, n, i int) (unsafe.Pointer, bool) {
	if slice {
		s := *(*[]T)(p)
		if i >= len(s) {
			return nil, false
		}
		return unsafe.Pointer(&s[i]), true
	}
	if i >= n {
		return nil, false
	}
	return unsafe.Pointer(&unsafe.Slice((*T)(p), n)[i]), true
}

func (ops[T]) box(rv reflect.Value) any {
	return as[T](rv.Interface())
}

func (ops[T]) unbox(v any) reflect.Value {
	t := as[T](v)
	return reflect.ValueOf(&t).Elem()
}

func (ops[T]) loader(p unsafe.Pointer) func() any {
	tp := (*T)(p)
	return func() any { return *tp }
}

func (ops[T]) storer(p unsafe.Pointer) func(any) {
	tp := (*T)(p)
	return func(v any) { *tp = as[T](v) }
}

func (ops[T]) elemLoader(p unsafe.Pointer, slice bool, n int) func(int) (any, bool) {
	if slice {
		sp := (*[]T)(p)
		return func(i int) (any, bool) {
			s := *sp
			if i >= len(s) {
				return nil, false
			}
			return s[i], true
		}
	}
	s := unsafe.Slice((*T)(p), n)
	return func(i int) (any, bool) {
		if i >= len(s) {
			return nil, false
		}
		return s[i], true
	}
}

func (ops[T]) elemStorer(p unsafe.Pointer, slice bool, n int) func(int, any) bool {
	if slice {
		sp := (*[]T)(p)
		return func(i int, v any) bool {
			s := *sp
			if i >= len(s) {
				return false
			}
			s[i] = as[T](v)
			return true
		}
	}
	s := unsafe.Slice((*T)(p), n)
	return func(i int, v any) bool {
		if i >= len(s) {
			return false
		}
		s[i] = as[T](v)
		return true
	}
}

func (ops[T]) bindGetter(fn any) func() any {
	g := fn.(func() T)
	return func() any { return g() }
}

func (ops[T]) bindSetter(fn any) func(any) {
	s := fn.(func(T))
	return func(v any) { s(as[T](v)) }
}

func (ops[T]) bindGetterAt(fn any) func(int) any {
	g := fn.(func(int) T)
	return func(i int) any { return g(i) }
}

func (ops[T]) bindSetterAt(fn any) func(int, any) {
	s := fn.(func(int, T))
	return func(i int, v any) { s(i, as[T](v)) }
}
