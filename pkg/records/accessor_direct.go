/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"reflect"
	"unsafe"
)

// Accesses storages by precomputed offsets from instance address
type directAccessor struct {
	base unsafe.Pointer
}

func newDirectAccessor(inst reflect.Value) *directAccessor {
	return &directAccessor{base: inst.UnsafePointer()}
}

func (a *directAccessor) ptr(s *slot) unsafe.Pointer { return unsafe.Add(a.base, s.offset) }

func (a *directAccessor) get(s *slot) any { return s.f.ops.load(a.ptr(s)) }

func (a *directAccessor) set(s *slot, v any) { s.f.ops.store(a.ptr(s), v) }

func (a *directAccessor) getAt(s *slot, i int) (any, bool) {
	p, ok := s.f.ops.elem(a.ptr(s), s.f.slice, s.f.length, i)
	if !ok {
		return nil, false
	}
	return s.f.ops.load(p), true
}

func (a *directAccessor) setAt(s *slot, i int, v any) bool {
	p, ok := s.f.ops.elem(a.ptr(s), s.f.slice, s.f.length, i)
	if !ok {
		return false
	}
	s.f.ops.store(p, v)
	return true
}
