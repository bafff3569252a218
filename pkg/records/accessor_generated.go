/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"reflect"
	"unsafe"
)

// Per instance table of typed closures, one entry per field
type generatedAccessor struct {
	getters   []func() any
	setters   []func(any)
	gettersAt []func(int) (any, bool)
	settersAt []func(int, any) bool
}

func newGeneratedAccessor(shp *shape, inst reflect.Value) *generatedAccessor {
	n := len(shp.slots)
	a := &generatedAccessor{
		getters:   make([]func() any, n),
		setters:   make([]func(any), n),
		gettersAt: make([]func(int) (any, bool), n),
		settersAt: make([]func(int, any) bool, n),
	}
	base := inst.UnsafePointer()

	for i, s := range shp.slots {
		o := s.f.ops
		p := unsafe.Add(base, s.offset)

		if s.f.kind.IsArray() {
			if s.hasGetter() {
				g := o.bindGetterAt(inst.Method(s.getter.Index).Interface())
				a.gettersAt[i] = func(i int) (any, bool) { return g(i), true }
			} else {
				a.gettersAt[i] = o.elemLoader(p, s.f.slice, s.f.length)
			}
			switch {
			case s.hasSetter():
				st := o.bindSetterAt(inst.Method(s.setter.Index).Interface())
				a.settersAt[i] = func(i int, v any) bool { st(i, v); return true }
			case !s.hasGetter():
				a.settersAt[i] = o.elemStorer(p, s.f.slice, s.f.length)
			}
			continue
		}

		if s.hasGetter() {
			a.getters[i] = o.bindGetter(inst.Method(s.getter.Index).Interface())
		} else {
			a.getters[i] = o.loader(p)
		}
		switch {
		case s.hasSetter():
			a.setters[i] = o.bindSetter(inst.Method(s.setter.Index).Interface())
		case !s.hasGetter():
			a.setters[i] = o.storer(p)
		}
	}

	return a
}

func (a *generatedAccessor) get(s *slot) any { return a.getters[s.f.index]() }

func (a *generatedAccessor) set(s *slot, v any) { a.setters[s.f.index](v) }

func (a *generatedAccessor) getAt(s *slot, i int) (any, bool) { return a.gettersAt[s.f.index](i) }

func (a *generatedAccessor) setAt(s *slot, i int, v any) bool { return a.settersAt[s.f.index](i, v) }
