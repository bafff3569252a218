/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import "reflect"

// Looks up methods and storages by name on every call
type reflectAccessor struct {
	inst reflect.Value
}

func (a *reflectAccessor) storage(s *slot) reflect.Value {
	return a.inst.Elem().FieldByIndex(s.path).FieldByName(s.f.goName)
}

func (a *reflectAccessor) get(s *slot) any {
	if s.hasGetter() {
		return s.f.ops.box(a.inst.MethodByName(s.getter.Name).Call(nil)[0])
	}
	return s.f.ops.box(a.storage(s))
}

func (a *reflectAccessor) set(s *slot, v any) {
	if s.hasSetter() {
		a.inst.MethodByName(s.setter.Name).Call([]reflect.Value{s.f.ops.unbox(v)})
		return
	}
	a.storage(s).Set(s.f.ops.unbox(v))
}

func (a *reflectAccessor) getAt(s *slot, i int) (any, bool) {
	if s.hasGetter() {
		return s.f.ops.box(a.inst.MethodByName(s.getter.Name).Call([]reflect.Value{reflect.ValueOf(i)})[0]), true
	}
	sv := a.storage(s)
	if i >= sv.Len() {
		return nil, false
	}
	return s.f.ops.box(sv.Index(i)), true
}

func (a *reflectAccessor) setAt(s *slot, i int, v any) bool {
	if s.hasSetter() {
		a.inst.MethodByName(s.setter.Name).Call([]reflect.Value{reflect.ValueOf(i), s.f.ops.unbox(v)})
		return true
	}
	sv := a.storage(s)
	if i >= sv.Len() {
		return false
	}
	sv.Index(i).Set(s.f.ops.unbox(v))
	return true
}
