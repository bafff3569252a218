/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"fmt"
	"reflect"

	"github.com/untillpro/goutils/logger"
)

// Resolved layout of concrete backing type S for record type.
//
// Shape is resolved once per (record type, S) pair and cached by record type.
type shape struct {
	rt    *RecordType
	typ   reflect.Type // S
	slots []*slot      // aligned with rt.fields
	beans bool
}

// Resolved storage and accessors of single field in concrete backing type
type slot struct {
	f        *field
	path     []int // owner backing shape embed path in S
	index    []int // path to storage field in S
	offset   uintptr
	getter   reflect.Method
	setter   reflect.Method
	readOnly bool

	// callables, resolved once for Mode_BoundFunction
	boundGet   func(inst reflect.Value) any
	boundSet   func(inst reflect.Value, v any)
	boundGetAt func(inst reflect.Value, i int) (any, bool)
	boundSetAt func(inst reflect.Value, i int, v any) bool
}

func (s *slot) hasGetter() bool { return s.getter.Func.IsValid() }
func (s *slot) hasSetter() bool { return s.setter.Func.IsValid() }
func (s *slot) isBean() bool    { return s.hasGetter() || s.hasSetter() }

func (rt *RecordType) shapeOf(t reflect.Type) (*shape, error) {
	if shp, ok := rt.shapes.Get(t); ok {
		if logger.IsTrace() {
			logger.Trace(fmt.Sprintf("%v: shape «%v» found in cache", rt, t))
		}
		return shp, nil
	}

	shp, err := resolveShape(rt, t)
	if err != nil {
		return nil, err
	}
	rt.shapes.Add(t, shp)

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v: shape «%v» resolved, %d fields, beans: %v, default mode: %v", rt, t, len(shp.slots), shp.beans, shp.defaultMode()))
	}
	return shp, nil
}

func resolveShape(rt *RecordType, t reflect.Type) (*shape, error) {
	if _, ok := embedPath(t, rt.shape); !ok {
		return nil, enrichError(ErrUnsupportedShape, "«%v» is not «%v» and does not embed it", t, rt.shape)
	}

	shp := &shape{rt: rt, typ: t, slots: make([]*slot, 0, len(rt.fields))}
	pt := reflect.PointerTo(t)
	paths := make(map[*RecordType][]int)

	for _, f := range rt.fields {
		path, ok := paths[f.owner]
		if !ok {
			path, _ = embedPath(t, f.owner.shape)
			paths[f.owner] = path
		}
		s := &slot{
			f:        f,
			path:     path,
			index:    append(append(make([]int, 0, len(path)+1), path...), f.sfIndex),
			readOnly: f.readOnly,
		}
		s.offset = offsetOf(t, s.index)

		if err := s.resolveBean(pt); err != nil {
			return nil, err
		}
		if s.isBean() {
			shp.beans = true
		}
		s.bind()

		shp.slots = append(shp.slots, s)
	}

	return shp, nil
}

func (shp *shape) defaultMode() Mode {
	if shp.beans {
		return Mode_Generated
	}
	return Mode_Direct
}

func (shp *shape) slot(f *field) *slot { return shp.slots[f.index] }

// Finds and checks bean accessor methods of field on *S
func (s *slot) resolveBean(pt reflect.Type) error {
	f := s.f
	vt := f.ops.typ()
	intT := reflect.TypeOf(0)

	getterNames := []string{beanGetPrefix + f.goName}
	if f.kind == Kind_Boolean || f.kind == Kind_BooleanArray {
		getterNames = []string{beanIsPrefix + f.goName, beanGetPrefix + f.goName}
	}
	for _, n := range getterNames {
		if m, ok := pt.MethodByName(n); ok {
			s.getter = m
			break
		}
	}
	if m, ok := pt.MethodByName(beanSetPrefix + f.goName); ok {
		s.setter = m
	}

	if s.hasGetter() {
		mt := s.getter.Type
		ok := mt.NumOut() == 1 && mt.Out(0) == vt
		if f.kind.IsArray() {
			ok = ok && mt.NumIn() == 2 && mt.In(1) == intT
		} else {
			ok = ok && mt.NumIn() == 1
		}
		if !ok {
			return enrichError(ErrUnsupportedShape, "«%v» getter «%s» signature «%v» does not fit %s-kind field «%v»", pt, s.getter.Name, mt, f.kind.TrimString(), f)
		}
	}
	if s.hasSetter() {
		mt := s.setter.Type
		ok := mt.NumOut() == 0
		if f.kind.IsArray() {
			ok = ok && mt.NumIn() == 3 && mt.In(1) == intT && mt.In(2) == vt
		} else {
			ok = ok && mt.NumIn() == 2 && mt.In(1) == vt
		}
		if !ok {
			return enrichError(ErrUnsupportedShape, "«%v» setter «%s» signature «%v» does not fit %s-kind field «%v»", pt, s.setter.Name, mt, f.kind.TrimString(), f)
		}
	}

	if s.hasGetter() && !s.hasSetter() {
		s.readOnly = true
	}
	return nil
}

// Prepares callables for Mode_BoundFunction
func (s *slot) bind() {
	f := s.f
	o := f.ops

	if s.hasGetter() {
		fn := s.getter.Func
		if f.kind.IsArray() {
			s.boundGetAt = func(inst reflect.Value, i int) (any, bool) {
				return o.box(fn.Call([]reflect.Value{inst, reflect.ValueOf(i)})[0]), true
			}
		} else {
			s.boundGet = func(inst reflect.Value) any {
				return o.box(fn.Call([]reflect.Value{inst})[0])
			}
		}
	} else {
		index := s.index
		if f.kind.IsArray() {
			s.boundGetAt = func(inst reflect.Value, i int) (any, bool) {
				sv := inst.Elem().FieldByIndex(index)
				if i >= sv.Len() {
					return nil, false
				}
				return o.box(sv.Index(i)), true
			}
		} else {
			s.boundGet = func(inst reflect.Value) any {
				return o.box(inst.Elem().FieldByIndex(index))
			}
		}
	}

	if s.hasSetter() {
		fn := s.setter.Func
		if f.kind.IsArray() {
			s.boundSetAt = func(inst reflect.Value, i int, v any) bool {
				fn.Call([]reflect.Value{inst, reflect.ValueOf(i), o.unbox(v)})
				return true
			}
		} else {
			s.boundSet = func(inst reflect.Value, v any) {
				fn.Call([]reflect.Value{inst, o.unbox(v)})
			}
		}
	} else if !s.hasGetter() {
		index := s.index
		if f.kind.IsArray() {
			s.boundSetAt = func(inst reflect.Value, i int, v any) bool {
				sv := inst.Elem().FieldByIndex(index)
				if i >= sv.Len() {
					return false
				}
				sv.Index(i).Set(o.unbox(v))
				return true
			}
		} else {
			s.boundSet = func(inst reflect.Value, v any) {
				inst.Elem().FieldByIndex(index).Set(o.unbox(v))
			}
		}
	}
}

// Returns index path from t to embedded by value struct of target type.
// Empty path is returned if t is target.
func embedPath(t, target reflect.Type) ([]int, bool) {
	type node struct {
		t    reflect.Type
		path []int
	}
	queue := []node{{t: t}}
	seen := map[reflect.Type]bool{}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.t == target {
			return n.path, true
		}
		if seen[n.t] {
			continue
		}
		seen[n.t] = true
		for i := 0; i < n.t.NumField(); i++ {
			sf := n.t.Field(i)
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				p := append(append(make([]int, 0, len(n.path)+1), n.path...), i)
				queue = append(queue, node{t: sf.Type, path: p})
			}
		}
	}
	return nil, false
}

func offsetOf(t reflect.Type, index []int) (offset uintptr) {
	for _, i := range index {
		sf := t.Field(i)
		offset += sf.Offset
		t = sf.Type
	}
	return offset
}
