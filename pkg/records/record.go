/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"reflect"
)

// # Implements:
//   - IRecord
type record struct {
	rt   *RecordType
	inst reflect.Value
	shp  *shape
	acc  accessor
	mode Mode
}

func (r *record) Type() *RecordType { return r.rt }
func (r *record) Fields() []IField  { return r.rt.Fields() }
func (r *record) Mode() Mode         { return r.mode }
func (r *record) Instance() any      { return r.inst.Interface() }
func (r *record) String() string     { return Format(r) }

func (r *record) Get(f IField) (any, error) {
	s, err := r.slot(f, false)
	if err != nil {
		return nil, err
	}
	return r.acc.get(s), nil
}

func (r *record) Set(f IField, v any) error {
	s, err := r.slot(f, false)
	if err != nil {
		return err
	}
	if s.readOnly {
		return errReadOnlyField(s.f)
	}
	val, ok := s.f.ops.accept(v)
	if !ok {
		return errValueTypeMismatch(s.f, v)
	}
	r.acc.set(s, val)
	return nil
}

func (r *record) GetAt(f IField, index int) (any, error) {
	s, err := r.slotAt(f, index)
	if err != nil {
		return nil, err
	}
	v, ok := r.acc.getAt(s, index)
	if !ok {
		return nil, errShortStorage(s, index)
	}
	return v, nil
}

func (r *record) SetAt(f IField, index int, v any) error {
	s, err := r.slotAt(f, index)
	if err != nil {
		return err
	}
	if s.readOnly {
		return errReadOnlyField(s.f)
	}
	val, ok := s.f.ops.accept(v)
	if !ok {
		return errValueTypeMismatch(s.f, v)
	}
	if !r.acc.setAt(s, index, val) {
		return errShortStorage(s, index)
	}
	return nil
}

// Returns slot of field. Checks that field belongs to record type and kind fits access
func (r *record) slot(f IField, indexed bool) (*slot, error) {
	var d *field
	if f != nil {
		d = f.desc()
	}
	if d == nil || d.index >= len(r.rt.fields) || r.rt.fields[d.index] != d {
		return nil, errFieldNotFound(f, r.rt)
	}
	if d.kind.IsArray() != indexed {
		return nil, errKindMismatch(d, indexed)
	}
	return r.shp.slot(d), nil
}

func (r *record) slotAt(f IField, index int) (*slot, error) {
	s, err := r.slot(f, true)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= s.f.length {
		return nil, errIndexOutOfRange(s.f, index, s.f.length)
	}
	return s, nil
}

func errShortStorage(s *slot, index int) error {
	return enrichError(ErrIndexOutOfRange, "index %d is out of «%v» storage of field «%v»", index, s.f.storage, s.f)
}
