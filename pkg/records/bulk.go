/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"errors"

	"golang.org/x/exp/slices"
)

type copyConfig struct {
	fields        []IField
	skipTransient bool
}

// Copy option
type CopyOption func(*copyConfig)

// Restricts copy to specified fields. By default all target record fields are copied
func WithFields(fields ...IField) CopyOption {
	return func(c *copyConfig) { c.fields = fields }
}

// Makes copy skip transient fields
func SkipTransient() CopyOption {
	return func(c *copyConfig) { c.skipTransient = true }
}

// Copies field values from source record into target record.
//
// Fields missing in source or in target record type (nil fields included) are
// skipped, as well as fields which are read-only in target. Array fields are copied element by element,
// object values are not cloned.
//
// # Errors:
//   - any other source get or target set error.
func Copy(source, target IRecord, opts ...CopyOption) error {
	cfg := copyConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	fields := cfg.fields
	if fields == nil {
		fields = target.Fields()
	}

	for _, f := range fields {
		if f == nil || f.desc() == nil {
			continue
		}
		if cfg.skipTransient && f.IsTransient() {
			continue
		}
		if err := copyField(source, target, f.desc()); err != nil {
			if skipped(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func copyField(source, target IRecord, f *field) error {
	if !f.kind.IsArray() {
		v, err := source.Get(f)
		if err != nil {
			return err
		}
		return target.Set(f, v)
	}
	if err := checkArrayStorage(source, f); err != nil {
		return err
	}
	return copyArray(target, source, f)
}

// Creates new instance of source record type and copies source fields into it.
//
// # Errors:
//   - as Copy
func Clone(source IRecord, opts ...CopyOption) (IRecord, error) {
	target := source.Type().NewInstance()
	if err := Copy(source, target, opts...); err != nil {
		return nil, err
	}
	return target, nil
}

// Sets all record fields to zero values. Read-only fields are skipped.
func Clear(r IRecord) error {
	for _, f := range r.Fields() {
		if err := clearField(r, f.desc()); err != nil {
			if skipped(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func clearField(r IRecord, f *field) error {
	z := f.ops.zero()
	if !f.kind.IsArray() {
		return r.Set(f, z)
	}
	if err := checkArrayStorage(r, f); err != nil {
		return err
	}
	for i := 0; i < f.length; i++ {
		if err := r.SetAt(f, i, z); err != nil {
			return err
		}
	}
	return nil
}

// Returns is records have the same fields with equal values.
//
// Scalars are compared by ==, objects by reflect.DeepEqual, arrays element by element.
// Any field access error makes records not equal.
func DeepEquals(a, b IRecord) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	fields := a.Fields()
	if !slices.EqualFunc(fields, b.Fields(), func(x, y IField) bool { return x.desc() == y.desc() }) {
		return false
	}

	for _, f := range fields {
		d := f.desc()
		if !d.kind.IsArray() {
			va, err := a.Get(f)
			if err != nil {
				return false
			}
			vb, err := b.Get(f)
			if err != nil {
				return false
			}
			if !d.ops.equal(va, vb) {
				return false
			}
			continue
		}
		for i := 0; i < d.length; i++ {
			va, err := a.GetAt(f, i)
			if err != nil {
				return false
			}
			vb, err := b.GetAt(f, i)
			if err != nil {
				return false
			}
			if !d.ops.equal(va, vb) {
				return false
			}
		}
	}
	return true
}

func skipped(err error) bool {
	return errors.Is(err, ErrFieldNotFound) || errors.Is(err, ErrReadOnlyField)
}
