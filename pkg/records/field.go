/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"fmt"
	"reflect"
)

// # Implements:
//   - IField
type field struct {
	name      string
	kind      Kind
	owner     *RecordType
	index     int // position in owner fields, the same in every descendant
	length    int
	transient bool
	readOnly  bool

	goName  string       // struct field name in owner backing shape
	sfIndex int          // struct field index in owner backing shape
	storage reflect.Type // T, [N]T or []T
	slice   bool
	ops     valueOps
}

func (f *field) Name() string       { return f.name }
func (f *field) Kind() Kind         { return f.kind }
func (f *field) Owner() *RecordType { return f.owner }
func (f *field) Len() int           { return f.length }
func (f *field) IsTransient() bool  { return f.transient }
func (f *field) IsReadOnly() bool   { return f.readOnly }
func (f *field) desc() *field       { return f }

func (f *field) String() string {
	return fmt.Sprintf("%s.%s", f.owner.Name(), f.name)
}

// Field declaration option
type FieldOption func(*field)

// Marks field as transient
func Transient() FieldOption {
	return func(f *field) { f.transient = true }
}

// Typed scalar field descriptor. T is the field value type:
//   - bool for boolean fields,
//   - byte, int16, int32, int64 for byte, short, int and long fields,
//   - float32, float64 for float and double fields,
//   - rune for char fields,
//   - any declared type for object fields.
type Field[T any] struct {
	*field
}

func (f *Field[T]) desc() *field {
	if f == nil {
		return nil
	}
	return f.field
}

// Returns field value from specified record
func (f *Field[T]) Get(r IRecord) (T, error) {
	v, err := r.Get(f)
	if err != nil {
		var z T
		return z, err
	}
	return as[T](v), nil
}

// Sets field value in specified record
func (f *Field[T]) Set(r IRecord, v T) error {
	return r.Set(f, v)
}

// Typed array field descriptor. T is the element type, see Field for kinds mapping.
type ArrayField[T any] struct {
	*field
}

func (f *ArrayField[T]) desc() *field {
	if f == nil {
		return nil
	}
	return f.field
}

// Returns element value from specified record
func (f *ArrayField[T]) Get(r IRecord, index int) (T, error) {
	v, err := r.GetAt(f, index)
	if err != nil {
		var z T
		return z, err
	}
	return as[T](v), nil
}

// Sets element value in specified record
func (f *ArrayField[T]) Set(r IRecord, index int, v T) error {
	return r.SetAt(f, index, v)
}

// Copies all field elements from specified record into dst, starting at dst[offset].
//
// Returns ErrIndexOutOfRange if dst can not hold Len() elements from offset.
func (f *ArrayField[T]) GetAll(r IRecord, dst []T, offset int) error {
	if f.desc() == nil {
		return errFieldNotFound(f, r.Type())
	}
	if err := f.checkBuffer(len(dst), offset); err != nil {
		return err
	}
	for i := 0; i < f.length; i++ {
		v, err := f.Get(r, i)
		if err != nil {
			return err
		}
		dst[offset+i] = v
	}
	return nil
}

// Sets all field elements in specified record from src, starting at src[offset].
//
// Returns ErrIndexOutOfRange if src does not hold Len() elements from offset
// or if record storage is shorter than Len(). Record is not modified then.
func (f *ArrayField[T]) SetAll(r IRecord, src []T, offset int) error {
	if f.desc() == nil {
		return errFieldNotFound(f, r.Type())
	}
	if err := f.checkBuffer(len(src), offset); err != nil {
		return err
	}
	if err := checkArrayStorage(r, f); err != nil {
		return err
	}
	for i := 0; i < f.length; i++ {
		if err := f.Set(r, i, src[offset+i]); err != nil {
			return err
		}
	}
	return nil
}

// Copies all field elements from src record into dst record
func (f *ArrayField[T]) CopyFrom(dst, src IRecord) error {
	if f.desc() == nil {
		return errFieldNotFound(f, dst.Type())
	}
	return copyArray(dst, src, f.field)
}

func (f *ArrayField[T]) checkBuffer(size, offset int) error {
	if offset < 0 || offset > size-f.length {
		return enrichError(ErrIndexOutOfRange, "buffer of %d elements can not hold %d elements of field «%v» from offset %d", size, f.length, f, offset)
	}
	return nil
}

func copyArray(dst, src IRecord, f *field) error {
	if err := checkArrayStorage(dst, f); err != nil {
		return err
	}
	for i := 0; i < f.length; i++ {
		v, err := src.GetAt(f, i)
		if err != nil {
			return err
		}
		if err := dst.SetAt(f, i, v); err != nil {
			return err
		}
	}
	return nil
}

// Checks that the last element of array field is reachable in record,
// so element by element writes can not stop halfway on short storage
func checkArrayStorage(r IRecord, f IField) error {
	if n := f.Len(); n > 0 {
		if _, err := r.GetAt(f, n-1); err != nil {
			return err
		}
	}
	return nil
}
