/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import "errors"

// Fixed size array of records of the same type, backed by fresh instances.
//
// # Implements:
//   - IRecordArray
type SimpleRecordArray struct {
	rt    *RecordType
	items []IRecord
}

// Creates new array of n new instances of specified record type
func NewSimpleRecordArray(rt *RecordType, n int) *SimpleRecordArray {
	a := &SimpleRecordArray{rt: rt, items: make([]IRecord, n)}
	for i := range a.items {
		a.items[i] = rt.NewInstance()
	}
	return a
}

func (a *SimpleRecordArray) Type() *RecordType { return a.rt }

func (a *SimpleRecordArray) Len() int { return len(a.items) }

// Returns element by index.
//
// # Errors:
//   - ErrIndexOutOfRange if index is out of [0, Len())
func (a *SimpleRecordArray) At(index int) (IRecord, error) {
	if index < 0 || index >= len(a.items) {
		return nil, enrichError(ErrIndexOutOfRange, "index %d is out of range [0, %d) of %v array", index, len(a.items), a.rt)
	}
	return a.items[index], nil
}

// Clears all elements, see Clear
func (a *SimpleRecordArray) Clear() error {
	var errs []error
	for _, r := range a.items {
		if err := Clear(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clears all elements of record array.
//
// # Errors:
//   - ErrUnsupportedOperation if array is not a *SimpleRecordArray
func ClearArray(a IRecordArray) error {
	if sa, ok := a.(*SimpleRecordArray); ok {
		return sa.Clear()
	}
	return enrichError(ErrUnsupportedOperation, "can not clear «%T» record array", a)
}
