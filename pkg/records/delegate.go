/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"reflect"
	"sync/atomic"
)

type delegateTarget struct {
	r IRecord
}

// Record which forwards all operations to target record. Target can be swapped
// by owner only.
//
// # Implements:
//   - IRecord
type delegate struct {
	owner  any
	target atomic.Pointer[delegateTarget]
}

// Creates new record delegate.
//
// # Panics:
//   - ErrOwnership if owner is nil or not comparable,
//   - ErrUnsupportedOperation if target is nil.
func Delegate(owner any, target IRecord) IRecord {
	if !validOwner(owner) {
		panic(enrichError(ErrOwnership, "owner «%T» must be non-nil comparable value", owner))
	}
	if target == nil {
		panic(enrichError(ErrUnsupportedOperation, "nil delegate target"))
	}
	d := &delegate{owner: owner}
	d.target.Store(&delegateTarget{target})
	return d
}

// Swaps delegate target.
//
// # Errors:
//   - ErrUnsupportedOperation if r is not a delegate or new target is nil,
//   - ErrOwnership if owner is not the delegate owner. Target is not changed.
func SetDelegateTarget(r IRecord, owner any, target IRecord) error {
	d, ok := r.(*delegate)
	if !ok {
		return enrichError(ErrUnsupportedOperation, "«%T» is not a record delegate", r)
	}
	if !d.ownedBy(owner) {
		return enrichError(ErrOwnership, "«%v» is not an owner of delegate", owner)
	}
	if target == nil {
		return enrichError(ErrUnsupportedOperation, "nil delegate target")
	}
	d.target.Store(&delegateTarget{target})
	return nil
}

// Returns current delegate target. Record which is not a delegate is returned as is.
//
// # Errors:
//   - ErrOwnership if owner is not the delegate owner.
func DelegateTarget(r IRecord, owner any) (IRecord, error) {
	d, ok := r.(*delegate)
	if !ok {
		return r, nil
	}
	if !d.ownedBy(owner) {
		return nil, enrichError(ErrOwnership, "«%v» is not an owner of delegate", owner)
	}
	return d.current(), nil
}

func (d *delegate) current() IRecord { return d.target.Load().r }

func (d *delegate) ownedBy(owner any) bool {
	return validOwner(owner) && owner == d.owner
}

func (d *delegate) Type() *RecordType { return d.current().Type() }
func (d *delegate) Fields() []IField  { return d.current().Fields() }
func (d *delegate) Mode() Mode         { return d.current().Mode() }
func (d *delegate) Instance() any      { return d.current().Instance() }
func (d *delegate) String() string     { return Format(d) }

func (d *delegate) Get(f IField) (any, error) { return d.current().Get(f) }

func (d *delegate) Set(f IField, v any) error { return d.current().Set(f, v) }

func (d *delegate) GetAt(f IField, index int) (any, error) { return d.current().GetAt(f, index) }

func (d *delegate) SetAt(f IField, index int, v any) error {
	return d.current().SetAt(f, index, v)
}

// Owner value must be comparable as a whole, dynamic values of interface fields included
func validOwner(owner any) bool {
	return owner != nil && reflect.ValueOf(owner).Comparable()
}
