/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import "fmt"

// Describes single record field.
//
// Field descriptors are created by record type field factories, are immutable
// and are shared by all records of the type and of the types that extend it.
//
// Ref. to field.go for implementation
type IField interface {
	fmt.Stringer

	// Returns field name
	Name() string

	// Returns field kind
	Kind() Kind

	// Returns record type where field is declared
	Owner() *RecordType

	// Returns array length for array kinds, zero for scalar kinds
	Len() int

	// Returns is field transient. Transient fields are skipped by bulk copy on demand
	IsTransient() bool

	// Returns is field storage marked read-only by backing shape
	IsReadOnly() bool

	desc() *field
}

// Record is a typed handle that binds record type, backing instance and access strategy.
//
// Record provides no internal synchronization; concurrent mutation of the same record is a data race.
//
// Ref. to record.go and delegate.go for implementations
type IRecord interface {
	fmt.Stringer

	// Returns record type
	Type() *RecordType

	// Returns all fields of record type, ancestor fields first, in declaration order
	Fields() []IField

	// Returns access strategy used by record
	Mode() Mode

	// Returns backing instance, pointer to struct
	Instance() any

	// Returns value of scalar field.
	//
	// # Errors:
	//   - ErrFieldNotFound if field is unknown to record type,
	//   - ErrFieldTypeMismatch if field is an array field
	Get(IField) (any, error)

	// Sets value of scalar field. Value type must exactly match field value type,
	// nil is accepted for object fields and stores the zero value.
	//
	// # Errors:
	//   - ErrFieldNotFound if field is unknown to record type,
	//   - ErrFieldTypeMismatch if field is an array field or value type mismatch,
	//   - ErrReadOnlyField if field is read-only
	Set(IField, any) error

	// Returns value of array field element.
	//
	// # Errors:
	//   - ErrFieldNotFound if field is unknown to record type,
	//   - ErrFieldTypeMismatch if field is not an array field,
	//   - ErrIndexOutOfRange if index is out of [0, field.Len())
	GetAt(IField, int) (any, error)

	// Sets value of array field element.
	//
	// # Errors:
	//   - ErrFieldNotFound if field is unknown to record type,
	//   - ErrFieldTypeMismatch if field is not an array field or value type mismatch,
	//   - ErrIndexOutOfRange if index is out of [0, field.Len()),
	//   - ErrReadOnlyField if field is read-only
	SetAt(IField, int, any) error
}

// Array of records of the same type.
//
// Ref. to recordarray.go for simple implementation
type IRecordArray interface {
	// Returns type of array elements
	Type() *RecordType

	// Returns elements count
	Len() int

	// Returns element by index
	At(int) (IRecord, error)
}
