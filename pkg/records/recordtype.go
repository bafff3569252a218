/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Record type is an ordered set of named typed fields declared over backing shape,
// Go struct type.
//
// Record type is built once: fields are declared with field factories, then type is
// sealed by first NewInstance, Wrap or extension by other type. Sealed type is
// immutable and safe for concurrent use.
type RecordType struct {
	shape   reflect.Type
	parent  *RecordType
	fields  []*field
	ifields []IField
	byName  map[string]*field
	ctor    func() any
	shapes  *lru.Cache[reflect.Type, *shape]
	sealed  atomic.Bool
}

type typeConfig struct {
	parent    *RecordType
	ctor      func() any
	ctorType  reflect.Type
	cacheSize int
}

// Record type construction option
type TypeOption func(*typeConfig)

// Makes new record type extend parent type. Backing shape must embed parent
// backing shape (by value), all parent fields become fields of the new type
// and refer to the same storage. Parent type becomes sealed.
func Extends(parent *RecordType) TypeOption {
	return func(c *typeConfig) { c.parent = parent }
}

// Sets constructor used by NewInstance to allocate backing instances
func Constructor[R any](ctor func() *R) TypeOption {
	return func(c *typeConfig) {
		c.ctor = func() any { return ctor() }
		c.ctorType = reflect.TypeOf((*R)(nil))
	}
}

// Sets maximum count of concrete backing types which resolved layouts are cached
func ShapeCacheSize(size int) TypeOption {
	return func(c *typeConfig) { c.cacheSize = size }
}

// Creates new record type with R backing shape.
//
// # Panics:
//   - if R is not a struct type,
//   - if parent is specified and R does not embed parent backing shape,
//   - if constructor returns pointer to other type than R,
//   - if shape cache size is not positive.
func NewType[R any](opts ...TypeOption) *RecordType {
	t := reflect.TypeOf((*R)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic(enrichError(ErrUnsupportedShape, "backing shape «%v» is not a struct", t))
	}

	cfg := typeConfig{cacheSize: DefaultShapeCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := &RecordType{
		shape:  t,
		parent: cfg.parent,
		byName: make(map[string]*field),
		ctor:   cfg.ctor,
	}

	if p := cfg.parent; p != nil {
		if _, ok := embedPath(t, p.shape); !ok {
			panic(enrichError(ErrUnsupportedShape, "backing shape «%v» does not embed «%v»", t, p.shape))
		}
		p.seal()
		rt.fields = slices.Clone(p.fields)
		rt.ifields = slices.Clone(p.ifields)
		rt.byName = maps.Clone(p.byName)
	}

	if cfg.ctorType != nil && cfg.ctorType.Elem() != t {
		panic(enrichError(ErrUnsupportedShape, "constructor returns «%v», expected «*%v»", cfg.ctorType, t))
	}

	shapes, err := lru.New[reflect.Type, *shape](cfg.cacheSize)
	if err != nil {
		panic(fmt.Errorf("%v: %w", t, err))
	}
	rt.shapes = shapes

	return rt
}

// Returns backing shape type name
func (rt *RecordType) Name() string { return rt.shape.Name() }

// Returns backing shape
func (rt *RecordType) Shape() reflect.Type { return rt.shape }

// Returns parent type or nil if type does not extend other type
func (rt *RecordType) Parent() *RecordType { return rt.parent }

func (rt *RecordType) String() string { return rt.shape.String() }

// Returns all fields, ancestor fields first, in declaration order
func (rt *RecordType) Fields() []IField { return slices.Clone(rt.ifields) }

// Returns fields count, ancestor fields included
func (rt *RecordType) FieldCount() int { return len(rt.fields) }

// Finds field by name through the whole ancestor chain.
//
// Returns nil if not found.
func (rt *RecordType) Field(name string) IField {
	if f, ok := rt.byName[name]; ok {
		return f
	}
	return nil
}

// Returns is record an instance of this type or of any type extending it
func (rt *RecordType) IsInstance(r IRecord) bool {
	if r == nil {
		return false
	}
	for t := r.Type(); t != nil; t = t.parent {
		if t == rt {
			return true
		}
	}
	return false
}

// Returns is type sealed
func (rt *RecordType) IsSealed() bool { return rt.sealed.Load() }

// Allocates new backing instance and wraps it in default mode.
//
// Backing instance is allocated by constructor if specified, else new zero
// instance is allocated and all slice storages are made with declared lengths.
//
// # Panics:
//   - if constructor returns nil,
//   - if backing shape can not be wrapped.
func (rt *RecordType) NewInstance() IRecord {
	rt.seal()

	var inst any
	if rt.ctor != nil {
		inst = rt.ctor()
		if reflect.ValueOf(inst).IsNil() {
			panic(enrichError(ErrUnsupportedShape, "%v constructor returns nil", rt))
		}
	} else {
		inst = rt.allocate()
	}

	r, err := rt.Wrap(inst)
	if err != nil {
		panic(err)
	}
	return r
}

// Wraps existing backing instance. Instance must be a pointer to backing
// shape struct or to struct which embeds backing shape by value.
//
// If mode is omitted, then Mode_Generated is used for bean shapes and
// Mode_Direct for others.
//
// # Errors:
//   - ErrUnsupportedShape if instance can not be wrapped or requested mode
//     can not represent instance shape,
//   - ErrUnsupportedOperation if mode is unknown.
func (rt *RecordType) Wrap(inst any, mode ...Mode) (IRecord, error) {
	rt.seal()

	v := reflect.ValueOf(inst)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, enrichError(ErrUnsupportedShape, "%v can not wrap «%T», non-nil pointer to struct expected", rt, inst)
	}

	shp, err := rt.shapeOf(v.Type().Elem())
	if err != nil {
		return nil, err
	}

	m := shp.defaultMode()
	if len(mode) > 0 && mode[0] != Mode_null {
		m = mode[0]
	}

	acc, err := shp.newAccessor(m, v)
	if err != nil {
		return nil, err
	}

	return &record{rt: rt, inst: v, shp: shp, acc: acc, mode: m}, nil
}

// Declares boolean field.
//
// # Panics:
//   - if type is sealed,
//   - if name is empty,
//   - if field with name already exists in type or its ancestors,
//   - if backing shape has no exported bool storage for field,
//   - if storage Go name is already used by other field of type or its ancestors.
func (rt *RecordType) BooleanField(name string, opts ...FieldOption) *Field[bool] {
	return &Field[bool]{rt.declare(name, Kind_Boolean, 0, ops[bool]{}, opts)}
}

// Declares byte field, storage type is byte. Panics as BooleanField
func (rt *RecordType) ByteField(name string, opts ...FieldOption) *Field[byte] {
	return &Field[byte]{rt.declare(name, Kind_Byte, 0, ops[byte]{}, opts)}
}

// Declares short field, storage type is int16. Panics as BooleanField
func (rt *RecordType) ShortField(name string, opts ...FieldOption) *Field[int16] {
	return &Field[int16]{rt.declare(name, Kind_Short, 0, ops[int16]{}, opts)}
}

// Declares int field, storage type is int32. Panics as BooleanField
func (rt *RecordType) IntField(name string, opts ...FieldOption) *Field[int32] {
	return &Field[int32]{rt.declare(name, Kind_Int, 0, ops[int32]{}, opts)}
}

// Declares long field, storage type is int64. Panics as BooleanField
func (rt *RecordType) LongField(name string, opts ...FieldOption) *Field[int64] {
	return &Field[int64]{rt.declare(name, Kind_Long, 0, ops[int64]{}, opts)}
}

// Declares float field, storage type is float32. Panics as BooleanField
func (rt *RecordType) FloatField(name string, opts ...FieldOption) *Field[float32] {
	return &Field[float32]{rt.declare(name, Kind_Float, 0, ops[float32]{}, opts)}
}

// Declares double field, storage type is float64. Panics as BooleanField
func (rt *RecordType) DoubleField(name string, opts ...FieldOption) *Field[float64] {
	return &Field[float64]{rt.declare(name, Kind_Double, 0, ops[float64]{}, opts)}
}

// Declares char field, storage type is rune. Panics as BooleanField
func (rt *RecordType) CharField(name string, opts ...FieldOption) *Field[rune] {
	return &Field[rune]{rt.declare(name, Kind_Char, 0, ops[rune]{}, opts)}
}

// Declares object field, storage type is V. Panics as BooleanField
func ObjectField[V any](rt *RecordType, name string, opts ...FieldOption) *Field[V] {
	return &Field[V]{rt.declare(name, Kind_Object, 0, ops[V]{object: true}, opts)}
}

// Declares boolean array field with specified length.
// Storage type is [length]bool or []bool.
//
// # Panics:
//   - as BooleanField,
//   - if length is negative,
//   - if storage is an array with other length.
func (rt *RecordType) BooleanArrayField(name string, length int, opts ...FieldOption) *ArrayField[bool] {
	return &ArrayField[bool]{rt.declare(name, Kind_BooleanArray, length, ops[bool]{}, opts)}
}

// Declares byte array field. Panics as BooleanArrayField
func (rt *RecordType) ByteArrayField(name string, length int, opts ...FieldOption) *ArrayField[byte] {
	return &ArrayField[byte]{rt.declare(name, Kind_ByteArray, length, ops[byte]{}, opts)}
}

// Declares short array field. Panics as BooleanArrayField
func (rt *RecordType) ShortArrayField(name string, length int, opts ...FieldOption) *ArrayField[int16] {
	return &ArrayField[int16]{rt.declare(name, Kind_ShortArray, length, ops[int16]{}, opts)}
}

// Declares int array field. Panics as BooleanArrayField
func (rt *RecordType) IntArrayField(name string, length int, opts ...FieldOption) *ArrayField[int32] {
	return &ArrayField[int32]{rt.declare(name, Kind_IntArray, length, ops[int32]{}, opts)}
}

// Declares long array field. Panics as BooleanArrayField
func (rt *RecordType) LongArrayField(name string, length int, opts ...FieldOption) *ArrayField[int64] {
	return &ArrayField[int64]{rt.declare(name, Kind_LongArray, length, ops[int64]{}, opts)}
}

// Declares float array field. Panics as BooleanArrayField
func (rt *RecordType) FloatArrayField(name string, length int, opts ...FieldOption) *ArrayField[float32] {
	return &ArrayField[float32]{rt.declare(name, Kind_FloatArray, length, ops[float32]{}, opts)}
}

// Declares double array field. Panics as BooleanArrayField
func (rt *RecordType) DoubleArrayField(name string, length int, opts ...FieldOption) *ArrayField[float64] {
	return &ArrayField[float64]{rt.declare(name, Kind_DoubleArray, length, ops[float64]{}, opts)}
}

// Declares char array field. Panics as BooleanArrayField
func (rt *RecordType) CharArrayField(name string, length int, opts ...FieldOption) *ArrayField[rune] {
	return &ArrayField[rune]{rt.declare(name, Kind_CharArray, length, ops[rune]{}, opts)}
}

// Declares object array field. Panics as BooleanArrayField
func ObjectArrayField[V any](rt *RecordType, name string, length int, opts ...FieldOption) *ArrayField[V] {
	return &ArrayField[V]{rt.declare(name, Kind_ObjectArray, length, ops[V]{object: true}, opts)}
}

func (rt *RecordType) declare(name string, kind Kind, length int, vo valueOps, opts []FieldOption) *field {
	if rt.IsSealed() {
		panic(enrichError(ErrUnsupportedOperation, "%v is sealed, can not declare field «%s»", rt, name))
	}
	if name == "" {
		panic(enrichError(ErrInvalidName, "%v: empty field name", rt))
	}
	if f, ok := rt.byName[name]; ok {
		panic(enrichError(ErrDuplicateField, "%v: field «%s» already declared as «%v»", rt, name, f))
	}
	if length < 0 {
		panic(enrichError(ErrIndexOutOfRange, "%v: field «%s» length %d is negative", rt, name, length))
	}

	sf, readOnly, ok := rt.storageField(name)
	if !ok {
		panic(enrichError(ErrUnsupportedShape, "%v has no storage for field «%s»", rt, name))
	}
	if !sf.IsExported() {
		panic(enrichError(ErrUnsupportedShape, "%v: storage «%s» of field «%s» is not exported", rt, sf.Name, name))
	}
	for _, f := range rt.fields {
		if f.goName == sf.Name {
			panic(enrichError(ErrUnsupportedShape, "%v: storage «%s» of field «%s» shadows storage of field «%v», bean accessors would be ambiguous", rt, sf.Name, name, f))
		}
	}

	f := &field{
		name:     name,
		kind:     kind,
		owner:    rt,
		index:    len(rt.fields),
		length:   length,
		readOnly: readOnly,
		goName:   sf.Name,
		sfIndex:  sf.Index[0],
		storage:  sf.Type,
		ops:      vo,
	}
	if err := f.checkStorage(); err != nil {
		panic(fmt.Errorf("%v: %w", rt, err))
	}

	for _, opt := range opts {
		opt(f)
	}

	rt.fields = append(rt.fields, f)
	rt.ifields = append(rt.ifields, f)
	rt.byName[name] = f
	return f
}

// Finds own (not promoted) backing shape struct field for record field name.
// Struct field tag name wins, then exact Go name, then name with upper first letter.
func (rt *RecordType) storageField(name string) (sf reflect.StructField, readOnly bool, ok bool) {
	byGoName := func(n string) (reflect.StructField, bool) {
		for i := 0; i < rt.shape.NumField(); i++ {
			if f := rt.shape.Field(i); !f.Anonymous && f.Name == n {
				if tn, _ := parseTag(f); tn == "" || tn == name {
					return f, true
				}
			}
		}
		return reflect.StructField{}, false
	}

	for i := 0; i < rt.shape.NumField(); i++ {
		f := rt.shape.Field(i)
		if f.Anonymous {
			continue
		}
		if tn, ro := parseTag(f); tn == name {
			return f, ro, true
		}
	}
	if f, found := byGoName(name); found {
		_, ro := parseTag(f)
		return f, ro, true
	}
	if f, found := byGoName(upperFirst(name)); found {
		_, ro := parseTag(f)
		return f, ro, true
	}
	return sf, false, false
}

func (rt *RecordType) seal() { rt.sealed.Store(true) }

func (rt *RecordType) allocate() any {
	v := reflect.New(rt.shape)
	for _, f := range rt.fields {
		if !f.slice {
			continue
		}
		path, _ := embedPath(rt.shape, f.owner.shape)
		v.Elem().FieldByIndex(append(path, f.sfIndex)).Set(reflect.MakeSlice(f.storage, f.length, f.length))
	}
	return v.Interface()
}

// Checks that storage type fits field kind and length
func (f *field) checkStorage() error {
	vt := f.ops.typ()
	if !f.kind.IsArray() {
		if f.storage != vt {
			return enrichError(ErrUnsupportedShape, "storage type «%v» of %s-kind field «%s» expected to be «%v»", f.storage, f.kind.TrimString(), f.name, vt)
		}
		return nil
	}
	switch f.storage.Kind() {
	case reflect.Array:
		if f.storage.Elem() == vt && f.storage.Len() == f.length {
			return nil
		}
	case reflect.Slice:
		if f.storage.Elem() == vt {
			f.slice = true
			return nil
		}
	}
	return enrichError(ErrUnsupportedShape, "storage type «%v» of %s-kind field «%s» expected to be «[%d]%v» or «[]%v»", f.storage, f.kind.TrimString(), f.name, f.length, vt, vt)
}

func parseTag(sf reflect.StructField) (name string, readOnly bool) {
	tag, ok := sf.Tag.Lookup(TagName)
	if !ok {
		return "", false
	}
	parts := strings.Split(tag, ",")
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == TagReadOnly {
			readOnly = true
		}
	}
	return strings.TrimSpace(parts[0]), readOnly
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
