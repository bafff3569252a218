/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordType_Declare(t *testing.T) {
	require := require.New(t)

	ts := newTestSchema()
	require.Equal("testA", ts.rt.Name())
	require.Equal(21, ts.rt.FieldCount())
	require.Len(ts.rt.Fields(), ts.rt.FieldCount())
	require.Nil(ts.rt.Parent())

	t.Run("field properties", func(t *testing.T) {
		require.Equal("i", ts.i.Name())
		require.Equal(Kind_Int, ts.i.Kind())
		require.Equal(ts.rt, ts.i.Owner())
		require.Zero(ts.i.Len())
		require.False(ts.i.IsTransient())
		require.False(ts.i.IsReadOnly())
		require.Equal("testA.i", ts.i.String())

		require.Equal(Kind_ObjectArray, ts.stra.Kind())
		require.Equal(2, ts.stra.Len())
		require.True(ts.str.IsTransient())
		require.True(ts.ro.IsReadOnly())
		require.True(ts.roa.IsReadOnly())
	})

	t.Run("find field by name", func(t *testing.T) {
		require.Equal(ts.ia.desc(), ts.rt.Field("ia").desc())
		require.Nil(ts.rt.Field("unknown"))
	})

	t.Run("fields are in declaration order", func(t *testing.T) {
		fields := ts.rt.Fields()
		require.Equal("z", fields[0].Name())
		require.Equal("x", fields[len(fields)-1].Name())
	})

	t.Run("storage name resolution", func(t *testing.T) {
		type names struct {
			Exact int32
			Upper int32
			Other int32 `record:"tagged"`
			Plain int32 `record:",readonly"`
		}
		rt := NewType[names]()
		require.Equal("Exact", rt.IntField("Exact").goName)
		require.Equal("Upper", rt.IntField("upper").goName)
		require.Equal("Other", rt.IntField("tagged").goName)

		plain := rt.IntField("plain")
		require.Equal("Plain", plain.goName)
		require.True(plain.IsReadOnly())

		requirePanicsIs(t, ErrUnsupportedShape, func() { rt.IntField("other") })
	})
}

func TestRecordType_DeclarePanics(t *testing.T) {
	type declShape struct {
		I   int32
		L   int64
		A   [2]int32
		S   []int32
		unx int32
	}

	tests := []struct {
		name string
		err  error
		decl func(*RecordType)
	}{
		{"duplicate field", ErrDuplicateField, func(rt *RecordType) { rt.IntField("i"); rt.IntField("i") }},
		{"empty name", ErrInvalidName, func(rt *RecordType) { rt.IntField("") }},
		{"no storage", ErrUnsupportedShape, func(rt *RecordType) { rt.IntField("unknown") }},
		{"unexported storage", ErrUnsupportedShape, func(rt *RecordType) { rt.IntField("unx") }},
		{"storage type mismatch", ErrUnsupportedShape, func(rt *RecordType) { rt.IntField("l") }},
		{"scalar field on array storage", ErrUnsupportedShape, func(rt *RecordType) { rt.IntField("a") }},
		{"array length mismatch", ErrUnsupportedShape, func(rt *RecordType) { rt.IntArrayField("a", 3) }},
		{"array element type mismatch", ErrUnsupportedShape, func(rt *RecordType) { rt.LongArrayField("s", 3) }},
		{"negative length", ErrIndexOutOfRange, func(rt *RecordType) { rt.IntArrayField("s", -1) }},
		{"sealed type", ErrUnsupportedOperation, func(rt *RecordType) { _ = rt.NewInstance(); rt.IntField("i") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewType[declShape]()
			requirePanicsIs(t, tt.err, func() { tt.decl(rt) })
		})
	}

	t.Run("slice storage accepts any length", func(t *testing.T) {
		rt := NewType[declShape]()
		s := rt.IntArrayField("s", 5)
		require.True(t, s.slice)
		require.Len(t, rt.NewInstance().Instance().(*declShape).S, 5)
	})

	t.Run("not a struct shape", func(t *testing.T) {
		requirePanicsIs(t, ErrUnsupportedShape, func() { NewType[int]() })
	})
}

type scenarioA struct {
	Df int32 `record:"df,readonly"`
	Ga [2]float64
}

func TestRecordType_Constructor(t *testing.T) {
	require := require.New(t)

	rt := NewType[scenarioA](Constructor(func() *scenarioA { return &scenarioA{Df: 5} }))
	df := rt.IntField("df")
	ga := rt.DoubleArrayField("ga", 2)

	for _, mode := range Modes() {
		t.Run(mode.TrimString(), func(t *testing.T) {
			r, err := rt.Wrap(rt.NewInstance().Instance(), mode)
			require.NoError(err)

			v, err := df.Get(r)
			require.NoError(err)
			require.Equal(int32(5), v)

			require.ErrorIs(df.Set(r, 9), ErrReadOnlyField)
			v, err = df.Get(r)
			require.NoError(err)
			require.Equal(int32(5), v)

			require.NoError(ga.Set(r, 1, 3.14))
			g, err := ga.Get(r, 1)
			require.NoError(err)
			require.Equal(3.14, g)

			_, err = ga.Get(r, 2)
			require.ErrorIs(err, ErrIndexOutOfRange)
			_, err = ga.Get(r, -1)
			require.ErrorIs(err, ErrIndexOutOfRange)
		})
	}

	t.Run("constructor returns nil", func(t *testing.T) {
		rt := NewType[scenarioA](Constructor(func() *scenarioA { return nil }))
		requirePanicsIs(t, ErrUnsupportedShape, func() { rt.NewInstance() })
	})
}

type inhA struct {
	A1  int32
	Str string
}

type inhB struct {
	inhA
	D1   float64
	Str1 string
}

func (b *inhB) GetStr1() string { return "<" + b.Str1 + ">" }

func (b *inhB) SetStr1(v string) { b.Str1 = v }

func TestRecordType_Extends(t *testing.T) {
	require := require.New(t)

	rtA := NewType[inhA]()
	a1 := rtA.IntField("a1")
	str := ObjectField[string](rtA, "str")

	rtB := NewType[inhB](Extends(rtA))
	d1 := rtB.DoubleField("d1")
	str1 := ObjectField[string](rtB, "str1")

	require.Equal(rtA, rtB.Parent())
	require.True(rtA.IsSealed())
	require.False(rtB.IsSealed())
	require.Equal(4, rtB.FieldCount())
	require.Equal(a1.desc(), rtB.Field("a1").desc())

	t.Run("parent is sealed", func(t *testing.T) {
		requirePanicsIs(t, ErrUnsupportedOperation, func() { rtA.LongField("a2") })
	})

	t.Run("duplicate of parent field", func(t *testing.T) {
		rt := NewType[inhB](Extends(rtA))
		requirePanicsIs(t, ErrDuplicateField, func() { ObjectField[string](rt, "str") })
	})

	t.Run("storage shadowing parent storage", func(t *testing.T) {
		type parent struct{ V int32 }
		type child struct {
			parent
			V int32 `record:"v2"`
		}
		rtP := NewType[parent]()
		rtP.IntField("v")
		rtC := NewType[child](Extends(rtP))
		requirePanicsIs(t, ErrUnsupportedShape, func() { rtC.IntField("v2") })
		require.Equal(1, rtC.FieldCount())
	})

	t.Run("shape must embed parent shape", func(t *testing.T) {
		requirePanicsIs(t, ErrUnsupportedShape, func() { NewType[testA](Extends(rtA)) })
	})

	for _, mode := range []Mode{Mode_Generated, Mode_BoundFunction, Mode_Reflective} {
		t.Run(mode.TrimString(), func(t *testing.T) {
			b, err := rtB.Wrap(&inhB{}, mode)
			require.NoError(err)

			require.NoError(a1.Set(b, 1))
			require.NoError(str.Set(b, "a"))
			require.NoError(d1.Set(b, 2.5))
			require.NoError(str1.Set(b, "b"))

			inst := b.Instance().(*inhB)
			require.Equal(int32(1), inst.A1)
			require.Equal("a", inst.Str)
			require.Equal(2.5, inst.D1)
			require.Equal("b", inst.Str1)

			s1, err := str1.Get(b)
			require.NoError(err)
			require.Equal("<b>", s1)

			t.Run("parent type wraps descendant instance", func(t *testing.T) {
				a, err := rtA.Wrap(inst, mode)
				require.NoError(err)
				v, err := a1.Get(a)
				require.NoError(err)
				require.Equal(int32(1), v)

				_, err = d1.Get(a)
				require.ErrorIs(err, ErrFieldNotFound)
			})

			t.Run("IsInstance", func(t *testing.T) {
				require.True(rtA.IsInstance(b))
				require.True(rtB.IsInstance(b))
				require.True(rtA.IsInstance(rtA.NewInstance()))
				require.False(rtB.IsInstance(rtA.NewInstance()))
				require.False(rtB.IsInstance(nil))
			})
		})
	}

	t.Run("Direct mode", func(t *testing.T) {
		_, err := rtB.Wrap(&inhB{}, Mode_Direct)
		require.ErrorIs(err, ErrUnsupportedShape)

		a, err := rtA.Wrap(&inhB{inhA: inhA{A1: 3}}, Mode_Direct)
		require.NoError(err)
		v, err := a1.Get(a)
		require.NoError(err)
		require.Equal(int32(3), v)
	})
}
