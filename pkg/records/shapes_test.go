/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"errors"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

// Plain backing shape with storages for all kinds
type testA struct {
	Z    bool
	B    byte
	S    int16
	I    int32
	J    int64
	F    float32
	D    float64
	C    rune
	Str  string
	Za   [2]bool
	Ba   []byte
	Sa   [2]int16
	Ia   [2]int32
	Ja   []int64
	Fa   [2]float32
	Da   [2]float64
	Ca   [2]rune
	Stra [2]string
	Ro   int32    `record:"ro,readonly"`
	Roa  [2]int32 `record:"roa,readonly"`
	X    int32
}

// Bean backing shape. Accessors transform values, so storage and record values differ:
//   - z is negated both ways,
//   - b, i and ia add one both ways,
//   - s has setter only, it doubles the value,
//   - f getter doubles the value,
//   - d is negated both ways,
//   - c getter upper-cases the char,
//   - str getter brackets the string,
//   - x has getter only, it adds one.
type testB struct {
	testA
	Note string
}

func (b *testB) IsZ() bool { return !b.Z }

func (b *testB) SetZ(v bool) { b.Z = !v }

func (b *testB) GetB() byte { return b.B + 1 }

func (b *testB) SetB(v byte) { b.B = v + 1 }

func (b *testB) SetS(v int16) { b.S = v * 2 }

func (b *testB) GetF() float32 { return b.F * 2 }

func (b *testB) SetF(v float32) { b.F = v }

func (b *testB) GetD() float64 { return -b.D }

func (b *testB) SetD(v float64) { b.D = -v }

func (b *testB) GetC() rune { return unicode.ToUpper(b.C) }

func (b *testB) SetC(v rune) { b.C = v }

func (b *testB) GetStr() string { return "<" + b.Str + ">" }

func (b *testB) SetStr(v string) { b.Str = v }

func (b *testB) GetI() int32 { return b.I + 1 }

func (b *testB) SetI(v int32) { b.I = v + 1 }

func (b *testB) GetIa(i int) int32 { return b.Ia[i] + 1 }

func (b *testB) SetIa(i int, v int32) { b.Ia[i] = v + 1 }

func (b *testB) GetX() int32 { return b.X + 1 }

func newTestB() *testB {
	b := &testB{}
	b.Ba = make([]byte, 2)
	b.Ja = make([]int64, 2)
	return b
}

type testSchema struct {
	rt *RecordType

	z   *Field[bool]
	b   *Field[byte]
	s   *Field[int16]
	i   *Field[int32]
	j   *Field[int64]
	f   *Field[float32]
	d   *Field[float64]
	c   *Field[rune]
	str *Field[string]

	za   *ArrayField[bool]
	ba   *ArrayField[byte]
	sa   *ArrayField[int16]
	ia   *ArrayField[int32]
	ja   *ArrayField[int64]
	fa   *ArrayField[float32]
	da   *ArrayField[float64]
	ca   *ArrayField[rune]
	stra *ArrayField[string]

	ro  *Field[int32]
	roa *ArrayField[int32]
	x   *Field[int32]
}

func newTestSchema() *testSchema {
	rt := NewType[testA]()
	return &testSchema{
		rt: rt,

		z:   rt.BooleanField("z"),
		b:   rt.ByteField("b"),
		s:   rt.ShortField("s"),
		i:   rt.IntField("i"),
		j:   rt.LongField("j"),
		f:   rt.FloatField("f"),
		d:   rt.DoubleField("d"),
		c:   rt.CharField("c"),
		str: ObjectField[string](rt, "str", Transient()),

		za:   rt.BooleanArrayField("za", 2),
		ba:   rt.ByteArrayField("ba", 2),
		sa:   rt.ShortArrayField("sa", 2),
		ia:   rt.IntArrayField("ia", 2),
		ja:   rt.LongArrayField("ja", 2),
		fa:   rt.FloatArrayField("fa", 2),
		da:   rt.DoubleArrayField("da", 2),
		ca:   rt.CharArrayField("ca", 2),
		stra: ObjectArrayField[string](rt, "stra", 2),

		ro:  rt.IntField("ro"),
		roa: rt.IntArrayField("roa", 2),
		x:   rt.IntField("x"),
	}
}

// Fills all writable fields with non zero values
func (ts *testSchema) fill(t *testing.T, r IRecord) {
	require := require.New(t)

	require.NoError(ts.z.Set(r, true))
	require.NoError(ts.b.Set(r, 1))
	require.NoError(ts.s.Set(r, 2))
	require.NoError(ts.i.Set(r, 3))
	require.NoError(ts.j.Set(r, 4))
	require.NoError(ts.f.Set(r, 5.5))
	require.NoError(ts.d.Set(r, 6.6))
	require.NoError(ts.c.Set(r, 'c'))
	require.NoError(ts.str.Set(r, "str"))

	require.NoError(ts.za.SetAll(r, []bool{true, true}, 0))
	require.NoError(ts.ba.SetAll(r, []byte{7, 8}, 0))
	require.NoError(ts.sa.SetAll(r, []int16{9, 10}, 0))
	require.NoError(ts.ia.SetAll(r, []int32{11, 12}, 0))
	require.NoError(ts.ja.SetAll(r, []int64{13, 14}, 0))
	require.NoError(ts.fa.SetAll(r, []float32{15.5, 16.5}, 0))
	require.NoError(ts.da.SetAll(r, []float64{17.5, 18.5}, 0))
	require.NoError(ts.ca.SetAll(r, []rune{'a', 'b'}, 0))
	require.NoError(ts.stra.SetAll(r, []string{"s0", "s1"}, 0))
}

// Checks that f panics with error which wraps target
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "panic expected")
		err, ok := r.(error)
		require.True(t, ok, "error panic expected, got «%v»", r)
		require.True(t, errors.Is(err, target), "«%v» is not «%v»", err, target)
	}()
	f()
}
