/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestRecord_FuzzRoundTrip(t *testing.T) {
	const iterations = 500

	for _, mode := range Modes() {
		t.Run(mode.TrimString(), func(t *testing.T) {
			require := require.New(t)
			ts := newTestSchema()
			fuzz := fuzz.New().NilChance(0).NumElements(2, 2)

			var src testA
			for i := 0; i < iterations; i++ {
				fuzz.Fuzz(&src)
				src.Ro, src.Roa = 0, [2]int32{}

				s, err := ts.rt.Wrap(&src, mode)
				require.NoError(err)
				d, err := ts.rt.Wrap(ts.rt.NewInstance().Instance(), mode)
				require.NoError(err)

				require.NoError(Copy(s, d))
				require.True(DeepEquals(s, d))
				require.Equal(src, *d.Instance().(*testA))

				iv, err := ts.i.Get(d)
				require.NoError(err)
				require.Equal(src.I, iv)

				ca := make([]rune, 2)
				require.NoError(ts.ca.GetAll(d, ca, 0))
				require.Equal(src.Ca[:], ca)
			}
		})
	}
}

func TestRecord_FuzzBeans(t *testing.T) {
	require := require.New(t)
	ts := newTestSchema()
	fuzz := fuzz.New()

	for _, mode := range []Mode{Mode_Generated, Mode_BoundFunction, Mode_Reflective} {
		b := newTestB()
		r, err := ts.rt.Wrap(b, mode)
		require.NoError(err)

		var v int32
		for i := 0; i < 100; i++ {
			fuzz.Fuzz(&v)
			require.NoError(ts.i.Set(r, v))
			require.Equal(v+1, b.I)
			got, err := ts.i.Get(r)
			require.NoError(err)
			require.Equal(v+2, got, mode)
		}
	}
}
