package intvec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/intvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBinary(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, -1, New(nil).FindBinary(1))
	})

	t.Run("SingleElement", func(t *testing.T) {
		a := New([]int{7})

		assert.Equal(t, 0, a.FindBinary(7))
		assert.Equal(t, -1, a.FindBinary(6))
		assert.Equal(t, -1, a.FindBinary(8))
	})

	t.Run("Duplicates", func(t *testing.T) {
		a := New([]int{1, 2, 2, 2, 3})

		i := a.FindBinary(2)
		require.NotEqual(t, -1, i)
		v, err := a.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})

	t.Run("NegativeValues", func(t *testing.T) {
		a := New([]int{-9, -3, 0, 4})

		assert.Equal(t, 0, a.FindBinary(-9))
		assert.Equal(t, 1, a.FindBinary(-3))
		assert.Equal(t, -1, a.FindBinary(-4))
	})

	t.Run("AgreesWithLinearOnSorted", func(t *testing.T) {
		rng := testutil.NewRNG(4711)

		for range 20 {
			a := New(rng.SortedInts(rng.Intn(300), 100))

			for v := -1; v <= 100; v++ {
				lin := a.FindLinear(v)
				bin := a.FindBinary(v)

				assert.Equal(t, lin == -1, bin == -1, "value %d", v)
				if bin != -1 {
					got, err := a.Get(bin)
					require.NoError(t, err)
					assert.Equal(t, v, got)
				}
			}
		}
	})

	t.Run("AfterRemoveStaysSorted", func(t *testing.T) {
		a := New([]int{1, 3, 5, 7, 9})
		require.NoError(t, a.RemoveAt(2))

		assert.Equal(t, -1, a.FindBinary(5))
		assert.Equal(t, 2, a.FindBinary(7))
	})
}

func TestSortedCheck(t *testing.T) {
	newArray := func(values []int) (*IntArray, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		return New(values, WithLogger(logger), WithSortedCheck(true)), &buf
	}

	t.Run("WarnsOnUnsorted", func(t *testing.T) {
		unsorted := []int{3, 1, 2}
		a, buf := newArray(unsorted)

		got := a.FindBinary(2)

		assert.Contains(t, buf.String(), "binary search on unsorted elements")
		assert.Equal(t, New(unsorted).FindBinary(2), got)
		assert.Equal(t, unsorted, a.Values())
	})

	t.Run("SilentOnSorted", func(t *testing.T) {
		a, buf := newArray([]int{1, 2, 3})

		assert.Equal(t, 1, a.FindBinary(2))
		assert.Empty(t, buf.String())
	})

	t.Run("DisabledByDefault", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

		New([]int{3, 1, 2}, WithLogger(logger)).FindBinary(2)

		assert.Empty(t, buf.String())
	})
}

func TestFindAll(t *testing.T) {
	t.Run("Positions", func(t *testing.T) {
		a := New([]int{5, 5, 2, 5})

		assert.Equal(t, []uint32{0, 1, 3}, a.FindAll(5).ToArray())
		assert.Equal(t, []uint32{2}, a.FindAll(2).ToArray())
		assert.True(t, a.FindAll(9).IsEmpty())
	})

	t.Run("IgnoresSlotsBeyondLength", func(t *testing.T) {
		a := New([]int{4, 4, 4})
		require.NoError(t, a.RemoveAt(2))

		assert.Equal(t, []uint32{0, 1}, a.FindAll(4).ToArray())
	})

	t.Run("CardinalityMatchesCount", func(t *testing.T) {
		rng := testutil.NewRNG(99)
		a := New(rng.Ints(1000, 15))

		for v := range 16 {
			assert.Equal(t, uint64(a.Count(v)), a.FindAll(v).GetCardinality(), "value %d", v)
		}
	})
}

func TestCount(t *testing.T) {
	rng := testutil.NewRNG(7)
	values := rng.Ints(500, 8)
	a := New(values)

	for v := range 8 {
		want := 0
		for i := range a.Indices() {
			if got, _ := a.Get(i); got == v {
				want++
			}
		}
		assert.Equal(t, want, a.Count(v))
	}

	a.Clear()
	assert.Equal(t, 0, a.Count(values[0]))
}
