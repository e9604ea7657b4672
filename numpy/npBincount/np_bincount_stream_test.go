package npBincount

import (
	"math"
	"math/rand"
	"testing"

	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestCounterAdd(t *testing.T) {
	c, err := NewCounter(3, TRUNC_TOWARD_ZERO)
	require.NoError(t, err)
	require.Equal(t, 3, c.BinCount())

	for _, v := range []float64{1, 2, 2, 3} {
		require.NoError(t, c.Add(v))
	}
	require.Equal(t, []float64{1, 2, 1}, c.Counts())
	require.Equal(t, 4, c.N())

	// 失败的 Add 不改计数
	err = c.Add(5)
	require.True(t, errorx.Is(err, errCode.INDEX_OUT_OF_RANGE))
	require.ErrorContains(t, err, "indices[4]")
	err = c.Add(math.NaN())
	require.True(t, errorx.Is(err, errCode.NON_FINITE_INPUT))
	require.Equal(t, []float64{1, 2, 1}, c.Counts())
	require.Equal(t, 4, c.N())
}

func TestCounterCountsIsCopy(t *testing.T) {
	c, err := NewCounter(2, TRUNC_TOWARD_ZERO)
	require.NoError(t, err)
	require.NoError(t, c.Add(1))

	got := c.Counts()
	got[0] = 100
	require.Equal(t, []float64{1, 0}, c.Counts())
}

func TestCounterAddAllAtomic(t *testing.T) {
	c, err := NewCounter(3, TRUNC_TOWARD_ZERO)
	require.NoError(t, err)
	require.NoError(t, c.AddAll([]float64{1, 1, 1}))

	err = c.AddAll([]float64{2, 3, 4})
	require.True(t, errorx.Is(err, errCode.INDEX_OUT_OF_RANGE))
	require.ErrorContains(t, err, "indices[5]")
	require.Equal(t, []float64{3, 0, 0}, c.Counts())
	require.Equal(t, 3, c.N())

	require.NoError(t, c.AddAll(nil))
	require.NoError(t, c.AddAll([]float64{2.9, 3}))
	require.Equal(t, []float64{3, 1, 1}, c.Counts())
}

func TestCounterZeroBins(t *testing.T) {
	c, err := NewCounter(0, TRUNC_TOWARD_ZERO)
	require.NoError(t, err)
	require.Equal(t, []float64{}, c.Counts())
	require.NoError(t, c.AddAll(nil))

	require.True(t, errorx.Is(c.Add(1), errCode.INVALID_BIN_COUNT))
	require.True(t, errorx.Is(c.AddAll([]float64{1}), errCode.INVALID_BIN_COUNT))
}

func TestNewCounterErrors(t *testing.T) {
	_, err := NewCounter(-2, TRUNC_TOWARD_ZERO)
	require.True(t, errorx.Is(err, errCode.INVALID_BIN_COUNT))

	_, err = NewCounter(2, TRUNC_POLICY_ERROR)
	require.True(t, errorx.Is(err, errCode.INVALID_VALUE))
}

func TestCounterStrict(t *testing.T) {
	c, err := NewCounter(2, STRICT_ONE_BASED)
	require.NoError(t, err)
	require.True(t, errorx.Is(c.Add(0.5), errCode.INDEX_OUT_OF_RANGE))
	require.NoError(t, c.Add(1.5))
	require.Equal(t, []float64{1, 0}, c.Counts())
}

func TestCounterPermutationInvariance(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	in := randomIndices(r, 2000, 7)

	want, err := Count(in, 7)
	require.NoError(t, err)

	for trial := 0; trial < 10; trial++ {
		shuffled := append([]float64(nil), in...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		c, err := NewCounter(7, TRUNC_TOWARD_ZERO)
		require.NoError(t, err)
		// 一半逐个 Add，一半 AddAll
		half := len(shuffled) / 2
		for _, v := range shuffled[:half] {
			require.NoError(t, c.Add(v))
		}
		require.NoError(t, c.AddAll(shuffled[half:]))

		require.Equal(t, want, c.Counts())
		require.Equal(t, len(in), c.N())
		require.Equal(t, float64(len(in)), floats.Sum(c.Counts()))
	}
}
