package list_test

import (
	"testing"

	"github.com/sagernet/sing-dlist/list"

	"github.com/stretchr/testify/require"
)

func TestIndexOfFirstLessThanAverage(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name     string
		values   []int
		expected int
	}{
		{"ascending", []int{1, 2, 3, 4, 5}, 0},
		{"descending", []int{5, 4, 3, 2, 1}, 3},
		{"all equal", []int{2, 2, 2}, -1},
		{"single", []int{7}, -1},
		{"negative", []int{-1, -5, 0}, 1},
		{"empty", nil, -1},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, build(testCase.values...).IndexOfFirstLessThanAverage())
		})
	}
}

func TestIndexOfFirstLessThanAverageFloat(t *testing.T) {
	t.Parallel()
	// mean is 2.5, which integer division would have truncated to 2
	require.Equal(t, 1, build(3.0, 2.0, 4.0, 1.0).IndexOfFirstLessThanAverage())
	require.Equal(t, 1, build(3, 2, 4, 1).IndexOfFirstLessThanAverage())
}

func TestSumAfterMax(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name     string
		values   []int
		expected float64
	}{
		{"middle max", []int{1, 5, 2, 4, 3}, 9},
		{"max at tail", []int{1, 2, 3}, 0},
		{"max at head", []int{9, 1, 2}, 3},
		{"first of ties", []int{5, 1, 5, 2}, 8},
		{"single", []int{4}, 0},
		{"empty", nil, 0},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, build(testCase.values...).SumAfterMax())
		})
	}
	require.InDelta(t, 0.75, build(0.5, 2.5, 0.25, 0.5).SumAfterMax(), 1e-9)
}

func TestGetElementsGreaterThan(t *testing.T) {
	t.Parallel()
	source := build(1, 2, 3, 4, 5)
	result := source.GetElementsGreaterThan(2)
	require.Equal(t, []int{5, 4, 3}, result.Array())
	require.Equal(t, 3, result.Count())
	require.Equal(t, []int{1, 2, 3, 4, 5}, source.Array())

	require.True(t, source.GetElementsGreaterThan(5).IsEmpty())
	require.True(t, list.New[int]().GetElementsGreaterThan(0).IsEmpty())

	result.AddFirst(6)
	require.NoError(t, result.RemoveAt(1))
	require.Equal(t, []int{1, 2, 3, 4, 5}, source.Array())
}

func TestRemoveBeforeMax(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name     string
		values   []int
		expected []int
	}{
		{"middle max", []int{3, 1, 4, 1, 2}, []int{4, 1, 2}},
		{"max at tail", []int{3, 1, 4, 1, 5}, []int{5}},
		{"max at head", []int{9, 1, 2}, []int{9, 1, 2}},
		{"first of ties", []int{1, 5, 1, 5, 2}, []int{5, 1, 5, 2}},
		{"empty", nil, nil},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			l := build(testCase.values...)
			l.RemoveBeforeMax()
			require.Equal(t, testCase.expected, l.Array())
			require.Equal(t, len(testCase.expected), l.Count())
		})
	}
}

func TestRemoveBeforeMaxThenMutate(t *testing.T) {
	t.Parallel()
	l := build(3, 1, 4, 1, 5, 2)
	l.RemoveBeforeMax()
	require.Equal(t, []int{5, 2}, l.Array())
	l.AddFirst(8)
	require.NoError(t, l.RemoveAt(2))
	require.Equal(t, []int{8, 5}, l.Array())
	value, err := l.Get(1)
	require.NoError(t, err)
	require.Equal(t, 5, value)
	_, err = l.Get(2)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
}
