package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(points int) *Record {
	return &Record{Points: points}
}

func TestTopRanksByPointsDescending(t *testing.T) {
	results := NewResults()
	results.Add("r1", scored(3))
	results.Add("r2", scored(1))
	results.Add("r3", scored(3))
	results.Add("r4", scored(0))
	results.Add("r5", scored(2))

	top := results.Top(3)
	require.Len(t, top, 3)
	// Ties keep fetch order: r1 before r3.
	assert.Equal(t, "r1", top[0].Ref)
	assert.Equal(t, "r3", top[1].Ref)
	assert.Equal(t, "r5", top[2].Ref)
}

func TestTopReturnsEverythingWhenMaxExceedsCount(t *testing.T) {
	results := NewResults()
	for _, ref := range []string{"a", "b", "c", "d", "e"} {
		results.Add(ref, scored(1))
	}

	top := results.Top(100)
	assert.Len(t, top, 5)
}

func TestTopWithNonPositiveMax(t *testing.T) {
	results := NewResults()
	results.Add("a", scored(1))
	results.Add("b", scored(2))

	assert.Empty(t, results.Top(0))
	assert.Empty(t, results.Top(-1))
}

func TestAddKeepsFirstPosition(t *testing.T) {
	results := NewResults()
	results.Add("a", scored(1))
	results.Add("b", scored(1))
	results.Add("a", scored(5))

	assert.Equal(t, 2, results.Len())
	top := results.Top(10)
	assert.Equal(t, "a", top[0].Ref)
	assert.Equal(t, 5, top[0].Record.Points)
}

func TestGet(t *testing.T) {
	results := NewResults()
	results.Add("a", scored(2))

	rec, ok := results.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, rec.Points)

	_, ok = results.Get("missing")
	assert.False(t, ok)
}
