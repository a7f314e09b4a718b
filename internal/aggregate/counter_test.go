package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogTypeCounter_StableFirstSeenIDs(t *testing.T) {
	c := NewLogTypeCounter()

	assert.Equal(t, 0, c.Observe("%ts% starting"))
	assert.Equal(t, 1, c.Observe("%ts% stopping"))
	assert.Equal(t, 0, c.Observe("%ts% starting"))
	assert.Equal(t, 0, c.Observe("%ts% starting"))

	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 2, c.Len())
}

func TestLogTypeCounter_ByID(t *testing.T) {
	c := NewLogTypeCounter()
	c.Observe("b")
	c.Observe("a")
	c.Observe("a")

	counts := c.ByID()
	require.Len(t, counts, 2)
	assert.Equal(t, LogTypeCount{ID: 0, LogType: "b", Count: 1}, counts[0])
	assert.Equal(t, LogTypeCount{ID: 1, LogType: "a", Count: 2}, counts[1])
}

func TestLogTypeCounter_ByCount(t *testing.T) {
	c := NewLogTypeCounter()
	c.Observe("rare")
	c.Observe("common")
	c.Observe("common")
	c.Observe("common")
	c.Observe("middle")
	c.Observe("middle")

	counts := c.ByCount()
	require.Len(t, counts, 3)
	assert.Equal(t, "common", counts[0].LogType)
	assert.Equal(t, "middle", counts[1].LogType)
	assert.Equal(t, "rare", counts[2].LogType)
}

func TestLogTypeCounter_ByCountStableOnTies(t *testing.T) {
	c := NewLogTypeCounter()
	c.Observe("first")
	c.Observe("second")

	counts := c.ByCount()
	require.Len(t, counts, 2)
	assert.Equal(t, "first", counts[0].LogType)
	assert.Equal(t, "second", counts[1].LogType)
}

func TestLogTypeCounter_SnapshotIsCopy(t *testing.T) {
	c := NewLogTypeCounter()
	c.Observe("x")

	snapshot := c.ByID()
	snapshot[0].Count = 99

	assert.Equal(t, 1, c.ByID()[0].Count)
}
