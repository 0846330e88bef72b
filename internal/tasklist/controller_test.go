package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestAddAppendsTrimmedPendingTask(t *testing.T) {
	c := New()

	for i, in := range []string{"Buy milk", "  Walk dog  ", "\tcall mom\n"} {
		require.NoError(t, c.Add(in))
		assert.Equal(t, i+1, c.Len())
	}

	assert.Equal(t, []model.Task{
		{Text: "Buy milk"},
		{Text: "Walk dog"},
		{Text: "call mom"},
	}, c.Snapshot())
}

func TestAddRejectsBlankText(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("keep"))
	before := c.Snapshot()

	for _, in := range []string{"", "   ", "\t\n"} {
		err := c.Add(in)
		assert.ErrorIs(t, err, ErrValidation, "input %q", in)
	}
	assert.Equal(t, before, c.Snapshot())
}

func TestMarkCompleteIsOneWayAndIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("Buy milk"))

	out, err := c.MarkComplete(0)
	require.NoError(t, err)
	assert.Equal(t, MarkedComplete, out)

	before := c.Snapshot()
	out, err = c.MarkComplete(0)
	require.NoError(t, err)
	assert.Equal(t, AlreadyComplete, out)
	assert.Equal(t, before, c.Snapshot())
	assert.True(t, c.Snapshot()[0].Completed)
}

func TestMarkCompleteInvalidIndex(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("a"))

	for _, idx := range []int{NoSelection, -5, 1, 42} {
		_, err := c.MarkComplete(idx)
		assert.ErrorIs(t, err, ErrNoSelection, "index %d", idx)
	}
	assert.False(t, c.Snapshot()[0].Completed)
}

func TestDeleteRemovesTaskAtIndex(t *testing.T) {
	c := New()
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, c.Add(s))
	}

	require.NoError(t, c.Delete(1))
	assert.Equal(t, []model.Task{{Text: "a"}, {Text: "c"}}, c.Snapshot())
}

func TestDeleteInvalidIndexDoesNotMutate(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Delete(0), ErrNoSelection)
	assert.Empty(t, c.Snapshot())

	require.NoError(t, c.Add("a"))
	before := c.Snapshot()
	for _, idx := range []int{NoSelection, -2, 1} {
		assert.ErrorIs(t, c.Delete(idx), ErrNoSelection, "index %d", idx)
	}
	assert.Equal(t, before, c.Snapshot())
}

func TestClearAll(t *testing.T) {
	c := New()
	assert.Equal(t, AlreadyEmpty, c.ClearAll())

	require.NoError(t, c.Add("a"))
	require.NoError(t, c.Add("b"))
	_, err := c.MarkComplete(1)
	require.NoError(t, err)

	assert.Equal(t, Cleared, c.ClearAll())
	assert.Empty(t, c.Snapshot())
	assert.Equal(t, model.Status{}, c.Status())
}

func TestStatusScenario(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("Buy milk"))
	require.NoError(t, c.Add("Walk dog"))
	_, err := c.MarkComplete(0)
	require.NoError(t, err)

	assert.Equal(t, []model.Task{
		{Text: "Buy milk", Completed: true},
		{Text: "Walk dog"},
	}, c.Snapshot())
	st := c.Status()
	assert.Equal(t, model.Status{Total: 2, Completed: 1, Pending: 1}, st)
	assert.Equal(t, "Total: 2 | Completed: 1 | Pending: 1", st.String())
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("a"))

	snap := c.Snapshot()
	snap[0].Text = "mutated"
	snap[0].Completed = true

	assert.Equal(t, []model.Task{{Text: "a"}}, c.Snapshot())
}

func TestNoOpCallsLeaveSnapshotUnchanged(t *testing.T) {
	c := New()
	before := c.Snapshot()
	c.ClearAll()
	assert.Equal(t, before, c.Snapshot())

	require.NoError(t, c.Add("a"))
	_, err := c.MarkComplete(0)
	require.NoError(t, err)
	before = c.Snapshot()
	_, err = c.MarkComplete(0)
	require.NoError(t, err)
	assert.Equal(t, before, c.Snapshot())
}

func TestSelectionFollowsDeletes(t *testing.T) {
	c := New()
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.Add(s))
	}

	_, ok := c.Selected()
	assert.False(t, ok)

	require.NoError(t, c.Select(2))
	require.NoError(t, c.Delete(0))
	idx, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx, "deleting above the selection shifts it")

	require.NoError(t, c.Delete(2))
	idx, ok = c.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx, "deleting below the selection leaves it")

	require.NoError(t, c.Delete(1))
	_, ok = c.Selected()
	assert.False(t, ok, "deleting the selected task clears the selection")
}

func TestSelectValidation(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Select(0), ErrNoSelection)

	require.NoError(t, c.Add("a"))
	require.NoError(t, c.Select(0))
	require.NoError(t, c.Select(NoSelection))
	_, ok := c.Selected()
	assert.False(t, ok)

	require.NoError(t, c.Select(0))
	c.ClearAll()
	_, ok = c.Selected()
	assert.False(t, ok)

	require.NoError(t, c.Add("b"))
	require.NoError(t, c.Select(0))
	c.ClearSelection()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "already complete", AlreadyComplete.String())
	assert.Equal(t, "marked complete", MarkedComplete.String())
	assert.Equal(t, "already empty", AlreadyEmpty.String())
	assert.Equal(t, "cleared", Cleared.String())
}
