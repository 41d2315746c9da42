package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewList(t *testing.T) {
	l := NewList([]int{2, -122, 2, 7})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{2, -122, 7}, l.IDs())

	for _, r := range l.Records() {
		assert.True(t, r.Visible)
		assert.Equal(t, NameFor(r.ID), r.Name)
		assert.Equal(t, ColorFor(r.ID), r.Color)
	}
}

func TestListToggle(t *testing.T) {
	l := NewList([]int{1, 2})

	assert.False(t, l.Toggle(1))
	assert.False(t, l.Visible(1))
	assert.True(t, l.Visible(2))
	assert.Equal(t, 1, l.VisibleCount())

	assert.True(t, l.Toggle(1))
	assert.True(t, l.Visible(1))

	assert.False(t, l.Toggle(99))
	assert.False(t, l.Visible(99))
}

func TestListSetVisible(t *testing.T) {
	l := NewList([]int{5})

	assert.True(t, l.SetVisible(5, false))
	r, ok := l.Get(5)
	assert.True(t, ok)
	assert.False(t, r.Visible)

	assert.False(t, l.SetVisible(6, true))
	_, ok = l.Get(6)
	assert.False(t, ok)
}

func TestListRecordsIsCopy(t *testing.T) {
	l := NewList([]int{1})
	records := l.Records()
	records[0].Visible = false

	assert.True(t, l.Visible(1))
}
