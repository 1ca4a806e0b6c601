package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_OpenGetClose(t *testing.T) {
	m := NewManager(fastOptions())
	c1 := mockClient("c1")
	c2 := mockClient("c2")

	r1 := m.Open(c1)
	r2 := m.Open(c2)
	defer m.CloseAll()

	assert.Equal(t, 2, m.RoomCount())
	assert.Same(t, r1, m.Get("c1"))
	assert.Same(t, r2, m.Get("c2"))
	assert.NotEqual(t, r1.Code, r2.Code)

	m.Close("c1")
	assert.Nil(t, m.Get("c1"))
	assert.Equal(t, 1, m.RoomCount())

	// closing twice is harmless
	m.Close("c1")
	assert.Equal(t, 1, m.RoomCount())
}

func TestManager_OpenReplacesRoom(t *testing.T) {
	m := NewManager(fastOptions())
	c := mockClient("c1")

	first := m.Open(c)
	second := m.Open(c)
	defer m.CloseAll()

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, m.RoomCount())
	select {
	case <-first.done:
	default:
		t.Fatal("replaced room should be stopped")
	}
}

func TestManager_CloseAll(t *testing.T) {
	m := NewManager(fastOptions())
	rooms := []*Room{m.Open(mockClient("a")), m.Open(mockClient("b"))}

	m.CloseAll()
	assert.Zero(t, m.RoomCount())
	for _, r := range rooms {
		<-r.done
	}
}
