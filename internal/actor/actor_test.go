package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateLifecycle(t *testing.T) {
	s := NewState()

	_, ok := s.Info()
	assert.False(t, ok, "new state has no active player")

	s.Set(Info{Name: "Astrid Vane", ContentID: 9001, ZoneID: 128, ZoneName: "Limsa Lominsa"})
	info, ok := s.Info()
	assert.True(t, ok)
	assert.Equal(t, "Astrid Vane", info.Name)
	assert.Equal(t, uint64(9001), info.ContentID)

	s.Clear()
	_, ok = s.Info()
	assert.False(t, ok)
}

func TestStateEmptyNameNotPresent(t *testing.T) {
	s := NewState()
	s.Set(Info{Name: ""})

	_, ok := s.Info()
	assert.False(t, ok)
}
