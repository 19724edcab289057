package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfiguresHandleOnce(t *testing.T) {
	assert.False(t, IsConfigured())
	assert.Nil(t, Get())

	first := NewMemoryStore()
	Init(first)
	assert.True(t, IsConfigured())
	assert.Same(t, first, Get())

	// Init berikutnya diabaikan; handle tetap yang pertama
	Init(NewMemoryStore())
	assert.Same(t, first, Get())
}
