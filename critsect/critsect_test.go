package critsect_test

import (
	"testing"

	"github.com/marcas756/myos-sub001/critsect"
	"github.com/stretchr/testify/assert"
)

func TestNop(t *testing.T) {
	var s critsect.Nop
	s.Enter()
	s.Exit()
	defer critsect.Guard(s)()
}

func TestMutex_GuardBalances(t *testing.T) {
	m := &critsect.Mutex{}
	assert.False(t, m.Held())
	func() {
		defer critsect.Guard(m)()
		assert.True(t, m.Held())
	}()
	assert.False(t, m.Held())
}

func TestMutex_SequentialEnterExit(t *testing.T) {
	m := &critsect.Mutex{}
	for i := 0; i < 3; i++ {
		m.Enter()
		assert.True(t, m.Held())
		m.Exit()
		assert.False(t, m.Held())
	}
}
