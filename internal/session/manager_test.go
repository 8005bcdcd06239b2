package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/logging"
)

func testFactory(id string) *Session {
	return New(Options{ID: id, Seed: config.SeedSettings{Count: 3, Random: 5}, Logger: logging.Discard()})
}

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager(time.Minute, testFactory)

	s, created := m.GetOrCreate("")
	require.True(t, created)
	assert.NotEmpty(t, s.ID())

	again, created := m.GetOrCreate(s.ID())
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := m.GetOrCreate("forged-id")
	assert.True(t, created)
	assert.NotEqual(t, "forged-id", other.ID(), "unknown ids are never adopted")
	assert.Equal(t, 2, m.Len())
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(time.Minute, testFactory)
	s := m.Create()

	assert.True(t, m.Delete(s.ID()))
	assert.False(t, m.Delete(s.ID()))
	_, ok := m.Get(s.ID())
	assert.False(t, ok)
}

func TestManager_Expire(t *testing.T) {
	m := NewManager(10*time.Minute, testFactory)
	idle := m.Create()
	m.Create()

	assert.Equal(t, 0, m.Expire(time.Now()))
	assert.Equal(t, 2, m.Expire(time.Now().Add(11*time.Minute)))
	assert.Equal(t, 0, m.Len())

	_, ok := m.Get(idle.ID())
	assert.False(t, ok)
}

func TestManager_ExpireDoesNotBlockOtherSessions(t *testing.T) {
	m := NewManager(10*time.Minute, testFactory)
	busy := m.Create()

	release := make(chan struct{})
	started := make(chan struct{})
	go busy.Do(func(*Session) {
		close(started)
		<-release
	})
	<-started

	expired := make(chan int)
	go func() { expired <- m.Expire(time.Now()) }()

	created := make(chan struct{})
	go func() {
		m.GetOrCreate("")
		close(created)
	}()

	select {
	case <-created:
	case <-time.After(time.Second):
		t.Fatal("GetOrCreate blocked while Expire waited on a busy session")
	}

	close(release)
	assert.Equal(t, 0, <-expired)
	assert.Equal(t, 2, m.Len())
}

func TestManager_ExpireDisabled(t *testing.T) {
	m := NewManager(0, testFactory)
	m.Create()
	assert.Equal(t, 0, m.Expire(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, m.Len())
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(time.Minute, testFactory)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, _ := m.GetOrCreate("")
			s.Do(func(s *Session) { s.AddContact() })
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, m.Len())
	m.CloseAll()
	assert.Equal(t, 0, m.Len())
}
