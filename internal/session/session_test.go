package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rakeshutekar/github-mcp/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T, opt *ManagerOptions) *Manager {
	t.Helper()
	reg, err := registry.New([]registry.Descriptor{{
		Name:        "noop",
		Description: "does nothing",
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return nil, nil
		},
	}})
	require.NoError(t, err)
	return NewManager(reg, opt)
}

func TestResolve(t *testing.T) {
	t.Run("FirstContact", func(t *testing.T) {
		m := testManager(t, nil)

		s, created := m.Resolve("")
		require.True(t, created)
		assert.NotEmpty(t, s.ID)
		assert.NotNil(t, s.Dispatcher)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("ExistingReusesDispatcher", func(t *testing.T) {
		m := testManager(t, nil)
		first, _ := m.Resolve("")

		second, created := m.Resolve(first.ID)
		assert.False(t, created)
		assert.Same(t, first, second)
		assert.Same(t, first.Dispatcher, second.Dispatcher)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("UnrecognizedGetsFreshID", func(t *testing.T) {
		m := testManager(t, nil)
		active, _ := m.Resolve("")

		s, created := m.Resolve("bogus-identifier")
		assert.True(t, created)
		assert.NotEqual(t, "bogus-identifier", s.ID)
		assert.NotEqual(t, active.ID, s.ID)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("OnCreateRunsOncePerSession", func(t *testing.T) {
		var initialized []string
		m := testManager(t, &ManagerOptions{
			OnCreate: func(s *Session) { initialized = append(initialized, s.ID) },
		})

		s, _ := m.Resolve("")
		m.Resolve(s.ID)
		m.Resolve(s.ID)

		assert.Equal(t, []string{s.ID}, initialized)
	})
}

func TestTerminate(t *testing.T) {
	m := testManager(t, nil)
	s, _ := m.Resolve("")

	assert.True(t, m.Terminate(s.ID))
	assert.False(t, m.Terminate(s.ID), "second terminate reports not found, never errors")
	assert.False(t, m.Terminate("never-issued"))

	// A terminated identifier is unrecognized again and forces a new session.
	replacement, created := m.Resolve(s.ID)
	assert.True(t, created)
	assert.NotEqual(t, s.ID, replacement.ID)
}

func TestConcurrentResolve(t *testing.T) {
	t.Run("SameSession", func(t *testing.T) {
		m := testManager(t, nil)
		s, _ := m.Resolve("")

		const readers = 50
		var wg sync.WaitGroup
		results := make([]*Session, readers)
		wg.Add(readers)
		for i := 0; i < readers; i++ {
			go func(i int) {
				defer wg.Done()
				results[i], _ = m.Resolve(s.ID)
			}(i)
		}
		wg.Wait()

		for i := 0; i < readers; i++ {
			assert.Same(t, s, results[i])
		}
		assert.Equal(t, 1, m.Len())
	})

	t.Run("ConcurrentFirstContacts", func(t *testing.T) {
		m := testManager(t, nil)

		const clients = 20
		var wg sync.WaitGroup
		ids := make([]string, clients)
		wg.Add(clients)
		for i := 0; i < clients; i++ {
			go func(i int) {
				defer wg.Done()
				s, created := m.Resolve("")
				require.True(t, created)
				ids[i] = s.ID
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool, clients)
		for _, id := range ids {
			assert.False(t, seen[id], "identifiers must be distinct")
			seen[id] = true
		}
		assert.Equal(t, clients, m.Len())
	})
}

func TestSweep(t *testing.T) {
	m := testManager(t, &ManagerOptions{IdleTimeout: time.Minute})

	stale, _ := m.Resolve("")
	fresh, _ := m.Resolve("")

	m.mu.Lock()
	m.sessions[stale.ID].LastActive = time.Now().Add(-2 * time.Minute)
	m.mu.Unlock()

	m.sweep(time.Now())

	assert.Nil(t, m.Get(stale.ID))
	assert.NotNil(t, m.Get(fresh.ID))
	assert.Equal(t, 1, m.Len())
}

func TestStartSweeper_Disabled(t *testing.T) {
	m := testManager(t, nil)
	stop := m.StartSweeper()
	stop()
	stop() // idempotent
}
