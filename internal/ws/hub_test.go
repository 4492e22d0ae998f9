package ws

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHubRegisterAndLookup(t *testing.T) {
	hub := NewHub()
	client := newClient(&fakeConn{}, 1)

	evicted := hub.Register(client)
	require.Nil(t, evicted)

	got, ok := hub.Lookup(1)
	require.True(t, ok)
	require.Same(t, client, got)

	userID, ok := hub.UserOf(client)
	require.True(t, ok)
	require.Equal(t, 1, userID)
}

func TestHubUnregisterRemovesEntry(t *testing.T) {
	hub := NewHub()
	client := newClient(&fakeConn{}, 1)

	hub.Register(client)
	hub.Unregister(client)

	require.False(t, hub.Online(1))
	_, ok := hub.UserOf(client)
	require.False(t, ok)
	require.Zero(t, hub.Count())
}

func TestHubReRegisterEvictsOldClient(t *testing.T) {
	hub := NewHub()
	old := newClient(&fakeConn{}, 1)
	fresh := newClient(&fakeConn{}, 1)

	require.Nil(t, hub.Register(old))
	evicted := hub.Register(fresh)
	require.Same(t, old, evicted)

	got, ok := hub.Lookup(1)
	require.True(t, ok)
	require.Same(t, fresh, got)

	// The evicted client is already out of the inverse map.
	_, ok = hub.UserOf(old)
	require.False(t, ok)
}

func TestHubStaleUnregisterKeepsFreshRegistration(t *testing.T) {
	hub := NewHub()
	old := newClient(&fakeConn{}, 1)
	fresh := newClient(&fakeConn{}, 1)

	hub.Register(old)
	hub.Register(fresh)

	// The stale connection tears down after the re-login.
	hub.Unregister(old)

	got, ok := hub.Lookup(1)
	require.True(t, ok)
	require.Same(t, fresh, got)
	require.Equal(t, 1, hub.Count())
}

func TestHubUnregisterUnknownClientIsNoop(t *testing.T) {
	hub := NewHub()
	client := newClient(&fakeConn{}, 1)

	hub.Unregister(client)
	hub.Unregister(client)
	require.Zero(t, hub.Count())
}

func TestHubConcurrentRegistrationsKeepBijection(t *testing.T) {
	hub := NewHub()
	const users = 100

	clients := make([]*Client, users)
	for i := range clients {
		clients[i] = newClient(&fakeConn{}, i+1)
	}

	var wg sync.WaitGroup
	for _, client := range clients {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			hub.Register(c)
		}(client)
	}
	wg.Wait()

	require.Equal(t, users, hub.Count())
	for i, client := range clients {
		got, ok := hub.Lookup(i + 1)
		require.True(t, ok, fmt.Sprintf("user %d should be online", i+1))
		require.Same(t, client, got)

		userID, ok := hub.UserOf(client)
		require.True(t, ok)
		require.Equal(t, i+1, userID)
	}
}
