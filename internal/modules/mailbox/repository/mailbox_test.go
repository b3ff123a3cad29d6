package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox(t *testing.T) {
	t.Run("Testcase #1: Drain in push order then empty", func(t *testing.T) {
		mb := new(Mailbox)
		mb.Push("x")
		mb.Push("y")
		assert.Equal(t, 2, mb.Len())
		assert.Equal(t, []string{"x", "y"}, mb.DrainAll())
		assert.Equal(t, []string{}, mb.DrainAll())
		assert.Equal(t, 0, mb.Len())
	})

	t.Run("Testcase #2: Concurrent push and drain lose nothing", func(t *testing.T) {
		mb := new(Mailbox)
		const writers, perWriter = 10, 200

		var (
			wg       sync.WaitGroup
			received []string
			done     = make(chan struct{})
		)
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < perWriter; i++ {
					mb.Push(fmt.Sprintf("%d-%d", w, i))
				}
			}(w)
		}

		go func() {
			defer close(done)
			for len(received) < writers*perWriter {
				received = append(received, mb.DrainAll()...)
			}
		}()

		wg.Wait()
		<-done
		assert.Empty(t, mb.DrainAll())

		require.Len(t, received, writers*perWriter)
		seen := make(map[string]bool, len(received))
		for _, r := range received {
			assert.False(t, seen[r], "duplicate entry %s", r)
			seen[r] = true
		}
	})
}

func TestMailboxRegistry(t *testing.T) {
	reg := NewMailboxRegistry()

	_, ok := reg.Get("alice")
	assert.False(t, ok)

	mb, created := reg.Open("alice")
	assert.True(t, created)
	mb.Push("hello")
	again, created := reg.Open("alice")
	assert.False(t, created)
	assert.Same(t, mb, again)

	got, ok := reg.Get("alice")
	require.True(t, ok)
	assert.Equal(t, []string{"hello"}, got.DrainAll())

	assert.True(t, reg.Close("alice"))
	assert.False(t, reg.Close("alice"))
	_, ok = reg.Get("alice")
	assert.False(t, ok)
}

func TestEndpointRegistry(t *testing.T) {
	reg := NewEndpointRegistry()

	_, ok := reg.Resolve("alice")
	assert.False(t, ok)

	reg.Bind("alice", "")
	endpoint, ok := reg.Resolve("alice")
	assert.True(t, ok)
	assert.Empty(t, endpoint)

	reg.Bind("alice", "http://10.0.0.2:8000")
	endpoint, _ = reg.Resolve("alice")
	assert.Equal(t, "http://10.0.0.2:8000", endpoint)

	reg.Unbind("alice")
	_, ok = reg.Resolve("alice")
	assert.False(t, ok)
}

func TestMailbox_Requeue(t *testing.T) {
	mb := new(Mailbox)
	mb.Push("one")
	mb.Push("two")
	taken := mb.DrainAll()
	mb.Push("three")

	mb.Requeue(taken)
	mb.Requeue(nil)
	assert.Equal(t, []string{"one", "two", "three"}, mb.DrainAll())
}
