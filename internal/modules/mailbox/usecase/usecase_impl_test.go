package usecase

import (
	"context"
	"testing"

	"github.com/golangid/nearchat/internal/modules/mailbox/domain"
	"github.com/golangid/nearchat/internal/modules/mailbox/repository"
	"github.com/stretchr/testify/assert"
)

func TestMailboxUsecase(t *testing.T) {
	ctx := context.Background()
	uc := NewMailboxUsecase(repository.NewMailboxRegistry(), repository.NewEndpointRegistry())

	t.Run("Testcase #1: Negative, deliver to closed mailbox", func(t *testing.T) {
		err := uc.Deliver(ctx, "bob", "alice", "hi")
		assert.ErrorIs(t, err, domain.ErrEndpointUnreachable)
		assert.Empty(t, uc.Drain("bob"))
	})

	t.Run("Testcase #2: Positive", func(t *testing.T) {
		assert.True(t, uc.Open("bob", ""))
		assert.False(t, uc.Open("bob", "http://other:8000"))
		endpoint, ok := uc.Resolve("bob")
		assert.True(t, ok)
		assert.Empty(t, endpoint)

		assert.NoError(t, uc.Deliver(ctx, "bob", "alice", "hi"))
		assert.NoError(t, uc.Deliver(ctx, "bob", "carol", "yo"))
		assert.Equal(t, []string{
			"[SYNC MSG] alice -> bob: hi",
			"[SYNC MSG] carol -> bob: yo",
		}, uc.Drain("bob"))
		assert.Empty(t, uc.Drain("bob"))
	})

	t.Run("Testcase #3: Requeue drained entries", func(t *testing.T) {
		assert.NoError(t, uc.Deliver(ctx, "bob", "alice", "first"))
		taken := uc.Drain("bob")
		assert.NoError(t, uc.Deliver(ctx, "bob", "alice", "second"))

		assert.True(t, uc.Requeue("bob", taken))
		assert.Equal(t, []string{
			"[SYNC MSG] alice -> bob: first",
			"[SYNC MSG] alice -> bob: second",
		}, uc.Drain("bob"))
		assert.False(t, uc.Requeue("nobody", taken))
	})

	t.Run("Testcase #4: Close drop endpoint", func(t *testing.T) {
		uc.Close("bob")
		_, ok := uc.Resolve("bob")
		assert.False(t, ok)
		assert.ErrorIs(t, uc.Deliver(ctx, "bob", "alice", "late"), domain.ErrEndpointUnreachable)
	})
}
