package workerhandler

import (
	"context"
	"errors"
	"testing"
	"time"

	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	mailboxrepo "github.com/golangid/nearchat/internal/modules/mailbox/repository"
	mailboxusecase "github.com/golangid/nearchat/internal/modules/mailbox/usecase"
	"github.com/golangid/nearchat/internal/modules/message/domain"
	"github.com/golangid/nearchat/internal/modules/message/usecase"
	mockchannel "github.com/golangid/nearchat/pkg/mocks/modules/channel/usecase"
	mockusecase "github.com/golangid/nearchat/pkg/mocks/modules/message/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInboxPoller_Poll(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		inboxUsecase := &mockusecase.InboxUsecase{}
		inboxUsecase.On("CheckSync", mock.Anything, "bob").Return([]string{"[SYNC MSG] alice -> bob: hi"})
		inboxUsecase.On("CheckAsync", mock.Anything, "bob").Return([]channeldomain.Envelope{{From: "carol", Message: "later"}}, nil)

		inbox := NewInboxPoller(inboxUsecase, time.Second).Poll(context.Background(), "bob")
		assert.Equal(t, []string{"[SYNC MSG] alice -> bob: hi"}, inbox.Sync)
		assert.Equal(t, "later", inbox.Async[0].Message)
	})

	t.Run("Testcase #2: Negative, broker failure keep popped envelope", func(t *testing.T) {
		inboxUsecase := &mockusecase.InboxUsecase{}
		inboxUsecase.On("CheckSync", mock.Anything, "bob").Return([]string{})
		inboxUsecase.On("CheckAsync", mock.Anything, "bob").Return([]channeldomain.Envelope{{From: "carol"}}, errors.New("broker down"))

		inbox := NewInboxPoller(inboxUsecase, 0).Poll(context.Background(), "bob")
		assert.Empty(t, inbox.Sync)
		assert.Len(t, inbox.Async, 1)
	})
}

func TestInboxPoller_Run(t *testing.T) {
	t.Run("Testcase #1: Positive, stop on context cancel", func(t *testing.T) {
		inboxUsecase := &mockusecase.InboxUsecase{}
		inboxUsecase.On("CheckSync", mock.Anything, "bob").Return([]string{"[SYNC MSG] alice -> bob: hi"}).Once()
		inboxUsecase.On("CheckSync", mock.Anything, "bob").Return([]string{})
		inboxUsecase.On("CheckAsync", mock.Anything, "bob").Return([]channeldomain.Envelope{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		var received []domain.Inbox
		done := make(chan error)
		go func() {
			done <- NewInboxPoller(inboxUsecase, 5*time.Millisecond).Run(ctx, "bob", func(inbox domain.Inbox) error {
				received = append(received, inbox)
				cancel()
				return nil
			})
		}()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not stop")
		}
		assert.Len(t, received, 1)
	})

	t.Run("Testcase #2: Negative, handler error stop loop", func(t *testing.T) {
		inboxUsecase := &mockusecase.InboxUsecase{}
		inboxUsecase.On("CheckSync", mock.Anything, "bob").Return([]string{"x"})
		inboxUsecase.On("CheckAsync", mock.Anything, "bob").Return([]channeldomain.Envelope{{From: "carol", Message: "later"}}, nil)
		inboxUsecase.On("Restore", mock.Anything, "bob", mock.Anything).Return(nil)

		errWrite := errors.New("client gone")
		err := NewInboxPoller(inboxUsecase, time.Millisecond).Run(context.Background(), "bob", func(domain.Inbox) error {
			return errWrite
		})
		assert.ErrorIs(t, err, errWrite)
		inboxUsecase.AssertCalled(t, "Restore", mock.Anything, "bob", domain.Inbox{
			Sync:  []string{"x"},
			Async: []channeldomain.Envelope{{From: "carol", Message: "later"}},
		})
	})

	t.Run("Testcase #4: Positive, nothing drained after context done", func(t *testing.T) {
		inboxUsecase := &mockusecase.InboxUsecase{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewInboxPoller(inboxUsecase, time.Millisecond).Run(ctx, "bob", func(domain.Inbox) error {
			t.Fatal("handler must not be called")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, inboxUsecase.Calls)
	})

	t.Run("Testcase #5: Positive, entries survive failed write", func(t *testing.T) {
		mailbox := mailboxusecase.NewMailboxUsecase(mailboxrepo.NewMailboxRegistry(), mailboxrepo.NewEndpointRegistry())
		mailbox.Open("bob", "")
		require.NoError(t, mailbox.Deliver(context.Background(), "bob", "alice", "hi"))

		var queue []channeldomain.Envelope
		channel := &mockchannel.ChannelManager{}
		channel.On("Drain", mock.Anything, "user_bob").Return([]channeldomain.Envelope{{From: "carol", Message: "later"}}, nil).Once()
		channel.On("Publish", mock.Anything, "user_bob", mock.Anything).Run(func(args mock.Arguments) {
			queue = append(queue, args.Get(2).(channeldomain.Envelope))
		}).Return(true)

		poller := NewInboxPoller(usecase.NewInboxUsecase(mailbox, channel), time.Millisecond)
		err := poller.Run(context.Background(), "bob", func(domain.Inbox) error {
			return errors.New("client gone")
		})
		assert.Error(t, err)
		assert.Equal(t, []string{"[SYNC MSG] alice -> bob: hi"}, mailbox.Drain("bob"))
		assert.Equal(t, []channeldomain.Envelope{{From: "carol", Message: "later"}}, queue)
	})

	t.Run("Testcase #3: Positive, empty inbox never emitted", func(t *testing.T) {
		inboxUsecase := &mockusecase.InboxUsecase{}
		inboxUsecase.On("CheckSync", mock.Anything, "bob").Return([]string{})
		inboxUsecase.On("CheckAsync", mock.Anything, "bob").Return([]channeldomain.Envelope{}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		called := false
		err := NewInboxPoller(inboxUsecase, 5*time.Millisecond).Run(ctx, "bob", func(domain.Inbox) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, called)
		assert.Greater(t, len(inboxUsecase.Calls), 2)
	})
}
