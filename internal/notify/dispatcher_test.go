package notify

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type fakeUsers map[uint]*model.User

func (f fakeUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

type recordingTransport struct {
	mu     sync.Mutex
	tokens []string
	fail   map[string]bool
}

func (r *recordingTransport) Send(_ context.Context, token string, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail[token] {
		return errors.New("stale token")
	}
	r.tokens = append(r.tokens, token+":"+msg.Title+":"+msg.Priority)
	return nil
}

func (r *recordingTransport) sent() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]string(nil), r.tokens...)
	sort.Strings(out)
	return out
}

func users() fakeUsers {
	return fakeUsers{
		1: {ID: 1, NotificationToken: "tok-1"},
		2: {ID: 2, NotificationToken: "tok-2"},
		3: {ID: 3, NotificationToken: ""},
		4: {ID: 4, NotificationToken: "tok-4"},
	}
}

func TestFanOutSkipsMissingAndSwallowsErrors(t *testing.T) {
	transport := &recordingTransport{fail: map[string]bool{"tok-4": true}}
	d := NewDispatcher(users(), transport, 0, 1, 4, time.Second)

	d.FanOut(context.Background(), "Task Deleted", "gone", []uint{1, 2, 3, 4, 99, 2})

	assert.Equal(t, []string{
		"tok-1:Task Deleted:high",
		"tok-2:Task Deleted:high",
		"tok-2:Task Deleted:high",
	}, transport.sent())
}

func TestNotifyIsDeliveredByWorkers(t *testing.T) {
	transport := &recordingTransport{}
	d := NewDispatcher(users(), transport, 2, 8, 2, time.Second)

	d.Notify("New Task Created", "assigned", []uint{1, 2})
	d.Shutdown(context.Background())

	assert.Equal(t, []string{
		"tok-1:New Task Created:high",
		"tok-2:New Task Created:high",
	}, transport.sent())
}

func TestNotifyDropsWhenFullOrClosed(t *testing.T) {
	transport := &recordingTransport{}
	d := NewDispatcher(users(), transport, 0, 1, 1, time.Second)

	d.Notify("first", "b", []uint{1})
	d.Notify("second", "b", []uint{1})
	require.Len(t, d.queue, 1)

	d.Shutdown(context.Background())
	assert.NotPanics(t, func() { d.Notify("late", "b", []uint{1}) })
	assert.NotPanics(t, func() { d.Shutdown(context.Background()) })
}
