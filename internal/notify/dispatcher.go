package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

// UserFinder resolves a recipient id to its stored delivery token.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

type job struct {
	title      string
	body       string
	recipients []uint
}

// Dispatcher runs notification fan-out on a fixed pool of workers so callers
// never wait on delivery.
type Dispatcher struct {
	queue       chan job
	wg          sync.WaitGroup
	mu          sync.RWMutex
	closed      bool
	users       UserFinder
	transport   Transport
	timeout     time.Duration
	parallelism int
}

func NewDispatcher(users UserFinder, transport Transport, workers, queueSize, parallelism int, timeout time.Duration) *Dispatcher {
	d := &Dispatcher{
		queue:       make(chan job, queueSize),
		users:       users,
		transport:   transport,
		timeout:     timeout,
		parallelism: parallelism,
	}

	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Notify enqueues a notification. It never blocks: when the queue is full
// or the dispatcher is shut down the notification is dropped.
func (d *Dispatcher) Notify(title, body string, recipients []uint) {
	if len(recipients) == 0 {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		zap.L().Warn("notification dropped after shutdown", zap.String("title", title))
		return
	}

	select {
	case d.queue <- job{title: title, body: body, recipients: recipients}:
	default:
		zap.L().Warn("notification queue full, dropping", zap.String("title", title), zap.Int("recipients", len(recipients)))
	}
}

func (d *Dispatcher) worker(workerID int) {
	defer d.wg.Done()

	for j := range d.queue {
		d.FanOut(context.Background(), j.title, j.body, j.recipients)
	}

	zap.L().Debug("notification worker stopped", zap.Int("worker", workerID))
}

// FanOut delivers to every recipient concurrently. Unknown users and users
// without a token are skipped; delivery errors are logged and swallowed.
func (d *Dispatcher) FanOut(ctx context.Context, title, body string, recipients []uint) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.parallelism)

	for _, id := range recipients {
		g.Go(func() error {
			d.deliver(ctx, id, Message{Title: title, Body: body, Priority: PriorityHigh})
			return nil
		})
	}

	_ = g.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, userID uint, msg Message) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	user, err := d.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return
	}
	if user.NotificationToken == "" {
		return
	}

	if err := d.transport.Send(ctx, user.NotificationToken, msg); err != nil {
		zap.L().Warn("notification delivery failed",
			zap.Uint("user_id", userID),
			zap.String("title", msg.Title),
			zap.Error(err),
		)
	}
}

// Shutdown stops accepting notifications and waits for queued ones until
// ctx expires.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		zap.L().Info("notification dispatcher shut down cleanly")
	case <-ctx.Done():
		zap.L().Warn("notification dispatcher shutdown timed out")
	}
}
