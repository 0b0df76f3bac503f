package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPoller struct {
	mu    sync.Mutex
	calls int
	ctxs  []context.Context
}

func (p *countingPoller) Poll(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.ctxs = append(p.ctxs, ctx)
}

func (p *countingPoller) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newLogger() *logrus.Entry {
	logger, _ := logtest.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestPollScheduler_FirstCycleRunsImmediately(t *testing.T) {
	poller := &countingPoller{}
	s := NewPollScheduler(poller, newLogger(), time.Hour)

	s.Start()
	assert.Equal(t, 1, poller.count())

	s.Stop()
	assert.Equal(t, 1, poller.count())
	assert.ErrorIs(t, poller.ctxs[0].Err(), context.Canceled)
}

func TestPollScheduler_RepeatsOnPeriod(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the cron tick")
	}

	poller := &countingPoller{}
	s := NewPollScheduler(poller, newLogger(), time.Second)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return poller.count() >= 2 }, 3*time.Second, 50*time.Millisecond)
}

type blockingPoller struct {
	started chan struct{}
	done    chan struct{}
}

func (p *blockingPoller) Poll(ctx context.Context) {
	select {
	case p.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	close(p.done)
}

func TestPollScheduler_StopCancelsRunningCycle(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the cron tick")
	}

	poller := &blockingPoller{started: make(chan struct{}, 1), done: make(chan struct{})}
	s := NewPollScheduler(&skipFirst{next: poller}, newLogger(), time.Second)
	s.Start()

	select {
	case <-poller.started:
	case <-time.After(3 * time.Second):
		t.Fatal("cron cycle did not start")
	}

	s.Stop()
	select {
	case <-poller.done:
	default:
		t.Fatal("Stop returned before the running cycle finished")
	}
}

// skipFirst lets Start's synchronous cycle return at once so the blocking
// poller only runs from the cron goroutine.
type skipFirst struct {
	seen bool
	next Poller
}

func (p *skipFirst) Poll(ctx context.Context) {
	if !p.seen {
		p.seen = true
		return
	}
	p.next.Poll(ctx)
}
