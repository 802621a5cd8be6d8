// Package poll drives the fetch → derive → rank → present cycle against the
// prediction feed.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parkspot/parkwatch/internal/dashboard"
	"github.com/parkspot/parkwatch/internal/feed"
	"github.com/parkspot/parkwatch/internal/log"
	"github.com/parkspot/parkwatch/internal/predict"
	"go.uber.org/zap"
)

const (
	// RetryDelay is the fixed cadence after a failed cycle. It is a policy
	// constant, not configuration: failures degrade to this slower cadence
	// indefinitely, with no maximum retry count and no exponential backoff.
	RetryDelay = 30 * time.Second

	// DefaultDelay applies when a successful envelope carries no usable ttl.
	DefaultDelay = feed.DefaultTTLSeconds * time.Second
)

// Fetcher is the feed surface the scheduler polls once per cycle.
type Fetcher interface {
	FetchPredictions(ctx context.Context) (*feed.Envelope, error)
}

// Scheduler runs one cycle at a time and re-arms itself when the cycle
// resolves. The pending *time.Timer is the only state that survives a cycle;
// it is owned exclusively by the scheduler and replaced, previous one
// stopped, on every scheduling decision, so exactly one pending trigger
// exists at any moment and cycles never overlap.
type Scheduler struct {
	ctx       context.Context
	wg        *sync.WaitGroup
	client    Fetcher
	presenter *dashboard.Presenter
	logger    *zap.SugaredLogger
	now       func() time.Time

	mu    sync.Mutex
	timer *time.Timer
}

// NewScheduler creates a poll scheduler over the given feed client and
// presenter.
func NewScheduler(ctx context.Context, wg *sync.WaitGroup, client Fetcher, presenter *dashboard.Presenter, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		ctx:       ctx,
		wg:        wg,
		client:    client,
		presenter: presenter,
		logger:    logger,
		now:       time.Now,
	}
}

// StartController begins the poll loop. The first cycle runs immediately;
// every subsequent cycle is armed by its predecessor's completion.
func (s *Scheduler) StartController() error {
	log.Info("Starting poll scheduler...")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.cycle()
	}()

	go func() {
		<-s.ctx.Done()
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		s.mu.Unlock()
	}()

	return nil
}

// cycle executes one complete pass and arms the next one.
func (s *Scheduler) cycle() {
	if s.ctx.Err() != nil {
		return
	}
	s.schedule(s.runCycle())
}

// runCycle performs the fetch and, on success, the synchronous
// derive/rank/present phase. It returns the delay before the next cycle:
// the envelope's ttl on success, the fixed retry delay on any error. No
// error ever escapes a cycle.
func (s *Scheduler) runCycle() time.Duration {
	cycleID := uuid.NewString()

	env, err := s.client.FetchPredictions(s.ctx)
	if err != nil {
		s.logger.Errorf("poll cycle %s failed: %v; next attempt in %v", cycleID, err, RetryDelay)
		return RetryDelay
	}

	now := s.now()
	ranked := predict.Rank(env.Items)

	s.presenter.PresentCounts(env.Counts)
	s.presenter.PresentTable(ranked)
	s.presenter.PresentUpdated(now, env.GeneratedAt, env.TTLSeconds)

	delay := NextDelay(env)
	s.logger.Debugf("poll cycle %s presented %d items (ttl %ds); next cycle in %v",
		cycleID, len(env.Items), env.TTLSeconds, delay)
	return delay
}

// NextDelay chooses the post-success delay from the envelope's declared ttl.
func NextDelay(env *feed.Envelope) time.Duration {
	if env.TTLSeconds <= 0 {
		return DefaultDelay
	}
	return time.Duration(env.TTLSeconds) * time.Second
}

// schedule arms the next cycle, cancelling any previously pending trigger.
func (s *Scheduler) schedule(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, s.cycle)
}
