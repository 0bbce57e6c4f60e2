package tasks

import (
	"context"
	"sync"
	"time"

	"calmfix/utils"

	"go.uber.org/zap"
)

type pendingTimer struct {
	timer *time.Timer
	seq   uint64
}

// TimerScheduler runs transitions on in-process timers. Pending transitions are
// lost on restart; use AsynqScheduler when they must survive one.
type TimerScheduler struct {
	mu      sync.Mutex
	handler StatusHandler
	timers  map[string]pendingTimer
	seq     uint64
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTimerScheduler creates a scheduler; Bind must be called before the first timer fires.
func NewTimerScheduler() *TimerScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &TimerScheduler{
		timers: make(map[string]pendingTimer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Bind sets the function invoked when a timer fires.
func (s *TimerScheduler) Bind(h StatusHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

func (s *TimerScheduler) ScheduleEnRoute(_ context.Context, bookingID string, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrSchedulerStopped
	}
	if existing, ok := s.timers[bookingID]; ok {
		existing.timer.Stop()
	}

	s.seq++
	seq := s.seq
	s.timers[bookingID] = pendingTimer{
		timer: time.AfterFunc(delay, func() { s.fire(bookingID, seq) }),
		seq:   seq,
	}
	return nil
}

func (s *TimerScheduler) fire(bookingID string, seq uint64) {
	s.mu.Lock()
	pending, ok := s.timers[bookingID]
	if !ok || pending.seq != seq || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.timers, bookingID)
	handler := s.handler
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	if handler == nil {
		utils.GetLogger().Warn("status timer fired without a handler", zap.String("bookingID", bookingID))
		return
	}
	if err := handler(s.ctx, bookingID); err != nil {
		utils.GetLogger().Error("status transition failed", zap.String("bookingID", bookingID), zap.Error(err))
	}
}

func (s *TimerScheduler) Cancel(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.timers[bookingID]; ok {
		pending.timer.Stop()
		delete(s.timers, bookingID)
	}
}

// Pending reports how many transitions are waiting to fire.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels pending timers and waits for running handlers to return.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, pending := range s.timers {
		pending.timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
