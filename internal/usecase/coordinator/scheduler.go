package coordinator

import "time"

// Scheduler runs a task after a delay. The production implementation uses
// real timers; tests substitute a manual one so staged flows can be driven
// deterministically.
type Scheduler interface {
	// Schedule runs task after d and returns a cancel function. Cancel is
	// best-effort: a task that already started is not interrupted.
	Schedule(d time.Duration, task func()) (cancel func())
}

type timerScheduler struct{}

// NewTimerScheduler returns the time.AfterFunc-backed scheduler.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, task func()) func() {
	t := time.AfterFunc(d, task)
	return func() { t.Stop() }
}
