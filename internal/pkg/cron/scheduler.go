package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a scheduled function. next computes the following run time from
// the current clock; immediate jobs additionally run once on Start.
type Job struct {
	Name      string
	Fn        func(ctx context.Context) error
	immediate bool
	next      func(now time.Time) time.Time
}

// Scheduler runs registered jobs on their schedules until stopped.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job that runs on Start and then on a fixed interval.
// Jobs added after Start are not picked up.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:      name,
		Fn:        fn,
		immediate: true,
		next:      func(now time.Time) time.Time { return now.Add(interval) },
	})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// AddDailyJob registers a job that runs once a day at hour:00 in loc. The
// first run waits for the next occurrence; there is no immediate run.
func (s *Scheduler) AddDailyJob(name string, hour int, loc *time.Location, fn func(ctx context.Context) error) {
	if loc == nil {
		loc = time.UTC
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name: name,
		Fn:   fn,
		next: func(now time.Time) time.Time { return nextDailyRun(now, hour, loc) },
	})
	slog.Info("Cron job registered", "name", name, "daily_at_hour", hour, "tz", loc.String())
}

// nextDailyRun is the first occurrence of hour:00 in loc strictly after
// now.
func nextDailyRun(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	run := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !run.After(now) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for them to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	if job.immediate {
		s.executeJob(job)
	}

	// Each wait is recomputed from the wall clock so daily jobs stay
	// anchored to their local hour across DST transitions.
	for {
		timer := time.NewTimer(time.Until(job.next(time.Now())))
		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs every job a single time with the given context.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
