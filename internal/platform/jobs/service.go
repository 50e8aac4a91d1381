// Package jobs runs periodic maintenance tasks on a single worker goroutine.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Task func(context.Context) (any, error)

type Service struct {
	queue     chan job
	schedules []schedule
	mu        sync.Mutex
	running   map[string]bool
}

type job struct {
	Name string
	Run  Task
}

type schedule struct {
	name     string
	interval time.Duration
	run      Task
}

func New() *Service {
	return &Service{
		queue:   make(chan job, 32),
		running: map[string]bool{},
	}
}

// Every registers run to be enqueued each interval once Start is called.
// Non-positive intervals disable the task.
func (s *Service) Every(name string, interval time.Duration, run Task) {
	if interval <= 0 {
		return
	}
	s.schedules = append(s.schedules, schedule{name: name, interval: interval, run: run})
}

// Start launches the worker and one ticker per registered task. Everything
// stops when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	for _, sc := range s.schedules {
		go s.tick(ctx, sc)
	}
}

// Enqueue drops the job when the queue is full or a run with the same name
// is still pending.
func (s *Service) Enqueue(name string, run Task) bool {
	s.mu.Lock()
	if s.running[name] {
		s.mu.Unlock()
		return false
	}
	s.running[name] = true
	s.mu.Unlock()

	select {
	case s.queue <- job{Name: name, Run: run}:
		return true
	default:
		s.release(name)
		slog.Warn("job queue full", "job", name)
		return false
	}
}

func (s *Service) RunNow(ctx context.Context, name string, run Task) (any, error) {
	return s.runJob(ctx, job{Name: name, Run: run})
}

func (s *Service) release(name string) {
	s.mu.Lock()
	delete(s.running, name)
	s.mu.Unlock()
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			_, _ = s.runJob(ctx, j)
			s.release(j.Name)
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	start := time.Now()
	details, err := j.Run(ctx)
	if err != nil {
		slog.Warn("job run failed", "job", j.Name, "err", err)
		return details, err
	}
	slog.Info("job run completed", "job", j.Name, "details", details, "duration_ms", time.Since(start).Milliseconds())
	return details, nil
}

func (s *Service) tick(ctx context.Context, sc schedule) {
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(sc.name, sc.run)
		}
	}
}
