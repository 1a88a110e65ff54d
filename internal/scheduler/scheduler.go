package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of periodic work.
type Task interface {
	Run(ctx context.Context) error
	Interval() time.Duration
	Name() string
}

// Scheduler runs tasks on their intervals until stopped. Each task runs
// once immediately on start; a failed run is logged and the schedule
// keeps going, so a transient source-site outage heals on the next
// tick.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	tasks  []Task
	wg     sync.WaitGroup
}

// New creates a scheduler bound to the parent context.
func New(ctx context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddTask registers a task. Must be called before Start.
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start launches one goroutine per registered task.
func (s *Scheduler) Start() {
	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.runTask(task)
	}
	slog.Info("Scheduler started", "task_count", len(s.tasks))
}

// Stop cancels all tasks and waits for them to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runTask(task Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(task.Interval())
	defer ticker.Stop()

	// Run immediately on start
	if err := task.Run(s.ctx); err != nil {
		slog.Error("Task run failed", "task", task.Name(), "error", err)
	}

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			slog.Info("Running scheduled task", "task", task.Name(), "interval", task.Interval())
			if err := task.Run(s.ctx); err != nil {
				slog.Error("Task run failed", "task", task.Name(), "error", err)
			}
		}
	}
}
