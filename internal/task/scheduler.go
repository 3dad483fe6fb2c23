// Package task schedules background jobs, currently the remote snapshot
// refresh.
package task

import (
	"context"
	"time"

	"github.com/takvimhub/event-calendar-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task is one scheduled job.
type Task interface {
	Name() string
	Run(ctx context.Context) error
	// CronSpec is a five-field cron expression; empty disables the loop
	CronSpec() string
	// IsStartupRun runs the task once immediately on start
	IsStartupRun() bool
}

// Scheduler drives tasks on their cron schedules and stops them with the
// application's close signal.
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
	parser cron.Parser
}

func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start launches all registered tasks.
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}
}

func (s *Scheduler) startTask(task Task) {

	var schedule cron.Schedule
	if spec := task.CronSpec(); spec != "" {
		parsed, err := s.parser.Parse(spec)
		if err != nil {
			s.logger.Error("invalid cron spec, task disabled",
				zap.String("name", task.Name()),
				zap.String("spec", spec),
				zap.Error(err))
		} else {
			schedule = parsed
		}
	}

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		if task.IsStartupRun() {
			s.runOnce(task, "startupRun")
		}

		if schedule == nil {
			return
		}

		for {
			next := schedule.Next(time.Now())
			timer := time.NewTimer(time.Until(next))
			select {
			case <-timer.C:
				s.runOnce(task, "loopRun")
			case <-closeSignal:
				timer.Stop()
				s.logger.Info("task stopped", zap.String("name", task.Name()))
				return
			}
		}
	})
}

func (s *Scheduler) runOnce(task Task, mode string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.String("mode", mode),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.String("mode", mode),
			zap.Error(err))
	}
}
