package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"dispatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task периодическая задача.
type Task interface {
	// TTL интервал между запусками. Неположительный TTL означает только прогрев.
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов и метрик.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи одним синхронным запуском и уводит их в фон до отмены ctx.
// Ошибка или паника прогрева возвращается из New.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{log: log, tasks: tasks}

	if err := w.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("warm up background tasks: %w", err)
	}

	for _, task := range tasks {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx, task)
		}()
	}

	return w, nil
}

// Wait ждет остановки всех циклов после отмены контекста.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) warmUp(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		group.Go(func() error {
			w.log.Info("warming up", logger.NewField("task", task.Info()))
			return w.run(groupCtx, task)
		})
	}
	return group.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	name := task.Info()
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("non-positive TTL, periodic runs disabled",
			logger.NewField("task", name),
			logger.NewField("ttl", ttl),
		)
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("task stopped", logger.NewField("task", name))
			return
		case <-ticker.C:
			if err := w.run(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", name),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// run выполняет задачу один раз, превращая панику в ошибку.
func (w *Worker) run(ctx context.Context, task Task) (err error) {
	name := task.Info()
	started := time.Now()
	outcome := outcomeOK

	defer func() {
		if r := recover(); r != nil {
			outcome = outcomePanic
			err = fmt.Errorf("task %s panicked: %v", name, r)
			w.log.Error("background task panic",
				logger.NewField("task", name),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
		TaskDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
		TaskRunsTotal.WithLabelValues(name, outcome).Inc()
	}()

	if err = task.Do(ctx); err != nil {
		outcome = outcomeError
	}
	return err
}
