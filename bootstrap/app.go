package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/seqkit/logger"
)

// App carries a validated config and the logger through a task's lifecycle.
// The type parameter C is the config type.
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	handleSignals   bool

	onStart []Hook
	onStop  []Hook
}

// NewApp creates an application from a typed config.
// It applies defaults, validates the config and initializes the logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetServiceConfig()

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
		handleSignals:   true,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.noSignals {
		app.handleSignals = false
	}

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&base.Logging)
		app.Logger = logger.GetGlobalLogger()
	}
	return app, nil
}

// RunTask runs the start hooks, then task, then the stop hooks. The task's
// context is canceled on SIGINT/SIGTERM or when ctx is done. The task error
// wins over a stop error.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	start := time.Now()
	a.Logger.Info("Starting task", logger.Fields(
		"name", a.Name,
		"version", a.Version,
	))

	if err := runHooks(ctx, a.onStart); err != nil {
		startErr := fmt.Errorf("onStart hook failed: %w", err)
		if stopErr := a.stop(); stopErr != nil {
			a.Logger.Warn("Stop after failed start reported errors", logger.ErrorFields("stop", stopErr))
		}
		return startErr
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.handleSignals {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		go func() {
			select {
			case sig := <-sigCh:
				a.Logger.Info("Received signal, canceling task", logger.Fields("signal", sig.String()))
				cancel()
			case <-taskCtx.Done():
			}
		}()
	}

	taskErr := task(taskCtx)
	if taskErr != nil {
		a.Logger.Error("Task failed", logger.ErrorFields("task", taskErr))
	} else {
		a.Logger.Info("Task complete", logger.DurationFields("task", time.Since(start)))
	}

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

// stop runs the stop hooks within the graceful timeout. Every hook runs even
// when an earlier one fails; the first error is returned.
func (a *App[C]) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var first error
	for i, h := range a.onStop {
		if err := h(ctx); err != nil {
			a.Logger.Error("OnStop hook error", logger.Fields("hook", i, "error", err.Error()))
			if first == nil {
				first = fmt.Errorf("onStop hook %d failed: %w", i, err)
			}
		}
	}
	return first
}
