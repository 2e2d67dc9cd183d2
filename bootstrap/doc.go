// Package bootstrap runs a command's finite task with a uniform lifecycle.
//
// NewApp applies defaults to the typed config, validates it and sets up the
// logger. RunTask runs the start hooks, the task itself with SIGINT/SIGTERM
// cancellation, then the stop hooks within the graceful timeout.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.OnStop(func(ctx context.Context) error { return shutdownTracer(ctx) })
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    _, err := scenarios.Run(ctx, opts, app.Logger)
//	    return err
//	})
package bootstrap
